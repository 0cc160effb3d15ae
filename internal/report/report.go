/*
PURPOSE:
  Loads a benchmark report (YAML) into a model.ResultTable.

REQUIREMENTS:
  User-specified:
  - Benchmarks keep document order.
  - The first benchmark fixes the canonical library order; every other
    benchmark must list exactly the same libraries in the same order.
  - Keys ending in "_profile" are metadata, not libraries.

  Implementation-discovered:
  - yaml.v3 maps lose key order, so the document is walked as a yaml.Node.
  - Anchors/aliases are legal YAML and must resolve to their target;
    merge keys (<<) expand in place.
  - yaml.Node keeps duplicate keys, so duplicates are rejected here.
  - NaN/Inf are valid YAML floats but cannot be charted.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/model

ERROR HANDLING:
  - *InconsistencyError (matches ErrInconsistentLibraries) on misaligned libraries.
  - ErrMalformed wrapped with the offending key path for structural problems.
  - No partial table is ever returned with an error.

IMPLEMENTATION RULES:
  - Parse is pure: collect entries first, validate second, transpose last.

USAGE:
  t, err := report.LoadFile("bench_result.yml")

RELATED FILES:
  - internal/model/types.go
*/

package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/benchplot/internal/model"
)

var (
	// ErrInconsistentLibraries is matched by every *InconsistencyError.
	ErrInconsistentLibraries = errors.New("inconsistent libraries")
	// ErrMalformed reports a document that does not follow the report schema.
	ErrMalformed = errors.New("malformed benchmark report")
)

// InconsistencyError is returned when a benchmark does not list the
// canonical libraries in canonical order.
type InconsistencyError struct {
	Benchmark string
	Want      []string
	Got       []string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s: benchmark %q has libraries [%s], expected [%s]",
		ErrInconsistentLibraries, e.Benchmark,
		strings.Join(e.Got, ", "), strings.Join(e.Want, ", "))
}

func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistentLibraries
}

// entry is one benchmark as it appears in the document.
type entry struct {
	name   string
	libs   []string
	values []float64
}

// LoadFile opens path and loads the report it contains.
func LoadFile(path string) (*model.ResultTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load reads a whole report from r.
func Load(r io.Reader) (*model.ResultTable, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return Parse(buf.Bytes())
}

// Parse builds the result table for a YAML report.
func Parse(data []byte) (*model.ResultTable, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	entries, err := collect(&doc)
	if err != nil {
		return nil, err
	}
	libs, err := canonical(entries)
	if err != nil {
		return nil, err
	}
	return transpose(libs, entries), nil
}

// collect walks the document in order and returns one entry per benchmark.
func collect(doc *yaml.Node) ([]entry, error) {
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := resolve(doc.Content[0])
	if isNull(root) {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of benchmarks", ErrMalformed)
	}

	benches, err := pairs(root)
	if err != nil {
		var dup *duplicateKeyError
		if errors.As(err, &dup) {
			return nil, fmt.Errorf("%w: duplicate benchmark %q", ErrMalformed, dup.key)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	entries := make([]entry, 0, len(benches))
	for _, b := range benches {
		e, err := collectBenchmark(b.key, b.val)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func collectBenchmark(name string, n *yaml.Node) (entry, error) {
	e := entry{name: name}
	if n.Kind != yaml.MappingNode {
		return e, fmt.Errorf("%w: benchmark %q must be a mapping of libraries", ErrMalformed, name)
	}

	libs, err := pairs(n)
	if err != nil {
		var dup *duplicateKeyError
		if errors.As(err, &dup) {
			return e, fmt.Errorf("%w: duplicate library %q in %q", ErrMalformed, dup.key, name)
		}
		return e, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}

	for _, l := range libs {
		if strings.HasSuffix(l.key, model.ProfileSuffix) {
			continue
		}
		v, err := elapsed(l.val)
		if err != nil {
			return e, fmt.Errorf("%w: %s.%s: %v", ErrMalformed, name, l.key, err)
		}
		e.libs = append(e.libs, l.key)
		e.values = append(e.values, v)
	}
	return e, nil
}

// elapsed extracts elapsed_time_ms from a measurement record.
func elapsed(rec *yaml.Node) (float64, error) {
	if rec.Kind != yaml.MappingNode {
		return 0, errors.New("measurement must be a mapping")
	}
	var m model.Measurement
	if err := rec.Decode(&m); err != nil {
		return 0, err
	}

	fields, err := pairs(rec)
	if err != nil {
		return 0, err
	}
	i := slices.IndexFunc(fields, func(p pair) bool { return p.key == "elapsed_time_ms" })
	switch {
	case i < 0:
		return 0, errors.New("missing elapsed_time_ms")
	case isNull(fields[i].val):
		return 0, errors.New("elapsed_time_ms is null")
	case math.IsNaN(m.ElapsedTimeMS) || math.IsInf(m.ElapsedTimeMS, 0):
		return 0, fmt.Errorf("elapsed_time_ms is not finite (%v)", m.ElapsedTimeMS)
	}
	return m.ElapsedTimeMS, nil
}

// canonical returns the library order of the first entry after checking
// that every other entry agrees with it.
func canonical(entries []entry) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	want := entries[0].libs
	for _, e := range entries[1:] {
		if !slices.Equal(want, e.libs) {
			return nil, &InconsistencyError{
				Benchmark: e.name,
				Want:      slices.Clone(want),
				Got:       slices.Clone(e.libs),
			}
		}
	}
	return slices.Clone(want), nil
}

func transpose(libs []string, entries []entry) *model.ResultTable {
	t := &model.ResultTable{
		Libraries:  libs,
		Benchmarks: make([]string, len(entries)),
		Values:     make([][]float64, len(libs)),
	}
	for i := range libs {
		t.Values[i] = make([]float64, len(entries))
	}
	for j, e := range entries {
		t.Benchmarks[j] = e.name
		for i, v := range e.values {
			t.Values[i][j] = v
		}
	}
	return t
}

type pair struct {
	key string
	val *yaml.Node
}

type duplicateKeyError struct {
	key string
}

func (e *duplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.key)
}

// pairs returns the entries of mapping n in document order with merge keys
// (<<) expanded. A merged key keeps the position of its first appearance;
// an explicit key overrides its merged value in place. Explicit keys may
// appear only once.
func pairs(n *yaml.Node) ([]pair, error) {
	var merged, own []pair
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], resolve(n.Content[i+1])
		if !isMerge(k) {
			own = append(own, pair{key: k.Value, val: v})
			continue
		}

		srcs := []*yaml.Node{v}
		if v.Kind == yaml.SequenceNode {
			srcs = v.Content
		}
		for _, src := range srcs {
			src = resolve(src)
			if src.Kind != yaml.MappingNode {
				return nil, errors.New("merge key must refer to a mapping")
			}
			sub, err := pairs(src)
			if err != nil {
				return nil, err
			}
			merged = append(merged, sub...)
		}
	}

	out := make([]pair, 0, len(merged)+len(own))
	index := make(map[string]int, cap(out))
	for _, p := range merged {
		if _, ok := index[p.key]; ok {
			continue
		}
		index[p.key] = len(out)
		out = append(out, p)
	}
	explicit := make(map[string]bool, len(own))
	for _, p := range own {
		if explicit[p.key] {
			return nil, &duplicateKeyError{key: p.key}
		}
		explicit[p.key] = true
		if i, ok := index[p.key]; ok {
			out[i].val = p.val
			continue
		}
		index[p.key] = len(out)
		out = append(out, p)
	}
	return out, nil
}

func isMerge(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
