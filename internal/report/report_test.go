package report

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sortReport = `
sort_1k:
  alpha: {elapsed_time_ms: 10}
  beta:  {elapsed_time_ms: 12}
sort_1m:
  alpha: {elapsed_time_ms: 900}
  beta:  {elapsed_time_ms: 1100}
`

func TestParse_TransposesToLibraryMajor(t *testing.T) {
	tbl, err := Parse([]byte(sortReport))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, tbl.Libraries)
	assert.Equal(t, []string{"sort_1k", "sort_1m"}, tbl.Benchmarks)
	assert.Equal(t, [][]float64{{10, 900}, {12, 1100}}, tbl.Values)
}

func TestParse_RenamedLibraryIsInconsistent(t *testing.T) {
	doc := strings.Replace(sortReport, "beta:  {elapsed_time_ms: 1100}", "gamma: {elapsed_time_ms: 1100}", 1)

	tbl, err := Parse([]byte(doc))
	assert.Nil(t, tbl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentLibraries))

	var ie *InconsistencyError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "sort_1m", ie.Benchmark)
	assert.Equal(t, []string{"alpha", "beta"}, ie.Want)
	assert.Equal(t, []string{"alpha", "gamma"}, ie.Got)
}

func TestParse_ReorderedLibrariesAreInconsistent(t *testing.T) {
	doc := `
a:
  x: {elapsed_time_ms: 1}
  y: {elapsed_time_ms: 2}
b:
  y: {elapsed_time_ms: 3}
  x: {elapsed_time_ms: 4}
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, ErrInconsistentLibraries)
}

func TestParse_ExtraOrMissingLibraryIsInconsistent(t *testing.T) {
	extra := `
a:
  x: {elapsed_time_ms: 1}
b:
  x: {elapsed_time_ms: 3}
  y: {elapsed_time_ms: 4}
`
	missing := `
a:
  x: {elapsed_time_ms: 1}
  y: {elapsed_time_ms: 2}
b:
  x: {elapsed_time_ms: 3}
`
	for name, doc := range map[string]string{"extra": extra, "missing": missing} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInconsistentLibraries)
		})
	}
}

func TestParse_SkipsProfileKeys(t *testing.T) {
	doc := `
Random:
  std::stable_sort: {elapsed_time_ms: 120.5}
  sayhisort:
    elapsed_time_ms: 98.25
    comparisons: 12345
  sayhisort_profile:
    merge: 40.1
    sort_blocks: 20.7
Ascending:
  std::stable_sort: {elapsed_time_ms: 3}
  sayhisort: {elapsed_time_ms: 1.5}
`
	tbl, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"std::stable_sort", "sayhisort"}, tbl.Libraries)
	assert.Equal(t, []string{"Random", "Ascending"}, tbl.Benchmarks)
	assert.Equal(t, [][]float64{{120.5, 3}, {98.25, 1.5}}, tbl.Values)
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	doc := `
zeta:  {a: {elapsed_time_ms: 1}}
alpha: {a: {elapsed_time_ms: 2}}
mid:   {a: {elapsed_time_ms: 3}}
`
	tbl, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, tbl.Benchmarks)
	assert.Equal(t, [][]float64{{1, 2, 3}}, tbl.Values)
}

func TestParse_Idempotent(t *testing.T) {
	data := []byte(sortReport)
	first, err := Parse(data)
	require.NoError(t, err)
	second, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, sortReport, string(data))
}

func TestParse_ResolvesAliases(t *testing.T) {
	doc := `
a:
  x: &fast {elapsed_time_ms: 7}
  y: {elapsed_time_ms: 8}
b:
  x: *fast
  y: {elapsed_time_ms: 9}
`
	tbl, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{7, 7}, {8, 9}}, tbl.Values)
}

func TestParse_Empty(t *testing.T) {
	for _, doc := range []string{"", "~", "{}"} {
		tbl, err := Parse([]byte(doc))
		require.NoError(t, err, "doc %q", doc)
		assert.True(t, tbl.Empty(), "doc %q", doc)
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"list root":        "- a\n- b\n",
		"scalar benchmark": "a: 3\n",
		"missing elapsed":  "a:\n  x: {other: 1}\n",
		"non numeric":      "a:\n  x: {elapsed_time_ms: fast}\n",
		"scalar record":    "a:\n  x: 12\n",
		"duplicate bench":  "a: {x: {elapsed_time_ms: 1}}\na: {x: {elapsed_time_ms: 2}}\n",
		"bad yaml":         "a: [\n",
		"duplicate lib":    "a: {x: {elapsed_time_ms: 1}, x: {elapsed_time_ms: 2}}\nb: {x: {elapsed_time_ms: 3}, x: {elapsed_time_ms: 4}}\n",
		"null elapsed":     "a:\n  x: {elapsed_time_ms: ~}\n",
		"empty elapsed":    "a:\n  x:\n    elapsed_time_ms:\n",
		"null record":      "a:\n  x: ~\n",
		"nan":              "a:\n  x: {elapsed_time_ms: .nan}\n",
		"inf":              "a:\n  x: {elapsed_time_ms: .inf}\n",
		"negative inf":     "a:\n  x: {elapsed_time_ms: -.inf}\n",
		"merge scalar":     "a:\n  <<: 3\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			tbl, err := Parse([]byte(doc))
			assert.Nil(t, tbl)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench_result.yml")
	require.NoError(t, os.WriteFile(path, []byte(sortReport), 0644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, tbl.Libraries)

	_, err = LoadFile(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_ErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gcc.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: 3\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gcc.yml")
}

func TestParse_NonFiniteNamesPath(t *testing.T) {
	_, err := Parse([]byte("Random:\n  sayhisort: {elapsed_time_ms: .nan}\n"))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "Random.sayhisort")
}

func TestParse_DuplicateLibraryNamesBenchmark(t *testing.T) {
	_, err := Parse([]byte("Random: {x: {elapsed_time_ms: 1}, x: {elapsed_time_ms: 2}}\n"))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), `duplicate library "x" in "Random"`)
}

func TestParse_ExpandsMergeKeys(t *testing.T) {
	doc := `
base: &base
  x: {elapsed_time_ms: 1}
  y: {elapsed_time_ms: 2}
other:
  <<: *base
  y: {elapsed_time_ms: 5}
`
	tbl, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tbl.Libraries)
	assert.Equal(t, [][]float64{{1, 1}, {2, 5}}, tbl.Values)
}

func TestParse_ExpandsMergeKeysInRecords(t *testing.T) {
	doc := `
a:
  x: &rec {elapsed_time_ms: 4, comparisons: 9}
  y:
    <<: *rec
    elapsed_time_ms: 6
b:
  x: {<<: *rec}
  y: {elapsed_time_ms: 7}
`
	tbl, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 4}, {6, 7}}, tbl.Values)
}

func TestParse_QuotedMergeKeyIsALibrary(t *testing.T) {
	tbl, err := Parse([]byte("a:\n  \"<<\": {elapsed_time_ms: 1}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"<<"}, tbl.Libraries)
}
