package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/benchplot/internal/report"
)

const sortReport = `
sort_1k:
  alpha: {elapsed_time_ms: 10}
  beta:  {elapsed_time_ms: 12}
  beta_profile: {merge: 3}
sort_1m:
  alpha: {elapsed_time_ms: 900}
  beta:  {elapsed_time_ms: 1100}
`

// run executes the command tree with fresh flag values.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, verbose = "", false
	outputOverride, titleOverride, paletteOverride = "", "", ""
	widthOverride, heightOverride, dpiOverride = 0, 0, 0
	pinOverride = nil
	tableFormat, tableOutput = "csv", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestRoot_NoArgsPlotsDefaultReport(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("bench_result.yml", []byte(sortReport), 0644))

	_, err := run(t)
	require.NoError(t, err)

	w, h := pngSize(t, "bench_result.png")
	assert.Equal(t, 1024, w)
	assert.Equal(t, 600, h)
}

func TestRoot_NoArgsMissingReport(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := run(t)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, "bench_result.png")
}

func TestRoot_ConfigJobs(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("clang.yml", []byte(sortReport), 0644))
	require.NoError(t, os.WriteFile("gcc.yml", []byte(sortReport), 0644))
	cfg := `
jobs:
  - {input: clang.yml, title: clang 17}
  - {input: gcc.yml, title: gcc 13}
width: 640
height: 480
`
	require.NoError(t, os.WriteFile("benchplot.yaml", []byte(cfg), 0644))

	_, err := run(t)
	require.NoError(t, err)

	for _, name := range []string{"clang.png", "gcc.png"} {
		w, h := pngSize(t, name)
		assert.Equal(t, 640, w, name)
		assert.Equal(t, 480, h, name)
	}
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := run(t, "unexpected")
	assert.Error(t, err)
}

func TestPlot_Overrides(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "gcc.yml")
	require.NoError(t, os.WriteFile(in, []byte(sortReport), 0644))
	out := filepath.Join(dir, "charts", "gcc.png")

	_, err := run(t, "plot", in, "-o", out, "-t", "gcc 13.2", "--width", "800", "--height", "400", "--pin", "beta=0")
	require.NoError(t, err)

	w, h := pngSize(t, out)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
}

func TestPlot_InconsistentReport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.yml")
	doc := `
a: {x: {elapsed_time_ms: 1}, y: {elapsed_time_ms: 2}}
b: {x: {elapsed_time_ms: 1}, z: {elapsed_time_ms: 2}}
`
	require.NoError(t, os.WriteFile(in, []byte(doc), 0644))

	_, err := run(t, "plot", in)
	assert.ErrorIs(t, err, report.ErrInconsistentLibraries)
	assert.NoFileExists(t, filepath.Join(dir, "bad.png"))
}

func TestTable_CSVToStdout(t *testing.T) {
	in := filepath.Join(t.TempDir(), "r.yml")
	require.NoError(t, os.WriteFile(in, []byte(sortReport), 0644))

	out, err := run(t, "table", in)
	require.NoError(t, err)
	assert.Equal(t, "benchmark,alpha,beta\nsort_1k,10,12\nsort_1m,900,1100\n", out)
}

func TestTable_JSONToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "r.yml")
	require.NoError(t, os.WriteFile(in, []byte(sortReport), 0644))
	dst := filepath.Join(dir, "r.jsonl")

	_, err := run(t, "table", in, "--format", "json", "-o", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), `{"benchmark":"sort_1k","results":[{"library":"alpha","elapsed_time_ms":10},{"library":"beta","elapsed_time_ms":12}]}`)
}

func TestLibs(t *testing.T) {
	in := filepath.Join(t.TempDir(), "r.yml")
	require.NoError(t, os.WriteFile(in, []byte(sortReport), 0644))

	out, err := run(t, "libs", in)
	require.NoError(t, err)
	assert.Equal(t, "Libraries:\n- alpha\n- beta\nBenchmarks:\n- sort_1k\n- sort_1m\n", out)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
