package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"genescan/internal/version"
	"genescan/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeSeq(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ABO.gene")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// isolate keeps a stray genescan.yaml in the package dir or GENESCAN_* in
// the environment from leaking into a test.
func isolate(t *testing.T) []string {
	t.Helper()
	t.Setenv("GENESCAN_MIN_RUN", "")
	t.Setenv("GENESCAN_OUTPUT", "")
	t.Setenv("GENESCAN_LOG_LEVEL", "")
	return []string{"--config", writeConfig(t, "{}\n")}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genescan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunText(t *testing.T) {
	path := writeSeq(t, "AAAABBBBBCCTTTTTTTG\n")
	var out, errBuf bytes.Buffer
	code := Run(append(isolate(t), path), &out, &errBuf)

	require.Equal(t, 0, code, errBuf.String())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "starting search on "+path, lines[0])
	assert.Equal(t, "Longest consecutive characters: TTTTTTT", lines[1])
	assert.Equal(t, "Total number of 5-character or higher sequences: 2", lines[2])
}

func TestRunJSONWithRuns(t *testing.T) {
	path := writeSeq(t, ">x desc\nCCCCCCCAGGG\n")
	var out, errBuf bytes.Buffer
	code := Run(append(isolate(t), "-o", "json", "--runs", "-n", "3", path), &out, &errBuf)
	require.Equal(t, 0, code, errBuf.String())

	var rep api.ReportV1
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, "x", rep.SequenceID)
	assert.Equal(t, "CCCCCCC", rep.Longest)
	assert.Equal(t, 2, rep.LongRuns)
	assert.Equal(t, []api.RunV1{{Char: "C", Start: 0, Length: 7}, {Char: "G", Start: 8, Length: 3}}, rep.Runs)
}

func TestRunConfigFile(t *testing.T) {
	isolate(t)
	cfg := writeConfig(t, "min_run: 2\ntiming: true\n")
	path := writeSeq(t, "AACCG")
	var out bytes.Buffer
	code := Run([]string{"--config", cfg, "-q", path}, &out, &bytes.Buffer{})

	require.Equal(t, 0, code)
	assert.NotContains(t, out.String(), "starting search")
	assert.Contains(t, out.String(), "Total number of 2-character or higher sequences: 2")
	assert.Contains(t, out.String(), "total time ")
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	path := writeSeq(t, "GGGGG")
	var out, errBuf bytes.Buffer
	code := Run(append(isolate(t), "-V", path), &out, &errBuf)
	require.Equal(t, 0, code)
	assert.Contains(t, errBuf.String(), "sequence analysed")
	assert.NotContains(t, out.String(), "sequence analysed")
}

func TestNoArgsPrintsHelp(t *testing.T) {
	var out bytes.Buffer
	code := Run(nil, &out, &bytes.Buffer{})
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "--min-run")
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	code := Run([]string{"--version"}, &out, &bytes.Buffer{})
	assert.Equal(t, 0, code)
	assert.Equal(t, "genescan version "+version.Version+"\n", out.String())
}

func TestUsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"two inputs": {"a.gene", "b.gene"},
		"bad output": {"--output", "xml", "a.gene"},
		"bad flag":   {"--chunk-size", "9", "a.gene"},
	} {
		t.Run(name, func(t *testing.T) {
			var errBuf bytes.Buffer
			code := Run(append(isolate(t), args...), &bytes.Buffer{}, &errBuf)
			assert.Equal(t, 2, code)
			assert.Contains(t, errBuf.String(), "error:")
		})
	}
}

func TestMissingInput(t *testing.T) {
	var errBuf bytes.Buffer
	code := Run(append(isolate(t), filepath.Join(t.TempDir(), "missing.gene")), &bytes.Buffer{}, &errBuf)
	assert.Equal(t, 2, code)
	assert.Contains(t, errBuf.String(), "missing.gene")
}
