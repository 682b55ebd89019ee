package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-eventio/eventio"
	"github.com/robert-malhotra/go-eventio/internal/cmderr"
	"github.com/robert-malhotra/go-eventio/internal/eventiotest"
)

func writeSample(t *testing.T, compress func([]byte) []byte) string {
	t.Helper()
	data := eventiotest.Stream(
		eventiotest.Object{Type: eventio.TypeHistory, ID: 1, Children: []eventiotest.Object{
			{Type: eventio.TypeCommandLine, ID: 2, Payload: eventiotest.TimestampedString(100, "corsika < run.inp")},
			{Type: eventio.TypeConfigLine, ID: 3, Payload: eventiotest.TimestampedString(101, "ALTITUDE 2200")},
		}},
		eventiotest.Object{Type: 2000, Version: 2, ID: 4, Payload: []byte("run")},
	)
	if compress != nil {
		data = compress(data)
	}
	path := filepath.Join(t.TempDir(), "sample.eventio")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const wantTree = `History[70, 0](address=16, size=66, id=1, is_container=true)
  100 corsika < run.inp
  101 ALTITUDE 2200
Object[2000, 2](address=98, size=3, id=4, is_container=false)
`

func TestPrintTree(t *testing.T) {
	for name, compress := range map[string]func([]byte) []byte{
		"raw":  nil,
		"gzip": eventiotest.Gzip,
		"zstd": eventiotest.Zstd,
	} {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, err := run(t, writeSample(t, compress))
			require.NoError(t, err)
			assert.Equal(t, wantTree, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestPrintTreeColor(t *testing.T) {
	stdout, _, err := run(t, "--color=always", writeSample(t, nil))
	require.NoError(t, err)

	first := strings.SplitN(stdout, "\n", 2)[0]
	assert.Contains(t, first, "\x1b[")
	assert.Contains(t, first, "[70, 0](address=16")
}

func TestSummary(t *testing.T) {
	stdout, _, err := run(t, "--summary", writeSample(t, eventiotest.Zstd))
	require.NoError(t, err)

	for _, want := range []string{"TYPE", "NAME", "MAX DEPTH", "CommandLine", "ConfigLine", "Object"} {
		assert.Contains(t, stdout, want)
	}

	lines := strings.Split(stdout, "\n")
	var historyRow string
	for _, l := range lines {
		if strings.Contains(l, "History") {
			historyRow = l
		}
	}
	fields := strings.FieldsFunc(historyRow, func(r rune) bool { return r == '|' || r == ' ' })
	assert.Equal(t, []string{"70", "History", "1", "1", "78", "0"}, fields)
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := run(t, "-v", writeSample(t, eventiotest.Gzip))
	require.NoError(t, err)
	assert.Equal(t, wantTree, stdout)
	assert.Contains(t, stderr, "opened eventio stream")
	assert.Contains(t, stderr, "decoded object")
	assert.Contains(t, stderr, "gzip")
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{nil, {"a", "b"}} {
		_, _, err := run(t, args...)
		require.Error(t, err)
		assert.Equal(t, cmderr.CodeUsage, cmderr.Code(err))
		assert.Contains(t, err.Error(), "Usage:")
	}

	_, _, err := run(t, "--color=sometimes", writeSample(t, nil))
	assert.Equal(t, cmderr.CodeUsage, cmderr.Code(err))
}

func TestMissingFile(t *testing.T) {
	_, _, err := run(t, filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, eventio.ErrOpen)
	assert.Equal(t, cmderr.CodeFailure, cmderr.Code(err))
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.eventio")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 0o644))

	_, _, err := run(t, path)
	require.ErrorIs(t, err, eventio.ErrMissingSyncMarker)
}

func TestHomeExpansion(t *testing.T) {
	path := writeSample(t, nil)
	home := filepath.Dir(path)
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	stdout, _, err := run(t, "~/"+filepath.Base(path))
	require.NoError(t, err)
	assert.Equal(t, wantTree, stdout)
}

func TestPrintStringRecordWithContainerBit(t *testing.T) {
	data := eventiotest.Stream(
		eventiotest.Object{Type: eventio.TypeCommandLine, ID: 2, Container: true, Payload: eventiotest.TimestampedString(5, "x")},
		eventiotest.Object{Type: 2000, ID: 3, Payload: []byte("run")},
	)
	path := filepath.Join(t.TempDir(), "flagged.eventio")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	stdout, _, err := run(t, path)
	require.NoError(t, err)
	assert.Equal(t, "5 x\nObject[2000, 0](address=39, size=3, id=3, is_container=false)\n", stdout)
}
