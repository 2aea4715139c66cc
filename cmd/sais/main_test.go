package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusth/sais"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"sais"}, args...))
	return out.String(), err
}

func TestBuildAndDump(t *testing.T) {
	input := writeTemp(t, "input.txt", "mississippi")
	want, err := sais.BuildSuffixArray([]byte("mississippi"))
	require.NoError(t, err)

	for _, codec := range []string{"none", "zstd", "xz"} {
		t.Run(codec, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "input.sa")
			_, err := run(t, "build", "--check", "--codec", codec, "--output", output, input)
			require.NoError(t, err)

			out, err := run(t, "dump", output)
			require.NoError(t, err)
			var got []int
			for _, line := range strings.Fields(out) {
				p, err := strconv.Atoi(line)
				require.NoError(t, err)
				got = append(got, p)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestBuildRejectsLargeInput(t *testing.T) {
	input := writeTemp(t, "input.txt", strings.Repeat("a", 100))
	_, err := run(t, "--max-input", "64B", "build", input)
	assert.ErrorContains(t, err, "limit")
}

func TestBuildRejectsUnknownCodec(t *testing.T) {
	input := writeTemp(t, "input.txt", "banana")
	_, err := run(t, "build", "--codec", "gzip", input)
	assert.ErrorIs(t, err, sais.ErrUnknownCodec)
}

func TestSearch(t *testing.T) {
	input := writeTemp(t, "lines.txt", "banana\n\nBandana\nananas\n")

	out, err := run(t, "search", input, "ana", "xyz")
	require.NoError(t, err)
	assert.Equal(t,
		"\"ana\" found at (line, offset): (0, 1) (0, 3) (1, 4) (2, 0) (2, 2)\n"+
			"\"xyz\" not found\n",
		out)

	out, err = run(t, "search", "--case-sensitive", "--k", "5", input, "Ban")
	require.NoError(t, err)
	assert.Equal(t, "\"Ban\" lines: [1]\n", out)
}

func TestDumpCorrupt(t *testing.T) {
	path := writeTemp(t, "bad.sa", "not an array")
	_, err := run(t, "dump", path)
	assert.ErrorIs(t, err, sais.ErrCorruptArray)
}
