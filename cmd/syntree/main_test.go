package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `4
bat 2 club stick
apple 0
cat 1 feline
dog 0
3
dog
cat
banana
`

const sampleOut = "[bat->cat->dog]\n No synonym found for the word: dog\n" +
	"[bat->cat]\nfeline\n" +
	"[bat->apple->?]\n-\n"

func TestSyntree_Files(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "input"), filepath.Join(dir, "output")
	require.NoError(t, os.WriteFile(in, []byte(sample), 0o644))

	var stdout, stderr bytes.Buffer
	err := newApp(strings.NewReader(""), &stdout, &stderr).Run([]string{"syntree", in, out})
	require.NoError(t, err)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, sampleOut, string(b))
	assert.Empty(t, stdout.String())
}

func TestSyntree_Stdio(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := newApp(strings.NewReader(sample), &stdout, &stderr).Run([]string{"syntree", "--dump-tree", "--log-format", "json", "-", "-"})
	require.NoError(t, err)
	assert.Equal(t, sampleOut, stdout.String())
	assert.Contains(t, stderr.String(), "4 words, height 3")
	assert.Contains(t, stderr.String(), `"msg":"session done"`)
}

func TestSyntree_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := newApp(strings.NewReader(sample), &stdout, &stderr).Run([]string{"syntree", "-"})
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "expected 2 arguments")
	assert.Empty(t, stdout.String())
}

func TestSyntree_Failures(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name  string
		stdin string
		args  []string
		log   string
	}{
		{"missing input", "", []string{filepath.Join(dir, "missing"), "-"}, "opening input"},
		{"bad output dir", "", []string{"-", filepath.Join(dir, "no", "such", "dir")}, "creating output"},
		{"malformed", "1 run x", []string{"-", "-"}, "session failed"},
		{"bad log level", "", []string{"--log-level", "loud", "-", "-"}, "invalid log level"},
		{"bad log format", "", []string{"--log-format", "xml", "-", "-"}, "invalid log format"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := newApp(strings.NewReader(c.stdin), &stdout, &stderr).Run(append([]string{"syntree"}, c.args...))
			require.Error(t, err)
			assert.Contains(t, stderr.String(), c.log)
		})
	}
}

func TestSyntree_SkipInvalid(t *testing.T) {
	in := "2 run 1 jog " + strings.Repeat("x", 31) + " 0 1 run"
	var stdout, stderr bytes.Buffer
	require.Error(t, newApp(strings.NewReader(in), &stdout, &stderr).Run([]string{"syntree", "-", "-"}))

	stdout.Reset()
	t.Setenv("SYNTREE_SKIP_INVALID", "true")
	require.NoError(t, newApp(strings.NewReader(in), &stdout, &stderr).Run([]string{"syntree", "-", "-"}))
	assert.Equal(t, "[run]\njog\n", stdout.String())
}
