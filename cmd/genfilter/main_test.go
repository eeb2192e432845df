package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/23skdu/colfilter/internal/codegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoArgumentsWritesStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	want, err := codegen.Source(codegen.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, string(want), stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.Equal(t, 0, run(nil, &a, &bytes.Buffer{}))
	require.Equal(t, 0, run(nil, &b, &bytes.Buffer{}))
	assert.True(t, bytes.Equal(a.Bytes(), b.Bytes()))
}

func TestRun_OutputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kernel_gen.go")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", path, "-package", "kernels", "-func", "FilterPrimitive", "-log-level", "info"}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "generated case table")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package kernels\n")
	assert.Contains(t, string(data), "func FilterPrimitive[T any](")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be renamed away")
}

func TestRun_DecimalUnformatted(t *testing.T) {
	var stdout bytes.Buffer
	code := run([]string{"-base", "decimal", "-gofmt=false"}, &stdout, &bytes.Buffer{})
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "\t\tcase 200:\n")
}

func TestRun_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GENFILTER_PACKAGE", "fromenv")
	t.Setenv("GENFILTER_BASE", "decimal")

	var stdout bytes.Buffer
	require.Equal(t, 0, run(nil, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "package fromenv\n")
	assert.Contains(t, stdout.String(), "case 255:")

	// Flags win over the environment.
	stdout.Reset()
	require.Equal(t, 0, run([]string{"-package", "fromflag"}, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "package fromflag\n")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown flag", []string{"-width", "16"}, 2},
		{"positional argument", []string{"extra"}, 2},
		{"invalid package", []string{"-package", "not-a-name"}, 1},
		{"invalid base", []string{"-base", "octal"}, 1},
		{"invalid log level", []string{"-log-level", "loud"}, 1},
		{"blank func", []string{"-func", "_"}, 1},
		{"blank package", []string{"-package", "_"}, 1},
		{"missing directory", []string{"-o", filepath.Join(t.TempDir(), "missing", "out.go")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, run(tt.args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestRun_BlankIdentifierIsConfigurationError(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-func", "_"}, &bytes.Buffer{}, &stderr))
	assert.Contains(t, stderr.String(), "invalid configuration")
	assert.Contains(t, stderr.String(), ErrInvalidFuncName.Error())
	assert.NotContains(t, stderr.String(), "generation failed")
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-h"}, &bytes.Buffer{}, &stderr))
	assert.True(t, strings.Contains(stderr.String(), "-base"))
}
