package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// result captures one CLI invocation.
type result struct {
	code   int
	stdout string
	stderr string
}

// isolate keeps the user's config and ROMANO_* environment out of a test.
// It returns the directory romano.yaml is looked up in.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{"ROMANO_CONFIG", "ROMANO_FORMAT", "ROMANO_PRECISION", "ROMANO_JOURNAL", "ROMANO_VERBOSE"} {
		t.Setenv(key, "")
	}
	return filepath.Join(dir, configFileName)
}

// execute runs the CLI with args in an isolated environment.
func execute(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
