//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/readlink/internal/cli"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir string // READLINK_CONFIG_DIR
	Root      string // symlink fixture tree, with its own symlinks resolved
}

// setupTestEnv creates isolated temp directories and points the config
// directory at one of them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolving temp dir: %v", err)
	}
	env := &testEnv{
		ConfigDir: t.TempDir(),
		Root:      root,
	}
	t.Setenv("READLINK_CONFIG_DIR", env.ConfigDir)
	return env
}

// writeFile creates a file (and parent dirs) with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// symlink creates link -> target.
func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", link, err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink %s -> %s: %v", link, target, err)
	}
}

type invocation struct {
	Stdout string
	Stderr string
	Err    error
}

// run executes the full pipeline with line on stdin and the real process
// environment for $NAME expansion.
func run(t *testing.T, line string) invocation {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := cli.Run(cli.Env{
		Program: "readlink",
		Stdin:   strings.NewReader(line),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Lookup:  os.LookupEnv,
	})
	return invocation{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// assertOutput checks a successful invocation printed want.
func assertOutput(t *testing.T, got invocation, want string) {
	t.Helper()
	if got.Err != nil {
		t.Fatalf("unexpected error: %v (stderr: %q)", got.Err, got.Stderr)
	}
	if got.Stdout != want {
		t.Errorf("stdout = %q, want %q", got.Stdout, want)
	}
}
