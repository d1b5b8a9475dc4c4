// Package integration provides CLI integration tests for datapulse.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// datapulseBin is the path to the built datapulse binary.
	datapulseBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetDatapulseBin sets the path to the datapulse binary (called from TestMain).
func SetDatapulseBin(path string) {
	datapulseBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and
// catalog directory.
type TestEnv struct {
	t          *testing.T
	TempDir    string
	ConfigDir  string
	CatalogDir string
	DataDir    string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build datapulse: %v", buildErr)
	}
	if datapulseBin == "" {
		t.Fatal("datapulse binary not built (datapulseBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	catalogDir := filepath.Join(tempDir, ".datapulse")
	dataDir := filepath.Join(tempDir, "data")

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}

	return &TestEnv{
		t:          t,
		TempDir:    tempDir,
		ConfigDir:  configDir,
		CatalogDir: catalogDir,
		DataDir:    dataDir,
	}
}

// WriteDataFile writes a file into the environment's data directory and
// returns its path.
func (e *TestEnv) WriteDataFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.DataDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// CmdResult holds the result of a datapulse command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunDatapulse executes the datapulse CLI with the given arguments.
func (e *TestEnv) RunDatapulse(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--catalog-dir", e.CatalogDir}, args...)
	cmd := exec.Command(datapulseBin, allArgs...)
	cmd.Dir = e.TempDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("failed to run datapulse: %v", err)
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunDatapulse executes the CLI and fails the test on a non-zero exit.
func (e *TestEnv) MustRunDatapulse(args ...string) CmdResult {
	e.t.Helper()

	result := e.RunDatapulse(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("datapulse %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
