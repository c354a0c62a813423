// Package integration runs the recipebox binary end to end.
package integration

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// recipeboxBin is the path to the built recipebox binary.
	recipeboxBin string
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
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated environment with its own config and data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment. config.yaml is
// written with the given backend.
func NewTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build recipebox: %v", buildErr)
	}
	if recipeboxBin == "" {
		t.Fatal("recipebox binary not built (recipeboxBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: " + backend + "\ndata_dir: " + dataDir + "\nlog:\n  level: error\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a recipebox command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the recipebox CLI with the given arguments.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(recipeboxBin, allArgs...)
	cmd.Env = append(os.Environ(), "RECIPEBOX_DATA_DIR=", "RECIPEBOX_BACKEND=")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run recipebox: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRun executes the recipebox CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("recipebox %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// WriteImage writes a small PNG outside the data directory and returns its path.
func (e *TestEnv) WriteImage(name string) string {
	e.t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		e.t.Fatalf("encode png: %v", err)
	}
	path := filepath.Join(e.TempDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		e.t.Fatalf("write image: %v", err)
	}
	return path
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Recipe mirrors one record in recipes.json and in --json output.
type Recipe struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Steps       string   `json:"steps"`
	Image       string   `json:"image"`
}

// Entry mirrors one listed record.
type Entry struct {
	Position     int    `json:"position"`
	Recipe       Recipe `json:"recipe"`
	ImageWarning string `json:"image_warning"`
}

// Listing mirrors one page of list or search output.
type Listing struct {
	Items      []Entry `json:"items"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
	TotalItems int     `json:"total_items"`
}

// ReadRecipesFile reads and parses recipes.json from the data directory.
func (e *TestEnv) ReadRecipesFile() []Recipe {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.DataDir, "recipes.json"))
	if err != nil {
		e.t.Fatalf("failed to read recipes.json: %v", err)
	}
	return ParseJSON[[]Recipe](e.t, string(data))
}
