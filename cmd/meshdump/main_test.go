package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planeviz/internal/meshing"
)

func TestRunSphereToStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"-slices", "6", "-stacks", "3"}, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "o sphere\n") {
		t.Fatalf("missing object line: %q", out[:min(len(out), 40)])
	}
	// 2 + 6*(3-1) vertices, 6*6*(3-1)/3 faces
	if got := strings.Count(out, "\nv "); got != 14 {
		t.Errorf("vertices: got %d", got)
	}
	if got := strings.Count(out, "\nf "); got != 24 {
		t.Errorf("faces: got %d", got)
	}
}

func TestRunWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := run([]string{"-shape", "quad", "-o", path}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "o quad\n") {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	if err := run([]string{"-slices", "2"}, &bytes.Buffer{}); !errors.Is(err, meshing.ErrInvalidParameter) {
		t.Errorf("slices=2: got %v", err)
	}
	if err := run([]string{"-shape", "torus"}, &bytes.Buffer{}); err == nil {
		t.Error("unknown shape should fail")
	}
}
