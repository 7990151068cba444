package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
indent_size?: int & >0
graph_direction?: "TD" | "LR" | "BT" | "RL"
keywords?: [...string]
`

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoaderAssignFirst(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"minic.cue": `
indent_size: 4
keywords: ["var", "if"]
`,
	})
	loader := NewLoader([]string{filepath.Join(dir, "minic.cue")}, testSchema)

	var size int
	if err := loader.AssignFirst("indent_size", &size); err != nil {
		t.Fatal(err)
	}
	if size != 4 {
		t.Fatalf("got %d", size)
	}

	var keywords []string
	if err := loader.AssignFirst("keywords", &keywords); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", keywords); str != "[var if]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("graph_direction", &keywords)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.cue": `graph_direction: "LR"`,
		"b.cue": `graph_direction: "TD"`,
		"c.cue": `indent_size: 2`,
	})
	loader := NewLoader([]string{
		filepath.Join(dir, "a.cue"),
		filepath.Join(dir, "b.cue"),
		filepath.Join(dir, "c.cue"),
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("graph_direction") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[LR TD]" {
		t.Fatalf("got %s", str)
	}

	if dir := First[string](loader, "graph_direction"); dir != "LR" {
		t.Fatalf("got %s", dir)
	}
	if n := First[int](loader, "indent_size"); n != 2 {
		t.Fatalf("got %d", n)
	}
}

func TestUnknownField(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.cue": `unknown_field: "foo"`,
	})
	loader := NewLoader([]string{filepath.Join(dir, "bad.cue")}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestSchemaViolation(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.cue": `graph_direction: "UP"`,
	})
	loader := NewLoader([]string{filepath.Join(dir, "bad.cue")}, testSchema)
	var str string
	if err := loader.AssignFirst("graph_direction", &str); err == nil {
		t.Fatal("should error")
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, "")
	if n := First[int](loader, "indent_size"); n != 0 {
		t.Fatalf("got %d", n)
	}
}
