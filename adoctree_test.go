package adoctree_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rolfedh/adoctree"
	"github.com/rolfedh/adoctree/pkg/ports"
)

var _ ports.TreeEngine = (*adoctree.Service)(nil)

func TestFacade_Integration(t *testing.T) {
	// 0. Setup temp docs
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.adoc"), []byte("include::c.adoc[]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	root := filepath.Join(dir, "a.adoc")
	if err := os.WriteFile(root, []byte("include::b.adoc[]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// 1. Test Initialization
	engine, err := adoctree.New(root)
	if err != nil {
		t.Fatalf("Failed to initialize engine with path %s: %v", root, err)
	}

	// 2. Resolve
	tree := engine.Resolve()
	if tree.Name != root {
		t.Errorf("Expected root name %q, got %q", root, tree.Name)
	}
	if len(tree.Children) != 1 || tree.Children[0].Name != "b.adoc" {
		t.Fatalf("Expected single child b.adoc, got %+v", tree.Children)
	}
	grandchildren := tree.Children[0].Children
	if len(grandchildren) != 1 {
		t.Fatalf("Expected single grandchild, got %+v", grandchildren)
	}
	if !grandchildren[0].Missing {
		t.Error("Expected grandchild c.adoc to be flagged missing")
	}

	// 3. Render
	var buf bytes.Buffer
	engine.Render(&buf)
	want := root + "\n" +
		"    b.adoc\n" +
		"        N! c.adoc\n"
	if buf.String() != want {
		t.Errorf("Render mismatch.\nGot:\n%s\nWant:\n%s", buf.String(), want)
	}
}

func TestFacade_ResolveIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "a.adoc")
	if err := os.WriteFile(root, []byte("ifdef::x[]\ninclude::b.adoc[]\nendif::[]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	engine, err := adoctree.New(root)
	if err != nil {
		t.Fatal(err)
	}

	var first, second bytes.Buffer
	engine.Render(&first)
	engine.Render(&second)
	if first.String() != second.String() {
		t.Errorf("Consecutive renders differ:\n%s\nvs:\n%s", first.String(), second.String())
	}
}

func TestNew_RequiresPath(t *testing.T) {
	if _, err := adoctree.New(""); err == nil {
		t.Error("Expected error when initializing without a root path")
	}
}

func TestService_ResolveTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "a.adoc")
	if err := os.WriteFile(root, []byte("//include::b.adoc[]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := &adoctree.Service{ShowCommented: true}
	tree, err := svc.ResolveTree(context.Background(), root)
	if err != nil {
		t.Fatalf("ResolveTree failed: %v", err)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("Expected one child, got %+v", tree.Children)
	}
	child := tree.Children[0]
	if !child.Commented || !child.Missing {
		t.Errorf("Expected commented+missing child when analysis is on, got %+v", child)
	}

	if _, err := svc.ResolveTree(context.Background(), ""); err == nil {
		t.Error("Expected error for empty path")
	}
}
