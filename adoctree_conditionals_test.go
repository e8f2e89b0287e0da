package adoctree_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rolfedh/adoctree"
)

// Conditional directives are tracked for annotation only; they are never
// evaluated, so includes inside an ifdef body always appear in the tree.
func TestFacade_ConditionalAnnotations(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "included.adoc"), []byte("text\n"), 0644); err != nil {
		t.Fatal(err)
	}
	root := filepath.Join(dir, "a.adoc")
	content := strings.Join([]string{
		"ifdef::product[]",
		"ifndef::internal[]",
		"include::included.adoc[]",
		"endif::[]",
		"endif::[]",
		"include::included.adoc[]",
		"",
	}, "\n")
	if err := os.WriteFile(root, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	engine, err := adoctree.New(root)
	if err != nil {
		t.Fatal(err)
	}

	tree := engine.Resolve()
	if len(tree.Children) != 2 {
		t.Fatalf("Expected two children, got %+v", tree.Children)
	}

	guarded := tree.Children[0]
	wantConds := []string{"ifdef::product", "ifndef::internal"}
	if len(guarded.Conditions) != len(wantConds) {
		t.Fatalf("Expected conditions %v, got %v", wantConds, guarded.Conditions)
	}
	for i, want := range wantConds {
		if guarded.Conditions[i] != want {
			t.Errorf("Condition %d: expected %q, got %q", i, want, guarded.Conditions[i])
		}
	}

	unguarded := tree.Children[1]
	if len(unguarded.Conditions) != 0 {
		t.Errorf("Expected no conditions after the endif pair, got %v", unguarded.Conditions)
	}

	var buf bytes.Buffer
	engine.Render(&buf)
	if !strings.Contains(buf.String(), "?? ifdef::product ifndef::internal") {
		t.Errorf("Expected condition annotation line, got:\n%s", buf.String())
	}
}
