package validator

import (
	"strings"
	"testing"

	"github.com/rolfedh/adoctree/pkg/domain"
)

func TestCheckTree(t *testing.T) {
	// Scenario A: clean tree
	clean := &domain.Node{
		Name: "master.adoc",
		Children: []*domain.Node{
			{Name: "intro.adoc", BasePath: "/docs"},
		},
	}

	if err := CheckTree(clean, false); err != nil {
		t.Errorf("Scenario A (Clean) failed: %v", err)
	}

	// Scenario B: one of each defect
	broken := &domain.Node{
		Name: "master.adoc",
		Children: []*domain.Node{
			{Name: "ghost.adoc", BasePath: "/docs", Missing: true},
			{Name: "bad<path>.adoc", BasePath: "/docs", InvalidPath: true},
			{Name: "master.adoc", BasePath: "/docs", SelfRecursive: true},
		},
	}

	err := CheckTree(broken, false)
	if err == nil {
		t.Error("Scenario B (Broken) should have failed, but got nil")
	} else {
		if !strings.Contains(err.Error(), "found 3 problems") {
			t.Errorf("Expected 3 problems, got: %v", err)
		}
		if !strings.Contains(err.Error(), "nonexistent or unreadable: '/docs/ghost.adoc'") {
			t.Errorf("Expected missing report with joined path, got: %v", err)
		}
		if !strings.Contains(err.Error(), "forbidden path characters: 'bad<path>.adoc'") {
			t.Errorf("Expected invalid path report, got: %v", err)
		}
	}

	// Scenario C: commented defects stay quiet until requested
	commented := &domain.Node{
		Name: "master.adoc",
		Children: []*domain.Node{
			{Name: "ghost.adoc", BasePath: "/docs", Commented: true, Missing: true},
		},
	}

	if err := CheckTree(commented, false); err != nil {
		t.Errorf("Scenario C (Commented, excluded) failed: %v", err)
	}
	if err := CheckTree(commented, true); err == nil {
		t.Error("Scenario C (Commented, included) should have failed, but got nil")
	}
}
