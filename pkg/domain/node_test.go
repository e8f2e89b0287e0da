package domain_test

import (
	"testing"

	"github.com/rolfedh/adoctree/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestNodeTags(t *testing.T) {
	tests := []struct {
		name string
		node domain.Node
		want string
	}{
		{"no flags", domain.Node{Name: "a.adoc"}, ""},
		{"commented only", domain.Node{Commented: true}, "//"},
		{"missing only", domain.Node{Missing: true}, "N!"},
		{"commented missing", domain.Node{Commented: true, Missing: true}, "//N!"},
		{
			"all flags keep fixed order",
			domain.Node{Commented: true, SelfRecursive: true, InvalidPath: true, Missing: true},
			"//R!X!N!",
		},
		{"recursive invalid", domain.Node{SelfRecursive: true, InvalidPath: true}, "R!X!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Tags())
		})
	}
}

func TestNodeFlagged(t *testing.T) {
	assert.False(t, (&domain.Node{}).Flagged())
	assert.False(t, (&domain.Node{Commented: true}).Flagged(), "commented is a state, not a defect")
	assert.True(t, (&domain.Node{Missing: true}).Flagged())
	assert.True(t, (&domain.Node{SelfRecursive: true}).Flagged())
	assert.True(t, (&domain.Node{InvalidPath: true}).Flagged())
}

func TestActiveConditionsFiltersFences(t *testing.T) {
	n := &domain.Node{
		Conditions: []string{"ifdef::flag", "////", "ifndef::internal", "//////"},
	}
	assert.Equal(t, []string{"ifdef::flag", "ifndef::internal"}, n.ActiveConditions())

	empty := &domain.Node{Conditions: []string{"////"}}
	assert.Nil(t, empty.ActiveConditions())
}

func TestWalkPreOrder(t *testing.T) {
	//    root
	//    ├── a
	//    │   └── a1
	//    └── b
	a1 := &domain.Node{Name: "a1"}
	a := &domain.Node{Name: "a", Children: []*domain.Node{a1}}
	b := &domain.Node{Name: "b"}
	root := &domain.Node{Name: "root", Children: []*domain.Node{a, b}}

	var names []string
	var depths []int
	root.Walk(func(n *domain.Node, depth int) {
		names = append(names, n.Name)
		depths = append(depths, depth)
	})

	assert.Equal(t, []string{"root", "a", "a1", "b"}, names)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
}
