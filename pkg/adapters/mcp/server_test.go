package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolfedh/adoctree"
)

func TestHandleResolveTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "master.adoc")
	require.NoError(t, os.WriteFile(root, []byte("include::ghost.adoc[]\n"), 0644))

	srv := NewServer(&adoctree.Service{})

	resp, err := srv.handleResolveTree(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"root": root,
	})
	require.NoError(t, err)
	assert.Equal(t, root, resp.Root.Name)
	assert.Equal(t, 1, resp.Problems)
	if assert.Len(t, resp.Root.Children, 1) {
		assert.True(t, resp.Root.Children[0].Missing)
	}
}

func TestHandleResolveTree_BadArguments(t *testing.T) {
	srv := NewServer(&adoctree.Service{})

	_, err := srv.handleResolveTree(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"root": 42,
	})
	assert.Error(t, err)
}

func TestResolveRequiresRoot(t *testing.T) {
	srv := NewServer(&adoctree.Service{})

	_, err := srv.resolve(context.Background(), "")
	assert.Error(t, err)
}

func TestResolveDefaultRoot(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "master.adoc")
	require.NoError(t, os.WriteFile(root, []byte("plain text\n"), 0644))

	srv := NewServer(&adoctree.Service{}, WithDefaultRoot(root))

	node, err := srv.resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, root, node.Name)
	assert.Empty(t, node.Children)
}
