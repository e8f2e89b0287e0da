package ports

import (
	"context"
	"testing"
	"time"

	"github.com/rolfedh/adoctree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTreeCacheContract runs a suite of tests to verify that a TreeCache
// implementation adheres to the defined interface contract.
func RunTreeCacheContract(t *testing.T, cache TreeCache) {
	ctx := context.Background()
	key := "contract-test-tree-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		tree := &domain.Node{
			Name: "a.adoc",
			Children: []*domain.Node{
				{Name: "b.adoc", Missing: true, Conditions: []string{"ifdef::flag"}},
			},
		}

		err := cache.Set(ctx, key, tree)
		require.NoError(t, err, "Set should not return error")

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, "a.adoc", loaded.Name)
		require.Len(t, loaded.Children, 1)
		assert.True(t, loaded.Children[0].Missing)
		assert.Equal(t, []string{"ifdef::flag"}, loaded.Children[0].Conditions)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, &domain.Node{Name: "first.adoc"}))
		require.NoError(t, cache.Set(ctx, key, &domain.Node{Name: "second.adoc"}))

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "second.adoc", loaded.Name)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, &domain.Node{Name: "a.adoc"}))

		err := cache.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, key), "deleting an absent key should stay quiet")
	})
}
