package file_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolfedh/adoctree/internal/adapters/file"
	"github.com/rolfedh/adoctree/pkg/domain"
	"github.com/rolfedh/adoctree/pkg/ports"
)

func TestFileCache_Contract(t *testing.T) {
	cache := file.NewCache(filepath.Join(t.TempDir(), "cache"))

	ports.RunTreeCacheContract(t, cache)
}

func TestFileCache_KeysWithSeparators(t *testing.T) {
	ctx := context.Background()
	cache := file.NewCache(t.TempDir())

	key := "docs/guides/../master.adoc"
	require.NoError(t, cache.Set(ctx, key, &domain.Node{Name: "master.adoc"}))

	got, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "master.adoc", got.Name)
}

func TestFileCache_DefaultBasePath(t *testing.T) {
	cache := file.NewCache("")

	assert.Equal(t, filepath.Join(".adoctree", "cache"), cache.BasePath)
}
