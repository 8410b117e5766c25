package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)


func writeFixture(t *testing.T, path, name string) {
	t.Helper()
	data := []byte("products:\n  - id: \"1\"\n    name: " + name + "\n    price: \"5.00\"\n")
	require.NoError(t, os.WriteFile(path, data, 0600))
}

func TestCatalog_Replace(t *testing.T) {
	c := NewCatalog([]domain.Product{{ID: "1", Name: "old"}}, nil)
	c.Replace(NewCatalog([]domain.Product{{ID: "1", Name: "new"}}, []domain.Category{{ID: "9"}}))

	p, err := c.GetProduct(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "new", p.Name)

	cats, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestCatalog_WatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFixture(t, path, "Before")

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 8)
	require.NoError(t, c.Watch(ctx, path, func() { reloaded <- struct{}{} }))

	writeFixture(t, path, "After")

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("catalog was not reloaded")
	}

	assert.Eventually(t, func() bool {
		p, err := c.GetProduct(context.Background(), "1")
		return err == nil && p.Name == "After"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestCatalog_WatchKeepsContentsOnBadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFixture(t, path, "Stable")

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Watch(ctx, path, nil))

	// Replace atomically so no truncated intermediate is observed.
	tmp := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(tmp, []byte("products: [\n"), 0600))
	require.NoError(t, os.Rename(tmp, path))
	time.Sleep(200 * time.Millisecond)

	p, err := c.GetProduct(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Stable", p.Name)
}

func TestCatalog_WatchMissingDirectory(t *testing.T) {
	c := NewCatalog(nil, nil)

	err := c.Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "catalog.yaml"), nil)

	assert.Error(t, err)
}
