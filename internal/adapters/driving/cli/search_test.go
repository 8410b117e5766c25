package cli

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search the product catalog", searchCmd.Short)
}

func TestSearchCmd_Long(t *testing.T) {
	assert.Contains(t, searchCmd.Long, "not paginated")
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "search")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand(t, "search", "ryzen")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog not configured")
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", "ryzen")

	require.NoError(t, err)
	assert.Contains(t, out, "Ryzen 7 7800X3D")
	assert.Contains(t, out, "ThinkBook 14 G6")
	assert.Contains(t, out, `2 results for "ryzen"`)
	assert.NotContains(t, out, "Page ")
}

func TestSearchCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", "teapot")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_BlankQueryShowsCatalog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", "   ")

	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 1 (12 products)")
}

func TestSearchCmd_SortedByPrice(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", "ryzen", "--sort", "price", "--json")
	require.NoError(t, err)

	var listing listingView
	require.NoError(t, json.Unmarshal([]byte(out), &listing))

	assert.Equal(t, "search", listing.Mode)
	assert.Equal(t, "ryzen", listing.Query)
	assert.Nil(t, listing.Page)
	require.Len(t, listing.Products, 2)
	assert.Equal(t, "201", listing.Products[0].ID)
	assert.Equal(t, "101", listing.Products[1].ID)
}

func TestSearchCmd_PriceFilter(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "search", "ryzen", "--min", "0", "--max", "500", "--json")
	require.NoError(t, err)

	var listing listingView
	require.NoError(t, json.Unmarshal([]byte(out), &listing))

	require.Len(t, listing.Products, 1)
	assert.Equal(t, "Ryzen 7 7800X3D", listing.Products[0].Name)
	assert.Equal(t, "0.00-500.00", listing.Filter)
}

func TestSearchCmd_RecordsHistory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "search", "keyboard")
	require.NoError(t, err)

	out, err := executeCommand(t, "history")

	require.NoError(t, err)
	assert.Contains(t, out, "Recent searches:")
	assert.Contains(t, out, `"keyboard"`)
}
