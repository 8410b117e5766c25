package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui"
)

func TestTUICmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})

	require.NoError(t, err)
	assert.Equal(t, "tui", cmd.Use)
	assert.Contains(t, cmd.Long, "every match while a search")
	assert.Contains(t, cmd.Long, "Previous / next page")
}

func TestRunTUI_NoBrowser(t *testing.T) {
	SetServices(nil)

	err := runTUI(tuiCmd, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, tui.ErrMissingCatalogBrowser)
}
