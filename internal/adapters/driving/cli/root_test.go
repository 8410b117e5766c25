package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/core/services"
)

// setupTestServices wires commands to the sample catalog with in-memory
// settings and history. It returns a cleanup function.
func setupTestServices() func() {
	catalog, err := memory.NewSampleCatalog()
	if err != nil {
		panic(err)
	}
	history := memory.NewHistoryStore()

	SetServices(&Services{
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		Products: services.NewProductService(catalog),
		History:  services.NewHistoryService(history, 0),
		NewBrowser: func(settings domain.CatalogSettings) driving.CatalogBrowser {
			r := services.NewReconciler(catalog, catalog, settings)
			r.SetHistoryStore(history)
			return r
		},
	})

	return func() {
		SetServices(nil)
	}
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "storefront", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"api-url", "config-dir", "offline", "catalog-file", "latency", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"browse", "search", "categories", "product", "history", "settings", "tui", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestSetServices_Nil(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	SetServices(nil)

	assert.Nil(t, settingsService)
	assert.Nil(t, productService)
	assert.Nil(t, historyService)
	assert.Nil(t, newBrowser)
}

func TestBootstrap_ReceivesOptions(t *testing.T) {
	defer SetBootstrap(nil)
	defer SetServices(nil)

	var got Options
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		return &Services{}, nil
	})

	_, err := executeCommand(t, "--offline", "--api-url", "http://example.test/api", "version")

	require.NoError(t, err)
	assert.True(t, got.Offline)
	assert.Equal(t, "http://example.test/api", got.APIURL)
}

func TestBootstrap_Error(t *testing.T) {
	defer SetBootstrap(nil)

	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("no config dir")
	})

	_, err := executeCommand(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialise")
	assert.Contains(t, err.Error(), "no config dir")
}

func TestBootstrap_CatalogFileRequiresOffline(t *testing.T) {
	defer SetBootstrap(nil)

	called := false
	SetBootstrap(func(Options) (*Services, error) {
		called = true
		return &Services{}, nil
	})

	_, err := executeCommand(t, "--catalog-file", "catalog.yaml", "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--catalog-file requires --offline")
	assert.False(t, called)
}

func TestBootstrap_Latency(t *testing.T) {
	defer SetBootstrap(nil)
	defer SetServices(nil)

	var got Options
	calls := 0
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		calls++
		return &Services{}, nil
	})

	_, err := executeCommand(t, "--offline", "--latency", "250ms", "version")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, got.Latency)

	_, err = executeCommand(t, "--latency", "250ms", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--latency requires --offline")

	_, err = executeCommand(t, "--offline", "--latency=-1s", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
	assert.Equal(t, 1, calls)
}

func TestExecute_ClosesServices(t *testing.T) {
	defer SetServices(nil)

	closed := 0
	SetServices(&Services{Close: func() error {
		closed++
		return nil
	}})

	resetFlags(rootCmd)
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	err := Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, closed)
}

func TestExecute_CloseErrorIsNotFatal(t *testing.T) {
	defer SetServices(nil)

	SetServices(&Services{Close: func() error { return errors.New("locked") }})

	resetFlags(rootCmd)
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	assert.NoError(t, Execute(context.Background()))
}

func TestCatalogSettings_Defaults(t *testing.T) {
	SetServices(nil)

	assert.Equal(t, domain.DefaultAppSettings().Catalog, catalogSettings())
}

func TestCatalogSettings_FromService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, settingsService.Set("catalog.page_size", "7"))

	assert.Equal(t, 7, catalogSettings().PageSize)
}
