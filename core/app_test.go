package core_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/livedirtree/treerelay/config"
	"github.com/livedirtree/treerelay/core"
	"github.com/livedirtree/treerelay/file_system"
	"github.com/stretchr/testify/require"
)

const game1 = `{"name":"Game1","timestamp":1000,"containers":[{"name":"Workspace","className":"Folder","children":[{"name":"Part1","className":"Part"}]}]}`

func postSync(t *testing.T, app *core.App, body string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func writeConfig(t *testing.T, home string, cfg *config.Config) {
	t.Helper()

	data, err := cfg.Export()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(home, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, config.ConfigFileName), data, 0o644))
}

func TestRestartRestoresSnapshot(t *testing.T) {
	for _, storeType := range []string{config.OptFile, config.OptBadger} {
		t.Run(storeType, func(t *testing.T) {
			r := require.New(t)
			home := t.TempDir()

			cfg := config.DefaultConfig()
			cfg.StoreCfg.Type = storeType
			if storeType == config.OptBadger {
				cfg.StoreCfg.Path = "db"
			}
			writeConfig(t, home, cfg)

			app, err := core.NewApp(home)
			r.NoError(err)
			r.Equal("Not connected", mustName(t, app))

			postSync(t, app, game1)
			r.NoError(app.Shutdown(context.Background()))

			app, err = core.NewApp(home)
			r.NoError(err)
			defer app.Shutdown(context.Background())

			r.JSONEq(game1, string(app.State().Snapshot().Bytes()))
			r.True(app.State().LastUpdate().IsZero())
		})
	}
}

func TestDefaultHomeUsesJSONFile(t *testing.T) {
	r := require.New(t)
	home := t.TempDir()

	app, err := core.NewApp(home, core.WithPort(30000))
	r.NoError(err)

	postSync(t, app, `{"name":"Saved"}`)
	r.NoError(app.Shutdown(context.Background()))

	data, err := os.ReadFile(filepath.Join(home, config.DefaultDataFile))
	r.NoError(err)
	r.JSONEq(`{"name":"Saved"}`, string(data))
}

func TestInvalidPortOverride(t *testing.T) {
	r := require.New(t)

	_, err := core.NewApp(t.TempDir(), core.WithPort(0))
	r.Error(err)
}

func TestLoadSnapshotFallsBack(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()

	missing := file_system.NewFileStore(filepath.Join(dir, "missing.json"))
	r.JSONEq(`{"name":"Not connected","timestamp":0,"containers":[]}`, string(core.LoadSnapshot(missing).Bytes()))

	corrupt := filepath.Join(dir, "corrupt.json")
	r.NoError(os.WriteFile(corrupt, []byte("{not json"), 0o644))
	r.JSONEq(`{"name":"Not connected","timestamp":0,"containers":[]}`, string(core.LoadSnapshot(file_system.NewFileStore(corrupt)).Bytes()))

	good := filepath.Join(dir, "good.json")
	r.NoError(os.WriteFile(good, []byte(game1), 0o644))
	r.JSONEq(game1, string(core.LoadSnapshot(file_system.NewFileStore(good)).Bytes()))
}

func TestSyncSurvivesUnwritableStore(t *testing.T) {
	r := require.New(t)
	home := t.TempDir()

	// the store directory is a regular file, so every save fails
	r.NoError(os.WriteFile(filepath.Join(home, "blocker"), []byte("x"), 0o644))

	cfg := config.DefaultConfig()
	cfg.StoreCfg.Path = filepath.Join("blocker", "tree-data.json")
	writeConfig(t, home, cfg)

	app, err := core.NewApp(home)
	r.NoError(err)
	r.Equal("Not connected", mustName(t, app))

	postSync(t, app, game1)
	r.Equal("Game1", mustName(t, app))

	r.NoError(app.Shutdown(context.Background()))

	_, err = os.Stat(filepath.Join(home, "blocker", "tree-data.json"))
	r.Error(err)
}

func mustName(t *testing.T, app *core.App) string {
	name, ok := app.State().Snapshot().Name()
	require.True(t, ok)
	return name
}
