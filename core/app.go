package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/livedirtree/treerelay/api"
	"github.com/livedirtree/treerelay/config"
	"github.com/livedirtree/treerelay/file_system"
	"github.com/livedirtree/treerelay/monitoring"
	"github.com/livedirtree/treerelay/tree"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	cfg    *config.Config
	home   string
	state  *tree.State
	store  file_system.Store
	writer *file_system.Writer
	api    *api.API
	pprof  *monitoring.PProf
}

type Option func(*App)

// WithPort overrides the port from the config file.
func WithPort(port int64) Option {
	return func(app *App) {
		app.cfg.APICfg.Port = port
	}
}

// NewApp loads the config from home, opens the snapshot store and restores
// the last saved snapshot.
func NewApp(home string, opts ...Option) (*App, error) {
	cfg, err := config.Init(home)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:  cfg,
		home: home,
	}

	for _, opt := range opts {
		opt(app)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := OpenStore(cfg, home)
	if err != nil {
		return nil, err
	}

	app.store = store
	app.state = tree.NewState(LoadSnapshot(store))
	app.writer = file_system.NewWriter(store)
	app.api = api.NewAPI(cfg, app.state, app.writer)

	if cfg.PProfAddr != "" {
		app.pprof = monitoring.NewPProf(cfg.PProfAddr)
	}

	return app, nil
}

// OpenStore builds the store selected by the config.
func OpenStore(cfg *config.Config, home string) (file_system.Store, error) {
	p := cfg.StorePath(home)

	switch cfg.StoreCfg.Type {
	case config.OptBadger:
		return file_system.NewBadgerStore(p)
	case config.OptFile:
		return file_system.NewFileStore(p), nil
	}

	return nil, fmt.Errorf("invalid store type %q", cfg.StoreCfg.Type)
}

// LoadSnapshot returns the persisted snapshot, or the placeholder when there
// is none or it cannot be read.
func LoadSnapshot(store file_system.Store) *tree.Snapshot {
	data, err := store.Load()
	if err != nil {
		if !errors.Is(err, file_system.ErrNoSnapshot) {
			log.Error().Err(err).Msg("Failed to load tree")
		}
		return tree.Placeholder()
	}

	snap, err := tree.Parse(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load tree")
		return tree.Placeholder()
	}

	log.Info().Msg("Loaded existing tree data")
	return snap
}

func (a *App) State() *tree.State {
	return a.state
}

func (a *App) Handler() http.Handler {
	return a.api.Handler()
}

// Start serves until SIGINT/SIGTERM or until the listener fails, then shuts
// down.
func (a *App) Start() error {
	a.writer.Start()

	if a.pprof != nil {
		a.pprof.Start()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.api.Serve()
	}()

	a.printBanner()

	done := make(chan os.Signal, 1)
	defer signal.Stop(done) // undo signal.Notify effect

	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	var err error
	select {
	case <-done: // Will block here until user hits ctrl+c
	case err = <-serveErr:
	}

	fmt.Println("\nShutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(err, a.Shutdown(ctx))
}

// Shutdown drains the HTTP server, writes the current snapshot one last time
// and closes the store. A failed save is logged, not returned.
func (a *App) Shutdown(ctx context.Context) error {
	apiErr := a.api.Shutdown(ctx)

	a.writer.Stop()
	_ = a.writer.Flush(a.state.Snapshot().Bytes())

	var pprofErr error
	if a.pprof != nil {
		pprofErr = a.pprof.Stop(ctx)
	}

	storeErr := a.store.Close()

	log.Info().Msg("Server closed.")
	return errors.Join(apiErr, pprofErr, storeErr)
}

func (a *App) printBanner() {
	port := a.cfg.APICfg.Port
	fmt.Printf(`
Live Directory Tree Server %s
  Server running on: http://localhost:%d

  Endpoints:
    GET  /ping      - Health check
    POST /sync      - Receive tree from Roblox
    GET  /tree      - Get tree as JSON
    GET  /tree/text - Get tree as plain text
    GET  /status    - Connection status
    GET  /          - Debug web UI

  Waiting for Roblox Studio connection...

`, config.Version(), port)
}
