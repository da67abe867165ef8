package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yourusername/roomchat/internal/client/media"
	"github.com/yourusername/roomchat/internal/config"
	"github.com/yourusername/roomchat/internal/logging"
	"github.com/yourusername/roomchat/internal/protocol"
	"github.com/yourusername/roomchat/internal/room"
	"github.com/yourusername/roomchat/internal/storage"
)

// globalFlags are the persistent flags shared by every command; empty values
// leave the configured value alone
type globalFlags struct {
	configPath string
	seed       string
	storage    string
	dataDir    string
	key        string
	logLevel   string
	ephemeral  bool
}

func (f *globalFlags) apply(cfg *config.Config) {
	if f.seed != "" {
		cfg.SeedPath = f.seed
	}
	if f.storage != "" {
		cfg.Storage = f.storage
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.key != "" {
		cfg.StorageKey = f.key
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.ephemeral {
		cfg.Ephemeral = true
	}
}

// app is everything a command needs: config, logger, seed room and the store
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	result  protocol.Result
	slot    storage.Slot
	repo    *storage.Repository
	store   *room.Store
	closers []io.Closer
}

// bootstrap wires the app. When logToFile is false logs are discarded,
// which keeps stdout clean for the print commands.
func bootstrap(flags *globalFlags, logToFile bool) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	a := &app{cfg: cfg}

	var sink io.Writer = io.Discard
	if logToFile {
		f, err := logging.OpenFile(cfg.DataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		} else {
			sink = f
			a.closers = append(a.closers, f)
		}
	}
	a.log = logging.New(sink, cfg.LogLevel, "")

	dataset, err := loadDataset(cfg.SeedPath)
	if err != nil {
		a.close()
		return nil, err
	}
	a.result, err = dataset.First()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	backend := cfg.Backend()
	a.slot, err = storage.Open(backend, cfg.DataDir)
	if err != nil {
		a.log.Warn().Err(err).Str("backend", backend).Msg("storage_unavailable_using_memory")
		backend = storage.BackendMemory
		a.slot = storage.NewMemorySlot()
	}
	a.closers = append([]io.Closer{a.slot}, a.closers...)

	a.repo = storage.NewRepository(a.slot, cfg.StorageKey, a.log.With().Str("component", "storage").Logger())
	a.store = room.New(a.result.Room, a.result.Comments, a.repo,
		room.WithLogger(a.log.With().Str("component", "room").Logger()),
		room.WithFallbackSender(cfg.FallbackSender),
	)

	a.log.Info().
		Str("room", a.result.Room.Name).
		Int("participants", len(a.result.Room.Participants)).
		Str("backend", backend).
		Str("key", cfg.StorageKey).
		Msg("app_started")
	return a, nil
}

func (a *app) prober() media.Prober {
	if a.cfg.ImageProbe == config.ProbeHTTP {
		return media.NewHTTPProber(0)
	}
	return media.URLProber{}
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close_failed")
		}
	}
	a.closers = nil
}

func loadDataset(path string) (*protocol.Dataset, error) {
	if path == "" {
		return protocol.DefaultDataset()
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	ds, err := protocol.LoadDatasetFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return ds, nil
}
