package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/udisondev/buffcalc/internal/calc"
	"github.com/udisondev/buffcalc/internal/config"
	"github.com/udisondev/buffcalc/internal/db"
	"github.com/udisondev/buffcalc/internal/model"
	"github.com/udisondev/buffcalc/internal/state"
)

// env carries the per-invocation dependencies of a command.
type env struct {
	cfg    config.Calculator
	opts   calc.Options
	stdin  io.Reader
	stdout io.Writer

	database *db.DB
}

func newEnv(cfg config.Calculator, stdin io.Reader, stdout io.Writer) (*env, error) {
	mode, err := calc.ParseParseMode(cfg.ParseMode)
	if err != nil {
		return nil, fmt.Errorf("config parse_mode: %w", err)
	}
	return &env{
		cfg:    cfg,
		opts:   calc.Options{Mode: mode},
		stdin:  stdin,
		stdout: stdout,
	}, nil
}

func (e *env) openDB(ctx context.Context) error {
	dsn := e.cfg.Database.DSN()
	database, err := db.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	slog.Debug("database connected", "host", e.cfg.Database.Host, "dbname", e.cfg.Database.DBName)

	if err := db.RunMigrations(ctx, dsn); err != nil {
		database.Close()
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Debug("database migrations applied")

	e.database = database
	return nil
}

func (e *env) close() {
	if e.database != nil {
		e.database.Close()
	}
}

// stateSource describes where a command reads its state from.
// At most one field is set; none means the default state.
type stateSource struct {
	blob   string
	rawURL string
	file   string
}

func (e *env) loadState(src stateSource) (model.State, error) {
	switch {
	case src.blob != "":
		st, err := state.Decode(src.blob)
		if err != nil {
			return model.State{}, fmt.Errorf("decoding s0: %w", err)
		}
		return st, nil

	case src.rawURL != "":
		u, err := url.Parse(src.rawURL)
		if err != nil {
			return model.State{}, fmt.Errorf("parsing url: %w", err)
		}
		st, found, err := state.FromQuery(u.Query())
		if err != nil {
			return model.State{}, fmt.Errorf("decoding %s from url: %w", state.QueryParam, err)
		}
		if !found {
			slog.Info("url has no state parameter, using defaults", "param", state.QueryParam)
		}
		return st, nil

	case src.file != "":
		var raw []byte
		var err error
		if src.file == "-" {
			raw, err = io.ReadAll(e.stdin)
		} else {
			raw, err = os.ReadFile(src.file)
		}
		if err != nil {
			return model.State{}, fmt.Errorf("reading state %s: %w", src.file, err)
		}
		st, err := state.Unmarshal(raw)
		if err != nil {
			return model.State{}, fmt.Errorf("parsing state %s: %w", src.file, err)
		}
		return st, nil

	default:
		return model.DefaultState(), nil
	}
}
