// Command buffcalc computes derived attack and damage stats for a build.
//
// Usage:
//
//	buffcalc calc [-s0 BLOB | -url URL | -file state.json] [-json]
//	buffcalc encode [-file state.json] [-base URL]
//	buffcalc decode (-s0 BLOB | -url URL)
//	buffcalc compare BLOB BLOB...
//	buffcalc tables [-ignore-weak]
//	buffcalc save -name NAME (-s0 BLOB | -file state.json)
//	buffcalc show -id FINGERPRINT [-json]
//	buffcalc list [-limit N]
//	buffcalc delete -id FINGERPRINT
//
// Config is read from config/buffcalc.yaml (override with BUFFCALC_CONFIG).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/udisondev/buffcalc/internal/config"
	"github.com/udisondev/buffcalc/internal/data"
)

const ConfigPath = "config/buffcalc.yaml"

var errUsage = errors.New("usage")

type command struct {
	desc  string
	needs needs
	run   func(ctx context.Context, env *env, args []string) error
}

type needs uint8

const (
	needsNothing needs = iota
	needsDB
)

var commands = map[string]command{
	"calc":    {desc: "compute derived stats for a state", run: runCalc},
	"encode":  {desc: "encode a JSON state into an s0 blob", run: runEncode},
	"decode":  {desc: "decode an s0 blob into JSON", run: runDecode},
	"compare": {desc: "compare derived stats of several blobs", run: runCompare},
	"tables":  {desc: "print the static stat tables", run: runTables},
	"save":    {desc: "save a build to the database", needs: needsDB, run: runSave},
	"show":    {desc: "show a saved build", needs: needsDB, run: runShow},
	"list":    {desc: "list saved builds", needs: needsDB, run: runList},
	"delete":  {desc: "delete a saved build", needs: needsDB, run: runDelete},
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	cfgPath := ConfigPath
	if p := os.Getenv("BUFFCALC_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if err := data.LoadTables(); err != nil {
		return fmt.Errorf("loading stat tables: %w", err)
	}

	e, err := newEnv(cfg, stdin, stdout)
	if err != nil {
		return err
	}

	if cmd.needs == needsDB {
		if err := e.openDB(ctx); err != nil {
			return err
		}
		defer e.close()
	}

	return cmd.run(ctx, e, args[1:])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: buffcalc <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].desc)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
