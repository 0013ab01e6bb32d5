package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	coreagg "github.com/aevon-lab/groupby/internal/core/aggregation"
	corecfg "github.com/aevon-lab/groupby/internal/core/config"
	"github.com/aevon-lab/groupby/internal/grouping"
	"github.com/aevon-lab/groupby/internal/records"
	"github.com/aevon-lab/groupby/internal/server"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "groupby.yaml", "Path to configuration file")
	ruleName := flag.String("rule", "", "Evaluate this rule once against -input and exit")
	inputPath := flag.String("input", "", "Records file (.json, .jsonl, .yaml) for -rule")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	slog.SetDefault(newLogger(cfg.Log, os.Stderr))
	slog.Info("Loaded config",
		"rules_dir", cfg.RuleLoading.ConfigDir,
		"rules", len(cfg.RuleLoading.Rules),
		"mode", cfg.Server.Mode,
	)

	repo := coreagg.NewInMemoryRuleRepository(cfg.RuleLoading.Rules...)
	svc := grouping.NewService(repo, cfg.Server.MaxBodySizeMB)

	// 3. One-shot evaluation
	if *ruleName != "" {
		if err := runOnce(svc, *ruleName, *inputPath, os.Stdout); err != nil {
			slog.Error("Evaluation failed", "rule", *ruleName, "input", *inputPath, "error", err)
			os.Exit(1)
		}
		return
	}

	// 4. Serve
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), cfg.Server.Mode, func() int {
		return len(cfg.RuleLoading.Rules)
	})
	svc.RegisterRoutes(srv.Engine)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Signal received, shutting down...")
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}

func runOnce(svc *grouping.Service, ruleName, inputPath string, out io.Writer) error {
	if inputPath == "" {
		return fmt.Errorf("-input is required with -rule")
	}
	recs, err := records.ReadFile(inputPath)
	if err != nil {
		return err
	}
	res, err := svc.EvaluateRule(context.Background(), ruleName, recs)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func newLogger(cfg corecfg.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
