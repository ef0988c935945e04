package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/brainsacos-ui/asistente-linux/internal/domain/qa"
	"github.com/brainsacos-ui/asistente-linux/internal/infra/config"
	"github.com/brainsacos-ui/asistente-linux/internal/infra/corpus"
	"github.com/brainsacos-ui/asistente-linux/internal/infra/stats"
)

func provideQAConfig(cfg *config.Config) qa.Config {
	return qa.Config{
		FuzzyThreshold:     cfg.Matcher.FuzzyThreshold,
		TopRecommendations: cfg.Matcher.TopRecommendations,
	}
}

// provideCorpus loads the question/answer pairs. Postgres wins when a DSN is
// configured, then the YAML file; every failure falls through to the next
// source so the assistant always starts with a usable corpus.
func provideCorpus(cfg *config.Config, logger *slog.Logger) []qa.Entry {
	if dsn := strings.TrimSpace(cfg.Corpus.Postgres.DSN); dsn != "" {
		entries, err := loadPostgresCorpus(cfg, dsn)
		if err != nil {
			logger.Error("postgres corpus unavailable, falling back", "error", err)
		} else {
			logger.Info("corpus loaded from postgres", "entries", len(entries))
			return entries
		}
	}

	if path := strings.TrimSpace(cfg.Corpus.FilePath); path != "" {
		entries, err := corpus.LoadFile(path)
		if err != nil {
			logger.Error("corpus file unavailable, using built-in default", "path", path, "error", err)
		} else {
			logger.Info("corpus loaded from file", "path", path, "entries", len(entries))
			return entries
		}
	}

	entries := corpus.Default()
	logger.Info("using built-in default corpus", "entries", len(entries))
	return entries
}

func loadPostgresCorpus(cfg *config.Config, dsn string) ([]qa.Entry, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.Corpus.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Corpus.Postgres.MaxConns
	}
	if cfg.Corpus.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Corpus.Postgres.MinConns
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return corpus.NewPostgresSource(pool).Load(ctx)
}

func provideStore(cfg *config.Config, logger *slog.Logger) qa.Store {
	if cfg.Stats.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return stats.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return stats.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			client.Close()
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey stats store enabled", "addr", cfg.Stats.Valkey.Addr)
			return stats.NewValkeyStore(client, cfg.Stats.Valkey.Prefix)
		}
	}
	return stats.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Stats.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Stats.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Stats.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
