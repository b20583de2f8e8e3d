package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"usecart"
	"usecart/internal/config"
	"usecart/internal/httpc"
	"usecart/internal/logger"
	"usecart/internal/repository"
	jsonfile "usecart/internal/repository/json"
	"usecart/responses"
)

func main() {
	var (
		configPath = flag.String("config", "./config/config.yaml", "path to config.yaml")
		keyword    = flag.String("keyword", "", "override search keyword (optional)")
		domain     = flag.String("domain", "", "override store domain (optional)")
		outputFile = flag.String("out", "", "override output file (optional)")
	)
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "stores-search"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
		Env:       cfg.Env,
	})
	slog.SetDefault(log)

	// overrides
	if *keyword != "" {
		cfg.CLI.Keyword = *keyword
	}
	if *domain != "" {
		cfg.CLI.Domain = *domain
	}
	if *outputFile != "" {
		cfg.CLI.OutputFile = *outputFile
	}

	if cfg.Cart.APIKey == "" {
		log.Error("cart.api_key must be set in config.yaml")
		os.Exit(1)
	}

	httpClient, err := buildHTTPClient(cfg)
	if err != nil {
		log.Error("build http client failed", "err", err)
		os.Exit(1)
	}

	cart, err := usecart.New(cfg.Cart.APIKey, usecart.Options{
		BaseURL:    cfg.Cart.BaseURL,
		HTTPClient: httpClient,
		Logger:     log,
	})
	if err != nil {
		log.Error("build client failed", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
	defer cancel()

	resp, qmeta, err := run(ctx, cart, command, cfg)
	if err != nil {
		log.Error("command failed", "command", command, "err", err)
		os.Exit(1)
	}

	res := repository.FetchResult{
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Query:     qmeta,
		Data:      resp.Data,
		Meta:      resp.Meta,
		Usage:     resp.Usage,
		RateLimit: cart.RateLimit(),
	}

	repo := jsonfile.New(cfg.CLI.OutputFile, log)
	if err := repo.Save(ctx, res); err != nil {
		log.Error("save json failed", "err", err)
		os.Exit(1)
	}

	log.Info("done",
		"command", command,
		"request_id", resp.Meta.RequestID,
		"total_results", resp.Meta.TotalResults,
		"output", cfg.CLI.OutputFile,
	)
}

func run(ctx context.Context, cart *usecart.Cart, command string, cfg *config.Config) (*responses.APIResponse, repository.QueryMeta, error) {
	qmeta := repository.QueryMeta{Command: command}

	switch command {
	case "stores-search":
		if cfg.CLI.Keyword == "" {
			return nil, qmeta, fmt.Errorf("keyword must not be empty (set in config.yaml or via -keyword)")
		}
		qmeta.Keyword = cfg.CLI.Keyword
		resp, err := cart.Stores.Search(ctx, &usecart.StoreSearchParams{
			Keyword: usecart.String(cfg.CLI.Keyword),
			PerPage: usecart.Int(cfg.CLI.PerPage),
		})
		return resp, qmeta, err

	case "store-get":
		if cfg.CLI.Domain == "" {
			return nil, qmeta, fmt.Errorf("domain must not be empty (set in config.yaml or via -domain)")
		}
		qmeta.Domain = cfg.CLI.Domain
		resp, err := cart.Stores.Get(ctx, cfg.CLI.Domain)
		return resp, qmeta, err

	case "trending":
		resp, err := cart.Trending(ctx, &usecart.TrendingParams{
			PerPage: usecart.Int(cfg.CLI.PerPage),
		})
		return resp, qmeta, err

	case "account":
		resp, err := cart.Account(ctx)
		return resp, qmeta, err

	default:
		return nil, qmeta, fmt.Errorf("unknown command %q (expected stores-search|store-get|trending|account)", command)
	}
}

func buildHTTPClient(cfg *config.Config) (*http.Client, error) {
	timeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second

	if cfg.HTTP.ProxyURL == "" {
		return httpc.New(timeout), nil
	}

	u, err := url.Parse(cfg.HTTP.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("bad proxy_url: %w", err)
	}
	return httpc.NewWithProxy(timeout, u), nil
}
