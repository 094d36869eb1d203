package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/infrastructure/config"
	"github.com/tesso57/headlines/internal/infrastructure/feed"
	"github.com/tesso57/headlines/internal/infrastructure/history"
	"github.com/tesso57/headlines/internal/infrastructure/imageloader"
	"github.com/tesso57/headlines/internal/infrastructure/logging"
	"github.com/tesso57/headlines/internal/infrastructure/newsapi"
	"github.com/tesso57/headlines/internal/presentation/navigation"
	"github.com/tesso57/headlines/internal/presentation/tui"
	"github.com/tesso57/headlines/internal/presentation/viewmodel"
)

func run(ctx context.Context, opts *options) error {
	store, err := config.Load(opts.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := applyOverrides(store.Settings, opts)

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = closer.Close() }()

	source, err := buildSource(cfg)
	if err != nil {
		return fmt.Errorf("%w (config: %s)", err, store.Path())
	}

	hist := history.NewManager(cfg.HistoryFile)
	defer func() {
		if err := hist.Close(); err != nil {
			logger.WithError(err).Warn("closing read history")
		}
	}()

	logger.WithFields(logrus.Fields{
		"source": cfg.Source,
		"label":  cfg.SourceLabel(),
	}).Info("starting")

	vm := viewmodel.NewHome(
		usecase.NewHeadlinesService(source, cfg.Timeout(), logger),
		usecase.NewReadingService(hist, time.Now),
		logger,
	)
	defer vm.Wait()
	model := tui.NewModel(cfg, tui.Deps{
		ViewModel: vm,
		Navigator: navigation.NewNavigator(navigation.Home),
		Images:    imageloader.NewHTTPLoader(nil),
		Logger:    logger,
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}

// applyOverrides layers command-line flags over the loaded settings.
func applyOverrides(cfg settings.Settings, opts *options) settings.Settings {
	if v := strings.ToLower(strings.TrimSpace(opts.source)); v != "" {
		cfg.Source = v
	}
	if v := strings.TrimSpace(opts.country); v != "" {
		cfg.NewsAPI.Country = v
	}
	if v := strings.TrimSpace(opts.category); v != "" {
		cfg.NewsAPI.Category = v
	}
	if v := strings.TrimSpace(opts.query); v != "" {
		cfg.NewsAPI.Query = v
	}
	return cfg
}

func buildSource(cfg settings.Settings) (usecase.HeadlineSource, error) {
	switch cfg.Source {
	case settings.SourceRSS:
		if strings.TrimSpace(cfg.RSS.URL) == "" {
			return nil, fmt.Errorf("rss.url is empty")
		}
		return feed.NewSource(cfg.RSS.URL), nil
	case settings.SourceNewsAPI, "":
		if strings.TrimSpace(cfg.NewsAPI.APIKey) == "" {
			return nil, fmt.Errorf("%w: set newsapi.api_key or %s", newsapi.ErrMissingAPIKey, config.APIKeyEnv)
		}
		return newsapi.NewClient(newsapi.Options{
			BaseURL:  cfg.NewsAPI.BaseURL,
			APIKey:   cfg.NewsAPI.APIKey,
			Country:  cfg.NewsAPI.Country,
			Category: cfg.NewsAPI.Category,
			Query:    cfg.NewsAPI.Query,
			PageSize: cfg.NewsAPI.PageSize,
		}, &http.Client{Timeout: cfg.Timeout()}), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}
