package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/typepanel/internal/config"
	"github.com/alexisbeaulieu97/typepanel/internal/logger"
	"github.com/alexisbeaulieu97/typepanel/internal/tui"
)

// AppContext bundles what every command needs once flags are parsed.
type AppContext struct {
	Config     *config.Config
	ConfigPath string
	Logger     *logger.Logger

	closers []func() error
}

// newAppContext loads the config file, when one is given, and opens the logger.
func newAppContext(flags *rootFlags) (*AppContext, error) {
	app := &AppContext{Config: config.Default(), ConfigPath: flags.configPath}

	if strings.TrimSpace(flags.configPath) != "" {
		if err := validateConfigPath(flags.configPath); err != nil {
			return nil, err
		}
		cfg, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		app.Config = cfg
	}

	log, err := app.openLogger(flags)
	if err != nil {
		return nil, err
	}
	app.Logger = log
	return app, nil
}

func (a *AppContext) openLogger(flags *rootFlags) (*logger.Logger, error) {
	level := firstNonEmpty(flags.logLevel, a.Config.Log.Level, "info")
	if flags.verbose {
		level = "debug"
	}

	path := firstNonEmpty(flags.logFile, a.Config.Log.File)
	if path == "" {
		return logger.Discard(), nil
	}

	log, closer, err := logger.OpenFile(path, level)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closer.Close)
	return log, nil
}

// HostConfig resolves catalogs, defaults, ownership and article for the host model.
func (a *AppContext) HostConfig() (tui.Config, error) {
	set := a.Config.CatalogSet()
	defaults, err := a.Config.DefaultSelection(set)
	if err != nil {
		return tui.Config{}, err
	}

	hostCfg := tui.Config{
		Catalogs:  set,
		Defaults:  defaults,
		Ownership: a.Config.OwnershipMode(),
		Logger:    a.Logger,
	}

	source := a.Config.Article
	switch {
	case source.Path != "":
		article, err := tui.LoadArticle(a.resolvePath(source.Path), source.Title)
		if err != nil {
			return tui.Config{}, fmt.Errorf("load article: %w", err)
		}
		hostCfg.Article = article
	case source.Title != "":
		article := tui.DefaultArticle()
		article.Title = source.Title
		hostCfg.Article = article
	}

	return hostCfg, nil
}

// resolvePath makes relative paths relative to the config file.
func (a *AppContext) resolvePath(path string) string {
	if filepath.IsAbs(path) || a.ConfigPath == "" {
		return path
	}
	return filepath.Join(filepath.Dir(a.ConfigPath), path)
}

// Close releases the log file.
func (a *AppContext) Close() {
	for _, closeFn := range a.closers {
		_ = closeFn()
	}
	a.closers = nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
