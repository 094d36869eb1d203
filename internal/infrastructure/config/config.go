// Package config handles configuration loading and saving.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/tesso57/headlines/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// APIKeyEnv overrides the configured NewsAPI key when set.
const APIKeyEnv = "NEWSAPI_KEY"

const appName = "headlines"

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// Path returns the config file backing the store.
func (s *Store) Path() string {
	return s.configPath
}

// DefaultPath returns the XDG config location.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appName, "config.yaml"))
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(configPath), ".env"), ".env"); err != nil {
		return nil, err
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	var options []kong.Option

	// Only add configuration loader if file exists
	_, statErr := os.Stat(configPath)
	exists := statErr == nil
	if exists {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	store.Settings = cfg
	store.Settings.Source = strings.ToLower(strings.TrimSpace(store.Settings.Source))

	if strings.TrimSpace(store.Settings.HistoryFile) == "" {
		p, err := xdg.DataFile(filepath.Join(appName, "history.db"))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve history path: %w", err)
		}
		store.Settings.HistoryFile = p
	}
	if strings.TrimSpace(store.Settings.Log.File) == "" {
		p, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve log path: %w", err)
		}
		store.Settings.Log.File = p
	}

	// Save defaults if new file
	if !exists {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	// The env key is applied after saving so it never lands in the file.
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		store.Settings.NewsAPI.APIKey = key
	}

	return store, nil
}

func loadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}

			// Check nested dot-notation
			parts := strings.Split(name, ".")
			if len(parts) > 1 {
				curr := values
				for i, part := range parts {
					if i == len(parts)-1 {
						if v, ok := curr[part]; ok {
							return v, nil
						}
					} else {
						if nextMap, ok := curr[part].(map[string]any); ok {
							curr = nextMap
						} else {
							break
						}
					}
				}
			}
		}
		return nil, nil
	}
	return f, nil
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
