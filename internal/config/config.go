package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings fluxview reads at startup.
type Config struct {
	LogLevel         string
	LogFile          string
	PrefsPath        string
	JournalPath      string
	NotificationTTL  time.Duration
	PredictionsLimit int
	CatalogDSN       string
	CatalogURL       string
	CatalogTitles    []string
	SidebarVisible   bool
}

const (
	defaultConfigPath       = "~/.config/fluxview/config.toml"
	defaultLogFile          = "~/.local/state/fluxview/fluxview.log"
	defaultLogLevel         = "info"
	defaultNotificationTTL  = 5 * time.Second
	defaultPredictionsLimit = 8
)

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		LogLevel:         defaultLogLevel,
		LogFile:          mustExpand(defaultLogFile),
		NotificationTTL:  defaultNotificationTTL,
		PredictionsLimit: defaultPredictionsLimit,
		SidebarVisible:   true,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogLevel         string   `toml:"log_level"`
		LogFile          string   `toml:"log_file"`
		PrefsPath        string   `toml:"prefs_path"`
		JournalPath      string   `toml:"journal_path"`
		NotificationTTL  string   `toml:"notification_ttl"`
		PredictionsLimit int      `toml:"predictions_limit"`
		CatalogDSN       string   `toml:"catalog_dsn"`
		CatalogURL       string   `toml:"catalog_url"`
		CatalogTitles    []string `toml:"catalog_titles"`
		SidebarVisible   *bool    `toml:"sidebar_visible"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if prefsPath := strings.TrimSpace(raw.PrefsPath); prefsPath != "" {
		cfg.PrefsPath = mustExpand(prefsPath)
	}
	if journal := strings.TrimSpace(raw.JournalPath); journal != "" {
		cfg.JournalPath = mustExpand(journal)
	}
	if ttl := strings.TrimSpace(raw.NotificationTTL); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("parse notification_ttl: %w", err)
		}
		if parsed > 0 {
			cfg.NotificationTTL = parsed
		}
	}
	if raw.PredictionsLimit > 0 {
		cfg.PredictionsLimit = raw.PredictionsLimit
	}
	cfg.CatalogDSN = strings.TrimSpace(raw.CatalogDSN)
	cfg.CatalogURL = strings.TrimSpace(raw.CatalogURL)
	for _, title := range raw.CatalogTitles {
		if title = strings.TrimSpace(title); title != "" {
			cfg.CatalogTitles = append(cfg.CatalogTitles, title)
		}
	}
	if raw.SidebarVisible != nil {
		cfg.SidebarVisible = *raw.SidebarVisible
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
