// Package prefs handles durable viewer preferences.
// Preferences are stored in ~/.config/fluxview/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the preferences that survive restarts.
type Prefs struct {
	ThemeMode     string  `toml:"theme_mode"`
	Volume        float64 `toml:"volume"`
	Muted         bool    `toml:"muted"`
	Quality       int     `toml:"quality"`
	PlaybackSpeed float64 `toml:"playback_speed"`
	TheaterMode   bool    `toml:"theater_mode"`
	AutoPlay      bool    `toml:"autoplay"`
}

const (
	defaultPrefsPath     = "~/.config/fluxview/prefs.toml"
	defaultThemeMode     = "dark"
	defaultVolume        = 1.0
	defaultQuality       = 720
	defaultPlaybackSpeed = 1.0
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{
		ThemeMode:     defaultThemeMode,
		Volume:        defaultVolume,
		Quality:       defaultQuality,
		PlaybackSpeed: defaultPlaybackSpeed,
		AutoPlay:      true,
	}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Missing, unreadable or invalid
// files yield defaults; individual out-of-range values fall back field by field.
func Load(path string) Prefs {
	p := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}
	file, err := os.Open(resolved)
	if err != nil {
		return p // Missing or unreadable: graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return p
	}

	var raw struct {
		ThemeMode     *string  `toml:"theme_mode"`
		Volume        *float64 `toml:"volume"`
		Muted         *bool    `toml:"muted"`
		Quality       *int     `toml:"quality"`
		PlaybackSpeed *float64 `toml:"playback_speed"`
		TheaterMode   *bool    `toml:"theater_mode"`
		AutoPlay      *bool    `toml:"autoplay"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return p
	}

	if raw.ThemeMode != nil {
		if mode := strings.ToLower(strings.TrimSpace(*raw.ThemeMode)); mode == "light" || mode == "dark" {
			p.ThemeMode = mode
		}
	}
	if raw.Volume != nil && *raw.Volume >= 0 && *raw.Volume <= 1 {
		p.Volume = *raw.Volume
	}
	if raw.Muted != nil {
		p.Muted = *raw.Muted
	}
	if raw.Quality != nil && *raw.Quality > 0 {
		p.Quality = *raw.Quality
	}
	if raw.PlaybackSpeed != nil && *raw.PlaybackSpeed > 0 && *raw.PlaybackSpeed <= 16 {
		p.PlaybackSpeed = *raw.PlaybackSpeed
	}
	if raw.TheaterMode != nil {
		p.TheaterMode = *raw.TheaterMode
	}
	if raw.AutoPlay != nil {
		p.AutoPlay = *raw.AutoPlay
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// File is a preferences file shared by several stores. Each store changes
// only its own fields through Update; the in-memory copy is authoritative and
// the whole document is rewritten on every change.
type File struct {
	mu     sync.Mutex
	path   string
	memory bool
	prefs  Prefs
}

// Open loads the preferences at path (empty for the default location).
func Open(path string) *File {
	return &File{path: path, prefs: Load(path)}
}

// NewMemory returns a File that never touches disk.
func NewMemory(p Prefs) *File {
	return &File{memory: true, prefs: p}
}

// Get returns the current preferences.
func (f *File) Get() Prefs {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefs
}

// Update applies fn and persists the result. The in-memory value is updated
// even when the write fails.
func (f *File) Update(fn func(*Prefs)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fn(&f.prefs)
	if f.memory {
		return nil
	}
	return Save(f.path, f.prefs)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
