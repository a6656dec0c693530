package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p != Defaults() {
		t.Fatalf("Load = %+v, want defaults %+v", p, Defaults())
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "fluxview")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme_mode = \"light\"\nvolume = 0.25\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.ThemeMode != "light" {
		t.Fatalf("ThemeMode = %q, want light", p.ThemeMode)
	}
	if p.Volume != 0.25 {
		t.Fatalf("Volume = %v, want 0.25", p.Volume)
	}
	if p.Quality != defaultQuality {
		t.Fatalf("Quality = %d, want default %d", p.Quality, defaultQuality)
	}
}

func TestLoad_ZeroVolumeIsKept(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("volume = 0.0\nautoplay = false\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(prefsFile)
	if p.Volume != 0 {
		t.Fatalf("Volume = %v, want 0", p.Volume)
	}
	if p.AutoPlay {
		t.Fatal("AutoPlay = true, want false")
	}
}

func TestLoad_OutOfRangeFieldsFallBack(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	content := "theme_mode = \"sepia\"\nvolume = 4.0\nquality = -1\nplayback_speed = 0.0\nmuted = true\n"
	if err := os.WriteFile(prefsFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(prefsFile)
	want := Defaults()
	want.Muted = true
	if p != want {
		t.Fatalf("Load = %+v, want %+v", p, want)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(prefsFile); p != Defaults() {
		t.Fatalf("Load = %+v, want defaults", p)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	p := Defaults()
	p.Volume = 0.75
	p.TheaterMode = true
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if loaded := Load(prefsFile); loaded != p {
		t.Fatalf("Load = %+v, want %+v", loaded, p)
	}
}

func TestFile_UpdatePersists(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	f := Open(prefsFile)

	if err := f.Update(func(p *Prefs) { p.PlaybackSpeed = 1.5 }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := f.Update(func(p *Prefs) { p.ThemeMode = "light" }); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reopened := Open(prefsFile).Get()
	if reopened.PlaybackSpeed != 1.5 || reopened.ThemeMode != "light" {
		t.Fatalf("reopened = %+v, want speed 1.5 and light mode", reopened)
	}
}

func TestFile_UpdateKeepsMemoryOnWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f := Open(filepath.Join(blocker, "prefs.toml"))

	err := f.Update(func(p *Prefs) { p.Muted = true })
	if err == nil {
		t.Fatal("Update returned nil error, want write failure")
	}
	if !f.Get().Muted {
		t.Fatal("Muted = false, want in-memory value kept")
	}
}

func TestNewMemory_NeverWrites(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f := NewMemory(Defaults())
	if err := f.Update(func(p *Prefs) { p.Volume = 0.5 }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if f.Get().Volume != 0.5 {
		t.Fatalf("Volume = %v, want 0.5", f.Get().Volume)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "fluxview", "prefs.toml")); !os.IsNotExist(err) {
		t.Fatalf("Stat = %v, want not exist", err)
	}
}
