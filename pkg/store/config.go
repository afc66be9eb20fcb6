package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath   = "~/.beyond.db"
	DefaultKey    = "beyond_data"
	DefaultLocale = "it_IT"
	DefaultCellPx = 10
)

// Config locates the key/value slot.
type Config interface {
	BasePath() string
	Key() string
}

// Settings is the resolved configuration for beyond.
type Settings struct {
	Path      string
	Slot      string
	Locale    string
	Timezone  string
	ExportDir string
	CellPx    int
}

// LoadConfig reads .beyond.yaml from $BEYOND_CONFIG_PATH, the working
// directory or the home directory, then applies BEYOND_* environment
// overrides. A missing config file is not an error.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("locale", DefaultLocale)
	v.SetDefault("timezone", "")
	v.SetDefault("export_dir", ".")
	v.SetDefault("swipe.cell_px", DefaultCellPx)
	v.SetConfigName(".beyond") // .yaml is implicit
	v.SetEnvPrefix("BEYOND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("BEYOND_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	s := &Settings{
		Path:      path,
		Slot:      v.GetString("key"),
		Locale:    v.GetString("locale"),
		Timezone:  v.GetString("timezone"),
		ExportDir: v.GetString("export_dir"),
		CellPx:    v.GetInt("swipe.cell_px"),
	}
	if exportDir, err := homedir.Expand(s.ExportDir); err == nil {
		s.ExportDir = exportDir
	}
	if s.Slot == "" {
		s.Slot = DefaultKey
	}
	if s.CellPx <= 0 {
		s.CellPx = DefaultCellPx
	}
	return s, nil
}

func (s *Settings) BasePath() string {
	return s.Path
}

func (s *Settings) Key() string {
	return s.Slot
}

// Location resolves the configured timezone, defaulting to the local zone.
func (s *Settings) Location() (*time.Location, error) {
	if s == nil || strings.TrimSpace(s.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("store: timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}
