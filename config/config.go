// Package config holds the emulator session settings.
//
// Settings come from a TOML file, `config.toml` in the user's tiny13
// configuration folder, or an explicit path. Command line flags override
// the file.
//
//	verbose = false
//	color = "auto"      # "auto", "always" or "never"
//	listing = 16        # listing window height
//	history = ""        # REPL history file, defaults to the cache folder
package config

import (
	"errors"
	"io"
	"log"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/shibukawa/configdir"
	"golang.org/x/term"

	"github.com/ezrec/tiny13/translate"
)

var f = translate.From

const (
	VENDOR      = "tiny13"
	CONFIG_FILE = "config.toml"
	HISTORY     = "history"

	COLOR_AUTO   = "auto"
	COLOR_ALWAYS = "always"
	COLOR_NEVER  = "never"

	LISTING_DEFAULT = 16
	LISTING_LIMIT   = 256
)

var (
	ErrColorMode = errors.New(f("color must be auto, always or never"))
	ErrListing   = errors.New(f("listing height out of range"))
)

// Config is the session configuration.
type Config struct {
	Verbose bool   `toml:"verbose"`
	Color   string `toml:"color"`
	Listing int    `toml:"listing"`
	History string `toml:"history"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:   COLOR_AUTO,
		Listing: LISTING_DEFAULT,
	}
}

// Load reads the configuration file at path, or when path is empty, the
// first config.toml found in the user configuration folders. A missing
// default file is not an error.
func Load(path string) (conf *Config, err error) {
	conf = Default()

	if len(path) != 0 {
		_, err = toml.DecodeFile(path, conf)
		if err != nil {
			conf = nil
			return
		}
		err = conf.Validate()
		if err != nil {
			conf = nil
		}
		return
	}

	dirs := configdir.New(VENDOR, "")
	folder := dirs.QueryFolderContainsFile(CONFIG_FILE)
	if folder == nil {
		return
	}

	data, err := folder.ReadFile(CONFIG_FILE)
	if err != nil {
		conf = nil
		return
	}

	_, err = toml.Decode(string(data), conf)
	if err != nil {
		conf = nil
		return
	}

	err = conf.Validate()
	if err != nil {
		conf = nil
	}

	return
}

// Validate checks the settings ranges.
func (conf *Config) Validate() (err error) {
	switch conf.Color {
	case COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
	default:
		return ErrColorMode
	}

	if conf.Listing < 1 || conf.Listing > LISTING_LIMIT {
		return ErrListing
	}

	return
}

// Write encodes the configuration as TOML.
func (conf *Config) Write(w io.Writer) (err error) {
	return toml.NewEncoder(w).Encode(conf)
}

// UseColor reports whether output to the file descriptor fd is colored.
func (conf *Config) UseColor(fd int) bool {
	switch conf.Color {
	case COLOR_ALWAYS:
		return true
	case COLOR_NEVER:
		return false
	}
	return term.IsTerminal(fd)
}

// HistoryPath returns the REPL history file, or an empty string when no
// cache folder is available.
func (conf *Config) HistoryPath() string {
	if len(conf.History) != 0 {
		return conf.History
	}

	cache := configdir.New(VENDOR, "").QueryCacheFolder()
	if err := cache.MkdirAll(); err != nil {
		if conf.Verbose {
			log.Printf("config: %v", err)
		}
		return ""
	}

	return filepath.Join(cache.Path, HISTORY)
}
