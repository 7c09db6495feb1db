package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	conf := Default()
	assert.False(conf.Verbose)
	assert.Equal(COLOR_AUTO, conf.Color)
	assert.Equal(LISTING_DEFAULT, conf.Listing)
	assert.NoError(conf.Validate())
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), CONFIG_FILE)
	text := "verbose = true\ncolor = \"never\"\nlisting = 8\nhistory = \"/tmp/tiny13.history\"\n"
	assert.NoError(os.WriteFile(path, []byte(text), 0o644))

	conf, err := Load(path)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.True(conf.Verbose)
	assert.Equal(COLOR_NEVER, conf.Color)
	assert.Equal(8, conf.Listing)
	assert.Equal("/tmp/tiny13.history", conf.HistoryPath())
	assert.False(conf.UseColor(int(os.Stdout.Fd())))
}

func TestLoadPartial(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), CONFIG_FILE)
	assert.NoError(os.WriteFile(path, []byte("color = \"always\"\n"), 0o644))

	conf, err := Load(path)
	assert.NoError(err)
	assert.Equal(COLOR_ALWAYS, conf.Color)
	assert.Equal(LISTING_DEFAULT, conf.Listing)
	assert.True(conf.UseColor(-1))
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	assert.NoError(os.WriteFile(bad, []byte("color = \n"), 0o644))
	conf, err := Load(bad)
	assert.Error(err)
	assert.Nil(conf)

	mode := filepath.Join(dir, "mode.toml")
	assert.NoError(os.WriteFile(mode, []byte("color = \"rainbow\"\n"), 0o644))
	_, err = Load(mode)
	assert.ErrorIs(err, ErrColorMode)

	listing := filepath.Join(dir, "listing.toml")
	assert.NoError(os.WriteFile(listing, []byte("listing = 0\n"), 0o644))
	_, err = Load(listing)
	assert.ErrorIs(err, ErrListing)
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	conf := Default()
	conf.Listing = 12

	var out bytes.Buffer
	assert.NoError(conf.Write(&out))

	path := filepath.Join(t.TempDir(), CONFIG_FILE)
	assert.NoError(os.WriteFile(path, out.Bytes(), 0o644))

	again, err := Load(path)
	assert.NoError(err)
	assert.Equal(conf, again)
}
