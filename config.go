package luasdl

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config represents the luasdl.toml configuration file.
type Config struct {
	Libraries LibrariesConfig `toml:"libraries"`
	Video     VideoConfig     `toml:"video"`
	Script    ScriptConfig    `toml:"script"`
}

// LibrariesConfig locates the native libraries. Empty paths fall back
// to the LUASDL_SDL_PATH / LUASDL_TTF_PATH environment variables and
// then the platform default names.
type LibrariesConfig struct {
	SDLPath string `toml:"sdl_path"`
	TTFPath string `toml:"ttf_path"`
}

// VideoConfig holds the default video mode for Host.OpenWindow.
type VideoConfig struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	BPP          int    `toml:"bpp"`
	Fullscreen   bool   `toml:"fullscreen"`
	DoubleBuffer bool   `toml:"double_buffer"`
	Caption      string `toml:"caption"`
}

// Flags maps the video section onto SDL surface flags.
func (v VideoConfig) Flags() uint32 {
	var flags uint32
	if v.Fullscreen {
		flags |= 0x80000000 // SDL_FULLSCREEN
	}
	if v.DoubleBuffer {
		flags |= 0x40000000 // SDL_DOUBLEBUF
	}
	return flags
}

// ScriptConfig names the script to run when none is given on the
// command line.
type ScriptConfig struct {
	Entry string `toml:"entry"`
}

// DefaultConfig returns the default host configuration.
func DefaultConfig() Config {
	return Config{
		Video: VideoConfig{
			Width:   640,
			Height:  480,
			BPP:     32,
			Caption: "luasdl",
		},
	}
}

// LoadConfig reads a TOML configuration file. Missing keys keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}
