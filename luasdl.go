// Package luasdl embeds a Lua interpreter and exposes SDL 1.2 to it.
//
// The package is a marshaling layer, not a reimplementation: the
// native libraries are loaded at runtime through their stable C ABI,
// and SDL structs cross into Lua as userdata holding borrowed
// pointers with read-only property accessors. The native side owns
// every pointee; a wrapper used after SDL has released the underlying
// object is undefined behavior.
package luasdl

import (
	"log"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

// Host owns a Lua state with the sdl module preloaded.
type Host struct {
	cfg Config
	L   *lua.LState
}

// New loads the SDL library per the configuration and creates a Lua
// state with the sdl module preloaded. SDL_ttf is loaded best-effort:
// scripts that never touch sdl.ttf work without it.
func New(cfg Config) (*Host, error) {
	if err := ffi.Load(cfg.Libraries.SDLPath); err != nil {
		return nil, errors.Wrap(err, "loading SDL")
	}
	if err := ffi.LoadTTF(cfg.Libraries.TTFPath); err != nil {
		log.Printf("luasdl: SDL_ttf unavailable: %v", err)
	}

	L := lua.NewState()
	Preload(L)
	return &Host{cfg: cfg, L: L}, nil
}

// OpenWindow initializes the video subsystem and applies the
// configured video mode and caption. Optional convenience for Go
// embedders; scripts normally call sdl.init and sdl.setVideoMode
// themselves.
func (h *Host) OpenWindow() error {
	if err := ffi.Init(0x00000020); err != nil { // SDL_INIT_VIDEO
		return err
	}
	video := h.cfg.Video
	if ffi.SetVideoMode(video.Width, video.Height, video.BPP, video.Flags()) == nil {
		return sdlError("setVideoMode")
	}
	ffi.WMSetCaption(video.Caption, video.Caption)
	return nil
}

// RunFile executes a Lua script file.
func (h *Host) RunFile(path string) error {
	return errors.Wrapf(h.L.DoFile(path), "running %s", path)
}

// RunString executes Lua source.
func (h *Host) RunString(source string) error {
	return errors.Wrap(h.L.DoString(source), "running chunk")
}

// State exposes the underlying Lua state.
func (h *Host) State() *lua.LState {
	return h.L
}

// Close releases the Lua state. The native libraries stay loaded for
// the life of the process.
func (h *Host) Close() {
	h.L.Close()
}
