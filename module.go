package luasdl

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

// Loader is a gopher-lua module loader for the sdl module, suitable
// for LState.PreloadModule. Every function is a thin projection of one
// C API call: unwrap arguments, call, wrap the result.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), sdlExports)
	registerConstants(L, mod)
	L.SetField(mod, "ttf", L.SetFuncs(L.NewTable(), ttfExports))
	L.Push(mod)
	return 1
}

// Preload registers the sdl module on an existing Lua state so that
// scripts can require("sdl").
func Preload(L *lua.LState) {
	L.PreloadModule("sdl", Loader)
}

var sdlExports = map[string]lua.LGFunction{
	"init":       sdlInit,
	"quit":       sdlQuit,
	"wasInit":    sdlWasInit,
	"getError":   sdlGetError,
	"clearError": sdlClearError,
	"delay":      sdlDelay,

	"setVideoMode":    sdlSetVideoMode,
	"getVideoSurface": sdlGetVideoSurface,
	"setCaption":      sdlSetCaption,
	"flip":            sdlFlip,
	"fillRect":        sdlFillRect,
	"mapRGB":          sdlMapRGB,
	"blitSurface":     sdlBlitSurface,
	"setClipRect":     sdlSetClipRect,
	"loadBMP":         sdlLoadBMP,
	"freeSurface":     sdlFreeSurface,

	"numJoysticks":       sdlNumJoysticks,
	"joystickName":       sdlJoystickName,
	"joystickOpen":       sdlJoystickOpen,
	"joystickClose":      sdlJoystickClose,
	"joystickNumAxes":    sdlJoystickNumAxes,
	"joystickNumBalls":   sdlJoystickNumBalls,
	"joystickNumHats":    sdlJoystickNumHats,
	"joystickNumButtons": sdlJoystickNumButtons,
	"joystickUpdate":     sdlJoystickUpdate,
}

// registerConstants attaches the SDL 1.2 flag constants used by
// scripts to the module table.
func registerConstants(L *lua.LState, mod *lua.LTable) {
	constants := map[string]uint32{
		"INIT_TIMER":       0x00000001,
		"INIT_AUDIO":       0x00000010,
		"INIT_VIDEO":       0x00000020,
		"INIT_CDROM":       0x00000100,
		"INIT_JOYSTICK":    0x00000200,
		"INIT_NOPARACHUTE": 0x00100000,
		"INIT_EVENTTHREAD": 0x01000000,
		"INIT_EVERYTHING":  0x0000FFFF,

		"SWSURFACE":  0x00000000,
		"HWSURFACE":  0x00000001,
		"ASYNCBLIT":  0x00000004,
		"ANYFORMAT":  0x10000000,
		"HWPALETTE":  0x20000000,
		"DOUBLEBUF":  0x40000000,
		"FULLSCREEN": 0x80000000,
		"OPENGL":     0x00000002,
		"RESIZABLE":  0x00000010,
		"NOFRAME":    0x00000020,
	}
	for name, value := range constants {
		L.SetField(mod, name, lua.LNumber(value))
	}
}

// optRect reads an optional rect argument: nil means the whole
// surface (or top-left destination) to the underlying C call.
func optRect(L *lua.LState, n int) *ffi.Rect {
	if L.Get(n) == lua.LNil {
		return nil
	}
	return unwrapRect(L, n)
}

func sdlInit(L *lua.LState) int {
	flags := uint32(L.CheckInt64(1))
	if err := ffi.Init(flags); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func sdlQuit(L *lua.LState) int {
	ffi.Quit()
	return 0
}

func sdlWasInit(L *lua.LState) int {
	flags := uint32(L.OptInt64(1, 0xFFFFFFFF))
	L.Push(lua.LNumber(ffi.WasInit(flags)))
	return 1
}

func sdlGetError(L *lua.LState) int {
	L.Push(lua.LString(ffi.GetError()))
	return 1
}

func sdlClearError(L *lua.LState) int {
	ffi.ClearError()
	return 0
}

func sdlDelay(L *lua.LState) int {
	ffi.Delay(uint32(L.CheckInt64(1)))
	return 0
}

func sdlSetVideoMode(L *lua.LState) int {
	width := L.CheckInt(1)
	height := L.CheckInt(2)
	bpp := L.CheckInt(3)
	flags := uint32(L.OptInt64(4, 0))
	surface := ffi.SetVideoMode(width, height, bpp, flags)
	if surface == nil {
		raiseError(L, "setVideoMode")
	}
	L.Push(wrapSurface(L, surface))
	return 1
}

func sdlGetVideoSurface(L *lua.LState) int {
	surface := ffi.GetVideoSurface()
	if surface == nil {
		raiseError(L, "getVideoSurface")
	}
	L.Push(wrapSurface(L, surface))
	return 1
}

func sdlSetCaption(L *lua.LState) int {
	title := L.CheckString(1)
	icon := L.OptString(2, title)
	ffi.WMSetCaption(title, icon)
	return 0
}

func sdlFlip(L *lua.LState) int {
	if err := ffi.Flip(unwrapSurface(L, 1)); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func sdlFillRect(L *lua.LState) int {
	dst := unwrapSurface(L, 1)
	rect := optRect(L, 2)
	color := uint32(L.CheckInt64(3))
	if err := ffi.FillRect(dst, rect, color); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func sdlMapRGB(L *lua.LState) int {
	format := unwrapPixelFormat(L, 1)
	r := uint8(L.CheckInt(2))
	g := uint8(L.CheckInt(3))
	b := uint8(L.CheckInt(4))
	L.Push(lua.LNumber(ffi.MapRGB(format, r, g, b)))
	return 1
}

func sdlBlitSurface(L *lua.LState) int {
	src := unwrapSurface(L, 1)
	srcRect := optRect(L, 2)
	dst := unwrapSurface(L, 3)
	dstRect := optRect(L, 4)
	if err := ffi.BlitSurface(src, srcRect, dst, dstRect); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func sdlSetClipRect(L *lua.LState) int {
	surface := unwrapSurface(L, 1)
	rect := optRect(L, 2)
	ffi.SetClipRect(surface, rect)
	return 0
}

func sdlLoadBMP(L *lua.LState) int {
	surface := ffi.LoadBMP(L.CheckString(1))
	if surface == nil {
		raiseError(L, "loadBMP")
	}
	L.Push(wrapSurface(L, surface))
	return 1
}

// sdlFreeSurface releases a surface that the script owns (loadBMP,
// renderTextSolid). Wrappers referencing it are dangling afterwards;
// the layer does not track that.
func sdlFreeSurface(L *lua.LState) int {
	ffi.FreeSurface(unwrapSurface(L, 1))
	return 0
}

func sdlNumJoysticks(L *lua.LState) int {
	L.Push(lua.LNumber(ffi.NumJoysticks()))
	return 1
}

func sdlJoystickName(L *lua.LState) int {
	L.Push(lua.LString(ffi.JoystickName(L.CheckInt(1))))
	return 1
}

func sdlJoystickOpen(L *lua.LState) int {
	joystick := ffi.JoystickOpen(L.CheckInt(1))
	if joystick == 0 {
		raiseError(L, "joystickOpen")
	}
	L.Push(wrapJoystick(L, joystick))
	return 1
}

func sdlJoystickClose(L *lua.LState) int {
	ffi.JoystickClose(unwrapJoystick(L, 1))
	return 0
}

func sdlJoystickNumAxes(L *lua.LState) int {
	L.Push(lua.LNumber(ffi.JoystickNumAxes(unwrapJoystick(L, 1))))
	return 1
}

func sdlJoystickNumBalls(L *lua.LState) int {
	L.Push(lua.LNumber(ffi.JoystickNumBalls(unwrapJoystick(L, 1))))
	return 1
}

func sdlJoystickNumHats(L *lua.LState) int {
	L.Push(lua.LNumber(ffi.JoystickNumHats(unwrapJoystick(L, 1))))
	return 1
}

func sdlJoystickNumButtons(L *lua.LState) int {
	L.Push(lua.LNumber(ffi.JoystickNumButtons(unwrapJoystick(L, 1))))
	return 1
}

func sdlJoystickUpdate(L *lua.LState) int {
	ffi.JoystickUpdate()
	return 0
}
