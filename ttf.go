package luasdl

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

// sdl.ttf submodule. TTF_Font stays opaque; metrics are
// function-backed rather than field projections.
var ttfExports = map[string]lua.LGFunction{
	"init":            ttfInit,
	"quit":            ttfQuit,
	"wasInit":         ttfWasInit,
	"openFont":        ttfOpenFont,
	"closeFont":       ttfCloseFont,
	"fontHeight":      ttfFontHeight,
	"fontAscent":      ttfFontAscent,
	"fontDescent":     ttfFontDescent,
	"renderTextSolid": ttfRenderTextSolid,
}

func ttfInit(L *lua.LState) int {
	if err := ffi.TTFInit(); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func ttfQuit(L *lua.LState) int {
	ffi.TTFQuit()
	return 0
}

func ttfWasInit(L *lua.LState) int {
	L.Push(lua.LBool(ffi.TTFWasInit()))
	return 1
}

func ttfOpenFont(L *lua.LState) int {
	path := L.CheckString(1)
	ptsize := L.CheckInt(2)
	font := ffi.TTFOpenFont(path, ptsize)
	if font == 0 {
		raiseError(L, "openFont")
	}
	L.Push(wrapFont(L, font))
	return 1
}

func ttfCloseFont(L *lua.LState) int {
	ffi.TTFCloseFont(unwrapFont(L, 1))
	return 0
}

func ttfFontHeight(L *lua.LState) int {
	L.Push(lua.LNumber(ffi.TTFFontHeight(unwrapFont(L, 1))))
	return 1
}

func ttfFontAscent(L *lua.LState) int {
	L.Push(lua.LNumber(ffi.TTFFontAscent(unwrapFont(L, 1))))
	return 1
}

func ttfFontDescent(L *lua.LState) int {
	L.Push(lua.LNumber(ffi.TTFFontDescent(unwrapFont(L, 1))))
	return 1
}

func ttfRenderTextSolid(L *lua.LState) int {
	font := unwrapFont(L, 1)
	text := L.CheckString(2)
	color := ffi.Color{
		R: uint8(L.CheckInt(3)),
		G: uint8(L.CheckInt(4)),
		B: uint8(L.CheckInt(5)),
	}
	surface := ffi.TTFRenderTextSolid(font, text, color)
	if surface == nil {
		raiseError(L, "renderTextSolid")
	}
	L.Push(wrapSurface(L, surface))
	return 1
}
