package luasdl

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

var pixelFormatAccessors = map[string]func(*lua.LState, *ffi.PixelFormat) lua.LValue{
	"bitsPerPixel":  func(L *lua.LState, f *ffi.PixelFormat) lua.LValue { return lua.LNumber(f.BitsPerPixel) },
	"bytesPerPixel": func(L *lua.LState, f *ffi.PixelFormat) lua.LValue { return lua.LNumber(f.BytesPerPixel) },
	"colorkey":      func(L *lua.LState, f *ffi.PixelFormat) lua.LValue { return lua.LNumber(f.ColorKey) },
	"alpha":         func(L *lua.LState, f *ffi.PixelFormat) lua.LValue { return lua.LNumber(f.Alpha) },
}

func pixelFormatMetatable(L *lua.LState) *lua.LTable {
	if mt, ok := L.GetTypeMetatable(pixelFormatTypeName).(*lua.LTable); ok {
		return mt
	}
	mt := L.NewTypeMetatable(pixelFormatTypeName)
	L.SetField(mt, "__index", L.NewFunction(pixelFormatIndex))
	L.SetField(mt, "__newindex", L.NewFunction(readOnlyNewIndex(pixelFormatTypeName)))
	return mt
}

// wrapPixelFormat boxes a borrowed SDL_PixelFormat pointer, usually
// reached through a surface's format field.
func wrapPixelFormat(L *lua.LState, format *ffi.PixelFormat) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = format
	L.SetMetatable(ud, pixelFormatMetatable(L))
	return ud
}

func unwrapPixelFormat(L *lua.LState, n int) *ffi.PixelFormat {
	ud := L.CheckUserData(n)
	format, ok := ud.Value.(*ffi.PixelFormat)
	if !ok {
		L.ArgError(n, "pixel format expected")
		return nil
	}
	return format
}

func pixelFormatIndex(L *lua.LState) int {
	format := unwrapPixelFormat(L, 1)
	accessor, ok := pixelFormatAccessors[L.CheckString(2)]
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(accessor(L, format))
	return 1
}
