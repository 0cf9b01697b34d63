package luasdl

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

// TTF_Font is opaque in the public headers, so the wrapper exposes no
// fields. Metrics go through the sdl.ttf module functions instead.

func fontMetatable(L *lua.LState) *lua.LTable {
	if mt, ok := L.GetTypeMetatable(fontTypeName).(*lua.LTable); ok {
		return mt
	}
	mt := L.NewTypeMetatable(fontTypeName)
	L.SetField(mt, "__index", L.NewFunction(fontIndex))
	L.SetField(mt, "__newindex", L.NewFunction(readOnlyNewIndex(fontTypeName)))
	return mt
}

// wrapFont boxes a borrowed TTF_Font handle.
func wrapFont(L *lua.LState, font ffi.FontHandle) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = font
	L.SetMetatable(ud, fontMetatable(L))
	return ud
}

func unwrapFont(L *lua.LState, n int) ffi.FontHandle {
	ud := L.CheckUserData(n)
	font, ok := ud.Value.(ffi.FontHandle)
	if !ok {
		L.ArgError(n, "font expected")
		return 0
	}
	return font
}

func fontIndex(L *lua.LState) int {
	unwrapFont(L, 1)
	L.CheckString(2)
	L.Push(lua.LNil)
	return 1
}
