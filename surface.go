package luasdl

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

// surfaceAccessors projects fields of a borrowed SDL_Surface into Lua
// values. `format` and `clip_rect` wrap nested borrowed pointers; the
// clip rect wrapper points into the surface struct itself.
var surfaceAccessors = map[string]func(*lua.LState, *ffi.Surface) lua.LValue{
	"flags": func(L *lua.LState, s *ffi.Surface) lua.LValue { return lua.LNumber(s.Flags) },
	"format": func(L *lua.LState, s *ffi.Surface) lua.LValue {
		if s.Format == nil {
			return lua.LNil
		}
		return wrapPixelFormat(L, s.Format)
	},
	"w":     func(L *lua.LState, s *ffi.Surface) lua.LValue { return lua.LNumber(s.W) },
	"h":     func(L *lua.LState, s *ffi.Surface) lua.LValue { return lua.LNumber(s.H) },
	"pitch": func(L *lua.LState, s *ffi.Surface) lua.LValue { return lua.LNumber(s.Pitch) },
	"clip_rect": func(L *lua.LState, s *ffi.Surface) lua.LValue {
		return wrapRect(L, &s.ClipRect)
	},
}

func surfaceMetatable(L *lua.LState) *lua.LTable {
	if mt, ok := L.GetTypeMetatable(surfaceTypeName).(*lua.LTable); ok {
		return mt
	}
	mt := L.NewTypeMetatable(surfaceTypeName)
	L.SetField(mt, "__index", L.NewFunction(surfaceIndex))
	L.SetField(mt, "__newindex", L.NewFunction(readOnlyNewIndex(surfaceTypeName)))
	return mt
}

// wrapSurface boxes a borrowed SDL_Surface pointer into a userdata.
// The wrapper never frees the surface and never checks that it is
// still alive; the native side owns it.
func wrapSurface(L *lua.LState, surface *ffi.Surface) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = surface
	L.SetMetatable(ud, surfaceMetatable(L))
	return ud
}

func unwrapSurface(L *lua.LState, n int) *ffi.Surface {
	ud := L.CheckUserData(n)
	surface, ok := ud.Value.(*ffi.Surface)
	if !ok {
		L.ArgError(n, "surface expected")
		return nil
	}
	return surface
}

func surfaceIndex(L *lua.LState) int {
	surface := unwrapSurface(L, 1)
	accessor, ok := surfaceAccessors[L.CheckString(2)]
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(accessor(L, surface))
	return 1
}
