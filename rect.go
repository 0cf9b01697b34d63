package luasdl

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

var rectAccessors = map[string]func(*lua.LState, *ffi.Rect) lua.LValue{
	"x": func(L *lua.LState, r *ffi.Rect) lua.LValue { return lua.LNumber(r.X) },
	"y": func(L *lua.LState, r *ffi.Rect) lua.LValue { return lua.LNumber(r.Y) },
	"w": func(L *lua.LState, r *ffi.Rect) lua.LValue { return lua.LNumber(r.W) },
	"h": func(L *lua.LState, r *ffi.Rect) lua.LValue { return lua.LNumber(r.H) },
}

func rectMetatable(L *lua.LState) *lua.LTable {
	if mt, ok := L.GetTypeMetatable(rectTypeName).(*lua.LTable); ok {
		return mt
	}
	mt := L.NewTypeMetatable(rectTypeName)
	L.SetField(mt, "__index", L.NewFunction(rectIndex))
	L.SetField(mt, "__newindex", L.NewFunction(readOnlyNewIndex(rectTypeName)))
	return mt
}

// wrapRect boxes a borrowed SDL_Rect pointer. The pointer frequently
// aims into the middle of another struct (a surface's clip rect), so
// reads always reflect the owning struct's current state.
func wrapRect(L *lua.LState, rect *ffi.Rect) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = rect
	L.SetMetatable(ud, rectMetatable(L))
	return ud
}

func unwrapRect(L *lua.LState, n int) *ffi.Rect {
	ud := L.CheckUserData(n)
	rect, ok := ud.Value.(*ffi.Rect)
	if !ok {
		L.ArgError(n, "rect expected")
		return nil
	}
	return rect
}

func rectIndex(L *lua.LState) int {
	rect := unwrapRect(L, 1)
	accessor, ok := rectAccessors[L.CheckString(2)]
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(accessor(L, rect))
	return 1
}
