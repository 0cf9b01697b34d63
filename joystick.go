package luasdl

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

// SDL_Joystick is opaque in the public headers, so the wrapper exposes
// no fields. Axis and button counts go through the sdl module
// functions instead.

func joystickMetatable(L *lua.LState) *lua.LTable {
	if mt, ok := L.GetTypeMetatable(joystickTypeName).(*lua.LTable); ok {
		return mt
	}
	mt := L.NewTypeMetatable(joystickTypeName)
	L.SetField(mt, "__index", L.NewFunction(joystickIndex))
	L.SetField(mt, "__newindex", L.NewFunction(readOnlyNewIndex(joystickTypeName)))
	return mt
}

// wrapJoystick boxes a borrowed SDL_Joystick handle.
func wrapJoystick(L *lua.LState, joystick ffi.JoystickHandle) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = joystick
	L.SetMetatable(ud, joystickMetatable(L))
	return ud
}

func unwrapJoystick(L *lua.LState, n int) ffi.JoystickHandle {
	ud := L.CheckUserData(n)
	joystick, ok := ud.Value.(ffi.JoystickHandle)
	if !ok {
		L.ArgError(n, "joystick expected")
		return 0
	}
	return joystick
}

func joystickIndex(L *lua.LState) int {
	unwrapJoystick(L, 1)
	L.CheckString(2)
	L.Push(lua.LNil)
	return 1
}
