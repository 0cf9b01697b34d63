package luasdl

import (
	lua "github.com/yuin/gopher-lua"
)

// Lua type names for the wrapper metatables. Each metatable is
// registered once per state, on first wrap.
const (
	surfaceTypeName     = "sdl.surface"
	rectTypeName        = "sdl.rect"
	pixelFormatTypeName = "sdl.pixelformat"
	joystickTypeName    = "sdl.joystick"
	fontTypeName        = "sdl.font"
)

// readOnlyNewIndex returns a __newindex handler that rejects all
// assignments. Wrapper properties project borrowed native memory and
// are never writable from scripts.
func readOnlyNewIndex(typeName string) lua.LGFunction {
	return func(L *lua.LState) int {
		L.RaiseError("%s: properties are read-only", typeName)
		return 0
	}
}
