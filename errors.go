package luasdl

import (
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

// formatError concatenates a caller-supplied label with a library
// error message.
func formatError(name, message string) string {
	return name + ": " + message
}

// raiseError raises a Lua error carrying the library's current
// last-error text under the given label.
func raiseError(L *lua.LState, name string) {
	L.RaiseError("%s", formatError(name, ffi.GetError()))
}

// sdlError returns a Go error carrying the library's current
// last-error text under the given label.
func sdlError(name string) error {
	return errors.New(formatError(name, ffi.GetError()))
}
