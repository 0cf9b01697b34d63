package luasdl

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

// evalExpr evaluates a Lua expression and returns its value.
func evalExpr(t *testing.T, L *lua.LState, expr string) lua.LValue {
	t.Helper()
	if err := L.DoString("return " + expr); err != nil {
		t.Fatalf("eval %q: %v", expr, err)
	}
	value := L.Get(-1)
	L.Pop(1)
	return value
}

func TestPreloadRegistersModule(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	Preload(L)

	if err := L.DoString(`sdl = require("sdl")`); err != nil {
		t.Fatalf("require: %v", err)
	}

	tests := []struct {
		expr string
		want lua.LValue
	}{
		{`type(sdl)`, lua.LString("table")},
		{`type(sdl.init)`, lua.LString("function")},
		{`type(sdl.setVideoMode)`, lua.LString("function")},
		{`type(sdl.blitSurface)`, lua.LString("function")},
		{`type(sdl.joystickOpen)`, lua.LString("function")},
		{`type(sdl.ttf)`, lua.LString("table")},
		{`type(sdl.ttf.openFont)`, lua.LString("function")},
		{`sdl.INIT_VIDEO`, lua.LNumber(0x20)},
		{`sdl.INIT_JOYSTICK`, lua.LNumber(0x200)},
		{`sdl.DOUBLEBUF`, lua.LNumber(0x40000000)},
		{`sdl.FULLSCREEN`, lua.LNumber(0x80000000)},
		{`sdl.SWSURFACE`, lua.LNumber(0)},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := evalExpr(t, L, tt.expr); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

// getError goes through the ffi layer, which reports an empty error
// string while no library is loaded.
func TestGetErrorWithoutLibrary(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	Preload(L)

	if err := L.DoString(`sdl = require("sdl")`); err != nil {
		t.Fatalf("require: %v", err)
	}
	if got := evalExpr(t, L, `sdl.getError()`); got != lua.LString("") {
		t.Errorf("getError() = %v, want empty string", got)
	}
}
