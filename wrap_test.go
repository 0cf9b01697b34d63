package luasdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

// The joystick and font wrappers are opaque: the userdata exists and
// holds the borrowed handle, but no fields project through it.

func TestJoystickWrapperExposesNoFields(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	L.SetGlobal("joystick", wrapJoystick(L, ffi.JoystickHandle(0xDEAD)))

	for _, expr := range []string{`joystick.flags`, `joystick.name`, `joystick.numAxes`} {
		if got := evalExpr(t, L, expr); got != lua.LNil {
			t.Errorf("%s = %v, want nil", expr, got)
		}
	}

	err := L.DoString(`joystick.anything = 1`)
	assert.Error(t, err)
}

func TestFontWrapperExposesNoFields(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	L.SetGlobal("font", wrapFont(L, ffi.FontHandle(0xBEEF)))

	for _, expr := range []string{`font.height`, `font.ascent`, `font.style`} {
		if got := evalExpr(t, L, expr); got != lua.LNil {
			t.Errorf("%s = %v, want nil", expr, got)
		}
	}

	err := L.DoString(`font.anything = 1`)
	assert.Error(t, err)
}

func TestWrappersCarryDistinctTypes(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	joystick := wrapJoystick(L, ffi.JoystickHandle(1))
	font := wrapFont(L, ffi.FontHandle(1))

	if _, ok := joystick.Value.(ffi.JoystickHandle); !ok {
		t.Error("joystick wrapper does not hold a JoystickHandle")
	}
	if _, ok := font.Value.(ffi.FontHandle); !ok {
		t.Error("font wrapper does not hold a FontHandle")
	}
	if joystick.Metatable == font.Metatable {
		t.Error("joystick and font share a metatable")
	}
}
