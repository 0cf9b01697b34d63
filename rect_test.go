package luasdl

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

func TestRectAccessors(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	rect := &ffi.Rect{X: -5, Y: 10, W: 200, H: 150}
	L.SetGlobal("rect", wrapRect(L, rect))

	tests := []struct {
		expr string
		want lua.LValue
	}{
		{`rect.x`, lua.LNumber(-5)},
		{`rect.y`, lua.LNumber(10)},
		{`rect.w`, lua.LNumber(200)},
		{`rect.h`, lua.LNumber(150)},
		{`rect.area`, lua.LNil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := evalExpr(t, L, tt.expr); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestRectReflectsMutation(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	rect := &ffi.Rect{X: 1, Y: 2, W: 3, H: 4}
	L.SetGlobal("rect", wrapRect(L, rect))

	rect.X = 42
	if got := evalExpr(t, L, `rect.x`); got != lua.LNumber(42) {
		t.Errorf("rect.x = %v, want 42", got)
	}
}

func TestRectReadOnly(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	L.SetGlobal("rect", wrapRect(L, &ffi.Rect{}))

	if err := L.DoString(`rect.x = 7`); err == nil {
		t.Fatal("expected assignment to raise an error")
	}
}
