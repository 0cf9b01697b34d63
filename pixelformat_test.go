package luasdl

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/alcamie101/luasdl/internal/ffi"
)

func TestPixelFormatAccessors(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	format := &ffi.PixelFormat{
		BitsPerPixel:  16,
		BytesPerPixel: 2,
		ColorKey:      0xF81F,
		Alpha:         255,
	}
	L.SetGlobal("format", wrapPixelFormat(L, format))

	tests := []struct {
		expr string
		want lua.LValue
	}{
		{`format.bitsPerPixel`, lua.LNumber(16)},
		{`format.bytesPerPixel`, lua.LNumber(2)},
		{`format.colorkey`, lua.LNumber(0xF81F)},
		{`format.alpha`, lua.LNumber(255)},
		{`format.rmask`, lua.LNil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := evalExpr(t, L, tt.expr); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestPixelFormatReflectsMutation(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	format := &ffi.PixelFormat{Alpha: 0}
	L.SetGlobal("format", wrapPixelFormat(L, format))

	format.Alpha = 200
	format.ColorKey = 0xDEADBEEF
	if got := evalExpr(t, L, `format.alpha`); got != lua.LNumber(200) {
		t.Errorf("format.alpha = %v, want 200", got)
	}
	if got := evalExpr(t, L, `format.colorkey`); got != lua.LNumber(0xDEADBEEF) {
		t.Errorf("format.colorkey = %v, want 0xDEADBEEF", got)
	}
}
