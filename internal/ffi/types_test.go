package ffi

import (
	"testing"
	"unsafe"
)

// The mirror structs are only correct if Go lays them out exactly as C
// does. Alignment rules agree for these field shapes; the assertions
// below pin the layout either way.

func TestRectLayout(t *testing.T) {
	var r Rect
	if size := unsafe.Sizeof(r); size != 8 {
		t.Errorf("Sizeof(Rect) = %d, want 8", size)
	}
	if off := unsafe.Offsetof(r.W); off != 4 {
		t.Errorf("Offsetof(Rect.W) = %d, want 4", off)
	}
}

func TestColorLayout(t *testing.T) {
	var c Color
	if size := unsafe.Sizeof(c); size != 4 {
		t.Errorf("Sizeof(Color) = %d, want 4", size)
	}
}

func TestPixelFormatLayout(t *testing.T) {
	var f PixelFormat
	ptrSize := unsafe.Sizeof(uintptr(0))

	if off := unsafe.Offsetof(f.BitsPerPixel); off != ptrSize {
		t.Errorf("Offsetof(BitsPerPixel) = %d, want %d", off, ptrSize)
	}
	// Ten uint8 fields follow the palette pointer; RMask realigns to 4.
	wantRMask := (ptrSize + 10 + 3) &^ 3
	if off := unsafe.Offsetof(f.RMask); off != wantRMask {
		t.Errorf("Offsetof(RMask) = %d, want %d", off, wantRMask)
	}
	if off := unsafe.Offsetof(f.ColorKey); off != wantRMask+16 {
		t.Errorf("Offsetof(ColorKey) = %d, want %d", off, wantRMask+16)
	}
	if off := unsafe.Offsetof(f.Alpha); off != wantRMask+20 {
		t.Errorf("Offsetof(Alpha) = %d, want %d", off, wantRMask+20)
	}
}

func TestSurfaceLayout(t *testing.T) {
	var s Surface
	ptrSize := unsafe.Sizeof(uintptr(0))

	if off := unsafe.Offsetof(s.Format); off != ptrSize {
		t.Errorf("Offsetof(Format) = %d, want %d", off, ptrSize)
	}
	if off := unsafe.Offsetof(s.W); off != 2*ptrSize {
		t.Errorf("Offsetof(W) = %d, want %d", off, 2*ptrSize)
	}
	if off := unsafe.Offsetof(s.Pitch); off != 2*ptrSize+8 {
		t.Errorf("Offsetof(Pitch) = %d, want %d", off, 2*ptrSize+8)
	}
	// Pixels realigns to pointer size after the 2-byte pitch.
	wantPixels := (2*ptrSize + 10 + ptrSize - 1) &^ (ptrSize - 1)
	if off := unsafe.Offsetof(s.Pixels); off != wantPixels {
		t.Errorf("Offsetof(Pixels) = %d, want %d", off, wantPixels)
	}
}

func TestSurfaceFromPtr(t *testing.T) {
	if got := SurfaceFromPtr(0); got != nil {
		t.Errorf("SurfaceFromPtr(0) = %v, want nil", got)
	}

	s := Surface{W: 320, H: 200}
	got := SurfaceFromPtr(uintptr(unsafe.Pointer(&s)))
	if got != &s {
		t.Errorf("SurfaceFromPtr did not round-trip the pointer")
	}
}
