package ffi

import "unsafe"

// The structs in this file match the C struct layouts of SDL 1.2.
// They are only ever read through borrowed pointers handed out by the
// library; Go code never allocates them for SDL's use and never frees
// them.

// Rect matches the C struct layout of SDL_Rect.
type Rect struct {
	X, Y int16
	W, H uint16
}

// Color matches the C struct layout of SDL_Color.
type Color struct {
	R, G, B uint8
	Unused  uint8
}

// Palette matches the C struct layout of SDL_Palette.
type Palette struct {
	NColors int32
	Colors  *Color
}

// PixelFormat matches the C struct layout of SDL_PixelFormat.
type PixelFormat struct {
	Palette       *Palette
	BitsPerPixel  uint8
	BytesPerPixel uint8
	RLoss         uint8
	GLoss         uint8
	BLoss         uint8
	ALoss         uint8
	RShift        uint8
	GShift        uint8
	BShift        uint8
	AShift        uint8
	RMask         uint32
	GMask         uint32
	BMask         uint32
	AMask         uint32
	ColorKey      uint32
	Alpha         uint8
}

// Surface matches the C struct layout of SDL_Surface. The trailing
// fields past ClipRect are private to SDL but participate in the
// layout, so they are mirrored here as opaque words.
type Surface struct {
	Flags  uint32
	Format *PixelFormat
	W, H   int32
	Pitch  uint16
	Pixels unsafe.Pointer
	Offset int32

	hwdata uintptr

	ClipRect Rect
	unused1  uint32

	locked        uint32
	blitMap       uintptr
	formatVersion uint32
	refcount      int32
}

// JoystickHandle is an opaque SDL_Joystick pointer. No fields of the
// underlying struct are exposed; all queries go through the C API.
type JoystickHandle uintptr

// FontHandle is an opaque TTF_Font pointer.
type FontHandle uintptr

// SurfaceFromPtr reinterprets a raw pointer returned by the library
// as a borrowed *Surface. The caller must not retain it past the
// lifetime of the native surface.
func SurfaceFromPtr(ptr uintptr) *Surface {
	if ptr == 0 {
		return nil
	}
	return (*Surface)(unsafe.Pointer(ptr))
}
