package ffi

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	ttfHandle      uintptr
	ttfOnce        sync.Once
	ttfErr         error
	ttfInitialized bool
)

// SDL_ttf function pointers (populated by LoadTTF)
var (
	fnTTFInit        func() int32
	fnTTFQuit        func()
	fnTTFWasInit     func() int32
	fnTTFOpenFont    func(file uintptr, ptsize int32) uintptr
	fnTTFCloseFont   func(font uintptr)
	fnTTFFontHeight  func(font uintptr) int32
	fnTTFFontAscent  func(font uintptr) int32
	fnTTFFontDescent func(font uintptr) int32

	// SDL_Color is four bytes, so it travels in a single register word
	// on every ABI purego supports; declared as uint32 to avoid
	// struct-by-value registration.
	fnTTFRenderTextSolid func(font uintptr, text uintptr, fg uint32) uintptr
)

func ttfLibName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libSDL_ttf-2.0.0.dylib"
	case "windows":
		return "SDL_ttf.dll"
	default:
		return "libSDL_ttf-2.0.so.0"
	}
}

// LoadTTF loads the SDL_ttf dynamic library and registers its function
// pointers. An empty path falls back to LUASDL_TTF_PATH and then the
// platform default name. Calls after the first are no-ops.
func LoadTTF(path string) error {
	ttfOnce.Do(func() {
		libPath := libraryPath(path, "LUASDL_TTF_PATH", ttfLibName())
		log.Printf("ffi: loading SDL_ttf from: %s", libPath)

		ttfHandle, ttfErr = openLibrary(libPath)
		if ttfErr != nil {
			ttfErr = fmt.Errorf("failed to load SDL_ttf library from %s: %w", libPath, ttfErr)
			return
		}

		purego.RegisterLibFunc(&fnTTFInit, ttfHandle, "TTF_Init")
		purego.RegisterLibFunc(&fnTTFQuit, ttfHandle, "TTF_Quit")
		purego.RegisterLibFunc(&fnTTFWasInit, ttfHandle, "TTF_WasInit")
		purego.RegisterLibFunc(&fnTTFOpenFont, ttfHandle, "TTF_OpenFont")
		purego.RegisterLibFunc(&fnTTFCloseFont, ttfHandle, "TTF_CloseFont")
		purego.RegisterLibFunc(&fnTTFFontHeight, ttfHandle, "TTF_FontHeight")
		purego.RegisterLibFunc(&fnTTFFontAscent, ttfHandle, "TTF_FontAscent")
		purego.RegisterLibFunc(&fnTTFFontDescent, ttfHandle, "TTF_FontDescent")
		purego.RegisterLibFunc(&fnTTFRenderTextSolid, ttfHandle, "TTF_RenderText_Solid")

		ttfInitialized = true
	})

	return ttfErr
}

// TTFLoaded reports whether the SDL_ttf library has been loaded.
func TTFLoaded() bool {
	return ttfInitialized
}

// TTFInit initializes the truetype font API.
func TTFInit() error {
	if !ttfInitialized {
		if err := LoadTTF(""); err != nil {
			return err
		}
	}
	if fnTTFInit() != 0 {
		return fmt.Errorf("TTF_Init: %s", GetError())
	}
	return nil
}

// TTFWasInit reports whether the truetype font API is initialized.
func TTFWasInit() bool {
	if !ttfInitialized {
		return false
	}
	return fnTTFWasInit() != 0
}

// TTFQuit shuts down the truetype font API.
func TTFQuit() {
	if !ttfInitialized {
		return
	}
	fnTTFQuit()
}

// TTFOpenFont opens a font file at the given point size and returns
// its opaque handle, or 0 on failure.
func TTFOpenFont(path string, ptsize int) FontHandle {
	if !ttfInitialized {
		return 0
	}
	pathBytes := append([]byte(path), 0)
	font := fnTTFOpenFont(uintptr(unsafe.Pointer(&pathBytes[0])), int32(ptsize))
	runtime.KeepAlive(pathBytes)
	return FontHandle(font)
}

// TTFCloseFont frees a previously opened font.
func TTFCloseFont(font FontHandle) {
	if !ttfInitialized || font == 0 {
		return
	}
	fnTTFCloseFont(uintptr(font))
}

// TTFFontHeight returns the maximum pixel height of glyphs in the font.
func TTFFontHeight(font FontHandle) int {
	if !ttfInitialized {
		return 0
	}
	return int(fnTTFFontHeight(uintptr(font)))
}

// TTFFontAscent returns the maximum pixel ascent of glyphs in the font.
func TTFFontAscent(font FontHandle) int {
	if !ttfInitialized {
		return 0
	}
	return int(fnTTFFontAscent(uintptr(font)))
}

// TTFFontDescent returns the maximum pixel descent of glyphs in the font.
func TTFFontDescent(font FontHandle) int {
	if !ttfInitialized {
		return 0
	}
	return int(fnTTFFontDescent(uintptr(font)))
}

// TTFRenderTextSolid renders text in the given color onto a new
// 8-bit palettized surface owned by the caller, or nil on failure.
func TTFRenderTextSolid(font FontHandle, text string, color Color) *Surface {
	if !ttfInitialized {
		return nil
	}
	textBytes := append([]byte(text), 0)
	fg := uint32(color.R) | uint32(color.G)<<8 | uint32(color.B)<<16 | uint32(color.Unused)<<24
	surface := fnTTFRenderTextSolid(uintptr(font), uintptr(unsafe.Pointer(&textBytes[0])), fg)
	runtime.KeepAlive(textBytes)
	return SurfaceFromPtr(surface)
}
