// Package ffi provides Go bindings to the SDL 1.2 and SDL_ttf C ABIs
// via purego. This implementation uses purego for FFI, eliminating the
// need for CGo: the libraries are loaded at runtime and symbols are
// resolved once, process-wide.
package ffi

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ============================================================================
// Library Loading
// ============================================================================

var (
	sdlHandle   uintptr
	sdlOnce     sync.Once
	sdlErr      error
	initialized bool
)

// Library function pointers (populated by loadSDL)
var (
	// Core functions
	fnInit       func(flags uint32) int32
	fnQuit       func()
	fnWasInit    func(flags uint32) uint32
	fnGetError   func() uintptr
	fnClearError func()
	fnDelay      func(ms uint32)

	// Video functions
	fnSetVideoMode    func(width, height, bpp int32, flags uint32) uintptr
	fnGetVideoSurface func() uintptr
	fnWMSetCaption    func(title uintptr, icon uintptr)
	fnFlip            func(surface uintptr) int32
	fnFillRect        func(dst uintptr, rect uintptr, color uint32) int32
	fnMapRGB          func(format uintptr, r, g, b uint8) uint32
	fnUpperBlit       func(src, srcRect, dst, dstRect uintptr) int32
	fnSetClipRect     func(surface uintptr, rect uintptr) int32
	fnFreeSurface     func(surface uintptr)

	// Surface loading (SDL_LoadBMP is a macro over these two)
	fnRWFromFile func(file uintptr, mode uintptr) uintptr
	fnLoadBMPRW  func(src uintptr, freesrc int32) uintptr

	// Joystick functions
	fnNumJoysticks       func() int32
	fnJoystickName       func(index int32) uintptr
	fnJoystickOpen       func(index int32) uintptr
	fnJoystickClose      func(joystick uintptr)
	fnJoystickNumAxes    func(joystick uintptr) int32
	fnJoystickNumBalls   func(joystick uintptr) int32
	fnJoystickNumHats    func(joystick uintptr) int32
	fnJoystickNumButtons func(joystick uintptr) int32
	fnJoystickUpdate     func()
)

// libraryPath returns the path to the SDL dynamic library. An explicit
// path wins, then the LUASDL_SDL_PATH environment variable, then a
// short search of common locations, then the bare library name (let
// the system loader find it).
func libraryPath(explicit, envVar, libName string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(envVar); path != "" {
		return path
	}

	searchPaths := []string{
		libName,
		filepath.Join(".", libName),
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}

	return libName
}

func sdlLibName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libSDL-1.2.0.dylib"
	case "windows":
		return "SDL.dll"
	default:
		return "libSDL-1.2.so.0"
	}
}

// Load loads the SDL dynamic library and registers all function
// pointers. An empty path falls back to LUASDL_SDL_PATH and then the
// platform default name. Calls after the first are no-ops.
func Load(path string) error {
	sdlOnce.Do(func() {
		libPath := libraryPath(path, "LUASDL_SDL_PATH", sdlLibName())
		log.Printf("ffi: loading SDL from: %s", libPath)

		sdlHandle, sdlErr = openLibrary(libPath)
		if sdlErr != nil {
			sdlErr = fmt.Errorf("failed to load SDL library from %s: %w", libPath, sdlErr)
			return
		}

		registerCoreFunctions()
		registerVideoFunctions()
		registerJoystickFunctions()

		initialized = true
	})

	return sdlErr
}

// Loaded reports whether the SDL library has been loaded.
func Loaded() bool {
	return initialized
}

func registerCoreFunctions() {
	purego.RegisterLibFunc(&fnInit, sdlHandle, "SDL_Init")
	purego.RegisterLibFunc(&fnQuit, sdlHandle, "SDL_Quit")
	purego.RegisterLibFunc(&fnWasInit, sdlHandle, "SDL_WasInit")
	purego.RegisterLibFunc(&fnGetError, sdlHandle, "SDL_GetError")
	purego.RegisterLibFunc(&fnClearError, sdlHandle, "SDL_ClearError")
	purego.RegisterLibFunc(&fnDelay, sdlHandle, "SDL_Delay")
}

func registerVideoFunctions() {
	purego.RegisterLibFunc(&fnSetVideoMode, sdlHandle, "SDL_SetVideoMode")
	purego.RegisterLibFunc(&fnGetVideoSurface, sdlHandle, "SDL_GetVideoSurface")
	purego.RegisterLibFunc(&fnWMSetCaption, sdlHandle, "SDL_WM_SetCaption")
	purego.RegisterLibFunc(&fnFlip, sdlHandle, "SDL_Flip")
	purego.RegisterLibFunc(&fnFillRect, sdlHandle, "SDL_FillRect")
	purego.RegisterLibFunc(&fnMapRGB, sdlHandle, "SDL_MapRGB")
	// SDL_BlitSurface is a macro over SDL_UpperBlit
	purego.RegisterLibFunc(&fnUpperBlit, sdlHandle, "SDL_UpperBlit")
	purego.RegisterLibFunc(&fnSetClipRect, sdlHandle, "SDL_SetClipRect")
	purego.RegisterLibFunc(&fnFreeSurface, sdlHandle, "SDL_FreeSurface")
	purego.RegisterLibFunc(&fnRWFromFile, sdlHandle, "SDL_RWFromFile")
	purego.RegisterLibFunc(&fnLoadBMPRW, sdlHandle, "SDL_LoadBMP_RW")
}

func registerJoystickFunctions() {
	purego.RegisterLibFunc(&fnNumJoysticks, sdlHandle, "SDL_NumJoysticks")
	purego.RegisterLibFunc(&fnJoystickName, sdlHandle, "SDL_JoystickName")
	purego.RegisterLibFunc(&fnJoystickOpen, sdlHandle, "SDL_JoystickOpen")
	purego.RegisterLibFunc(&fnJoystickClose, sdlHandle, "SDL_JoystickClose")
	purego.RegisterLibFunc(&fnJoystickNumAxes, sdlHandle, "SDL_JoystickNumAxes")
	purego.RegisterLibFunc(&fnJoystickNumBalls, sdlHandle, "SDL_JoystickNumBalls")
	purego.RegisterLibFunc(&fnJoystickNumHats, sdlHandle, "SDL_JoystickNumHats")
	purego.RegisterLibFunc(&fnJoystickNumButtons, sdlHandle, "SDL_JoystickNumButtons")
	purego.RegisterLibFunc(&fnJoystickUpdate, sdlHandle, "SDL_JoystickUpdate")
}

// ============================================================================
// String helpers
// ============================================================================

// goString reads a null-terminated C string at ptr into a Go string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
		if length > 1<<20 { // Safety limit: 1MB
			break
		}
	}
	if length == 0 {
		return ""
	}
	bytes := make([]byte, length)
	for i := 0; i < length; i++ {
		bytes[i] = *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
	}
	return string(bytes)
}

// ============================================================================
// Core
// ============================================================================

// Init calls SDL_Init with the given subsystem flags.
func Init(flags uint32) error {
	if !initialized {
		if err := Load(""); err != nil {
			return err
		}
	}
	if fnInit(flags) != 0 {
		return fmt.Errorf("SDL_Init: %s", GetError())
	}
	return nil
}

// Quit shuts down all SDL subsystems.
func Quit() {
	if !initialized {
		return
	}
	fnQuit()
}

// WasInit returns the mask of subsystems that have been initialized.
func WasInit(flags uint32) uint32 {
	if !initialized {
		return 0
	}
	return fnWasInit(flags)
}

// GetError returns the library's last-error string.
func GetError() string {
	if !initialized {
		return ""
	}
	return goString(fnGetError())
}

// ClearError clears the library's last-error string.
func ClearError() {
	if !initialized {
		return
	}
	fnClearError()
}

// Delay blocks for at least the given number of milliseconds.
func Delay(ms uint32) {
	if !initialized {
		return
	}
	fnDelay(ms)
}

// ============================================================================
// Video
// ============================================================================

// SetVideoMode sets the video mode and returns the borrowed screen
// surface, or nil on failure. The surface is owned by SDL and must
// not be freed.
func SetVideoMode(width, height, bpp int, flags uint32) *Surface {
	if !initialized {
		return nil
	}
	return SurfaceFromPtr(fnSetVideoMode(int32(width), int32(height), int32(bpp), flags))
}

// GetVideoSurface returns the borrowed screen surface, or nil if no
// video mode has been set.
func GetVideoSurface() *Surface {
	if !initialized {
		return nil
	}
	return SurfaceFromPtr(fnGetVideoSurface())
}

// WMSetCaption sets the window title and icon name.
func WMSetCaption(title, icon string) {
	if !initialized {
		return
	}
	titleBytes := append([]byte(title), 0)
	iconBytes := append([]byte(icon), 0)
	fnWMSetCaption(uintptr(unsafe.Pointer(&titleBytes[0])), uintptr(unsafe.Pointer(&iconBytes[0])))
	runtime.KeepAlive(titleBytes)
	runtime.KeepAlive(iconBytes)
}

// Flip swaps the given screen surface to the display.
func Flip(surface *Surface) error {
	if !initialized {
		return errNotLoaded()
	}
	if fnFlip(uintptr(unsafe.Pointer(surface))) != 0 {
		return fmt.Errorf("SDL_Flip: %s", GetError())
	}
	return nil
}

// FillRect fills a rectangle of the surface with a mapped color. A nil
// rect fills the whole surface.
func FillRect(dst *Surface, rect *Rect, color uint32) error {
	if !initialized {
		return errNotLoaded()
	}
	if fnFillRect(uintptr(unsafe.Pointer(dst)), uintptr(unsafe.Pointer(rect)), color) != 0 {
		return fmt.Errorf("SDL_FillRect: %s", GetError())
	}
	return nil
}

// MapRGB maps an RGB triple to a pixel value in the given format.
func MapRGB(format *PixelFormat, r, g, b uint8) uint32 {
	if !initialized {
		return 0
	}
	return fnMapRGB(uintptr(unsafe.Pointer(format)), r, g, b)
}

// BlitSurface performs a clipped blit from src to dst. Nil rects mean
// the whole surface (src) or the top-left corner (dst).
func BlitSurface(src *Surface, srcRect *Rect, dst *Surface, dstRect *Rect) error {
	if !initialized {
		return errNotLoaded()
	}
	result := fnUpperBlit(
		uintptr(unsafe.Pointer(src)), uintptr(unsafe.Pointer(srcRect)),
		uintptr(unsafe.Pointer(dst)), uintptr(unsafe.Pointer(dstRect)),
	)
	if result != 0 {
		return fmt.Errorf("SDL_BlitSurface: %s", GetError())
	}
	return nil
}

// SetClipRect sets the clip rectangle of a surface. A nil rect resets
// the clip to the full surface.
func SetClipRect(surface *Surface, rect *Rect) {
	if !initialized {
		return
	}
	fnSetClipRect(uintptr(unsafe.Pointer(surface)), uintptr(unsafe.Pointer(rect)))
}

// LoadBMP loads a BMP file into a new surface owned by the caller, or
// returns nil on failure.
func LoadBMP(path string) *Surface {
	if !initialized {
		return nil
	}
	pathBytes := append([]byte(path), 0)
	modeBytes := append([]byte("rb"), 0)
	rw := fnRWFromFile(uintptr(unsafe.Pointer(&pathBytes[0])), uintptr(unsafe.Pointer(&modeBytes[0])))
	runtime.KeepAlive(pathBytes)
	runtime.KeepAlive(modeBytes)
	if rw == 0 {
		return nil
	}
	return SurfaceFromPtr(fnLoadBMPRW(rw, 1))
}

// FreeSurface releases a surface previously allocated by SDL.
func FreeSurface(surface *Surface) {
	if !initialized || surface == nil {
		return
	}
	fnFreeSurface(uintptr(unsafe.Pointer(surface)))
}

// ============================================================================
// Joystick
// ============================================================================

// NumJoysticks returns the number of attached joysticks.
func NumJoysticks() int {
	if !initialized {
		return 0
	}
	return int(fnNumJoysticks())
}

// JoystickName returns the implementation-dependent name of a joystick.
func JoystickName(index int) string {
	if !initialized {
		return ""
	}
	return goString(fnJoystickName(int32(index)))
}

// JoystickOpen opens a joystick for use and returns its opaque handle,
// or 0 on failure.
func JoystickOpen(index int) JoystickHandle {
	if !initialized {
		return 0
	}
	return JoystickHandle(fnJoystickOpen(int32(index)))
}

// JoystickClose closes a previously opened joystick.
func JoystickClose(joystick JoystickHandle) {
	if !initialized || joystick == 0 {
		return
	}
	fnJoystickClose(uintptr(joystick))
}

// JoystickNumAxes returns the number of axes of an open joystick.
func JoystickNumAxes(joystick JoystickHandle) int {
	if !initialized {
		return 0
	}
	return int(fnJoystickNumAxes(uintptr(joystick)))
}

// JoystickNumBalls returns the number of trackballs of an open joystick.
func JoystickNumBalls(joystick JoystickHandle) int {
	if !initialized {
		return 0
	}
	return int(fnJoystickNumBalls(uintptr(joystick)))
}

// JoystickNumHats returns the number of hats of an open joystick.
func JoystickNumHats(joystick JoystickHandle) int {
	if !initialized {
		return 0
	}
	return int(fnJoystickNumHats(uintptr(joystick)))
}

// JoystickNumButtons returns the number of buttons of an open joystick.
func JoystickNumButtons(joystick JoystickHandle) int {
	if !initialized {
		return 0
	}
	return int(fnJoystickNumButtons(uintptr(joystick)))
}

// JoystickUpdate polls the current state of all open joysticks.
func JoystickUpdate() {
	if !initialized {
		return
	}
	fnJoystickUpdate()
}

func errNotLoaded() error {
	return fmt.Errorf("SDL library not loaded")
}
