package luasdl

import "testing"

func TestFormatError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"loadBMP", "Couldn't open test.bmp", "loadBMP: Couldn't open test.bmp"},
		{"setVideoMode", "No available video device", "setVideoMode: No available video device"},
		{"openFont", "", "openFont: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatError(tt.name, tt.message); got != tt.want {
				t.Errorf("formatError(%q, %q) = %q, want %q", tt.name, tt.message, got, tt.want)
			}
		})
	}
}

// sdlError reads the library's last-error text, which is empty while
// no library is loaded; the label and separator still come through.
func TestSDLErrorWithoutLibrary(t *testing.T) {
	err := sdlError("setVideoMode")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "setVideoMode: " {
		t.Errorf("err = %q, want %q", err.Error(), "setVideoMode: ")
	}
}
