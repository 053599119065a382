package palette

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#9bba59", color.RGBA{0x9b, 0xba, 0x59, 0xff}},
		{"#808000", color.RGBA{0x80, 0x80, 0x00, 0xff}},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#c77a80cc", color.RGBA{0xc7, 0x7a, 0x80, 0xcc}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexRejects(t *testing.T) {
	for _, in := range []string{"", "9bba59", "#12345", "#gggggg", "#1234567890"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseHex(%q) = %v, want ErrBadColor", in, err)
		}
	}
}

func TestDefaultParses(t *testing.T) {
	c, err := Default().Parse()
	if err != nil {
		t.Fatalf("default palette: %v", err)
	}
	if c.Food != (color.RGBA{0x80, 0x80, 0x00, 0xff}) {
		t.Errorf("food = %v", c.Food)
	}
}

func TestParseReportsEveryBadEntry(t *testing.T) {
	p := Default()
	p.Head = "blue"
	p.Food = "#zz0000"

	_, err := p.Parse()
	if !errors.Is(err, ErrBadColor) {
		t.Fatalf("got %v, want ErrBadColor", err)
	}
	for _, name := range []string{"head", "food"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}
