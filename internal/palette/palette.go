// Package palette holds the game's colours as hex strings and turns them
// into usable values at startup.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrBadColor is wrapped by every parse failure.
var ErrBadColor = errors.New("bad color")

// Palette is the colour scheme in its declared form.
type Palette struct {
	Background   string
	Board        string
	Head         string
	Body         string
	Food         string
	Button       string
	ButtonBorder string
	Text         string
}

// Colors is a parsed Palette.
type Colors struct {
	Background   color.RGBA
	Board        color.RGBA
	Head         color.RGBA
	Body         color.RGBA
	Food         color.RGBA
	Button       color.RGBA
	ButtonBorder color.RGBA
	Text         color.RGBA
}

// Default is the scheme the game ships with.
func Default() Palette {
	return Palette{
		Background:   "#9bba59",
		Board:        "#ab8c99",
		Head:         "#2059d9",
		Body:         "#c77a80cc",
		Food:         "#808000",
		Button:       "#262626",
		ButtonBorder: "#000000",
		Text:         "#e6e6e6",
	}
}

// Parse converts every entry, reporting all malformed ones together.
func (p Palette) Parse() (Colors, error) {
	var (
		c    Colors
		merr *multierror.Error
	)
	for _, e := range []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"background", p.Background, &c.Background},
		{"board", p.Board, &c.Board},
		{"head", p.Head, &c.Head},
		{"body", p.Body, &c.Body},
		{"food", p.Food, &c.Food},
		{"button", p.Button, &c.Button},
		{"button border", p.ButtonBorder, &c.ButtonBorder},
		{"text", p.Text, &c.Text},
	} {
		v, err := ParseHex(e.src)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", e.name, err))
			continue
		}
		*e.dst = v
	}
	return c, merr.ErrorOrNil()
}

// ParseHex reads #rgb, #rrggbb or #rrggbbaa.
func ParseHex(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w %q: missing #", ErrBadColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w %q: want 3, 6 or 8 hex digits", ErrBadColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
