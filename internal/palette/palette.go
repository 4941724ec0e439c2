// Package palette derives the accent colour set written into dotfiles.
package palette

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultFactor is the lightness multiplier used for the derived colour.
const DefaultFactor = 0.9

var (
	// ErrInvalidHex is returned for anything that is not six hex digits.
	ErrInvalidHex = errors.New("invalid hex colour")
	// ErrInvalidFactor is returned for negative, NaN or infinite factors.
	ErrInvalidFactor = errors.New("invalid darken factor")
)

var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Palette is the accent colour and the colour derived from it.
type Palette struct {
	Accent  string  `json:"accent" yaml:"accent"`
	Derived string  `json:"derived" yaml:"derived"`
	Factor  float64 `json:"factor" yaml:"factor"`
}

// New normalises accent and derives its darkened counterpart.
func New(accent string, factor float64) (Palette, error) {
	norm, err := Normalize(accent)
	if err != nil {
		return Palette{}, err
	}
	derived, err := Darken(norm, factor)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Accent: norm, Derived: derived, Factor: factor}, nil
}

// Normalize returns hex as lowercase "#rrggbb".
// The leading '#' is optional on input.
func Normalize(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if !hexPattern.MatchString(hex) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return "#" + strings.ToLower(strings.TrimPrefix(hex, "#")), nil
}

// Parse converts a hex string into a colour with channels in [0,1].
func Parse(hex string) (colorful.Color, error) {
	norm, err := Normalize(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(norm)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return c, nil
}

// HLS returns hue in [0,1), lightness and saturation of hex.
func HLS(hex string) (h, l, s float64, err error) {
	c, err := Parse(hex)
	if err != nil {
		return 0, 0, 0, err
	}
	h, l, s = rgbToHLS(channels(c))
	return h, l, s, nil
}

// Darken multiplies the HLS lightness of hex by factor.
// A factor below 1 darkens, above 1 lightens; lightness is clamped to [0,1].
// Channels are truncated to 0-255, so Darken("#cb7012", 0.9) is "#b66410".
func Darken(hex string, factor float64) (string, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}

	c, err := Parse(hex)
	if err != nil {
		return "", err
	}

	h, l, s := rgbToHLS(channels(c))
	l = math.Max(0, math.Min(1, l*factor))

	r, g, b := hlsToRGB(h, l, s)
	return Format(colorful.Color{R: r, G: g, B: b}), nil
}

// channels returns the 8-bit channels of c divided by 255.
func channels(c colorful.Color) (r, g, b float64) {
	r8, g8, b8 := c.RGB255()
	return float64(r8) / 255, float64(g8) / 255, float64(b8) / 255
}

// Format renders c as lowercase "#rrggbb", truncating each channel.
func Format(c colorful.Color) string {
	c = c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(v * 255)
}
