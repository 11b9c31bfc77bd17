// Package contrast implements the WCAG 2.x contrast arithmetic used when
// reviewing layer symbology: relative luminance, contrast ratio, and the
// rating bands for graphical objects.
package contrast

import (
	"fmt"
	"math"
	"strings"
)

// RGB is an sRGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" or "rrggbb" into an RGB.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}

	var c RGB
	if _, err := fmt.Sscanf(strings.ToLower(s), "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// Hex returns the "#rrggbb" form of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RelativeLuminance computes WCAG relative luminance with the standard sRGB
// linearization (0.03928 threshold, 2.4 gamma).
func RelativeLuminance(c RGB) float64 {
	adjust := func(v uint8) float64 {
		f := float64(v) / 255.0
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}

	return 0.2126*adjust(c.R) + 0.7152*adjust(c.G) + 0.0722*adjust(c.B)
}

// Ratio computes the WCAG contrast ratio between two colors, from 1 (same
// luminance) to 21 (black on white). Order of arguments does not matter.
func Ratio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)

	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)

	return (lighter + 0.05) / (darker + 0.05)
}

// Rating maps a contrast ratio onto the WCAG bands for graphical objects:
// 3:1 is the minimum (AA18), 4.5:1 also covers regular text (AA), 7:1
// exceeds all requirements (AAA).
func Rating(ratio float64) string {
	switch {
	case ratio >= 7.0:
		return "AAA"
	case ratio >= 4.5:
		return "AA"
	case ratio >= 3.0:
		return "AA18"
	default:
		return "Fail"
	}
}
