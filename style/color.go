package style

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Black is returned for color literals which cannot be parsed.
var Black = color.NRGBA{A: 0xff}

// ParseColor parses #RRGGBB, rgb(r,g,b), rgba(r,g,b,a) and bare "r,g,b[,a]"
// literals. Channels are integers in 0..255, alpha defaults to 255. On failure
// Black is returned together with an error wrapping ErrMalformed.
func ParseColor(s string) (color.NRGBA, error) {
	str := strings.TrimSpace(s)
	lower := strings.ToLower(str)

	var (
		c   color.NRGBA
		err error
	)
	switch {
	case strings.HasPrefix(lower, "#"):
		c, err = parseHex(str[1:])
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		c, err = parseChannels(str[len("rgba("):len(str)-1], 4)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		c, err = parseChannels(str[len("rgb("):len(str)-1], 3)
	default:
		c, err = parseChannels(str, 0)
	}
	if err != nil {
		return Black, fmt.Errorf("%w: color %q: %w", ErrMalformed, s, err)
	}
	return c, nil
}

// FormatColor returns canonical rgba(r,g,b,a) form of the color.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

func parseHex(s string) (color.NRGBA, error) {
	if len(s) != 6 {
		return Black, fmt.Errorf("expected 6 hex digits, got %d", len(s))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black, err
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// parseChannels parses comma separated channel list, want is the required
// number of channels or 0 when both 3 and 4 are acceptable.
func parseChannels(s string, want int) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	n := len(parts)
	if (want != 0 && n != want) || (want == 0 && n != 3 && n != 4) {
		return Black, fmt.Errorf("unexpected number of channels %d", n)
	}

	ch := [4]uint8{0, 0, 0, 0xff}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Black, err
		}
		if v < 0 || v > 255 {
			return Black, fmt.Errorf("channel %d out of range: %d", i, v)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// LerpColor interpolates between two colors in RGB space, t is clamped to
// [0, 1].
func LerpColor(from, to color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))

	a := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	b := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}
	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()

	alpha := float64(from.A) + (float64(to.A)-float64(from.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}
