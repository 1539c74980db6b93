package style

import (
	"fmt"
	"image/color"
	"strings"
	"unicode"
)

// Gradient is a two color background gradient.
type Gradient struct {
	From     color.NRGBA
	To       color.NRGBA
	Vertical bool
}

// ParseGradient parses "<color> <color> [vertical|horizontal]", orientation
// token may appear in any position. Tokens are separated by whitespace outside
// of parentheses so "rgb(0, 0, 0)" is a single token. When s is malformed def
// is returned unchanged together with an error wrapping ErrMalformed.
func ParseGradient(s string, def Gradient) (Gradient, error) {
	var (
		g           = def
		colors      []color.NRGBA
		orientation bool
	)
	for _, tok := range splitTopLevel(s) {
		switch strings.ToLower(tok) {
		case "vertical", "horizontal":
			if orientation {
				return def, fmt.Errorf("%w: gradient %q: orientation specified twice", ErrMalformed, s)
			}
			orientation = true
			g.Vertical = strings.EqualFold(tok, "vertical")
		default:
			c, err := ParseColor(tok)
			if err != nil {
				return def, fmt.Errorf("%w: gradient %q: %w", ErrMalformed, s, err)
			}
			colors = append(colors, c)
		}
	}
	if len(colors) != 2 {
		return def, fmt.Errorf("%w: gradient %q: expected 2 colors, got %d", ErrMalformed, s, len(colors))
	}
	g.From, g.To = colors[0], colors[1]
	return g, nil
}

// splitTopLevel splits s on whitespace which is not enclosed in parentheses.
func splitTopLevel(s string) []string {
	var (
		tokens []string
		depth  int
		start  = -1
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case unicode.IsSpace(r) && depth == 0:
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}
