package style

import (
	"errors"
	"image/color"

	"go.uber.org/zap"
	"golang.org/x/image/math/f64"
)

// ErrMalformed is wrapped by every literal parse failure.
var ErrMalformed = errors.New("malformed literal")

// Parser turns raw style strings into typed values. Unlike the package level
// Parse* functions it never returns errors: every fallback is reported to the
// logger and a documented default is returned instead.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new literal parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("style-parser")}
}

// Key returns the property for name or KeyInvalid.
func (p *Parser) Key(name string) Key {
	k, err := ParseKey(name)
	if err != nil {
		p.log.Warn("Unknown style key", zap.String("key", name))
		return KeyInvalid
	}
	return k
}

// KeyName returns canonical name of the property or empty string for
// invalid keys.
func (p *Parser) KeyName(k Key) string {
	if !k.IsValid() {
		p.log.Warn("Unknown style key", zap.Int("key", int(k)))
		return ""
	}
	return k.String()
}

// Value returns the keyword for name or ValueInvalid.
func (p *Parser) Value(name string) Value {
	v, err := ParseValue(name)
	if err != nil {
		p.log.Warn("Unknown style value", zap.String("value", name))
		return ValueInvalid
	}
	return v
}

// ValueName returns canonical name of the keyword or empty string for invalid
// keywords.
func (p *Parser) ValueName(v Value) string {
	if !v.IsValid() {
		p.log.Warn("Unknown style value", zap.Int("value", int(v)))
		return ""
	}
	return v.String()
}

// Color parses a color literal, falling back to opaque black.
func (p *Parser) Color(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		p.log.Warn("Unable to parse color, using black", zap.String("value", s), zap.Error(err))
	}
	return c
}

// Gradient parses a gradient literal, falling back to def.
func (p *Parser) Gradient(s string, def Gradient) Gradient {
	g, err := ParseGradient(s, def)
	if err != nil {
		p.log.Warn("Unable to parse background gradient", zap.String("value", s), zap.Error(err))
	}
	return g
}

// Dimension resolves a dimension literal against the parent dimension. Auto
// and empty literals resolve to AutoDimension, malformed ones to 0.
func (p *Parser) Dimension(s string, parent float64) float64 {
	d, err := ParseDimension(s, parent)
	if err != nil {
		p.log.Warn("Unable to parse dimension", zap.String("value", s), zap.Error(err))
	}
	return d
}

// Number parses a numeric literal. The second result is false when the
// literal is malformed.
func (p *Parser) Number(s string) (float64, bool) {
	v, err := ParseNumber(s)
	if err != nil {
		p.log.Warn("Unable to parse number", zap.String("value", s), zap.Error(err))
		return 0, false
	}
	return v, true
}

// Position resolves a position literal into an absolute point. Malformed axis
// tokens resolve to the parent edge.
func (p *Parser) Position(s string, boundary, parent Rect) f64.Vec2 {
	pt, err := ResolvePosition(s, boundary, parent)
	if err != nil {
		p.log.Warn("Unable to parse position", zap.String("value", s), zap.Error(err))
	}
	return pt
}
