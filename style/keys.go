// Package style resolves CSS-like style declarations: typed rules keyed by a
// closed property vocabulary, organized in a tree of selector scopes with
// inheritance, and geometry computed against caller supplied boundaries.
package style

//go:generate go tool go-enum --marshal --names --nocase --mustparse

// Style property names. Canonical form is lowercase and hyphenated.
// ENUM(opacity, mask, display, width, height, position, background-color, background-image, background-video, background-size, background-position, background-blend-mode, background-gradient, background-repeat, font-family, color, text-align, font-size, text-transform, text-background-color, text-padding, text-max-width, line-height)
type Key int

// Recognized style value keywords.
// ENUM(none, auto, center, left, right, top, bottom, cover, contain, alpha, add, subtract, screen, multiply, disabled, uppercase, lowercase, capitalize, repeat, repeat-x, repeat-y)
type Value int

// Variant of the value held by a rule.
// ENUM(unset, color, number, string)
type Kind int

const (
	// KeyInvalid is returned by lookups of unknown property names.
	KeyInvalid Key = -1
	// ValueInvalid is returned by lookups of unknown value keywords.
	ValueInvalid Value = -1
)

// kinds is the closed schema mapping every property to the variant its rules
// carry. Properties not listed here hold opaque strings.
var kinds = map[Key]Kind{
	KeyOpacity:             KindNumber,
	KeyFontSize:            KindNumber,
	KeyLineHeight:          KindNumber,
	KeyTextPadding:         KindNumber,
	KeyBackgroundColor:     KindColor,
	KeyColor:               KindColor,
	KeyTextBackgroundColor: KindColor,
}

// Kind returns the rule variant for the property. Invalid keys report
// KindUnset.
func (x Key) Kind() Kind {
	if !x.IsValid() {
		return KindUnset
	}
	if k, ok := kinds[x]; ok {
		return k
	}
	return KindString
}

// ValidKey reports whether name is a recognized property.
func ValidKey(name string) bool {
	_, err := ParseKey(name)
	return err == nil
}

// ValidValue reports whether name is a recognized value keyword.
func ValidValue(name string) bool {
	_, err := ParseValue(name)
	return err == nil
}

// Horizontal reports whether the keyword names a horizontal edge or center.
func (x Value) Horizontal() bool {
	return x == ValueLeft || x == ValueRight || x == ValueCenter
}

// Vertical reports whether the keyword names a vertical edge or center.
func (x Value) Vertical() bool {
	return x == ValueTop || x == ValueBottom || x == ValueCenter
}
