package style

import (
	"fmt"
	"image/color"
	"strconv"

	"oss/anim"
)

// Rule is the value of a single property. Its kind is fixed when the rule is
// created, updates only retarget the underlying value. Zero value is an unset
// rule.
type Rule struct {
	kind   Kind
	raw    string
	color  *anim.Value[color.NRGBA]
	number *anim.Value[float64]
	parser *Parser
}

// NewColorRule creates a color rule resting at c.
func NewColorRule(c color.NRGBA, p *Parser, timing anim.Timing) *Rule {
	return &Rule{
		kind:   KindColor,
		raw:    FormatColor(c),
		color:  anim.New(c, LerpColor, timing),
		parser: p,
	}
}

// NewNumberRule creates a number rule resting at v.
func NewNumberRule(v float64, p *Parser, timing anim.Timing) *Rule {
	return &Rule{
		kind:   KindNumber,
		raw:    formatNumber(v),
		number: anim.NewFloat(v, timing),
		parser: p,
	}
}

// NewStringRule creates a rule holding opaque string s.
func NewStringRule(s string, p *Parser) *Rule {
	return &Rule{kind: KindString, raw: s, parser: p}
}

// Kind returns variant of the rule.
func (r *Rule) Kind() Kind {
	return r.kind
}

// Raw returns the last string the rule was set from.
func (r *Rule) Raw() string {
	return r.raw
}

// String returns the effective value: for colors and numbers the current,
// possibly mid transition value, for other kinds the stored string.
func (r *Rule) String() string {
	switch r.kind {
	case KindColor:
		return FormatColor(r.color.Current())
	case KindNumber:
		return formatNumber(r.number.Current())
	default:
		return r.raw
	}
}

// SetValue parses s according to the rule kind. Colors change immediately,
// numbers transition toward the new value. Malformed numbers leave the rule
// untouched.
func (r *Rule) SetValue(s string) {
	switch r.kind {
	case KindColor:
		r.color.Reset(r.parserOrNop().Color(s))
	case KindNumber:
		v, ok := r.parserOrNop().Number(s)
		if !ok {
			return
		}
		r.number.AnimateTo(v)
	}
	r.raw = s
}

// AnimateTo is SetValue which transitions colors as well.
func (r *Rule) AnimateTo(s string) {
	if r.kind != KindColor {
		r.SetValue(s)
		return
	}
	r.color.AnimateTo(r.parserOrNop().Color(s))
	r.raw = s
}

// Animating reports whether the rule value is in transition.
func (r *Rule) Animating() bool {
	switch r.kind {
	case KindColor:
		return r.color.Animating()
	case KindNumber:
		return r.number.Animating()
	}
	return false
}

// Color returns current color. Panics if the rule does not hold a color.
func (r *Rule) Color() color.NRGBA {
	return r.AnimatableColor().Current()
}

// Number returns current number. Panics if the rule does not hold a number.
func (r *Rule) Number() float64 {
	return r.AnimatableNumber().Current()
}

// AnimatableColor exposes underlying color value. Panics if the rule does not
// hold a color.
func (r *Rule) AnimatableColor() *anim.Value[color.NRGBA] {
	r.mustBe(KindColor)
	return r.color
}

// AnimatableNumber exposes underlying scalar value. Panics if the rule does
// not hold a number.
func (r *Rule) AnimatableNumber() *anim.Value[float64] {
	r.mustBe(KindNumber)
	return r.number
}

func (r *Rule) mustBe(k Kind) {
	if r.kind != k {
		// this is a programming error
		panic(fmt.Sprintf("style: %s access to %s rule", k, r.kind))
	}
}

func (r *Rule) parserOrNop() *Parser {
	if r.parser == nil {
		r.parser = NewParser(nil)
	}
	return r.parser
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
