package style

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/image/math/f64"
)

// Rect is a boundary supplied by the caller: top left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Width > 0 && r.Height > 0)
}

// Origin returns top left corner of the rectangle.
func (r Rect) Origin() f64.Vec2 {
	return f64.Vec2{r.X, r.Y}
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g+%g+%g", r.Width, r.Height, r.X, r.Y)
}

// ResolvePosition computes absolute position of an element of size boundary
// inside parent. The literal holds one or two tokens, each a keyword (center,
// left, right, top, bottom) or a dimension literal; a missing token defaults
// to center and an empty literal places the element at the parent origin.
// Zero area boundaries resolve to the zero point.
func ResolvePosition(s string, boundary, parent Rect) (f64.Vec2, error) {
	if boundary.Empty() || parent.Empty() {
		return f64.Vec2{}, nil
	}

	fields := strings.Fields(s)
	var err error
	if len(fields) > 2 {
		err = fmt.Errorf("%w: position %q: too many tokens", ErrMalformed, s)
		fields = fields[:2]
	}

	var xs, ys string
	switch len(fields) {
	case 0:
		return parent.Origin(), err
	case 1:
		xs, ys = fields[0], "center"
		if verticalOnly(xs) {
			xs, ys = "center", fields[0]
		}
	case 2:
		xs, ys = fields[0], fields[1]
		if verticalOnly(xs) || horizontalOnly(ys) {
			xs, ys = ys, xs
		}
	}

	x, errX := resolveAxis(xs, true, boundary.Width, parent.Width)
	y, errY := resolveAxis(ys, false, boundary.Height, parent.Height)
	err = multierr.Combine(err, errX, errY)
	if err != nil {
		err = fmt.Errorf("position %q: %w", s, err)
	}
	return f64.Vec2{parent.X + x, parent.Y + y}, err
}

func verticalOnly(tok string) bool {
	v, err := ParseValue(tok)
	return err == nil && v.Vertical() && v != ValueCenter
}

func horizontalOnly(tok string) bool {
	v, err := ParseValue(tok)
	return err == nil && v.Horizontal() && v != ValueCenter
}

// resolveAxis returns offset of the element from the parent edge along one
// axis.
func resolveAxis(tok string, horizontal bool, size, parent float64) (float64, error) {
	if v, err := ParseValue(tok); err == nil {
		switch {
		case v == ValueCenter:
			return (parent - size) / 2, nil
		case v == ValueAuto:
			return AutoDimension, nil
		case horizontal && v == ValueLeft, !horizontal && v == ValueTop:
			return 0, nil
		case horizontal && v == ValueRight, !horizontal && v == ValueBottom:
			return parent - size, nil
		}
		return 0, fmt.Errorf("%w: keyword %q is not allowed on this axis", ErrMalformed, tok)
	}
	return ParseDimension(tok, parent)
}

// Dimension resolves the effective value of a dimension property against the
// parent dimension.
func (n *Node) Dimension(key Key, parentDimension float64) float64 {
	return n.parser.Dimension(n.Style(key), parentDimension)
}

// ComputeElementTransform resolves width, height and position of the node
// inside parent. Auto width and height fill the parent.
func (n *Node) ComputeElementTransform(parent Rect) Rect {
	if parent.Empty() {
		return Rect{}
	}
	el := Rect{
		Width:  n.axisSize(KeyWidth, parent.Width),
		Height: n.axisSize(KeyHeight, parent.Height),
	}
	pos := n.Position(el, parent)
	el.X, el.Y = pos[0], pos[1]
	return el
}

func (n *Node) axisSize(key Key, parent float64) float64 {
	raw := n.Style(key)
	if IsAuto(raw) {
		return parent
	}
	return n.parser.Dimension(raw, parent)
}

// Position resolves the position property for an element of size boundary
// inside parent.
func (n *Node) Position(boundary, parent Rect) f64.Vec2 {
	return n.parser.Position(n.Style(KeyPosition), boundary, parent)
}

// BackgroundPosition resolves the background-position property for a
// background of size boundary inside element box parent.
func (n *Node) BackgroundPosition(boundary, parent Rect) f64.Vec2 {
	return n.parser.Position(n.Style(KeyBackgroundPosition), boundary, parent)
}

// ComputeBackgroundTransform applies background-size to an image of intrinsic
// size image drawn into element. The result is anchored at the element origin,
// background-position is applied separately.
//
// cover scales the image uniformly until it covers the box, contain until it
// fits the box. One or two dimension literals set width and height, an auto
// component keeps the aspect ratio. Auto or missing background-size keeps the
// intrinsic size.
func (n *Node) ComputeBackgroundTransform(image, element Rect) Rect {
	if image.Empty() || element.Empty() {
		return Rect{}
	}
	out := Rect{X: element.X, Y: element.Y, Width: image.Width, Height: image.Height}

	raw := n.Style(KeyBackgroundSize)
	if IsAuto(raw) {
		return out
	}

	fields := strings.Fields(raw)
	if len(fields) == 1 {
		if v, err := ParseValue(fields[0]); err == nil {
			sx, sy := element.Width/image.Width, element.Height/image.Height
			switch v {
			case ValueCover:
				return scaleRect(out, math.Max(sx, sy))
			case ValueContain:
				return scaleRect(out, math.Min(sx, sy))
			case ValueAuto:
				return out
			}
			n.log.Warn("Unsupported background size keyword", zap.String("value", raw))
			return out
		}
	}
	if len(fields) > 2 {
		n.log.Warn("Too many background size tokens, extra ignored", zap.String("value", raw))
	}

	ws, hs := fields[0], "auto"
	if len(fields) > 1 {
		hs = fields[1]
	}
	switch {
	case IsAuto(ws) && IsAuto(hs):
	case IsAuto(ws):
		out.Height = n.parser.Dimension(hs, element.Height)
		out.Width = image.Width * out.Height / image.Height
	case IsAuto(hs):
		out.Width = n.parser.Dimension(ws, element.Width)
		out.Height = image.Height * out.Width / image.Width
	default:
		out.Width = n.parser.Dimension(ws, element.Width)
		out.Height = n.parser.Dimension(hs, element.Height)
	}
	return out
}

func scaleRect(r Rect, scale float64) Rect {
	r.Width *= scale
	r.Height *= scale
	return r
}
