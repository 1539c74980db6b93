package style

import (
	"image/color"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"oss/anim"
)

// Options control construction of a style tree.
type Options struct {
	Timing   anim.Timing
	Defaults bool
}

// WithTiming sets how number rules (and explicitly animated colors) move
// toward new values.
func WithTiming(timing anim.Timing) func(*Options) {
	return func(o *Options) {
		o.Timing = timing
	}
}

// WithDefaults controls whether root node gets baseline rules on creation.
func WithDefaults(apply bool) func(*Options) {
	return func(o *Options) {
		o.Defaults = apply
	}
}

// Node is a set of rules for one selector scope. It owns child scopes keyed by
// id, class and tag and falls back to its parent for properties it does not
// define. Parent link is established at creation and never changes.
type Node struct {
	name    string
	parent  *Node
	rules   map[Key]*Rule
	ids     map[string]*Node
	classes map[string]*Node
	tags    map[string]*Node

	parser *Parser
	timing anim.Timing
	log    *zap.Logger
}

// New creates root of a style tree. Unless disabled with WithDefaults(false)
// root receives baseline rules, see SetDefaults.
func New(log *zap.Logger, options ...func(*Options)) *Node {
	if log == nil {
		log = zap.NewNop()
	}
	opts := Options{Timing: anim.DefaultTiming, Defaults: true}
	for _, o := range options {
		o(&opts)
	}

	n := newNode("", nil, NewParser(log), opts.Timing, log.Named("style"))
	if opts.Defaults {
		n.SetDefaults()
	}
	return n
}

func newNode(name string, parent *Node, p *Parser, timing anim.Timing, log *zap.Logger) *Node {
	return &Node{
		name:    name,
		parent:  parent,
		rules:   make(map[Key]*Rule),
		ids:     make(map[string]*Node),
		classes: make(map[string]*Node),
		tags:    make(map[string]*Node),
		parser:  p,
		timing:  timing,
		log:     log,
	}
}

// Name returns selector of the node ("#id", ".class" or "tag"), empty for
// root.
func (n *Node) Name() string {
	return n.name
}

// Path returns whitespace separated selectors from root to the node.
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	slices.Reverse(parts)
	return strings.Join(parts, " ")
}

// Parent returns the node this one inherits from, nil for root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Parser returns literal parser shared by the tree.
func (n *Node) Parser() *Parser {
	return n.parser
}

// Style returns the effective string value of the property, walking up the
// parent chain. Properties nobody defines resolve to empty string.
func (n *Node) Style(key Key) string {
	if r, ok := n.Lookup(key); ok {
		return r.String()
	}
	return ""
}

// StyleByName is Style for property name.
func (n *Node) StyleByName(name string) string {
	key := n.parser.Key(name)
	if key == KeyInvalid {
		return ""
	}
	return n.Style(key)
}

// Rule returns rule defined on this node only.
func (n *Node) Rule(key Key) (*Rule, bool) {
	r, ok := n.rules[key]
	return r, ok
}

// Lookup returns rule defined on this node or its nearest ancestor.
func (n *Node) Lookup(key Key) (*Rule, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if r, ok := cur.rules[key]; ok {
			return r, true
		}
	}
	return nil, false
}

// Keys returns properties defined on this node in schema order.
func (n *Node) Keys() []Key {
	keys := make([]Key, 0, len(n.rules))
	for k := range n.rules {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Set updates local rule for the property or creates one. Updating number
// rules starts a transition.
func (n *Node) Set(key Key, value string) {
	if !key.IsValid() {
		n.log.Warn("Ignoring invalid style key", zap.Int("key", int(key)), zap.String("value", value))
		return
	}
	if r, ok := n.rules[key]; ok {
		r.SetValue(value)
		return
	}
	n.rules[key] = n.GenerateRule(key, value)
}

// SetByName is Set for property name.
func (n *Node) SetByName(name, value string) {
	if key := n.parser.Key(name); key != KeyInvalid {
		n.Set(key, value)
	}
}

// GenerateRule creates a rule of the kind the schema prescribes for key.
func (n *Node) GenerateRule(key Key, value string) *Rule {
	var r *Rule
	switch key.Kind() {
	case KindColor:
		r = NewColorRule(n.parser.Color(value), n.parser, n.timing)
	case KindNumber:
		v, _ := n.parser.Number(value)
		r = NewNumberRule(v, n.parser, n.timing)
	case KindString:
		r = NewStringRule(value, n.parser)
	default:
		n.log.Warn("Unable to generate rule for invalid key", zap.Int("key", int(key)), zap.String("value", value))
		r = &Rule{parser: n.parser}
	}
	r.raw = value
	return r
}

var defaults = []struct {
	key   Key
	value string
}{
	{KeyOpacity, "1"},
	{KeyDisplay, "auto"},
	{KeyWidth, "auto"},
	{KeyHeight, "auto"},
	{KeyPosition, "left top"},
	{KeyBackgroundColor, "rgba(0,0,0,0)"},
	{KeyBackgroundSize, "auto"},
	{KeyBackgroundPosition, "left top"},
	{KeyBackgroundBlendMode, "alpha"},
	{KeyBackgroundRepeat, "none"},
	{KeyColor, "rgba(0,0,0,255)"},
	{KeyTextAlign, "left"},
	{KeyTextTransform, "none"},
}

// SetDefaults adds baseline rules for structurally required properties the
// node does not define yet.
func (n *Node) SetDefaults() {
	for _, d := range defaults {
		if _, ok := n.rules[d.key]; !ok {
			n.rules[d.key] = n.GenerateRule(d.key, d.value)
		}
	}
}

// Keyword returns effective value of the property as a keyword. Unset
// properties report ValueInvalid silently, unknown keywords with a
// diagnostic.
func (n *Node) Keyword(key Key) Value {
	raw := strings.TrimSpace(n.Style(key))
	if raw == "" {
		return ValueInvalid
	}
	return n.parser.Value(raw)
}

// Color returns effective color of a color property.
func (n *Node) Color(key Key) (color.NRGBA, bool) {
	r, ok := n.Lookup(key)
	if !ok || r.Kind() != KindColor {
		return color.NRGBA{}, false
	}
	return r.Color(), true
}

// Number returns effective value of a number property.
func (n *Node) Number(key Key) (float64, bool) {
	r, ok := n.Lookup(key)
	if !ok || r.Kind() != KindNumber {
		return 0, false
	}
	return r.Number(), true
}

// Visible reports whether display is not none and opacity is above zero.
func (n *Node) Visible() bool {
	if n.Keyword(KeyDisplay) == ValueNone {
		return false
	}
	if o, ok := n.Number(KeyOpacity); ok && o <= 0 {
		return false
	}
	return true
}

// BackgroundGradient returns effective background gradient or def when none
// is set or it cannot be parsed.
func (n *Node) BackgroundGradient(def Gradient) Gradient {
	raw := n.Style(KeyBackgroundGradient)
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return n.parser.Gradient(raw, def)
}

// ID returns child scope for "#name".
func (n *Node) ID(name string) (*Node, bool) {
	c, ok := n.ids[name]
	return c, ok
}

// Class returns child scope for ".name".
func (n *Node) Class(name string) (*Node, bool) {
	c, ok := n.classes[name]
	return c, ok
}

// Tag returns child scope for bare "name".
func (n *Node) Tag(name string) (*Node, bool) {
	c, ok := n.tags[name]
	return c, ok
}

// Child returns child scope for a single selector.
func (n *Node) Child(selector string) (*Node, bool) {
	m, name := n.scope(selector)
	if name == "" {
		return nil, false
	}
	c, ok := m[name]
	return c, ok
}

// Select walks whitespace separated selector path, "#menu .item" for example.
func (n *Node) Select(path string) (*Node, bool) {
	cur := n
	for sel := range strings.FieldsSeq(path) {
		next, ok := cur.Child(sel)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Children returns child scopes: ids, then classes, then tags, each in
// natural order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.ids)+len(n.classes)+len(n.tags))
	for _, m := range []map[string]*Node{n.ids, n.classes, n.tags} {
		names := make([]string, 0, len(m))
		for name := range m {
			names = append(names, name)
		}
		slices.SortFunc(names, func(a, b string) int {
			switch {
			case natural.Less(a, b):
				return -1
			case natural.Less(b, a):
				return 1
			}
			return 0
		})
		for _, name := range names {
			out = append(out, m[name])
		}
	}
	return out
}

// Walk visits the node and all its descendants depth first.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// scope returns child map and bare name for the selector.
func (n *Node) scope(selector string) (map[string]*Node, string) {
	switch {
	case strings.HasPrefix(selector, "#"):
		return n.ids, selector[1:]
	case strings.HasPrefix(selector, "."):
		return n.classes, selector[1:]
	default:
		return n.tags, selector
	}
}

// child returns existing child scope for selector or creates it.
func (n *Node) child(selector string) (*Node, bool) {
	m, name := n.scope(selector)
	if name == "" || strings.ContainsAny(name, "#. \t") {
		return nil, false
	}
	if c, ok := m[name]; ok {
		return c, true
	}
	c := newNode(selector, n, n.parser, n.timing, n.log)
	m[name] = c
	return c, true
}
