package style

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TransformText applies effective text-transform to s.
func (n *Node) TransformText(s string) string {
	switch n.Keyword(KeyTextTransform) {
	case ValueUppercase:
		return cases.Upper(language.Und).String(s)
	case ValueLowercase:
		return cases.Lower(language.Und).String(s)
	case ValueCapitalize:
		return cases.Title(language.Und, cases.NoLower).String(s)
	default:
		return s
	}
}
