// Package css reads style sheets written in CSS syntax into style documents.
// Only rulesets with id, class and tag selectors (optionally forming a
// descendant path) are understood, everything else is skipped with a warning.
package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"oss/document"
)

// Parser parses CSS style sheets into style documents.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Document. Rulesets are never rejected as a
// whole, problems end up in Document.Warnings.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *document.Document {
	doc := document.New()

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
				doc.Warnings = append(doc.Warnings, "parse error: "+parser.Err().Error())
			}
			return doc

		case css.BeginAtRuleGrammar:
			// media queries, font faces and friends have no meaning here
			p.warn(doc, "unsupported @-rule block: "+string(data))
			p.skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			// @charset is consumed by document.Normalize
			if !strings.EqualFold(string(data), "@charset") {
				p.warn(doc, "unsupported @-rule: "+string(data))
			}

		case css.BeginRulesetGrammar:
			selectors := p.parseSelectors(data, parser.Values())
			props := p.parseDeclarations(parser, doc)

			for _, selStr := range selectors {
				path, ok := p.parseSelectorPath(selStr, doc)
				if !ok {
					continue
				}
				block := doc.Root
				for _, sel := range path {
					block = block.Child(sel)
				}
				for name, value := range props {
					block.Properties[name] = value
				}
			}

		case css.QualifiedRuleGrammar:
			p.warn(doc, "qualified rule without block: "+string(data))
		}
	}
}

func (p *Parser) warn(doc *document.Document, msg string) {
	doc.Warnings = append(doc.Warnings, msg)
	p.log.Debug("Skipping CSS construct", zap.String("reason", msg))
}

// parseSelectors extracts selector strings from token data.
func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	// Build full selector string from data and values
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser, doc *document.Document) map[string]string {
	props := make(map[string]string)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			if raw := rawValue(parser.Values()); raw != "" {
				props[name] = raw
			} else {
				p.warn(doc, "declaration without value: "+name)
			}

		case css.CustomPropertyGrammar:
			p.warn(doc, "custom property: "+string(data))

		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			// nesting is not part of the syntax we accept
			p.warn(doc, "nested block: "+string(data))
			p.skipAtRuleBlock(parser)
		}
	}
}

// rawValue joins declaration tokens back into a value string, runs of
// whitespace collapse to a single space and !important is dropped.
func rawValue(tokens []css.Token) string {
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 && rawParts[len(rawParts)-1] != " " {
			rawParts = append(rawParts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(rawParts, ""))
	if i := strings.Index(strings.ToLower(raw), "!important"); i >= 0 {
		raw = strings.TrimSpace(raw[:i])
	}
	return unquote(raw)
}

// parseSelectorPath splits a descendant selector into simple selectors, each
// of which must be #id, .class or tag. Root selectors (":root", "*") yield an
// empty path.
func (p *Parser) parseSelectorPath(selStr string, doc *document.Document) ([]string, bool) {
	selStr = strings.TrimSpace(selStr)

	switch selStr {
	case ":root", "*":
		return nil, true
	}

	if strings.ContainsAny(selStr, "+~>") {
		p.warn(doc, "unsupported combinator selector: "+selStr)
		return nil, false
	}
	if strings.ContainsAny(selStr, "[:") {
		p.warn(doc, "unsupported attribute or pseudo selector: "+selStr)
		return nil, false
	}

	parts := strings.Fields(selStr)
	for _, part := range parts {
		if !simpleSelector(part) {
			p.warn(doc, "unsupported compound selector: "+selStr)
			return nil, false
		}
	}
	return parts, true
}

// simpleSelector reports whether s is exactly one of #id, .class or tag.
func simpleSelector(s string) bool {
	name := s
	if s[0] == '#' || s[0] == '.' {
		name = s[1:]
	}
	return name != "" && !strings.ContainsAny(name, "#.*")
}

// skipAtRuleBlock skips tokens until the matching end of a block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
