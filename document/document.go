// Package document defines the decoded form of a style file: nested blocks
// keyed by selector holding string property values.
package document

import (
	"bytes"
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// Block is one selector scope of a style file.
type Block struct {
	Properties map[string]string
	Children   map[string]*Block
}

// NewBlock creates an empty block.
func NewBlock() *Block {
	return &Block{
		Properties: make(map[string]string),
		Children:   make(map[string]*Block),
	}
}

// Child returns nested block for selector, creating it when necessary.
func (b *Block) Child(selector string) *Block {
	if c, ok := b.Children[selector]; ok {
		return c
	}
	c := NewBlock()
	b.Children[selector] = c
	return c
}

// Empty reports whether the block has neither properties nor children.
func (b *Block) Empty() bool {
	return len(b.Properties) == 0 && len(b.Children) == 0
}

// Document is a decoded style file.
type Document struct {
	Root     *Block
	Warnings []string // Entries the decoder had to skip
}

// New creates an empty document.
func New() *Document {
	return &Document{Root: NewBlock(), Warnings: make([]string, 0)}
}

func (d *Document) warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

var (
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
	charsetPattern = regexp.MustCompile(`^@charset\s+["']([^"']+)["']\s*;`)
)

// Normalize converts style file content to UTF-8. Encoding is determined from
// byte order mark, charset parameter of contentType or a leading CSS @charset
// rule, in this order. Content which is valid UTF-8 and has no explicit
// encoding is left as is.
func Normalize(data []byte, contentType string) ([]byte, error) {
	if m := charsetPattern.FindSubmatch(data); m != nil {
		contentType = fmt.Sprintf("%s; charset=%s", contentType, m[1])
	}
	enc, name, certain := charset.DetermineEncoding(data, contentType)
	if enc == nil || name == "utf-8" || (!certain && utf8.Valid(data)) {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s content: %w", name, err)
	}
	return out, nil
}
