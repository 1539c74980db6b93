package style

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"oss/css"
	"oss/document"
)

// ReadDocument reads and decodes a style file. Format is selected by
// extension: .css and .oss are CSS, .toml is TOML, anything else is YAML
// (which includes JSON). Decoder warnings are logged.
func ReadDocument(path string, log *zap.Logger) (*document.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read style file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	contentType := "text/plain"
	if ext == ".css" || ext == ".oss" {
		contentType = "text/css"
	}
	if data, err = document.Normalize(data, contentType); err != nil {
		return nil, fmt.Errorf("unable to read style file '%s': %w", path, err)
	}

	var doc *document.Document
	switch ext {
	case ".css", ".oss":
		doc = css.NewParser(log).Parse(data, path)
	case ".toml":
		doc, err = document.FromTOML(data)
	default:
		doc, err = document.FromYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to decode style file '%s': %w", path, err)
	}

	for _, w := range doc.Warnings {
		log.Warn("Style document entry skipped", zap.String("file", path), zap.String("reason", w))
	}
	return doc, nil
}

// LoadFromFile decodes the style file and loads it into the node. When file
// cannot be read or decoded error is returned and no rules are touched.
func (n *Node) LoadFromFile(path string) error {
	doc, err := ReadDocument(path, n.log)
	if err != nil {
		return err
	}
	n.log.Debug("Loading styles", zap.String("file", path))
	n.Load(doc.Root)
	return nil
}

// Load stores a rule for every recognized property of the block and
// recursively builds child scopes for nested selectors. Rules replace
// existing ones without transition.
func (n *Node) Load(block *document.Block) {
	if block == nil {
		return
	}

	for _, name := range slices.Sorted(maps.Keys(block.Properties)) {
		key := n.parser.Key(name)
		if key == KeyInvalid {
			continue
		}
		n.rules[key] = n.GenerateRule(key, block.Properties[name])
	}

	for _, sel := range slices.Sorted(maps.Keys(block.Children)) {
		c, ok := n.child(sel)
		if !ok {
			n.log.Warn("Ignoring malformed selector", zap.String("scope", n.Path()), zap.String("selector", sel))
			continue
		}
		c.Load(block.Children[sel])
	}
}
