package document

import (
	"errors"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// FromYAML decodes YAML (and therefore JSON) style document. Mappings are
// nested blocks, scalars are property values.
func FromYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	doc := New()
	top := &root
	if top.Kind == yaml.DocumentNode {
		if len(top.Content) == 0 {
			return doc, nil
		}
		top = top.Content[0]
	}
	switch top.Kind {
	case 0:
		// empty input
		return doc, nil
	case yaml.MappingNode:
	default:
		return nil, errors.New("failed to decode document: top level must be a mapping")
	}
	doc.fillFromYAML(doc.Root, top, "")
	return doc, nil
}

func (d *Document) fillFromYAML(b *Block, n *yaml.Node, path string) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		switch val.Kind {
		case yaml.MappingNode:
			d.fillFromYAML(b.Child(key), val, joinPath(path, key))
		case yaml.ScalarNode:
			if val.Tag == "!!null" {
				d.warnf("%s: property %q has no value (line %d)", pathOrRoot(path), key, val.Line)
				continue
			}
			b.Properties[key] = val.Value
		default:
			d.warnf("%s: unsupported value for %q (line %d)", pathOrRoot(path), key, val.Line)
		}
	}
}

func joinPath(path, sel string) string {
	if path == "" {
		return sel
	}
	return path + " " + sel
}

func pathOrRoot(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
