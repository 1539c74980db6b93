package document

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
)

// FromTOML decodes TOML style document. Tables are nested blocks, strings,
// numbers and booleans are property values.
func FromTOML(data []byte) (*Document, error) {
	var tree map[string]any
	if _, err := toml.Decode(string(data), &tree); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	doc := New()
	doc.fillFromMap(doc.Root, tree, "")
	return doc, nil
}

func (d *Document) fillFromMap(b *Block, m map[string]any, path string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		switch v := m[key].(type) {
		case map[string]any:
			d.fillFromMap(b.Child(key), v, joinPath(path, key))
		case string:
			b.Properties[key] = v
		case int64:
			b.Properties[key] = strconv.FormatInt(v, 10)
		case float64:
			b.Properties[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			b.Properties[key] = strconv.FormatBool(v)
		default:
			d.warnf("%s: unsupported value for %q (%T)", pathOrRoot(path), key, v)
		}
	}
}
