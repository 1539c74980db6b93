package inspect

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"oss/state"
	"oss/style"
)

// Dump loads style file and writes resulting tree of local rules either as
// YAML, which could be loaded back, or as a colored terminal tree.
func Dump(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dump")

	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	root, src, err := loadSource(env, cmd.Args().Get(0), log)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	out := io.Writer(os.Stdout)
	if len(dst) > 0 {
		flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if !env.Overwrite {
			flags |= os.O_EXCL
		}
		f, err := os.OpenFile(dst, flags, 0644)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = e
			}
		}()
		out = f
	} else {
		dst = "STDOUT"
	}

	log.Info("Dumping styles", zap.String("source", src), zap.String("destination", dst), zap.Bool("pretty", cmd.Bool("pretty")))
	if cmd.Bool("pretty") {
		_, err = io.WriteString(out, RenderTree(root))
		return err
	}
	return WriteYAML(out, root)
}

// EncodeTree converts style tree into YAML document with the same layout the
// loader accepts: local properties first in schema order, then nested
// selectors.
func EncodeTree(n *style.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range n.Keys() {
		r, _ := n.Rule(key)
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.String()},
		)
	}
	for _, c := range n.Children() {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name()},
			EncodeTree(c),
		)
	}
	return m
}

// WriteYAML writes tree as YAML document.
func WriteYAML(w io.Writer, root *style.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{EncodeTree(root)}}); err != nil {
		return fmt.Errorf("unable to encode styles: %w", err)
	}
	return enc.Close()
}

var (
	selectorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	animStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))
)

// RenderTree renders style tree for terminal. Color rules are followed by a
// swatch of the color.
func RenderTree(root *style.Node) string {
	var sb strings.Builder
	renderNode(&sb, root, 0)
	return sb.String()
}

func renderNode(sb *strings.Builder, n *style.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	name := n.Name()
	if name == "" {
		name = ":root"
	}
	sb.WriteString(indent + selectorStyle.Render(name) + "\n")

	for _, key := range n.Keys() {
		r, _ := n.Rule(key)
		line := indent + "  " + keyStyle.Render(key.String()+":") + " " + r.String()
		if r.Kind() == style.KindColor {
			line += " " + swatch(r.Color())
		}
		if r.Animating() {
			line += " " + animStyle.Render("(animating)")
		}
		sb.WriteString(line + "\n")
	}
	for _, c := range n.Children() {
		renderNode(sb, c, depth+1)
	}
}

func swatch(c color.NRGBA) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
