package inspect

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/image/math/f64"

	"oss/state"
	"oss/style"
)

// Resolution is computed geometry of a single style node.
type Resolution struct {
	Selector           string
	Visible            bool
	Element            style.Rect
	Position           f64.Vec2
	Background         style.Rect
	BackgroundPosition f64.Vec2
}

// Resolve loads style file, selects a node and prints its geometry inside
// the requested parent boundary.
func Resolve(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("resolve")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	parent, err := parseRect(cmd.String("parent"))
	if err != nil {
		return fmt.Errorf("unable to parse parent boundary: %w", err)
	}
	var image style.Rect
	if s := cmd.String("image"); len(s) > 0 {
		if image, err = parseSize(s); err != nil {
			return fmt.Errorf("unable to parse image size: %w", err)
		}
	}

	root, src, err := loadSource(env, cmd.Args().Get(0), log)
	if err != nil {
		return err
	}

	selector := cmd.String("selector")
	log.Debug("Resolving geometry", zap.String("source", src), zap.String("selector", selector), zap.Stringer("parent", parent))

	res, err := ResolveNode(root, selector, parent, image)
	if err != nil {
		return err
	}
	return res.Write(os.Stdout)
}

// ResolveNode computes geometry of the node at selector path. Background
// geometry is only computed when image has area.
func ResolveNode(root *style.Node, selector string, parent, image style.Rect) (*Resolution, error) {
	n, ok := root.Select(selector)
	if !ok {
		return nil, fmt.Errorf("selector %q not found", selector)
	}

	el := n.ComputeElementTransform(parent)
	res := &Resolution{
		Selector: n.Path(),
		Visible:  n.Visible(),
		Element:  el,
		Position: f64.Vec2{el.X, el.Y},
	}
	if !image.Empty() {
		res.Background = n.ComputeBackgroundTransform(image, el)
		res.BackgroundPosition = n.BackgroundPosition(res.Background, el)
	}
	return res, nil
}

func (r *Resolution) Write(w io.Writer) error {
	selector := r.Selector
	if selector == "" {
		selector = ":root"
	}
	_, err := fmt.Fprintf(w, "selector:            %s\nvisible:             %t\nelement:             %s\nposition:            %g,%g\nbackground:          %s\nbackground-position: %g,%g\n",
		selector, r.Visible, r.Element, r.Position[0], r.Position[1],
		r.Background, r.BackgroundPosition[0], r.BackgroundPosition[1])
	return err
}
