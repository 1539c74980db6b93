package inspect

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"oss/state"
	"oss/style"
)

// assets lists properties referencing external media and the MIME type their
// content is expected to have.
var assets = []struct {
	key  style.Key
	mime string
}{
	{style.KeyBackgroundImage, "image"},
	{style.KeyBackgroundVideo, "video"},
}

// Check loads style file and verifies that every referenced media file exists
// and has expected type. All problems are reported together.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	root, src, err := loadSource(env, cmd.Args().Get(0), log)
	if err != nil {
		return err
	}

	count, err := CheckAssets(ctx, root, filepath.Dir(src), log)
	if err != nil {
		return fmt.Errorf("style file '%s' has broken references: %w", src, err)
	}
	log.Info("All media references are valid", zap.String("source", src), zap.Int("checked", count))
	return nil
}

// CheckAssets walks the tree and checks media referenced by locally defined
// rules. Relative paths are resolved against base. Returns number of checked
// references.
func CheckAssets(ctx context.Context, root *style.Node, base string, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		count int
		errs  error
	)
	err := root.Walk(func(n *style.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, a := range assets {
			r, ok := n.Rule(a.key)
			if !ok {
				continue
			}
			ref := strings.TrimSpace(r.String())
			if ref == "" || strings.EqualFold(ref, "none") {
				continue
			}
			count++
			if err := checkAsset(ref, base, a.mime); err != nil {
				log.Debug("Bad media reference", zap.String("selector", n.Path()), zap.Stringer("key", a.key), zap.Error(err))
				errs = multierr.Append(errs, fmt.Errorf("%s %s: %w", selectorOf(n), a.key, err))
			}
		}
		return nil
	})
	return count, multierr.Append(err, errs)
}

func checkAsset(ref, base, mime string) error {
	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", ref, err)
	}
	if kind == filetype.Unknown {
		return fmt.Errorf("'%s' has unknown content type, expected %s", ref, mime)
	}
	if kind.MIME.Type != mime {
		return fmt.Errorf("'%s' is %s, expected %s", ref, kind.MIME.Value, mime)
	}
	return nil
}

func selectorOf(n *style.Node) string {
	if p := n.Path(); p != "" {
		return p
	}
	return ":root"
}
