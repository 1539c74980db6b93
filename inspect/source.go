// Package inspect implements program commands which load a style file and
// report on the resulting style tree.
package inspect

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"oss/state"
	"oss/style"
)

// loadSource builds style tree from the file at src. Copy of the source is
// kept in the debug report when one is being collected.
func loadSource(env *state.LocalEnv, src string, log *zap.Logger) (*style.Node, string, error) {
	if len(src) == 0 {
		return nil, "", errors.New("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return nil, "", err
	}

	root := env.NewStyles()
	if err := root.LoadFromFile(src); err != nil {
		return nil, "", fmt.Errorf("unable to load styles: %w", err)
	}
	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy(fmt.Sprintf("source/%s", filepath.Base(src)), src); err != nil {
			log.Warn("Unable to store source in debug report", zap.String("file", src), zap.Error(err))
		}
	}
	return root, src, nil
}

// parseFloats parses comma separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseRect parses "x,y,width,height".
func parseRect(s string) (style.Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return style.Rect{}, err
	}
	return style.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// parseSize parses "width,height".
func parseSize(s string) (style.Rect, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return style.Rect{}, err
	}
	return style.Rect{Width: v[0], Height: v[1]}, nil
}
