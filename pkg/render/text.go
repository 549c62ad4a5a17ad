package render

import (
	"context"
	"fmt"

	"github.com/VanillaMaster/interpolate"
)

// Text renders the merged string as is.
type Text struct{}

func (Text) Name() string { return "text" }

func (Text) ContentType() string { return "text/plain; charset=utf-8" }

func (Text) Render(ctx context.Context, fragments []string, substitutions []any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := interpolate.Validate(fragments, substitutions); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return []byte(interpolate.Interpolate(fragments, substitutions)), nil
}
