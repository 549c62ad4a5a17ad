package stylesheet

import "context"

// Renderer exposes the stylesheet builder under the "css" renderer name.
type Renderer struct{}

func (Renderer) Name() string { return "css" }

func (Renderer) ContentType() string { return "text/css; charset=utf-8" }

// Render compiles the template and serialises the resulting rule tree.
func (Renderer) Render(ctx context.Context, fragments []string, substitutions []any) ([]byte, error) {
	sheet, err := CSS(ctx, fragments, substitutions...).Wait(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(sheet.String()), nil
}
