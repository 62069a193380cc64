package layouts

import "layout-catalog/core/utils"

const (
	ParamPreviewWidth = "preview_width"
	ParamScale        = "scale"
)

// Size is the requested thumbnail rendering size in points.
type Size struct {
	Width  float64
	Height float64
}

// ParamBuilder derives catalog request parameters from a thumbnail size.
// Scale is the display scale factor, fixed for the lifetime of the builder.
type ParamBuilder struct {
	Scale float64
}

// Build returns the query parameters for a thumbnail of the given size.
func (b ParamBuilder) Build(size Size) map[string]string {
	return map[string]string{
		ParamPreviewWidth: utils.ToString(size.Width),
		ParamScale:        utils.ToString(b.Scale),
	}
}
