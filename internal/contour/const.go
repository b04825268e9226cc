package contour

// Compiled-in pipeline parameters. These form the implicit contract with the
// glyph assets: one Step x Step glyph per 2x2-corner configuration.
const (
	Step          = 8    // grid sampling step, in pixels
	Sigma         = 200  // luminance threshold; a cell is set when lum <= Sigma
	RescaleWidth  = 2048 // the working image is rescaled down to at most this
	RescaleHeight = 2048
	GlyphConfigs  = 16 // 2^4 corner configurations
	GlyphDir      = "contours"
)
