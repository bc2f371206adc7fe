package dtcg

// The thirteen recognized token types.
const (
	TypeColor       = "color"
	TypeDimension   = "dimension"
	TypeFontFamily  = "fontFamily"
	TypeFontWeight  = "fontWeight"
	TypeDuration    = "duration"
	TypeCubicBezier = "cubicBezier"
	TypeNumber      = "number"
	TypeStrokeStyle = "strokeStyle"
	TypeBorder      = "border"
	TypeTransition  = "transition"
	TypeShadow      = "shadow"
	TypeGradient    = "gradient"
	TypeTypography  = "typography"
)

var knownTypes = map[string]struct{}{
	TypeColor:       {},
	TypeDimension:   {},
	TypeFontFamily:  {},
	TypeFontWeight:  {},
	TypeDuration:    {},
	TypeCubicBezier: {},
	TypeNumber:      {},
	TypeStrokeStyle: {},
	TypeBorder:      {},
	TypeTransition:  {},
	TypeShadow:      {},
	TypeGradient:    {},
	TypeTypography:  {},
}

// KnownType reports whether name is one of the thirteen token types.
func KnownType(name string) bool {
	_, ok := knownTypes[name]
	return ok
}

// FontWeightAliases maps the named weights to their numeric values.
var FontWeightAliases = map[string]float64{
	"thin":        100,
	"hairline":    100,
	"extra-light": 200,
	"ultra-light": 200,
	"light":       300,
	"normal":      400,
	"regular":     400,
	"book":        400,
	"medium":      500,
	"semi-bold":   600,
	"demi-bold":   600,
	"bold":        700,
	"extra-bold":  800,
	"ultra-bold":  800,
	"black":       900,
	"heavy":       900,
	"extra-black": 950,
	"ultra-black": 950,
}

// StrokeStyleNames is the closed set of string-form stroke styles.
var StrokeStyleNames = map[string]struct{}{
	"solid":  {},
	"dashed": {},
	"dotted": {},
	"double": {},
	"groove": {},
	"ridge":  {},
	"outset": {},
	"inset":  {},
}

// LineCapNames is the closed set of lineCap values for object-form strokes.
var LineCapNames = map[string]struct{}{
	"round":  {},
	"butt":   {},
	"square": {},
}
