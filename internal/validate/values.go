package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dembrandt/dtcg-validator/internal/colorspace"
	"github.com/dembrandt/dtcg-validator/internal/diag"
	"github.com/dembrandt/dtcg-validator/internal/dtcg"
)

// valueFunc checks one concrete (reference-resolved) value against the rules
// of a single token type. Findings go into the bag; a malformed sub-field
// never aborts the rest of the document.
type valueFunc func(value any, path string, bag *diag.Bag)

// valueValidators dispatches on the effective type. The table is fixed at
// startup; unknown type strings never reach it (the walker warns and skips).
var valueValidators = map[string]valueFunc{
	dtcg.TypeColor:       validateColor,
	dtcg.TypeDimension:   validateDimension,
	dtcg.TypeFontFamily:  validateFontFamily,
	dtcg.TypeFontWeight:  validateFontWeight,
	dtcg.TypeDuration:    validateDuration,
	dtcg.TypeCubicBezier: validateCubicBezier,
	dtcg.TypeNumber:      validateNumber,
	dtcg.TypeStrokeStyle: validateStrokeStyle,
	dtcg.TypeBorder:      validateBorder,
	dtcg.TypeTransition:  validateTransition,
	dtcg.TypeShadow:      validateShadow,
	dtcg.TypeGradient:    validateGradient,
	dtcg.TypeTypography:  validateTypography,
}

var (
	hexColorRe  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	dimensionRe = regexp.MustCompile(`^-?(\d+|\d*\.\d+)(px|rem)$`)
)

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func validateColor(value any, path string, bag *diag.Bag) {
	switch v := value.(type) {
	case string:
		if !hexColorRe.MatchString(v) && !dtcg.IsReference(v) {
			bag.Warn(diag.ValueFormat, path,
				fmt.Sprintf("Color token '%s' has unusual format '%s' (expected #rrggbb or a {reference})", path, v))
		}
	case *dtcg.Object:
		validateColorObject(v, path, bag)
	default:
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Color token '%s' must be a hex string or an object with colorSpace and components", path))
	}
}

func validateColorObject(obj *dtcg.Object, path string, bag *diag.Bag) {
	spaceName, _ := obj.GetString("colorSpace")
	space, ok := colorspace.Lookup(spaceName)
	if !ok {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Color token '%s' has unknown colorSpace '%s'. Supported: %s",
				path, spaceName, strings.Join(colorspace.SupportedNames(), ", ")))
		return
	}

	components, _ := obj.Get("components")
	comps, isArr := components.([]any)
	if !isArr || len(comps) != space.Components {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Color token '%s' must have a components array with exactly %d values for colorSpace '%s'",
				path, space.Components, space.Name))
	} else {
		for i, comp := range comps {
			validateColorComponent(comp, i, space, path, bag)
		}
	}

	if hex, present := obj.Get("hex"); present {
		s, isStr := hex.(string)
		if !isStr || !hexColorRe.MatchString(s) {
			bag.Error(diag.ValueFormat, path,
				fmt.Sprintf("Color token '%s' hex must be a 6-digit hex color like #rrggbb", path))
		}
	}
	if alpha, present := obj.Get("alpha"); present {
		a, isNum := asNumber(alpha)
		if !isNum || a < 0 || a > 1 {
			bag.Error(diag.ValueRange, path,
				fmt.Sprintf("Color token '%s' alpha must be a number between 0 and 1", path))
		}
	}
}

func validateColorComponent(comp any, index int, space colorspace.Space, path string, bag *diag.Bag) {
	if s, isStr := comp.(string); isStr {
		if s != "none" {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("Component %d of color token '%s' must be a number or \"none\"", index+1, path))
		}
		return
	}
	n, isNum := asNumber(comp)
	if !isNum {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Component %d of color token '%s' must be a number or \"none\"", index+1, path))
		return
	}
	if index == space.HueIndex {
		// Hue is half-open: 360 wraps to 0 and is rejected.
		if n < 0 || n >= 360 {
			bag.Error(diag.ValueRange, path,
				fmt.Sprintf("Hue component of color token '%s' must be at least 0 and below 360, got %v", path, n))
		}
		return
	}
	r := space.Ranges[index]
	if r.Unbounded {
		return
	}
	if n < r.Min || n > r.Max {
		bag.Error(diag.ValueRange, path,
			fmt.Sprintf("Component %d of color token '%s' must be between %v and %v for colorSpace '%s', got %v",
				index+1, path, r.Min, r.Max, space.Name, n))
	}
}

func validateDimension(value any, path string, bag *diag.Bag) {
	switch v := value.(type) {
	case string:
		if !dimensionRe.MatchString(v) && !dtcg.IsReference(v) {
			bag.Error(diag.ValueFormat, path,
				fmt.Sprintf("Dimension token '%s' must be a number followed by \"px\" or \"rem\", got '%s'", path, v))
		}
	case *dtcg.Object:
		if _, isNum := objNumber(v, "value"); !isNum {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("Dimension token '%s' must have a numeric value", path))
		}
		unit, _ := v.GetString("unit")
		if unit != "px" && unit != "rem" {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("Dimension token '%s' unit must be \"px\" or \"rem\", got '%s'", path, unit))
		}
	default:
		// Bare numbers pass without unit validation.
		if _, isNum := asNumber(value); !isNum {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("Dimension token '%s' must be a string, number, or object with value and unit", path))
		}
	}
}

func validateDuration(value any, path string, bag *diag.Bag) {
	obj, isObj := value.(*dtcg.Object)
	if !isObj {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Duration token '%s' must be an object with a numeric value and a unit of \"ms\" or \"s\"", path))
		return
	}
	if _, isNum := objNumber(obj, "value"); !isNum {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Duration token '%s' must have a numeric value", path))
	}
	unit, _ := obj.GetString("unit")
	if unit != "ms" && unit != "s" {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Duration token '%s' unit must be \"ms\" or \"s\", got '%s'", path, unit))
	}
}

func validateCubicBezier(value any, path string, bag *diag.Bag) {
	points, isArr := value.([]any)
	if !isArr || len(points) != 4 {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("CubicBezier token '%s' must be an array of exactly 4 numbers", path))
		return
	}
	for i, p := range points {
		n, isNum := asNumber(p)
		if !isNum {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("CubicBezier token '%s' must be an array of exactly 4 numbers", path))
			return
		}
		// Only the x coordinates (indices 0 and 2) are clamped to [0, 1].
		if (i == 0 || i == 2) && (n < 0 || n > 1) {
			bag.Error(diag.ValueRange, path,
				fmt.Sprintf("CubicBezier token '%s' x coordinates must be between 0 and 1, got %v", path, n))
		}
	}
}

func validateFontFamily(value any, path string, bag *diag.Bag) {
	switch v := value.(type) {
	case string:
		// Any string is a legal family name, including brace fragments
		// that are not reference-shaped.
	case []any:
		for _, item := range v {
			if _, isStr := item.(string); !isStr {
				bag.Error(diag.ValueShape, path,
					fmt.Sprintf("FontFamily token '%s' must be a string or an array of strings", path))
				return
			}
		}
	default:
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("FontFamily token '%s' must be a string or an array of strings", path))
	}
}

func validateFontWeight(value any, path string, bag *diag.Bag) {
	if n, isNum := asNumber(value); isNum {
		if n < 1 || n > 1000 {
			bag.Error(diag.ValueRange, path,
				fmt.Sprintf("FontWeight token '%s' must be between 1 and 1000, got %v", path, n))
		}
		return
	}
	if s, isStr := value.(string); isStr {
		if _, known := dtcg.FontWeightAliases[s]; !known {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("FontWeight token '%s' has unknown weight name '%s'", path, s))
		}
		return
	}
	bag.Error(diag.ValueShape, path,
		fmt.Sprintf("FontWeight token '%s' must be a number (1-1000) or a named weight like \"bold\"", path))
}

func validateNumber(value any, path string, bag *diag.Bag) {
	if _, isNum := asNumber(value); !isNum {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Number token '%s' must be a number", path))
	}
}

func validateStrokeStyle(value any, path string, bag *diag.Bag) {
	switch v := value.(type) {
	case string:
		if _, known := dtcg.StrokeStyleNames[v]; !known {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("StrokeStyle token '%s' has unknown style '%s'", path, v))
		}
	case *dtcg.Object:
		dash, present := v.Get("dashArray")
		if _, isArr := dash.([]any); !present || !isArr {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("StrokeStyle token '%s' must have a dashArray array", path))
		}
		lineCap, _ := v.GetString("lineCap")
		if _, known := dtcg.LineCapNames[lineCap]; !known {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("StrokeStyle token '%s' lineCap must be \"round\", \"butt\", or \"square\"", path))
		}
	default:
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("StrokeStyle token '%s' must be a style name or an object with dashArray and lineCap", path))
	}
}

func requireProps(obj *dtcg.Object, props []string, kind, path string, bag *diag.Bag) {
	for _, prop := range props {
		if !obj.Has(prop) {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("%s token '%s' is missing required property '%s'", kind, path, prop))
		}
	}
}

func validateBorder(value any, path string, bag *diag.Bag) {
	obj, isObj := value.(*dtcg.Object)
	if !isObj {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Border token '%s' must be an object with color, width, and style", path))
		return
	}
	requireProps(obj, []string{"color", "width", "style"}, "Border", path, bag)
}

func validateTransition(value any, path string, bag *diag.Bag) {
	obj, isObj := value.(*dtcg.Object)
	if !isObj {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Transition token '%s' must be an object with duration, delay, and timingFunction", path))
		return
	}
	requireProps(obj, []string{"duration", "delay", "timingFunction"}, "Transition", path, bag)
}

func validateShadow(value any, path string, bag *diag.Bag) {
	switch v := value.(type) {
	case *dtcg.Object:
		validateShadowObject(v, path, bag)
	case []any:
		for _, item := range v {
			obj, isObj := item.(*dtcg.Object)
			if !isObj {
				bag.Error(diag.ValueShape, path,
					fmt.Sprintf("Shadow token '%s' must be a shadow object or an array of shadow objects", path))
				continue
			}
			validateShadowObject(obj, path, bag)
		}
	default:
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Shadow token '%s' must be a shadow object or an array of shadow objects", path))
	}
}

func validateShadowObject(obj *dtcg.Object, path string, bag *diag.Bag) {
	requireProps(obj, []string{"offsetX", "offsetY", "blur", "spread", "color"}, "Shadow", path, bag)
	if inset, present := obj.Get("inset"); present {
		if _, isBool := inset.(bool); !isBool {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("Shadow token '%s' inset must be a boolean", path))
		}
	}
}

func validateGradient(value any, path string, bag *diag.Bag) {
	stops, isArr := value.([]any)
	if !isArr {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Gradient token '%s' must be an array of gradient stops", path))
		return
	}
	for i, stop := range stops {
		obj, isObj := stop.(*dtcg.Object)
		if !isObj {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("Gradient stop %d of token '%s' must be an object with color and position", i+1, path))
			continue
		}
		if !obj.Has("color") {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("Gradient stop %d of token '%s' is missing required property 'color'", i+1, path))
		}
		if _, isNum := objNumber(obj, "position"); !isNum {
			bag.Error(diag.ValueShape, path,
				fmt.Sprintf("Gradient stop %d of token '%s' must have a numeric position", i+1, path))
		}
	}
}

var typographyProps = []string{"fontFamily", "fontSize", "fontWeight", "letterSpacing", "lineHeight"}

func validateTypography(value any, path string, bag *diag.Bag) {
	obj, isObj := value.(*dtcg.Object)
	if !isObj {
		bag.Error(diag.ValueShape, path,
			fmt.Sprintf("Typography token '%s' must be an object with fontFamily, fontSize, fontWeight, letterSpacing, and lineHeight", path))
		return
	}
	requireProps(obj, typographyProps, "Typography", path, bag)
	for _, key := range obj.Keys() {
		known := false
		for _, prop := range typographyProps {
			if key == prop {
				known = true
				break
			}
		}
		if !known {
			bag.Warn(diag.ValueShape, path,
				fmt.Sprintf("Typography token '%s' has unknown property '%s'", path, key))
		}
	}
}

func objNumber(obj *dtcg.Object, key string) (float64, bool) {
	v, ok := obj.Get(key)
	if !ok {
		return 0, false
	}
	return asNumber(v)
}
