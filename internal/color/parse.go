package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// level4Names holds CSS Color Level 4 keywords missing from the SVG 1.1 table.
var level4Names = map[string]RGBA{
	"rebeccapurple": {R: 102, G: 51, B: 153, A: 1},
}

// parseLiteral handles the syntaxes understood without any rendering help:
// hex codes, rgb()/rgba(), hsl()/hsla(), CSS named colors and "transparent".
func parseLiteral(text string) (RGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return RGBA{}, false
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if s == "transparent" {
		return Transparent, true
	}

	if name, args, ok := splitFunction(s); ok {
		switch name {
		case "rgb", "rgba":
			return parseRGBFunction(args)
		case "hsl", "hsla":
			return parseHSLFunction(args)
		default:
			return RGBA{}, false
		}
	}

	if named, ok := colornames.Map[s]; ok {
		return RGBA{R: named.R, G: named.G, B: named.B, A: 1}, true
	}
	if named, ok := level4Names[s]; ok {
		return named, true
	}

	return RGBA{}, false
}

func parseHex(digits string) (RGBA, bool) {
	for _, r := range digits {
		if !isHexDigit(r) {
			return RGBA{}, false
		}
	}

	switch len(digits) {
	case 3, 4:
		expanded := make([]byte, 0, len(digits)*2)
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		return parseHex(string(expanded))
	case 6:
		return RGBA{R: hexByte(digits[0:2]), G: hexByte(digits[2:4]), B: hexByte(digits[4:6]), A: 1}, true
	case 8:
		alpha := float64(hexByte(digits[6:8])) / 255.0
		return RGBA{R: hexByte(digits[0:2]), G: hexByte(digits[2:4]), B: hexByte(digits[4:6]), A: alpha}, true
	default:
		return RGBA{}, false
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}

func hexByte(pair string) uint8 {
	v, _ := strconv.ParseUint(pair, 16, 8)
	return uint8(v)
}

func splitFunction(s string) (name, args string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	return strings.TrimSpace(s[:open]), s[open+1 : len(s)-1], true
}

// splitArguments accepts both the legacy comma syntax ("1, 2, 3, 0.5") and the
// space syntax with an optional slash-separated alpha ("1 2 3 / 50%").
func splitArguments(args string) (channels []string, alpha string, ok bool) {
	if strings.Contains(args, ",") {
		if strings.Contains(args, "/") {
			return nil, "", false
		}
		parts := strings.Split(args, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
			if parts[i] == "" {
				return nil, "", false
			}
		}
		switch len(parts) {
		case 3:
			return parts, "", true
		case 4:
			return parts[:3], parts[3], true
		default:
			return nil, "", false
		}
	}

	body, slashAlpha, hasSlash := strings.Cut(args, "/")
	fields := strings.Fields(body)
	if len(fields) != 3 {
		return nil, "", false
	}
	if hasSlash {
		slashAlpha = strings.TrimSpace(slashAlpha)
		if slashAlpha == "" || strings.Contains(slashAlpha, "/") {
			return nil, "", false
		}
	}
	return fields, slashAlpha, true
}

func parseRGBFunction(args string) (RGBA, bool) {
	channels, alphaText, ok := splitArguments(args)
	if !ok {
		return RGBA{}, false
	}

	var values [3]uint8
	for i, raw := range channels {
		v, ok := parseChannel(raw)
		if !ok {
			return RGBA{}, false
		}
		values[i] = v
	}

	alpha, ok := parseAlpha(alphaText)
	if !ok {
		return RGBA{}, false
	}

	return RGBA{R: values[0], G: values[1], B: values[2], A: alpha}, true
}

func parseHSLFunction(args string) (RGBA, bool) {
	parts, alphaText, ok := splitArguments(args)
	if !ok {
		return RGBA{}, false
	}

	hue, ok := parseHue(parts[0])
	if !ok {
		return RGBA{}, false
	}
	saturation, ok := parsePercentage(parts[1])
	if !ok {
		return RGBA{}, false
	}
	lightness, ok := parsePercentage(parts[2])
	if !ok {
		return RGBA{}, false
	}
	alpha, ok := parseAlpha(alphaText)
	if !ok {
		return RGBA{}, false
	}

	return fromColorful(colorful.Hsl(hue, saturation, lightness), alpha), true
}

func parseChannel(raw string) (uint8, bool) {
	if strings.HasSuffix(raw, "%") {
		pct, ok := parseNumber(strings.TrimSuffix(raw, "%"))
		if !ok {
			return 0, false
		}
		return clampByte(pct / 100 * 255), true
	}
	v, ok := parseNumber(raw)
	if !ok {
		return 0, false
	}
	return clampByte(v), true
}

func parseAlpha(raw string) (float64, bool) {
	if raw == "" {
		return 1, true
	}
	if strings.HasSuffix(raw, "%") {
		pct, ok := parseNumber(strings.TrimSuffix(raw, "%"))
		if !ok {
			return 0, false
		}
		return clampUnit(pct / 100), true
	}
	v, ok := parseNumber(raw)
	if !ok {
		return 0, false
	}
	return clampUnit(v), true
}

// parsePercentage reads an HSL saturation/lightness component, accepting the
// bare-number form of the space syntax as a percentage too.
func parsePercentage(raw string) (float64, bool) {
	v, ok := parseNumber(strings.TrimSuffix(raw, "%"))
	if !ok {
		return 0, false
	}
	return clampUnit(v / 100), true
}

func parseHue(raw string) (float64, bool) {
	scale := 1.0
	switch {
	case strings.HasSuffix(raw, "deg"):
		raw = strings.TrimSuffix(raw, "deg")
	case strings.HasSuffix(raw, "grad"):
		raw = strings.TrimSuffix(raw, "grad")
		scale = 0.9
	case strings.HasSuffix(raw, "rad"):
		raw = strings.TrimSuffix(raw, "rad")
		scale = 180 / math.Pi
	case strings.HasSuffix(raw, "turn"):
		raw = strings.TrimSuffix(raw, "turn")
		scale = 360
	}

	v, ok := parseNumber(raw)
	if !ok {
		return 0, false
	}
	hue := math.Mod(v*scale, 360)
	if hue < 0 {
		hue += 360
	}
	return hue, true
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
