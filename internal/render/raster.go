package render

import (
	"image"
	stdcolor "image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/image/draw"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
)

var sgrPattern = regexp.MustCompile(`\x1b\[([0-9;]*)m`)

// sentinel marks an untouched pixel; no rendered background is fully transparent.
var sentinel = stdcolor.NRGBA{}

// RasterResolver renders the candidate as a background cell, paints the
// emitted color onto a 1x1 canvas and samples the pixel back.
type RasterResolver struct {
	renderer *lipgloss.Renderer
}

// NewRasterResolver returns a RasterResolver bound to a private true-color renderer.
func NewRasterResolver() *RasterResolver {
	return &RasterResolver{renderer: newTrueColorRenderer()}
}

// Resolve implements color.Resolver.
func (r *RasterResolver) Resolve(text string) (color.RGBA, bool) {
	candidate := strings.TrimSpace(text)
	if !renderable(candidate) {
		return color.RGBA{}, false
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	canvas.SetNRGBA(0, 0, sentinel)

	cell := r.renderer.NewStyle().Background(lipgloss.Color(candidate)).Render("x")
	if painted, ok := decodeBackground(cell); ok {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(painted), image.Point{}, draw.Src)
	}

	px := canvas.NRGBAAt(0, 0)
	if px == sentinel {
		return color.RGBA{}, false
	}
	return color.RGBA{R: px.R, G: px.G, B: px.B, A: float64(px.A) / 255}, true
}

// decodeBackground extracts the background color from the SGR sequences in s.
func decodeBackground(s string) (stdcolor.NRGBA, bool) {
	for _, match := range sgrPattern.FindAllStringSubmatch(s, -1) {
		if c, ok := parseSGR(strings.Split(match[1], ";")); ok {
			return c, true
		}
	}
	return stdcolor.NRGBA{}, false
}

func parseSGR(params []string) (stdcolor.NRGBA, bool) {
	for i := 0; i < len(params); i++ {
		code, err := strconv.Atoi(params[i])
		if err != nil {
			continue
		}

		switch {
		case code == 48 && i+4 < len(params) && params[i+1] == "2":
			rgb, ok := channels(params[i+2 : i+5])
			if !ok {
				return stdcolor.NRGBA{}, false
			}
			return stdcolor.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, true
		case code == 48 && i+2 < len(params) && params[i+1] == "5":
			idx := ansiIndex(params[i+2])
			if idx < 0 {
				return stdcolor.NRGBA{}, false
			}
			return opaque(fromTermenv(termenv.ANSI256Color(idx))), true
		case code >= 40 && code <= 47:
			return opaque(fromTermenv(termenv.ANSIColor(code - 40))), true
		case code >= 100 && code <= 107:
			return opaque(fromTermenv(termenv.ANSIColor(code - 100 + 8))), true
		}
	}
	return stdcolor.NRGBA{}, false
}

func channels(params []string) ([3]uint8, bool) {
	var out [3]uint8
	for i, p := range params {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return out, false
		}
		out[i] = uint8(v)
	}
	return out, true
}

func opaque(c color.RGBA) stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
