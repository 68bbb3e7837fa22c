package canvasrenderer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/chartbox/dsl"
	"github.com/ByLCY/chartbox/element"
	"github.com/ByLCY/chartbox/errors"
	"github.com/ByLCY/chartbox/layout"
	"github.com/ByLCY/chartbox/renderer"
)

const chart = `
(layout
  margin 5mm
  background-color #f8f8f8
  border-bottom-width 0.5pt
  top (text content "Quarterly report" align center font-style bold)
  left (text content "y")
  body ((text content "Hello, ${user.name}!")))
`

func buildChart(t *testing.T) layout.Element {
	t.Helper()
	expr, err := dsl.ParseExpr(chart)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	env := layout.DefaultEnvironment()
	env.Data = map[string]any{"user": map[string]any{"name": "Ada"}}
	root, err := element.Registry().BuildOne(env, expr)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return root
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Options{Meta: Meta{Title: "test", Creator: "chartbox"}})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderPDF(t *testing.T) {
	data, err := newRenderer(t).Render(buildChart(t), 120, 80, renderer.FormatPDF)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", data[:min(len(data), 8)])
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := newRenderer(t).Render(buildChart(t), 120, 80, renderer.FormatSVG)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("expected svg document")
	}
}

type failing struct{ err error }

func (f failing) Draw(layout.Info, layout.Layer) error { return f.err }

func TestRenderErrors(t *testing.T) {
	r := newRenderer(t)
	boom := fmt.Errorf("boom")
	if _, err := r.Render(failing{err: boom}, 10, 10, renderer.FormatPDF); err != boom {
		t.Fatalf("element error must pass through unchanged, got %v", err)
	}
	if _, err := r.Render(buildChart(t), 0, 10, renderer.FormatPDF); !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT for empty page, got %v", err)
	}
	if _, err := r.Render(buildChart(t), 10, 10, renderer.Format("png")); !errors.Is(err, errors.CodeUnsupported) {
		t.Fatalf("expected UNSUPPORTED format, got %v", err)
	}
}

func TestMeasureTextWraps(t *testing.T) {
	layer := newRenderer(t).NewLayer(canvas.NewContext(canvas.New(100, 100)))
	style := layout.TextStyle{FontSize: 12 * layout.PtToMm, Color: layout.Black}

	w, h, err := layer.MeasureText("hello world again", 0, style)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if w <= 0 || h <= 0 {
		t.Fatalf("expected positive size, got %gx%g", w, h)
	}
	w2, h2, err := layer.MeasureText("hello world again", w/2, style)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if w2 > w/2+1e-6 || h2 < 2*h-1e-6 {
		t.Fatalf("narrow measure should wrap: %gx%g (single line %gx%g)", w2, h2, w, h)
	}
}

func TestUnknownFontFallsBack(t *testing.T) {
	layer := newRenderer(t).NewLayer(canvas.NewContext(canvas.New(100, 100)))
	style := layout.TextStyle{
		Font:     layout.FontResource{Name: "Missing", Src: "builtin:missing"},
		FontSize: 4,
	}
	if _, _, err := layer.MeasureText("abc", 0, style); err != nil {
		t.Fatalf("missing font should fall back, got %v", err)
	}
}

func TestParseFontStyle(t *testing.T) {
	cases := map[string]canvas.FontStyle{
		"":            canvas.FontRegular,
		"bold":        canvas.FontBold,
		"SemiBold":    canvas.FontSemiBold,
		"bold italic": canvas.FontBold | canvas.FontItalic,
		"oblique":     canvas.FontRegular | canvas.FontItalic,
	}
	for in, want := range cases {
		if got := parseFontStyle(in); got != want {
			t.Fatalf("parseFontStyle(%q) = %v, want %v", in, got, want)
		}
	}
	if got := builtinFor(canvas.FontBold); got != "sans-bold" {
		t.Fatalf("builtinFor(bold) = %q", got)
	}
}
