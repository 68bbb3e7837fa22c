// Package canvasrenderer 基于 github.com/tdewolff/canvas 绘制布局并输出 PDF 或 SVG。
package canvasrenderer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/chartbox/errors"
	"github.com/ByLCY/chartbox/layout"
	"github.com/ByLCY/chartbox/renderer"
)

// Renderer draws layout elements via github.com/tdewolff/canvas. Page sizes are in millimetres.
type Renderer struct {
	fonts *fontCache
	meta  Meta
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	// BaseDir resolves relative font paths.
	BaseDir string
	// Fonts are accessible via builtin:<name>.
	Fonts map[string]Resource
	Meta  Meta
}

// Meta is written into the PDF document info.
type Meta struct {
	Title   string
	Subject string
	Author  string
	Creator string
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// New creates a renderer. Font resources given by path are read eagerly.
func New(opts Options) (*Renderer, error) {
	blobs := map[string][]byte{}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			blobs[name] = res.Bytes
			continue
		}
		if res.Path == "" {
			continue
		}
		data, err := os.ReadFile(res.Path)
		if err != nil {
			return nil, fmt.Errorf("读取字体 %s 失败: %w", name, err)
		}
		blobs[name] = data
	}
	return &Renderer{fonts: newFontCache(opts.BaseDir, blobs), meta: opts.Meta}, nil
}

// NewLayer wraps ctx, sharing the renderer's font cache.
func (r *Renderer) NewLayer(ctx *canvas.Context) *Layer {
	return &Layer{ctx: ctx, fonts: r.fonts}
}

// Render draws root onto a width×height page and encodes it.
// Errors from elements are returned unchanged.
func (r *Renderer) Render(root layout.Element, width, height float64, format renderer.Format) ([]byte, error) {
	if root == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "没有可渲染的元素")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.CodeInvalidArgument, "页面尺寸无效: %gx%g", width, height)
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	info := layout.Info{ContentBox: layout.Rectangle{W: width, H: height}}
	if err := root.Draw(info, r.NewLayer(ctx)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case renderer.FormatPDF:
		writer := pdf.New(&buf, width, height, nil)
		writer.SetInfo(r.meta.Title, r.meta.Subject, "", r.meta.Author, r.meta.Creator)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	case renderer.FormatSVG:
		writer := svg.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	default:
		return nil, errors.New(errors.CodeUnsupported, "不支持的输出格式 %q", format)
	}
	return buf.Bytes(), nil
}
