package canvasrenderer

import (
	"math"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/chartbox/layout"
)

// deviceDPI 使 1 个设备单位等于 1mm，与 canvas 的坐标单位一致。
const deviceDPI = 25.4

// defaultLineFactor 为未指定行高时相对字号的倍数。
const defaultLineFactor = 1.2

// Layer 在 canvas.Context 上实现 layout.Layer，坐标系原点在左上角。
type Layer struct {
	ctx   *canvas.Context
	fonts *fontCache
}

var (
	_ layout.Layer        = (*Layer)(nil)
	_ layout.TextMeasurer = (*Layer)(nil)
	_ layout.TextDrawer   = (*Layer)(nil)
)

// DPI implements layout.Layer.
func (l *Layer) DPI() float64 { return deviceDPI }

// FillRectangle 填充矩形，不描边。
func (l *Layer) FillRectangle(origin layout.Point, width, height float64, fill layout.FillStyle) error {
	l.ctx.SetFillColor(colorFromLayout(fill.Color))
	l.ctx.SetStrokeColor(canvas.Transparent)
	l.ctx.DrawPath(origin.X, origin.Y, canvas.Rectangle(width, height))
	return nil
}

// StrokeLine 绘制一条直线段。
func (l *Layer) StrokeLine(from, to layout.Point, stroke layout.StrokeStyle) error {
	l.ctx.SetFillColor(canvas.Transparent)
	l.ctx.SetStrokeColor(colorFromLayout(stroke.Color))
	l.ctx.SetStrokeWidth(stroke.Width)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(to.X-from.X, to.Y-from.Y)
	l.ctx.DrawPath(from.X, from.Y, p)
	return nil
}

// MeasureText 返回折行后文本的外接尺寸（mm）。
func (l *Layer) MeasureText(text string, maxWidth float64, style layout.TextStyle) (float64, float64, error) {
	face, err := l.fonts.face(style.Font, toPt(style.FontSize), style.Color)
	if err != nil {
		return 0, 0, err
	}
	lines := wrapText(text, maxWidth, face.TextWidth, style.Wrap)
	width := 0.0
	for _, line := range lines {
		width = math.Max(width, line.Width)
	}
	return width, lineHeight(face, style) * float64(len(lines)), nil
}

// DrawText 在 box 内逐行绘制文本，行距多出字体行高的部分平分到行的上下。
func (l *Layer) DrawText(text string, box layout.Rectangle, style layout.TextStyle) error {
	face, err := l.fonts.face(style.Font, toPt(style.FontSize), style.Color)
	if err != nil {
		return err
	}
	var (
		align   canvas.TextAlign
		anchorX float64
	)
	switch style.Align {
	case "center":
		align, anchorX = canvas.Center, box.X+box.W/2
	case "right":
		align, anchorX = canvas.Right, box.X+box.W
	default:
		align, anchorX = canvas.Left, box.X
	}

	metrics := face.Metrics()
	lh := lineHeight(face, style)
	leading := math.Max(lh-metrics.LineHeight, 0)
	cursorY := box.Y
	for _, line := range wrapText(text, box.W, face.TextWidth, style.Wrap) {
		baseline := cursorY + leading/2 + metrics.Ascent
		l.ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, line.Content, align))
		cursorY += lh
	}
	return nil
}

func lineHeight(face *canvas.FontFace, style layout.TextStyle) float64 {
	if style.LineHeight > 0 {
		return style.LineHeight
	}
	if h := face.Metrics().LineHeight; h > 0 {
		return h
	}
	return style.FontSize * defaultLineFactor
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }
