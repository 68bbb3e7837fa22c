package element

import (
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/chartbox/binding"
	"github.com/ByLCY/chartbox/dsl"
	"github.com/ByLCY/chartbox/errors"
	"github.com/ByLCY/chartbox/layout"
)

// 无法测量文本时的估算系数。
const (
	estimatedAdvance    = 0.6
	defaultLineHeightEm = 1.2
)

// Text 绘制一段文本。content 在构建时已完成 ${path} 插值。
type Text struct {
	Content    string
	Font       layout.FontResource
	FontSize   layout.Measure
	LineHeight layout.LineHeightSpec
	Color      layout.Color
	Align      string
	Wrap       string

	// baseFontSize 为 em 长度的参照字号，取自构建环境。
	baseFontSize layout.Measure
}

var (
	_ layout.Element = (*Text)(nil)
	_ layout.Sizer   = (*Text)(nil)
)

// NewText 以环境的字体、字号与文字颜色初始化文本元素。
func NewText(env layout.Environment, content string) *Text {
	return &Text{
		Content:      content,
		Font:         env.Font,
		FontSize:     env.FontSize,
		LineHeight:   layout.LineHeightSpec{Kind: layout.LineHeightFactor, Factor: defaultLineHeightEm},
		Color:        env.TextColor,
		Align:        "left",
		Wrap:         "normal",
		baseFontSize: env.FontSize,
	}
}

// BuildText 读取 (text 选项...)。
func BuildText(env layout.Environment, expr *dsl.Expr, _ layout.Registry) (layout.Element, error) {
	t := NewText(env, "")
	err := dsl.WalkMap(expr.Args(), map[string]dsl.Handler{
		"content": func(v *dsl.Expr) error {
			if v.IsList() {
				return errors.New(errors.CodeInvalidArgument, "%s: 期望字符串，实际为 %s", v.Pos, v.Source())
			}
			t.Content = binding.Interpolate(v.Text(), env.Data)
			return nil
		},
		"color": func(v *dsl.Expr) error {
			c, err := layout.ParseColor(v.Text())
			if err != nil {
				return err
			}
			t.Color = c
			return nil
		},
		"font-size": func(v *dsl.Expr) error {
			m, err := layout.ParseMeasure(v.Text())
			if err != nil {
				return err
			}
			t.FontSize = m
			return nil
		},
		"font-style": func(v *dsl.Expr) error {
			t.Font.Style = v.Text()
			return nil
		},
		"line-height": func(v *dsl.Expr) error {
			lh, err := layout.ParseLineHeight(v.Text())
			if err != nil {
				return err
			}
			t.LineHeight = lh
			return nil
		},
		"align": func(v *dsl.Expr) error {
			switch a := strings.ToLower(v.Text()); a {
			case "left", "center", "right":
				t.Align = a
				return nil
			default:
				return errors.New(errors.CodeInvalidArgument, "不支持的对齐方式 %q", v.Text())
			}
		},
		"wrap": func(v *dsl.Expr) error {
			switch w := strings.ToLower(v.Text()); w {
			case "normal", "nowrap", "break-word":
				t.Wrap = w
				return nil
			default:
				return errors.New(errors.CodeInvalidArgument, "不支持的换行方式 %q", v.Text())
			}
		},
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Style 返回在给定 dpi 下换算为设备单位的文本样式。
func (t *Text) Style(dpi float64) layout.TextStyle {
	size := layout.ConvertTypographic(dpi, t.baseFontSize, t.FontSize)
	return layout.TextStyle{
		Font:       t.Font,
		FontSize:   size,
		LineHeight: t.LineHeight.Resolve(dpi, layout.Px(size)),
		Color:      t.Color,
		Align:      t.Align,
		Wrap:       t.Wrap,
	}
}

// SizeHint 优先由 Layer 测量；Layer 不支持测量时按字号估算。
func (t *Text) SizeHint(layer layout.Layer, maxWidth, _ float64) (float64, float64, error) {
	style := t.Style(layer.DPI())
	if m, ok := layer.(layout.TextMeasurer); ok {
		return m.MeasureText(t.Content, maxWidth, style)
	}
	lines := strings.Split(t.Content, "\n")
	width := 0.0
	for _, line := range lines {
		if w := estimatedAdvance * style.FontSize * float64(utf8.RuneCountInString(line)); w > width {
			width = w
		}
	}
	return width, style.LineHeight * float64(len(lines)), nil
}

// Draw 在 Layer 支持文本时绘制，否则不做任何事。
func (t *Text) Draw(info layout.Info, layer layout.Layer) error {
	d, ok := layer.(layout.TextDrawer)
	if !ok || t.Content == "" {
		return nil
	}
	return d.DrawText(t.Content, info.ContentBox, t.Style(layer.DPI()))
}
