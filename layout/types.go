package layout

import (
	"strconv"
	"strings"

	"github.com/ByLCY/chartbox/errors"
)

// 该文件定义布局计算、元素绘制与调试 JSON 共用的几何与样式类型。

// Edge 表示盒子的四条边，顺序固定为 上、右、下、左。
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Edges 按绘制顺序列出四条边。
var Edges = [4]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "edge(" + strconv.Itoa(int(e)) + ")"
	}
}

// horizontal 报告该边的占用是否沿宽度方向计量（左右两边）。
func (e Edge) horizontal() bool { return e == EdgeRight || e == EdgeLeft }

// Point 为设备坐标中的一点，原点在左上角。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rectangle 为设备坐标中的矩形，纯值类型。
type Rectangle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Shrink 从四边向内收缩矩形，依次为 上、右、下、左。
func (r Rectangle) Shrink(top, right, bottom, left float64) Rectangle {
	return Rectangle{
		X: r.X + left,
		Y: r.Y + top,
		W: r.W - left - right,
		H: r.H - top - bottom,
	}
}

// Color 采用 0-255 的 RGBA 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
	A int `json:"a"`
}

// RGB 返回不透明颜色。
func RGB(r, g, b int) Color { return Color{R: r, G: g, B: b, A: 255} }

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// ParseColor 解析 #rgb、#rrggbb 与 #rrggbbaa。
func ParseColor(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) == 3 {
		hex = strings.Repeat(hex[0:1], 2) + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, errors.New(errors.CodeInvalidArgument, "颜色值 %s 无法解析", value)
	}
	var ch [4]int
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, errors.Wrap(errors.CodeInvalidArgument, err, "颜色值 %s 无法解析", value)
		}
		ch[i] = int(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// FillStyle 描述填充样式。
type FillStyle struct {
	Color Color `json:"color"`
}

// StrokeStyle 描述描边样式，Width 为设备单位。
type StrokeStyle struct {
	Color Color   `json:"color"`
	Width float64 `json:"width"`
}

// Border 描述一条边框；Color 为空时使用 PlotConfig.BorderColor。
type Border struct {
	Color *Color  `json:"color,omitempty"`
	Width Measure `json:"width"`
}

// FontResource 描述字体资源，src 可以是文件路径或 builtin:* 形式。
type FontResource struct {
	Name  string `json:"name"`
	Src   string `json:"src"`
	Style string `json:"style"`
}

// Boxes 保存一次布局解析的全部几何结果（设备单位）。
type Boxes struct {
	// Margins 为换算后的外边距。
	Margins [4]float64 `json:"margins"`
	// Content 为扣除外边距后的内容区域，边框沿其四边绘制。
	Content Rectangle `json:"content"`
	// Padding 为各边元素尺寸协商得到的占用。
	Padding [4]float64 `json:"padding"`
	// Body 为扣除 Padding 后的主体区域。
	Body Rectangle `json:"body"`
	// Bands 为四条边上元素的绘制区域。
	Bands [4]Rectangle `json:"bands"`
}
