package layout

// Environment 是构建阶段从外部传入的只读环境：字体、颜色与绑定数据。
// 构建时按值复制进 PlotConfig，绘制期间不会再读取任何全局状态。
type Environment struct {
	Font        FontResource
	FontSize    Measure
	TextColor   Color
	BorderColor Color
	// Data 为文本插值使用的绑定数据（通常来自 JSON）。
	Data any
}

// DefaultEnvironment 返回 11pt、黑色文字与边框的环境。
func DefaultEnvironment() Environment {
	return Environment{
		Font:        FontResource{Name: "Body"},
		FontSize:    Pt(11),
		TextColor:   Black,
		BorderColor: Black,
	}
}

// Info 是传给元素的布局信息。
type Info struct {
	ContentBox Rectangle
}

// Layer 是绘制表面。坐标与长度均为设备单位，DPI 用于换算排版单位。
// Layer 不是并发安全的，所有写入按绘制顺序串行进行。
type Layer interface {
	DPI() float64
	FillRectangle(origin Point, width, height float64, fill FillStyle) error
	StrokeLine(from, to Point, stroke StrokeStyle) error
}

// Element 是可绘制元素。
type Element interface {
	Draw(info Info, layer Layer) error
}

// Sizer 由需要参与边距协商的元素实现；未实现的元素占用视为 0。
type Sizer interface {
	SizeHint(layer Layer, maxWidth, maxHeight float64) (width, height float64, err error)
}

// TextStyle 描述文本的字体、字号与行高（设备单位）、颜色与排版方式。
type TextStyle struct {
	Font       FontResource
	FontSize   float64
	LineHeight float64
	Color      Color
	// Align 为 left、center 或 right。
	Align string
	// Wrap 为 normal、nowrap 或 break-word。
	Wrap string
}

// TextMeasurer 由能够测量文本的 Layer 实现；maxWidth <= 0 表示不折行。
type TextMeasurer interface {
	MeasureText(text string, maxWidth float64, style TextStyle) (width, height float64, err error)
}

// TextDrawer 由能够绘制文本的 Layer 实现；文本在 box 内按 Align 水平对齐，顶部贴齐 box。
type TextDrawer interface {
	DrawText(text string, box Rectangle, style TextStyle) error
}
