package layout

// PlotConfig 是一个布局元素的完整配置，构建后只读。
type PlotConfig struct {
	Font        FontResource `json:"font"`
	FontSize    Measure      `json:"fontSize"`
	TextColor   Color        `json:"textColor"`
	BorderColor Color        `json:"borderColor"`
	// Margins 依次为 上、右、下、左。
	Margins    [4]Measure `json:"margins"`
	Borders    [4]Border  `json:"borders"`
	Background *Color     `json:"background,omitempty"`
	// BackgroundSet 表示文档显式给出了 background-color（包括 none）。
	BackgroundSet bool `json:"-"`

	BodyElements   []Element    `json:"-"`
	MarginElements [4][]Element `json:"-"`
}

// NewPlotConfig 以环境初始化配置，四个外边距默认 1em。
func NewPlotConfig(env Environment) *PlotConfig {
	return &PlotConfig{
		Font:        env.Font,
		FontSize:    env.FontSize,
		TextColor:   env.TextColor,
		BorderColor: env.BorderColor,
		Margins:     [4]Measure{Em(1), Em(1), Em(1), Em(1)},
	}
}

// Resolve 计算内容区域、各边占用、主体区域与四条边带。
// 任一元素的 SizeHint 失败时立即返回该错误。
func Resolve(cfg *PlotConfig, info Info, layer Layer) (Boxes, error) {
	var boxes Boxes
	dpi := layer.DPI()

	for i, m := range cfg.Margins {
		boxes.Margins[i] = ConvertTypographic(dpi, cfg.FontSize, m)
	}
	content := info.ContentBox.Shrink(boxes.Margins[0], boxes.Margins[1], boxes.Margins[2], boxes.Margins[3])

	// 每条边取其上最大元素的占用：上下取高度，左右取宽度。
	for _, edge := range Edges {
		for _, e := range cfg.MarginElements[edge] {
			sizer, ok := e.(Sizer)
			if !ok {
				continue
			}
			w, h, err := sizer.SizeHint(layer, content.W, content.H)
			if err != nil {
				return Boxes{}, err
			}
			want := h
			if edge.horizontal() {
				want = w
			}
			if want > boxes.Padding[edge] {
				boxes.Padding[edge] = want
			}
		}
	}

	pad := boxes.Padding
	body := content.Shrink(pad[0], pad[1], pad[2], pad[3])

	boxes.Content = content
	boxes.Body = body
	boxes.Bands = [4]Rectangle{
		{X: body.X, Y: content.Y, W: body.W, H: pad[EdgeTop]},
		{X: content.X + content.W - pad[EdgeRight], Y: body.Y, W: pad[EdgeRight], H: body.H},
		{X: body.X, Y: content.Y + content.H - pad[EdgeBottom], W: body.W, H: pad[EdgeBottom]},
		{X: content.X, Y: body.Y, W: pad[EdgeLeft], H: body.H},
	}
	return boxes, nil
}

// Draw 解析布局后依次绘制 背景、主体元素、各边元素、边框。
// 第一个失败的绘制会中止整个过程，错误原样返回。
func Draw(cfg *PlotConfig, info Info, layer Layer) error {
	boxes, err := Resolve(cfg, info, layer)
	if err != nil {
		return err
	}
	return paint(cfg, boxes, layer)
}

func paint(cfg *PlotConfig, boxes Boxes, layer Layer) error {
	if cfg.Background != nil {
		bg := boxes.Body
		if err := layer.FillRectangle(Point{X: bg.X, Y: bg.Y}, bg.W, bg.H, FillStyle{Color: *cfg.Background}); err != nil {
			return err
		}
	}

	for _, e := range cfg.BodyElements {
		if err := e.Draw(Info{ContentBox: boxes.Body}, layer); err != nil {
			return err
		}
	}

	for _, edge := range Edges {
		for _, e := range cfg.MarginElements[edge] {
			if err := e.Draw(Info{ContentBox: boxes.Bands[edge]}, layer); err != nil {
				return err
			}
		}
	}

	return drawBorders(cfg, boxes.Content, layer)
}

func drawBorders(cfg *PlotConfig, box Rectangle, layer Layer) error {
	left, top := box.X, box.Y
	right, bottom := box.X+box.W, box.Y+box.H
	segments := [4][2]Point{
		{{X: left, Y: top}, {X: right, Y: top}},
		{{X: right, Y: top}, {X: right, Y: bottom}},
		{{X: left, Y: bottom}, {X: right, Y: bottom}},
		{{X: left, Y: top}, {X: left, Y: bottom}},
	}
	dpi := layer.DPI()
	for _, edge := range Edges {
		border := cfg.Borders[edge]
		width := ConvertTypographic(dpi, cfg.FontSize, border.Width)
		if width <= 0 {
			continue
		}
		color := cfg.BorderColor
		if border.Color != nil {
			color = *border.Color
		}
		seg := segments[edge]
		if err := layer.StrokeLine(seg[0], seg[1], StrokeStyle{Color: color, Width: width}); err != nil {
			return err
		}
	}
	return nil
}

// Plot 是由 PlotConfig 驱动的布局元素，可嵌套在其他布局中。
type Plot struct {
	Config *PlotConfig
	// OnResolve 在几何解析完成、开始绘制前被调用，用于调试输出。
	OnResolve func(Boxes)
}

// Draw implements Element.
func (p *Plot) Draw(info Info, layer Layer) error {
	boxes, err := Resolve(p.Config, info, layer)
	if err != nil {
		return err
	}
	if p.OnResolve != nil {
		p.OnResolve(boxes)
	}
	return paint(p.Config, boxes, layer)
}
