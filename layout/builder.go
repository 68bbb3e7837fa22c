package layout

import (
	"github.com/ByLCY/chartbox/dsl"
	"github.com/ByLCY/chartbox/errors"
)

// BuildFunc 根据 (name options...) 表达式构建一个元素。
type BuildFunc func(env Environment, expr *dsl.Expr, reg Registry) (Element, error)

// Registry 是元素工厂：元素名到构建函数的映射。
type Registry map[string]BuildFunc

// NewRegistry 返回只包含嵌套 layout 的工厂。
func NewRegistry() Registry {
	return Registry{"layout": BuildElement}
}

// With 返回追加了 name 的新工厂，原工厂不变。
func (r Registry) With(name string, fn BuildFunc) Registry {
	out := make(Registry, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[name] = fn
	return out
}

// BuildOne 按表达式首个符号查找构建函数。
func (r Registry) BuildOne(env Environment, expr *dsl.Expr) (Element, error) {
	name := expr.Head()
	if name == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "%s: 期望 (元素名 选项...)，实际为 %s", expr.Pos, expr.Source())
	}
	fn, ok := r[name]
	if !ok {
		return nil, errors.New(errors.CodeInvalidArgument, "%s: 未知元素 %s", expr.Pos, name)
	}
	return fn(env, expr, r)
}

// BuildList 构建元素列表。expr 可以是单个元素 (text ...)，也可以是元素列表 ((text ...) (layout ...))。
func (r Registry) BuildList(env Environment, expr *dsl.Expr) ([]Element, error) {
	if !expr.IsList() {
		return nil, errors.New(errors.CodeInvalidArgument, "%s: 期望元素列表，实际为 %s", expr.Pos, expr.Source())
	}
	if expr.Head() != "" {
		e, err := r.BuildOne(env, expr)
		if err != nil {
			return nil, err
		}
		return []Element{e}, nil
	}
	var out []Element
	for _, item := range expr.Items() {
		e, err := r.BuildOne(env, item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// BuildElement 适配 BuildFunc。
func BuildElement(env Environment, expr *dsl.Expr, reg Registry) (Element, error) {
	return Build(env, expr, reg)
}

// Build 读取 (layout 选项...) 生成布局元素。
// 未识别的选项或错误的取值会返回带选项名的错误。
func Build(env Environment, expr *dsl.Expr, reg Registry) (*Plot, error) {
	if expr == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "布局表达式为空")
	}
	if reg == nil {
		reg = NewRegistry()
	}
	cfg := NewPlotConfig(env)

	measure := func(dst *Measure) dsl.Handler {
		return func(v *dsl.Expr) error {
			m, err := ParseMeasure(v.Text())
			if err != nil {
				return err
			}
			*dst = m
			return nil
		}
	}
	color := func(dsts ...*Color) dsl.Handler {
		return func(v *dsl.Expr) error {
			c, err := ParseColor(v.Text())
			if err != nil {
				return err
			}
			for _, dst := range dsts {
				*dst = c
			}
			return nil
		}
	}
	borderColor := func(edge Edge) dsl.Handler {
		return func(v *dsl.Expr) error {
			c, err := ParseColor(v.Text())
			if err != nil {
				return err
			}
			cfg.Borders[edge].Color = &c
			return nil
		}
	}
	elements := func(dst *[]Element) dsl.Handler {
		return func(v *dsl.Expr) error {
			list, err := reg.BuildList(env, v)
			if err != nil {
				return err
			}
			*dst = append(*dst, list...)
			return nil
		}
	}

	err := dsl.WalkMap(expr.Args(), map[string]dsl.Handler{
		"margin": func(v *dsl.Expr) error {
			margins, err := parseMargins(v)
			if err != nil {
				return err
			}
			cfg.Margins = margins
			return nil
		},
		"margin-top":          measure(&cfg.Margins[EdgeTop]),
		"margin-right":        measure(&cfg.Margins[EdgeRight]),
		"margin-bottom":       measure(&cfg.Margins[EdgeBottom]),
		"margin-left":         measure(&cfg.Margins[EdgeLeft]),
		"border-top-color":    borderColor(EdgeTop),
		"border-right-color":  borderColor(EdgeRight),
		"border-bottom-color": borderColor(EdgeBottom),
		"border-left-color":   borderColor(EdgeLeft),
		"border-top-width":    measure(&cfg.Borders[EdgeTop].Width),
		"border-right-width":  measure(&cfg.Borders[EdgeRight].Width),
		"border-bottom-width": measure(&cfg.Borders[EdgeBottom].Width),
		"border-left-width":   measure(&cfg.Borders[EdgeLeft].Width),
		"background-color": func(v *dsl.Expr) error {
			cfg.BackgroundSet = true
			if v.IsSymbol() && v.Text() == "none" {
				cfg.Background = nil
				return nil
			}
			c, err := ParseColor(v.Text())
			if err != nil {
				return err
			}
			cfg.Background = &c
			return nil
		},
		"foreground-color": color(&cfg.TextColor, &cfg.BorderColor),
		"text-color":       color(&cfg.TextColor),
		"border-color":     color(&cfg.BorderColor),
		"body":             elements(&cfg.BodyElements),
		"top":              elements(&cfg.MarginElements[EdgeTop]),
		"right":            elements(&cfg.MarginElements[EdgeRight]),
		"bottom":           elements(&cfg.MarginElements[EdgeBottom]),
		"left":             elements(&cfg.MarginElements[EdgeLeft]),
	})
	if err != nil {
		return nil, err
	}
	return &Plot{Config: cfg}, nil
}

// parseMargins 接受 1 到 4 个长度，展开规则与 CSS margin 相同。
func parseMargins(v *dsl.Expr) ([4]Measure, error) {
	var out [4]Measure
	values := v.Values()
	ms := make([]Measure, 0, len(values))
	for _, item := range values {
		m, err := ParseMeasure(item.Text())
		if err != nil {
			return out, err
		}
		ms = append(ms, m)
	}
	switch len(ms) {
	case 1:
		out = [4]Measure{ms[0], ms[0], ms[0], ms[0]}
	case 2:
		out = [4]Measure{ms[0], ms[1], ms[0], ms[1]}
	case 3:
		out = [4]Measure{ms[0], ms[1], ms[2], ms[1]}
	case 4:
		out = [4]Measure{ms[0], ms[1], ms[2], ms[3]}
	default:
		return out, errors.New(errors.CodeInvalidArgument, "margin 需要 1 到 4 个长度，实际 %d 个", len(ms))
	}
	return out, nil
}
