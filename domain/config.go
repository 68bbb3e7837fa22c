package domain

import (
	"strconv"
	"strings"

	"github.com/ByLCY/chartbox/dsl"
	"github.com/ByLCY/chartbox/errors"
)

// Configure 读取 (domain scale linear min 0 max 10 inverted true padding 0.1 categories (a b)) 中的选项。
func Configure(args []*dsl.Expr, c *Config) error {
	return dsl.WalkMap(args, map[string]dsl.Handler{
		"scale": func(v *dsl.Expr) error {
			kind, err := ParseKind(v.Text())
			if err != nil {
				return err
			}
			c.Kind = kind
			return nil
		},
		"min": func(v *dsl.Expr) error {
			f, err := ValueToFloat(v.Text())
			if err != nil {
				return err
			}
			c.Min = ptr(f)
			return nil
		},
		"max": func(v *dsl.Expr) error {
			f, err := ValueToFloat(v.Text())
			if err != nil {
				return err
			}
			c.Max = ptr(f)
			return nil
		},
		"inverted": func(v *dsl.Expr) error {
			b, err := parseSwitch(v.Text())
			if err != nil {
				return err
			}
			c.Inverted = b
			return nil
		},
		"padding": func(v *dsl.Expr) error {
			f, err := ValueToFloat(v.Text())
			if err != nil {
				return err
			}
			c.Padding = f
			return nil
		},
		"categories": func(v *dsl.Expr) error {
			var cats Series
			for _, item := range v.Values() {
				if item.IsList() {
					return errors.New(errors.CodeInvalidArgument, "类别必须是原子值，实际为 %s", item.Source())
				}
				cats = append(cats, item.Text())
			}
			// 通过 fitCategorical 追加，保证去重且保持顺序。
			fitCategorical(cats, c)
			return nil
		},
	})
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.CodeInvalidArgument, "无法将 %q 解析为布尔值", v)
	}
	return b, nil
}
