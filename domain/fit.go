package domain

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/ByLCY/chartbox/errors"
)

// Fit 根据观测数据补全未设置的边界（线性）或追加新类别（类别型）。
//
// 线性：min/max 只在未设置时参与拟合，彼此独立；拟合后按 padding 扩展，
// snapZero 为 true 且拟合出的最小值为正时最小值直接取 0。
// 数据无法解析为数值时返回 INVALID_ARGUMENT，Config 保持不变。
func Fit(data Series, c *Config, snapZero bool) error {
	switch c.Kind {
	case KindLinear:
		return fitLinear(data, c, snapZero)
	case KindCategorical:
		fitCategorical(data, c)
		return nil
	default:
		return errors.New(errors.CodeInvalidArgument, "未知的刻度类型 %d", c.Kind)
	}
}

func fitLinear(data Series, c *Config, snapZero bool) error {
	values, err := SeriesToFloat(data)
	if err != nil {
		return err
	}

	fitMin := c.Min == nil
	fitMax := c.Max == nil
	min, max := c.Min, c.Max
	if len(values) > 0 {
		// Bounds 只在严格更小/更大时更新，相等时保留首次出现的值。
		lo, hi := stats.Bounds(values)
		if fitMin {
			min = ptr(lo)
		}
		if fitMax {
			max = ptr(hi)
		}
	}

	span := valueOr(max, 0) - valueOr(min, 0)
	if fitMax {
		max = ptr(valueOr(max, 0) + span*c.Padding)
	}
	if fitMin {
		if snapZero && valueOr(min, 0) > 0 {
			min = ptr(0)
		} else {
			min = ptr(valueOr(min, 0) - span*c.Padding)
		}
	}

	c.Min, c.Max = min, max
	return nil
}

func fitCategorical(data Series, c *Config) {
	seen := make(map[string]struct{}, len(c.Categories)+len(data))
	for _, cat := range c.Categories {
		seen[cat] = struct{}{}
	}
	for _, v := range data {
		if _, ok := seen[v]; ok {
			continue
		}
		c.Categories = append(c.Categories, v)
		seen[v] = struct{}{}
	}
}
