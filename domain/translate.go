package domain

import (
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/ByLCY/chartbox/errors"
)

// Translate 将 series 映射到归一化坐标。线性映射不做截断，区间外的值会落在 [0,1] 之外。
func Translate(c Config, series Series) ([]float64, error) {
	switch c.Kind {
	case KindLinear:
		return translateLinear(c, series)
	case KindCategorical:
		return translateCategorical(c, series)
	default:
		return nil, errors.New(errors.CodeInvalidArgument, "未知的刻度类型 %d", c.Kind)
	}
}

func linearScale(c Config) (scale.Linear, error) {
	if c.State() != Fitted {
		return scale.Linear{}, errors.New(errors.CodeDomainUnfit, "线性区间的边界尚未确定，请先调用 Fit")
	}
	min, max := c.Bounds()
	if max == min {
		return scale.Linear{}, errors.New(errors.CodeDomainDegenerate, "线性区间宽度为零（min = max = %g）", min)
	}
	return scale.Linear{Min: min, Max: max}, nil
}

func translateLinear(c Config, series Series) ([]float64, error) {
	ls, err := linearScale(c)
	if err != nil {
		return nil, err
	}
	values, err := SeriesToFloat(series)
	if err != nil {
		return nil, err
	}
	mapped := make([]float64, len(values))
	for i, v := range values {
		t := ls.Map(v)
		if c.Inverted {
			t = 1 - t
		}
		mapped[i] = t
	}
	return mapped, nil
}

func categoryIndex(c Config) map[string]int {
	index := make(map[string]int, len(c.Categories))
	for i, cat := range c.Categories {
		index[cat] = i
	}
	return index
}

func translateCategorical(c Config, series Series) ([]float64, error) {
	n := float64(len(c.Categories))
	if n == 0 {
		return nil, errors.New(errors.CodeDomainDegenerate, "类别型区间没有任何类别")
	}
	index := categoryIndex(c)
	mapped := make([]float64, len(series))
	for i, v := range series {
		idx, ok := index[v]
		if !ok {
			return nil, errors.New(errors.CodeInvalidArgument, "类别 %q 不在区间内，Fit 时未观测到该值", v)
		}
		t := float64(idx)/n + 0.5/n
		if c.Inverted {
			t = 1 - t
		}
		mapped[i] = t
	}
	return mapped, nil
}

// Untranslate 是线性 Translate 的逆运算；类别型请使用 UntranslateCategory。
func Untranslate(c Config, t float64) (float64, error) {
	if c.Kind != KindLinear {
		return 0, errors.New(errors.CodeUnsupported, "%s 区间不支持数值反向映射", c.Kind)
	}
	if c.State() != Fitted {
		return 0, errors.New(errors.CodeDomainUnfit, "线性区间的边界尚未确定，请先调用 Fit")
	}
	if c.Inverted {
		t = 1 - t
	}
	min, max := c.Bounds()
	return scale.Linear{Min: min, Max: max}.Unmap(t), nil
}

// UntranslateCategory 返回槽位包含 t 的类别；超出 [0,1] 的 t 落到首尾类别。
func UntranslateCategory(c Config, t float64) (string, error) {
	if c.Kind != KindCategorical {
		return "", errors.New(errors.CodeUnsupported, "%s 区间没有类别", c.Kind)
	}
	n := len(c.Categories)
	if n == 0 {
		return "", errors.New(errors.CodeDomainDegenerate, "类别型区间没有任何类别")
	}
	if c.Inverted {
		t = 1 - t
	}
	idx := int(math.Floor(t * float64(n)))
	if idx < 0 {
		idx = 0
	} else if idx >= n {
		idx = n - 1
	}
	return c.Categories[idx], nil
}
