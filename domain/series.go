package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/ByLCY/chartbox/errors"
)

// Series 是一组只读的原始值（数字文本或类别标签）。
type Series []string

// SeriesFromFloats 将浮点数格式化为 Series。
func SeriesFromFloats(values []float64) Series {
	out := make(Series, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// ValueToFloat 尽力把单个值解析为有限实数。
func ValueToFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.Wrap(errors.CodeInvalidArgument, err, "无法将 %q 解析为数值", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New(errors.CodeInvalidArgument, "数值 %q 不是有限实数", value)
	}
	return f, nil
}

// SeriesToFloat 逐项调用 ValueToFloat，遇到第一个失败即返回。
func SeriesToFloat(series Series) ([]float64, error) {
	out := make([]float64, len(series))
	for i, v := range series {
		f, err := ValueToFloat(v)
		if err != nil {
			return nil, errors.Wrap(errors.CodeInvalidArgument, err, "第 %d 个值", i)
		}
		out[i] = f
	}
	return out, nil
}
