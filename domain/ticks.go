package domain

import (
	"strconv"

	"github.com/aclements/go-moremath/scale"

	"github.com/ByLCY/chartbox/errors"
)

// Tick 是坐标轴上的一个刻度：原始值、标签以及归一化位置。
type Tick struct {
	Value    float64 `json:"value"`
	Label    string  `json:"label"`
	Position float64 `json:"position"`
}

// Ticks 为区间生成最多 max 个主刻度。
// 线性区间使用 go-moremath 的刻度算法；类别型区间的刻度位于槽位中心，类别过多时等间隔抽取。
func Ticks(c Config, max int) ([]Tick, error) {
	if max < 1 {
		return nil, errors.New(errors.CodeInvalidArgument, "刻度数量上限必须为正数，实际 %d", max)
	}
	switch c.Kind {
	case KindLinear:
		ls, err := linearScale(c)
		if err != nil {
			return nil, err
		}
		if ls.Min > ls.Max {
			ls.Min, ls.Max = ls.Max, ls.Min
		}
		major, _ := ls.Ticks(scale.TickOptions{Max: max})
		positions, err := Translate(c, SeriesFromFloats(major))
		if err != nil {
			return nil, err
		}
		ticks := make([]Tick, len(major))
		for i, v := range major {
			ticks[i] = Tick{
				Value:    v,
				Label:    strconv.FormatFloat(v, 'g', 6, 64),
				Position: positions[i],
			}
		}
		return ticks, nil
	case KindCategorical:
		positions, err := Translate(c, Series(c.Categories))
		if err != nil {
			return nil, err
		}
		// 类别多于上限时每 step 个类别保留一个刻度，从第一个类别开始。
		n := len(c.Categories)
		step := (n + max - 1) / max
		ticks := make([]Tick, 0, (n+step-1)/step)
		for i := 0; i < n; i += step {
			ticks = append(ticks, Tick{Value: float64(i), Label: c.Categories[i], Position: positions[i]})
		}
		return ticks, nil
	default:
		return nil, errors.New(errors.CodeInvalidArgument, "未知的刻度类型 %d", c.Kind)
	}
}
