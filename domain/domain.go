// Package domain 将原始数据值映射到归一化的 [0,1] 坐标并支持反向映射，
// 同时负责根据观测数据自动拟合坐标轴范围。
//
// 生命周期为 Unfit → Fit → Translate：Fit 会就地修改 Config，
// 之后的 Translate/Untranslate 只读。
package domain

import (
	"strings"

	"github.com/ByLCY/chartbox/errors"
)

// Kind 表示刻度类型。
type Kind int

const (
	KindLinear Kind = iota
	KindCategorical
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// State 标记区间能否用于映射：线性区间两端边界都已确定，类别型区间至少有一个类别。
type State int

const (
	Unfit State = iota
	Fitted
)

// Config 描述一条坐标轴的映射配置。
type Config struct {
	Kind Kind `json:"kind"`
	// Min/Max 为 nil 表示由 Fit 根据数据自动确定。
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Inverted bool     `json:"inverted"`
	// Padding 为拟合时在两端追加的相对余量（仅线性）。
	Padding float64 `json:"padding"`
	// Categories 按显示顺序保存类别，值唯一（仅类别型）。
	Categories []string `json:"categories,omitempty"`
}

// NewConfig 返回默认配置：线性、不反转、无余量、边界未设置。
func NewConfig() *Config {
	return &Config{Kind: KindLinear}
}

// State 由当前边界与类别推导，Fit 与 Configure 之后无需另行维护。
func (c Config) State() State {
	switch {
	case c.Kind == KindLinear && c.Resolved():
		return Fitted
	case c.Kind == KindCategorical && len(c.Categories) > 0:
		return Fitted
	default:
		return Unfit
	}
}

// Resolved 报告线性区间的两个边界是否都已确定。
func (c Config) Resolved() bool {
	return c.Min != nil && c.Max != nil
}

// Bounds 返回线性区间；未设置的边界按 0 处理。
func (c Config) Bounds() (min, max float64) {
	return valueOr(c.Min, 0), valueOr(c.Max, 0)
}

// ParseKind 解析 "linear" / "categorical"。
func ParseKind(token string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "linear":
		return KindLinear, nil
	case "categorical":
		return KindCategorical, nil
	default:
		return 0, errors.New(errors.CodeInvalidArgument, "未知的刻度类型 %q", token)
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func ptr(v float64) *float64 { return &v }
