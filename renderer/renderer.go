// Package renderer 定义把布局元素输出为文件的接口。
package renderer

import (
	"strings"

	"github.com/ByLCY/chartbox/errors"
	"github.com/ByLCY/chartbox/layout"
)

// Format 为输出文件格式。
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// ParseFormat 接受 pdf 与 svg（大小写不敏感）。
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatSVG:
		return f, nil
	default:
		return "", errors.New(errors.CodeUnsupported, "不支持的输出格式 %q", s)
	}
}

// Renderer 将根元素绘制到 width×height 的页面上，返回生成的文件字节。
type Renderer interface {
	Render(root layout.Element, width, height float64, format Format) ([]byte, error)
}
