package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ByLCY/chartbox/layout"
)

// theme 是 --theme 指定的 TOML 文件内容，缺省字段取默认值。
type theme struct {
	FontSize        string  `toml:"font_size"`
	TextColor       string  `toml:"text_color"`
	BorderColor     string  `toml:"border_color"`
	BackgroundColor string  `toml:"background_color"`
	Font            string  `toml:"font"`
	FontStyle       string  `toml:"font_style"`
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
}

// A5 横向，单位 mm。
func defaultTheme() theme {
	return theme{Width: 210, Height: 148}
}

func loadTheme(path string) (theme, error) {
	t := defaultTheme()
	if path == "" {
		return t, nil
	}
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return t, fmt.Errorf("读取主题 %s 失败: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return t, fmt.Errorf("主题 %s 含未知字段 %s", path, undecoded[0])
	}
	// 相对字体路径以主题文件所在目录为基准，并转为绝对路径，
	// 否则渲染器会再按 DSL 文件目录拼接一次。
	if t.Font != "" && !strings.Contains(t.Font, ":") && !filepath.IsAbs(t.Font) {
		abs, err := filepath.Abs(filepath.Join(filepath.Dir(path), t.Font))
		if err != nil {
			return t, fmt.Errorf("主题字体路径 %s: %w", t.Font, err)
		}
		t.Font = abs
	}
	return t, nil
}

// environment 把主题应用到默认构建环境上。
func (t theme) environment() (layout.Environment, error) {
	env := layout.DefaultEnvironment()
	if t.FontSize != "" {
		m, err := layout.ParseMeasure(t.FontSize)
		if err != nil {
			return env, fmt.Errorf("主题 font_size: %w", err)
		}
		env.FontSize = m
	}
	if t.TextColor != "" {
		c, err := layout.ParseColor(t.TextColor)
		if err != nil {
			return env, fmt.Errorf("主题 text_color: %w", err)
		}
		env.TextColor = c
	}
	if t.BorderColor != "" {
		c, err := layout.ParseColor(t.BorderColor)
		if err != nil {
			return env, fmt.Errorf("主题 border_color: %w", err)
		}
		env.BorderColor = c
	}
	env.Font.Src = t.Font
	env.Font.Style = t.FontStyle
	return env, nil
}

// background 返回主题背景色，未设置时为 nil。
func (t theme) background() (*layout.Color, error) {
	if t.BackgroundColor == "" {
		return nil, nil
	}
	c, err := layout.ParseColor(t.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("主题 background_color: %w", err)
	}
	return &c, nil
}
