// Package fonts 提供内置字体的字节数据。
package fonts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

// Default 为未指定字体时使用的内置字体。
const Default = "sans"

var builtin = map[string][]byte{
	"sans":         lmsans10regular.TTF,
	"sans-bold":    lmsans10bold.TTF,
	"sans-italic":  lmsans10oblique.TTF,
	"serif":        lmroman10regular.TTF,
	"serif-bold":   lmroman10bold.TTF,
	"serif-italic": lmroman10italic.TTF,
	"mono":         lmmono10regular.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:sans" 或直接 "sans"。
func Load(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimPrefix(name, "embed:"))
	if key == "" {
		key = Default
	}
	data, ok := builtin[key]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 可选 %s", name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Names 按字母序列出全部内置字体。
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
