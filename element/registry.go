// Package element 提供可放入布局的具体元素。
package element

import "github.com/ByLCY/chartbox/layout"

// Registry 返回包含 layout 与 text 的默认元素工厂。
func Registry() layout.Registry {
	return layout.NewRegistry().With("text", BuildText)
}
