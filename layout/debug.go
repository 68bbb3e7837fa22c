package layout

import (
	"encoding/json"
	"os"
)

// Trace 记录一次绘制中每个布局解析出的几何结果，按解析顺序排列。
type Trace struct {
	Layouts []Boxes `json:"layouts"`
}

// Attach 为 root 及其所有嵌套 Plot 挂上记录回调。
func (t *Trace) Attach(root Element) {
	p, ok := root.(*Plot)
	if !ok {
		return
	}
	p.OnResolve = func(b Boxes) { t.Layouts = append(t.Layouts, b) }
	for _, e := range p.Config.BodyElements {
		t.Attach(e)
	}
	for _, list := range p.Config.MarginElements {
		for _, e := range list {
			t.Attach(e)
		}
	}
}

// WriteDebugJSON 将布局几何输出为 JSON，便于调试或可视化。
func WriteDebugJSON(t *Trace, path string) error {
	if t == nil {
		return nil
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
