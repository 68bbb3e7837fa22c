package dsl

import (
	"strconv"
	"strings"

	"github.com/ByLCY/chartbox/errors"
)

// Handler 读取某个选项的取值表达式。
type Handler func(value *Expr) error

// IsList reports whether e is a parenthesised list.
func (e *Expr) IsList() bool { return e != nil && e.List != nil }

// IsSymbol reports whether e is a bare identifier.
func (e *Expr) IsSymbol() bool { return e != nil && e.Symbol != nil }

// Items 返回列表的子表达式；原子返回 nil。
func (e *Expr) Items() []*Expr {
	if !e.IsList() {
		return nil
	}
	return e.List.Items
}

// Head 返回列表首个符号（元素名），不是 (name ...) 形式时返回空串。
func (e *Expr) Head() string {
	items := e.Items()
	if len(items) == 0 || !items[0].IsSymbol() {
		return ""
	}
	return *items[0].Symbol
}

// Args 返回 (name args...) 中 name 之后的部分。
func (e *Expr) Args() []*Expr {
	items := e.Items()
	if len(items) == 0 {
		return nil
	}
	return items[1:]
}

// Text 返回原子的文本值（字符串已去引号）；列表返回空串。
func (e *Expr) Text() string {
	switch {
	case e == nil:
		return ""
	case e.String != nil:
		return string(*e.String)
	case e.Color != nil:
		return *e.Color
	case e.Number != nil:
		return *e.Number
	case e.Symbol != nil:
		return *e.Symbol
	default:
		return ""
	}
}

// Source renders the expression back into source form.
func (e *Expr) Source() string {
	if e == nil {
		return ""
	}
	if e.IsList() {
		parts := make([]string, 0, len(e.List.Items))
		for _, item := range e.List.Items {
			parts = append(parts, item.Source())
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	if e.String != nil {
		return strconv.Quote(string(*e.String))
	}
	return e.Text()
}

// Values 把取值展开为原子序列：列表返回其子项，原子返回自身。
func (e *Expr) Values() []*Expr {
	if e.IsList() {
		return e.List.Items
	}
	if e == nil {
		return nil
	}
	return []*Expr{e}
}

// WalkMap 将 `key value key value ...` 形式的参数分派给对应的 handler。
// 未知选项或缺少取值时返回 INVALID_ARGUMENT；handler 的错误附带选项名后原样向上传递。
func WalkMap(args []*Expr, handlers map[string]Handler) error {
	for i := 0; i < len(args); i += 2 {
		key := args[i]
		if !key.IsSymbol() {
			return errors.New(errors.CodeInvalidArgument, "%s: 期望选项名，实际为 %s", key.Pos, key.Source())
		}
		name := *key.Symbol
		handler, ok := handlers[name]
		if !ok {
			return errors.New(errors.CodeInvalidArgument, "%s: 未知选项 %s", key.Pos, name)
		}
		if i+1 >= len(args) {
			return errors.New(errors.CodeInvalidArgument, "%s: 选项 %s 缺少取值", key.Pos, name)
		}
		if err := handler(args[i+1]); err != nil {
			return errors.Wrap(errors.GetCodeOr(err, errors.CodeInvalidArgument), err, "选项 %s", name)
		}
	}
	return nil
}
