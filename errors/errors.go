// Package errors 定义 chartbox 核心使用的结构化错误。
//
// 每个错误带一个机器可读的 Code，调用方可以用 Is 判断类别，
// 同时保留底层原因以便 errors.Is/As 继续向下展开。
//
//	err := errors.New(errors.CodeInvalidArgument, "未知的刻度类型 %q", token)
//	if errors.Is(err, errors.CodeInvalidArgument) {
//	    // 配置错误
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// CodeInvalidArgument 表示无法识别的配置项、取值或输入数据。
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeDomainDegenerate 表示零宽度的线性区间或没有任何类别。
	CodeDomainDegenerate Code = "DOMAIN_DEGENERATE"
	// CodeDomainUnfit 表示线性区间仍有未确定的边界（尚未 Fit）。
	CodeDomainUnfit Code = "DOMAIN_UNFIT"
	// CodeUnsupported 表示该操作对当前类型不可用。
	CodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// 沿错误链查找第一个 *Error 并比较其 Code。
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetCodeOr 与 GetCode 相同，但在 err 不携带 Code 时返回 fallback。
func GetCodeOr(err error, fallback Code) Code {
	if code := GetCode(err); code != "" {
		return code
	}
	return fallback
}
