package domain

import (
	"errors"
	"strings"
)

// Code 错误分类，传输层据此映射 HTTP 状态码
type Code int

const (
	CodeStoreFailure Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeConflict
	CodeTimeout
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "invalid_input"
	case CodeNotFound:
		return "not_found"
	case CodeConflict:
		return "conflict"
	case CodeTimeout:
		return "timeout"
	default:
		return "store_failure"
	}
}

// Error 统一错误对象
type Error struct {
	Code   Code
	Msg    string
	Fields []string // 缺失的必填字段（仅 InvalidInput）
	Err    error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is 按 Code 匹配，配合下方哨兵使用：errors.Is(err, domain.ErrNotFound)
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Code == e.Code
}

var (
	ErrInvalidInput = &Error{Code: CodeInvalidInput}
	ErrNotFound     = &Error{Code: CodeNotFound}
	ErrConflict     = &Error{Code: CodeConflict}
	ErrStoreFailure = &Error{Code: CodeStoreFailure}
	ErrTimeout      = &Error{Code: CodeTimeout}
)

func InvalidInput(msg string, fields ...string) error {
	return &Error{Code: CodeInvalidInput, Msg: msg, Fields: fields}
}

// MissingFields 必填字段缺失
func MissingFields(fields ...string) error {
	return &Error{
		Code:   CodeInvalidInput,
		Msg:    "missing required fields: " + strings.Join(fields, ", "),
		Fields: fields,
	}
}

func NotFound(what string) error {
	return &Error{Code: CodeNotFound, Msg: what + " not found"}
}

func Conflict(msg string) error { return &Error{Code: CodeConflict, Msg: msg} }

func StoreFailure(msg string, err error) error {
	return &Error{Code: CodeStoreFailure, Msg: msg, Err: err}
}

// Timeout 请求期限已到或客户端已断开，语句被取消
func Timeout(msg string, err error) error {
	return &Error{Code: CodeTimeout, Msg: msg, Err: err}
}

// CodeOf 非 *Error 一律按 StoreFailure 处理
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeStoreFailure
}
