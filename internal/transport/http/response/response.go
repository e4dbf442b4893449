package response

import (
	"errors"

	"curriculo-api/internal/domain"
)

// Body 失败时的统一响应体
type Body struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// Error 失败响应（customMsg 为空时使用默认信息）
func Error(code int, customMsg string) Body {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return Body{Error: msg}
}

// FromError 把 domain 错误转换为状态码 + 响应体；5xx 不向客户端暴露细节
func FromError(err error) (int, Body) {
	code := StatusOf(domain.CodeOf(err))
	if code >= CodeServerError {
		return code, Error(code, "")
	}
	body := Error(code, err.Error())
	var de *domain.Error
	if errors.As(err, &de) {
		body.Fields = de.Fields
	}
	return code, body
}

// Deleted 删除成功
type Deleted struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}
