package response

import (
	"net/http"

	"curriculo-api/internal/domain"
)

// 直接使用 HTTP 状态码作为错误码
const (
	CodeOK                 = http.StatusOK
	CodeCreated            = http.StatusCreated
	CodeBadRequest         = http.StatusBadRequest
	CodeUnauthorized       = http.StatusUnauthorized
	CodeForbidden          = http.StatusForbidden
	CodeNotFound           = http.StatusNotFound
	CodeConflict           = http.StatusConflict
	CodeTooLarge           = http.StatusRequestEntityTooLarge
	CodeTooManyRequests    = http.StatusTooManyRequests
	CodeServerError        = http.StatusInternalServerError
	CodeServiceUnavailable = http.StatusServiceUnavailable
	CodeTimeout            = http.StatusGatewayTimeout
)

// CodeMsgMap 默认错误信息
var CodeMsgMap = map[int]string{
	CodeOK:                 "OK",
	CodeCreated:            "Created",
	CodeBadRequest:         "Bad Request",
	CodeUnauthorized:       "Unauthorized",
	CodeForbidden:          "Forbidden",
	CodeNotFound:           "Not Found",
	CodeConflict:           "Conflict",
	CodeTooLarge:           "Request Entity Too Large",
	CodeTooManyRequests:    "Too Many Requests",
	CodeServerError:        "Internal Server Error",
	CodeServiceUnavailable: "Service Unavailable",
	CodeTimeout:            "Gateway Timeout",
}

// StatusOf domain 错误分类 -> HTTP 状态码
func StatusOf(c domain.Code) int {
	switch c {
	case domain.CodeInvalidInput:
		return CodeBadRequest
	case domain.CodeNotFound:
		return CodeNotFound
	case domain.CodeConflict:
		return CodeConflict
	case domain.CodeTimeout:
		return CodeTimeout
	default:
		return CodeServerError
	}
}
