package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// query 中按 key 打码
var sensitiveQuery = map[string]bool{
	"password": true, "pwd": true, "token": true, "access_token": true,
	"authorization": true, "secret": true,
}

func maskQuery(q url.Values) map[string][]string {
	out := make(map[string][]string, len(q))
	for k, v := range q {
		if sensitiveQuery[strings.ToLower(k)] {
			v = []string{"****"}
		}
		out[k] = v
	}
	return out
}

// AccessLog 每个请求一条日志：5xx 或挂了 c.Errors 记 Error，4xx 记 Warn，其余 Info
func AccessLog(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []zap.Field{
			zap.String("rid", c.GetString(KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.Int("size", max(0, c.Writer.Size())),
		}
		if q := c.Request.URL.Query(); len(q) > 0 {
			fields = append(fields, zap.Any("query", maskQuery(q)))
		}
		if ua := c.Request.UserAgent(); ua != "" {
			fields = append(fields, zap.String("ua", ua))
		}

		lvl := zapcore.InfoLevel
		switch {
		case len(c.Errors) > 0:
			// handler 通过 c.Error 挂上的存储层错误
			fields = append(fields, zap.String("errors", c.Errors.String()))
			lvl = zapcore.ErrorLevel
		case status >= 500:
			lvl = zapcore.ErrorLevel
		case status >= 400:
			lvl = zapcore.WarnLevel
		}
		if ce := l.Check(lvl, "HTTP"); ce != nil {
			ce.Write(fields...)
		}
	}
}
