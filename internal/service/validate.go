package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"curriculo-api/internal/domain"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// 报错时使用 JSON 字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// 零值日期视为未填写
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(domain.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.Time
	}, domain.Date{})
	return v
}

// checkRequired 汇总所有缺失的必填字段
func checkRequired(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.InvalidInput(err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return domain.MissingFields(fields...)
}
