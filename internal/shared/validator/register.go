package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package.
// Safe to call more than once.
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}
	return register(v)
}

func register(v *validator.Validate) error {
	// 에러 메시지에 Go 필드명 대신 json 필드명 사용
	v.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]validator.Func{
		"zipcode":  ValidateZipcode,
		"notblank": validators.NotBlank,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
		}
	}

	slog.Debug("공통 Validator 등록 완료", "validators", "zipcode,notblank")
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
