package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors by the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// DecodeJSONBody decodes the request body into dst and runs struct validation.
// Unknown fields are rejected so typos surface immediately.
func DecodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "요청 본문이 비어 있습니다.")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "요청 본문을 해석할 수 없습니다.")
	}

	if err := validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "validator misconfigured")
		}

		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return pkgerrors.New(pkgerrors.CodeValidation, "입력값이 올바르지 않습니다.").
				WithDetails(formatValidationErrors(fieldErrs))
		}
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "입력값이 올바르지 않습니다.")
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = validationMessage(fe)
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s은(는) 필수 항목입니다.", fe.Field())
	case "email":
		return fmt.Sprintf("%s은(는) 올바른 이메일 형식이어야 합니다.", fe.Field())
	case "min":
		return fmt.Sprintf("%s은(는) 최소 %s 이상이어야 합니다.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s은(는) 최대 %s 이하여야 합니다.", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s은(는) 올바른 식별자가 아닙니다.", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s은(는) [%s] 중 하나여야 합니다.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s이(가) 유효하지 않습니다. (%s)", fe.Field(), fe.Tag())
	}
}
