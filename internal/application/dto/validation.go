package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mraposo/cobranca-api/internal/domain"
)

// Formatos de data aceitos no campo vencimento.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reporta o nome do campo como ele aparece no JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate aplica as regras declaradas nas tags do struct, na ordem de
// declaração dos campos, e devolve a primeira violação como
// domain.ValidationError (fail-fast).
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return domain.NewValidationError(fe.Field(), fieldMessage(fe))
	}
	return err
}

// fieldMessage converte uma violação em mensagem legível.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("É necessário informar o campo %s", field)
	case "email":
		return "Você não digitou um e-mail válido"
	case "max":
		return fmt.Sprintf("O campo %s não aceita mais de %s caracteres", field, fe.Param())
	case "len":
		return fmt.Sprintf("O campo %s possui necessariamente %s caracteres", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("O campo %s é inválido (%s)", field, fe.Tag())
	}
}

// ParseDate interpreta o campo vencimento ("2006-01-02" ou RFC 3339).
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, domain.NewValidationError(field, fmt.Sprintf("É necessário informar o campo %s", field))
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError(field, fmt.Sprintf("O campo %s é necessariamente uma data", field))
}
