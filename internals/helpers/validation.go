package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var defaultValidator = NewValidator()

// NewValidator: validator dengan nama field diambil dari tag json.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validator dipakai bareng oleh controller yang tidak inject validator sendiri.
func Validator() *validator.Validate { return defaultValidator }

// ValidationErrors mengubah error validator.v10 menjadi map field → pesan.
func ValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := toSnake(fe.Field())
		out[field] = append(out[field], messageFor(fe))
	}
	return out
}

// ValidateStruct = validasi + langsung tulis 422 kalau gagal.
// Return (true, nil) kalau valid.
func ValidateStruct(c *fiber.Ctx, v *validator.Validate, req any) (bool, error) {
	if v == nil {
		v = defaultValidator
	}
	if err := v.Struct(req); err != nil {
		return false, JsonValidationError(c, "validation failed", ValidationErrors(err))
	}
	return true, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	default:
		return "is invalid"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
