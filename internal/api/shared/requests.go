package shared

import (
	"encoding/json"
	"html"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

// Global validator instance for reuse
var validate = newValidator()

// textPolicy strips every HTML element from free-text input.
var textPolicy = bluemonday.StrictPolicy()

// newValidator returns a validator that reports JSON field names and treats
// decimal.Decimal values as numbers for gt/lt style tags.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}

// maxEntityDecodes bounds how many layers of HTML entity encoding are undone
// before sanitizing.
const maxEntityDecodes = 5

// SanitizeText removes markup from s and trims surrounding whitespace.
// Entity-encoded markup is decoded first so the policy strips it too; the
// entities the policy escapes in the remaining text are decoded again so
// plain text such as "Rua A & B" survives unchanged.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(decodeEntities(s))))
}

// decodeEntities unescapes s until it stops changing.
func decodeEntities(s string) string {
	for i := 0; i < maxEntityDecodes; i++ {
		decoded := html.UnescapeString(s)
		if decoded == s {
			break
		}
		s = decoded
	}
	return s
}
