// Package validation holds the shared validator instance and the lenient JSON number types
// used at the write boundary.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"yoga-marketplace/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns a process-wide validator that reports fields by their JSON names.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct validates s and folds any failures into a single domain.ErrValidation.
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

// Float accepts a JSON number or a string holding one.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	raw, err := numberText(b)
	if err != nil || raw == "" {
		*f = 0
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %q is not a number", domain.ErrValidation, raw)
	}
	*f = Float(v)
	return nil
}

// Int accepts a JSON integer or a string holding one. Integral floats such as 10.0 are allowed.
type Int int

func (i *Int) UnmarshalJSON(b []byte) error {
	raw, err := numberText(b)
	if err != nil || raw == "" {
		*i = 0
		return err
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*i = Int(n)
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return fmt.Errorf("%w: %q is not an integer", domain.ErrValidation, raw)
	}
	*i = Int(v)
	return nil
}

// numberText strips quotes and whitespace. null and "" yield an empty string.
func numberText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return strings.TrimSpace(s), nil
	}
	return string(b), nil
}
