package form

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"houseprice/internal/domain"
)

var (
	// ErrMissing is wrapped by a ValidationError for an empty field.
	ErrMissing = errors.New("value is required")
	// ErrNotNumber is wrapped by a ValidationError for a value that is not a
	// finite number.
	ErrNotNumber = errors.New("not a number")
)

// ParseField parses one raw field value.
func ParseField(key domain.FieldKey, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &domain.ValidationError{Field: key, Err: ErrMissing}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &domain.ValidationError{Field: key, Value: raw, Err: ErrNotNumber}
	}
	return v, nil
}

// ParseInput builds a FormInput from raw values keyed by field key. The first
// field in form order that is missing or malformed is reported.
func ParseInput(values map[domain.FieldKey]string) (domain.FormInput, error) {
	var in domain.FormInput
	for _, f := range domain.Fields {
		v, err := ParseField(f.Key, values[f.Key])
		if err != nil {
			return domain.FormInput{}, err
		}
		*in.Ref(f.Key) = v
	}
	return in, nil
}
