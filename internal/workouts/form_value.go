package workouts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FormValue is a numeric form field as a browser form submits it: a string,
// a number or null. It is parsed leniently, by its leading numeric prefix.
type FormValue struct {
	raw string
	set bool
}

func NewFormValue(raw string) FormValue {
	return FormValue{raw: raw, set: true}
}

func (v *FormValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*v = FormValue{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = NewFormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a number or a string: %w", err)
	}
	*v = NewFormValue(n.String())
	return nil
}

func (v FormValue) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.raw)
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Int returns the integer the value starts with ("12 reps" is 12, "3.7" is 3),
// or nil when it does not start with one.
func (v FormValue) Int() *int {
	if !v.set {
		return nil
	}
	m := intPrefix.FindString(strings.TrimSpace(v.raw))
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}

// Float returns the decimal the value starts with ("42.5kg" is 42.5), or nil.
func (v FormValue) Float() *float64 {
	if !v.set {
		return nil
	}
	m := floatPrefix.FindString(strings.TrimSpace(v.raw))
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &f
}

// IntOr returns Int, or def when the value is missing, unparsable or zero.
func (v FormValue) IntOr(def int) int {
	if n := v.Int(); n != nil && *n != 0 {
		return *n
	}
	return def
}
