// Package validate provides struct-tag validation for request input.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	lte=N               number <= N
//	gt=N                number > N
//	in=a,b,c            value must be one of the listed items
//	numeric             any number
//	integer             whole number
//	boolean             "true","false","1","0" (or actual bool)
//	date                parseable date (common layouts tried)
//
// Example:
//
//	type Input struct {
//	    Email    string `json:"email"    validate:"required,email"`
//	    Quantity int    `json:"quantity" validate:"required,gte=1"`
//	    Role     string `json:"role"     validate:"nullable,in=customer,admin"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := strings.Split(tag, ",")

		// `in=a,b,c` swallows the following comma-separated parts; re-join.
		rules = regroupRules(rules)

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		if value.Kind() == reflect.Ptr && !value.IsNil() {
			value = value.Elem()
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if !emailRe.MatchString(raw) {
			return fmt.Sprintf("The %s field must be a valid email address.", field)
		}

	case "min":
		n, _ := strconv.ParseFloat(param, 64)
		if num, ok := numericValue(v); ok {
			if num < n {
				return fmt.Sprintf("The %s field must be at least %s.", field, param)
			}
		} else if float64(len(raw)) < n {
			return fmt.Sprintf("The %s field must be at least %s characters.", field, param)
		}

	case "max":
		n, _ := strconv.ParseFloat(param, 64)
		if num, ok := numericValue(v); ok {
			if num > n {
				return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
			}
		} else if float64(len(raw)) > n {
			return fmt.Sprintf("The %s field may not be greater than %s characters.", field, param)
		}

	case "gte":
		n, _ := strconv.ParseFloat(param, 64)
		if num, ok := numericValue(v); !ok || num < n {
			return fmt.Sprintf("The %s field must be at least %s.", field, param)
		}

	case "lte":
		n, _ := strconv.ParseFloat(param, 64)
		if num, ok := numericValue(v); !ok || num > n {
			return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
		}

	case "gt":
		n, _ := strconv.ParseFloat(param, 64)
		if num, ok := numericValue(v); !ok || num <= n {
			return fmt.Sprintf("The %s field must be greater than %s.", field, param)
		}

	case "in":
		options := strings.Split(param, ",")
		for _, opt := range options {
			if raw == opt {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)

	case "numeric":
		if _, ok := numericValue(v); !ok {
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				return fmt.Sprintf("The %s field must be a number.", field)
			}
		}

	case "integer":
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
				return fmt.Sprintf("The %s field must be an integer.", field)
			}
		}

	case "boolean":
		if v.Kind() == reflect.Bool {
			return ""
		}
		switch raw {
		case "true", "false", "1", "0":
		default:
			return fmt.Sprintf("The %s field must be true or false.", field)
		}

	case "date":
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, raw); err == nil {
				return ""
			}
		}
		return fmt.Sprintf("The %s field must be a valid date.", field)
	}

	return ""
}

func numericValue(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}

// regroupRules re-joins the comma-separated parameter list of an `in=` rule
// that the outer split broke apart.
func regroupRules(parts []string) []string {
	var out []string
	for i := 0; i < len(parts); i++ {
		p := parts[i]
		if strings.HasPrefix(p, "in=") {
			for i+1 < len(parts) && !strings.Contains(parts[i+1], "=") && !isRuleName(parts[i+1]) {
				i++
				p += "," + parts[i]
			}
		}
		out = append(out, p)
	}
	return out
}

func isRuleName(s string) bool {
	switch s {
	case "required", "nullable", "email", "numeric", "integer", "boolean", "date":
		return true
	default:
		return false
	}
}
