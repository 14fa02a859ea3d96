// Package inputval provides card input validation using waffle/pantry/validate.
//
// This package wraps pantry/validate to provide a convenient interface for
// validating card definitions with struct tags, wherever they come from: the
// builder form, the JSON render API, or a YAML card file. Define an input
// struct with validate tags, populate it, and call Validate to get
// user-friendly error messages.
//
// Example:
//
//	input := inputval.CardInput{
//	    Title: r.FormValue("title"),
//	    Value: r.FormValue("value"),
//	}
//
//	if res := inputval.Validate(input); res.HasErrors() {
//	    renderWithError(w, r, res.First())
//	    return
//	}
package inputval

import (
	"reflect"
	"strings"
	"sync"

	"github.com/dalemusser/stratacard/internal/app/system/icons"
	"github.com/dalemusser/stratacard/internal/app/system/normalize"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
	"github.com/dalemusser/waffle/pantry/validate"
)

// Result holds validation results with user-friendly messages.
type Result struct {
	Errors []FieldError
}

// FieldError represents a validation error for a single field.
type FieldError struct {
	Field   string
	Label   string
	Message string
}

// HasErrors returns true if there are any validation errors.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first error message, or empty string if no errors.
func (r *Result) First() string {
	if len(r.Errors) > 0 {
		return r.Errors[0].Message
	}
	return ""
}

// All returns all error messages joined with "; ".
func (r *Result) All() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Fields returns field -> message, the shape jsonutil.ValidationError expects.
func (r *Result) Fields() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}

// customValidator is a singleton validator with custom rules registered.
var (
	customValidator *validate.Validator
	validatorOnce   sync.Once
)

// getValidator returns the singleton validator with custom rules.
func getValidator() *validate.Validator {
	validatorOnce.Do(func() {
		customValidator = validate.New(validate.WithStopOnFirstError())

		// variant: empty or one of the declared card variants
		customValidator.RegisterRuleFunc("variant", func(value any) bool {
			if s, ok := value.(string); ok {
				return IsValidVariant(s)
			}
			return false
		}, "variant")

		// trend: empty or one of the declared trend directions
		customValidator.RegisterRuleFunc("trend", func(value any) bool {
			if s, ok := value.(string); ok {
				return IsValidTrend(s)
			}
			return false
		}, "trend")

		// icon: empty or a registered built-in glyph name
		customValidator.RegisterRuleFunc("icon", func(value any) bool {
			if s, ok := value.(string); ok {
				return IsValidIcon(s)
			}
			return false
		}, "icon")
	})
	return customValidator
}

// Validate validates a struct and returns a Result with user-friendly errors.
// The struct should have `validate` tags for rules and optional `label` tags
// for user-friendly field names.
//
// Supported validation rules (from pantry/validate):
//   - required: field must not be empty
//   - min=N / max=N: string length or numeric value bounds
//   - oneof=a b c: field must be one of the specified values
//
// Custom validation rules (registered by this package):
//   - variant: default, success, warning, destructive (or empty)
//   - trend: up, down, neutral (or empty)
//   - icon: a registered glyph name (or empty)
func Validate(s any) *Result {
	result := &Result{}

	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return result
	}

	// Get field labels and wire names from struct tags
	labels, names := getFieldLabels(s)

	if errs, ok := err.(validate.Errors); ok {
		for _, e := range errs {
			label := labels[e.Field]
			if label == "" {
				label = e.Field
			}
			field := names[e.Field]
			if field == "" {
				field = e.Field
			}

			result.Errors = append(result.Errors, FieldError{
				Field:   field,
				Label:   label,
				Message: formatMessage(label, e.Rule, e.Param),
			})
		}
	}

	return result
}

// getFieldLabels extracts the "label" tag from struct fields, keyed by both
// the Go field name and the json name. names maps either key to the json
// name, so FieldError.Field matches what API clients sent.
func getFieldLabels(s any) (labels, names map[string]string) {
	labels = make(map[string]string)
	names = make(map[string]string)

	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return labels, names
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		jsonName := ""
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			if n := strings.Split(jsonTag, ",")[0]; n != "-" {
				jsonName = n
			}
		}
		if jsonName != "" {
			names[field.Name] = jsonName
			names[jsonName] = jsonName
		}

		label := field.Tag.Get("label")
		if label == "" {
			continue
		}
		labels[field.Name] = label
		if jsonName != "" {
			labels[jsonName] = label
		}
	}

	return labels, names
}

// formatMessage creates a user-friendly message for a validation rule.
func formatMessage(label, rule, param string) string {
	switch rule {
	case "required":
		return label + " is required."
	case "oneof", "enum":
		return label + " must be one of: " + strings.ReplaceAll(param, " ", ", ") + "."
	case "min":
		return label + " must be at least " + param + " characters."
	case "max":
		return label + " must be at most " + param + " characters."
	case "variant":
		return label + " must be one of: " + strings.Join(VariantNames(), ", ") + "."
	case "trend":
		return label + " must be one of: " + strings.Join(TrendNames(), ", ") + "."
	case "icon":
		return label + " must be one of: " + strings.Join(icons.Names(), ", ") + "."
	default:
		return label + " is invalid."
	}
}

// IsValidVariant reports whether s (case-insensitive) is empty or a declared variant.
func IsValidVariant(s string) bool {
	return statcard.Variant(normalize.Variant(s)).Valid()
}

// IsValidTrend reports whether s (case-insensitive) is empty or a declared trend.
func IsValidTrend(s string) bool {
	return statcard.Trend(normalize.Trend(s)).Valid()
}

// IsValidIcon reports whether s is empty or a registered glyph name.
func IsValidIcon(s string) bool {
	s = normalize.IconName(s)
	return s == "" || icons.Exists(s)
}

// VariantNames lists the declared variants for messages and form options.
func VariantNames() []string {
	vs := statcard.Variants()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// TrendNames lists the declared trends for messages and form options.
func TrendNames() []string {
	ts := statcard.Trends()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}
