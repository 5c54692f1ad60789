package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/lumenkit/schemakit-go/fieldtype"
	"github.com/lumenkit/schemakit-go/internal/strkey"
)

// ValidationResult is the outcome of checking one record.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError is a single validation failure.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Code    string      `json:"code"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface for ValidationError
func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", ve.Field, ve.Message)
}

// Validation error codes.
const (
	CodeRequiredMissing  = "REQUIRED_FIELD_MISSING"
	CodeTypeMismatch     = "TYPE_MISMATCH"
	CodeFormatViolation  = "FORMAT_VIOLATION"
	CodeRangeViolation   = "RANGE_VIOLATION"
	CodePatternViolation = "PATTERN_VIOLATION"
	CodeUnsupportedType  = "UNSUPPORTED_TYPE"
)

// RecordValidator checks candidate records against a SchemaDefinition. It
// holds no cross-call state and is safe for concurrent use.
type RecordValidator struct{}

// NewRecordValidator creates a new record validator
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{}
}

// ValidateRecord checks record against def with a throwaway validator.
func ValidateRecord(def *SchemaDefinition, record map[string]interface{}) *ValidationResult {
	return NewRecordValidator().Validate(def, record)
}

// Validate checks every field of def against record, in declaration order,
// and collects all failures before returning. Missing required fields fail
// closed; unknown top-level keys in the record are ignored.
func (v *RecordValidator) Validate(def *SchemaDefinition, record map[string]interface{}) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]ValidationError, 0),
	}

	for _, f := range def.Fields {
		value, present := record[f.Name]

		if !present {
			if !f.Optional {
				result.fail(ValidationError{
					Field:   f.Name,
					Message: fmt.Sprintf("Required field '%s' is missing", f.Name),
					Code:    CodeRequiredMissing,
				})
			}
			continue
		}

		// Type tokens outside the catalog were let through at parse time as
		// a forward-compat escape hatch; they surface here instead.
		if !f.Type.Known() {
			result.fail(ValidationError{
				Field:   f.Name,
				Message: fmt.Sprintf("field type '%s' has no catalog mapping", f.Type),
				Code:    CodeUnsupportedType,
				Value:   value,
			})
			continue
		}

		if !typeMatches(f.Type, value) {
			result.fail(ValidationError{
				Field:   f.Name,
				Message: fmt.Sprintf("expected type %s, got %T", f.Type, value),
				Code:    CodeTypeMismatch,
				Value:   value,
			})
			continue
		}

		if msg, ok := checkDomainFormat(f.Type, value); !ok {
			result.fail(ValidationError{
				Field:   f.Name,
				Message: fmt.Sprintf("'%s' has invalid format: %s", f.Name, msg),
				Code:    CodeFormatViolation,
				Value:   value,
			})
			continue
		}

		v.checkRules(f, value, result)
	}

	return result
}

func (r *ValidationResult) fail(err ValidationError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// checkRules applies the field's optional min/max/pattern constraints.
// Bounds are inclusive.
func (v *RecordValidator) checkRules(f FieldDefinition, value interface{}, result *ValidationResult) {
	if f.Validation == nil {
		return
	}

	if num, ok := numericValue(value); ok {
		if f.Validation.Min != nil && num < *f.Validation.Min {
			result.fail(ValidationError{
				Field:   f.Name,
				Message: fmt.Sprintf("'%s' must be at least %s", f.Name, formatBound(f.Validation.Min)),
				Code:    CodeRangeViolation,
				Value:   value,
			})
		}
		if f.Validation.Max != nil && num > *f.Validation.Max {
			result.fail(ValidationError{
				Field:   f.Name,
				Message: fmt.Sprintf("'%s' must be at most %s", f.Name, formatBound(f.Validation.Max)),
				Code:    CodeRangeViolation,
				Value:   value,
			})
		}
	}

	if f.Validation.Pattern != "" {
		if str, ok := value.(string); ok {
			re, err := regexp.Compile(f.Validation.Pattern)
			if err != nil {
				result.fail(ValidationError{
					Field:   f.Name,
					Message: fmt.Sprintf("invalid pattern: %s", f.Validation.Pattern),
					Code:    CodePatternViolation,
					Value:   value,
				})
				return
			}
			if !re.MatchString(str) {
				result.fail(ValidationError{
					Field:   f.Name,
					Message: fmt.Sprintf("'%s' does not match pattern %s", f.Name, f.Validation.Pattern),
					Code:    CodePatternViolation,
					Value:   value,
				})
			}
		}
	}
}

// typeMatches reports whether value is representable as t.
func typeMatches(t fieldtype.FieldType, value interface{}) bool {
	switch {
	case t == fieldtype.Boolean:
		_, ok := value.(bool)
		return ok

	case t == fieldtype.Char:
		str, ok := value.(string)
		return ok && len([]rune(str)) == 1

	case t == fieldtype.String, t == fieldtype.Address, t == fieldtype.DateTime:
		_, ok := value.(string)
		return ok

	case t == fieldtype.Bytes:
		switch value.(type) {
		case string, []byte:
			return true
		}
		return false

	case t.IsInteger():
		num, ok := numericValue(value)
		if !ok || num != math.Trunc(num) {
			return false
		}
		min, max, _ := t.IntegerBounds()
		return num >= min && num <= max

	case t == fieldtype.Float, t == fieldtype.Double:
		_, ok := numericValue(value)
		return ok

	case t == fieldtype.Amount:
		// Amounts travel either as numbers or as decimal strings.
		if _, ok := numericValue(value); ok {
			return true
		}
		str, ok := value.(string)
		if !ok {
			return false
		}
		_, err := strconv.ParseFloat(str, 64)
		return err == nil

	case t == fieldtype.Timestamp:
		if num, ok := numericValue(value); ok {
			return num == math.Trunc(num)
		}
		_, ok := value.(string)
		return ok
	}

	// Unknown types are filtered out before the type check.
	return true
}

// checkDomainFormat applies the ledger-specific format checks. It returns
// ok for types without a domain format.
func checkDomainFormat(t fieldtype.FieldType, value interface{}) (string, bool) {
	switch t {
	case fieldtype.Address:
		addr, _ := value.(string)
		if err := strkey.CheckAccount(addr); err != nil {
			return err.Error(), false
		}

	case fieldtype.Amount:
		num, ok := numericValue(value)
		if !ok {
			str, _ := value.(string)
			parsed, err := strconv.ParseFloat(str, 64)
			if err != nil {
				return "not a numeric amount", false
			}
			num = parsed
		}
		if num < 0 {
			return "amount must be non-negative", false
		}

	case fieldtype.Timestamp:
		if _, ok := numericValue(value); ok {
			return "", true
		}
		str, _ := value.(string)
		if !dateParseable(str) {
			return "not an integer or parseable date", false
		}
	}

	return "", true
}

func dateParseable(s string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// numericValue coerces the numeric shapes a decoded record can carry.
func numericValue(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
