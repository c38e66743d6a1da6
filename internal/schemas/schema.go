// Package schemas declares per-field constraint rules and checks request
// fragments against them.
package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Source selects the part of a request a schema applies to.
type Source string

const (
	Body   Source = "body"
	Params Source = "params"
	Query  Source = "query"
)

// Type is the JSON shape a field must have.
type Type int

const (
	String Type = iota
	Number
	StringList
)

func (t Type) String() string {
	switch t {
	case Number:
		return "a number"
	case StringList:
		return "a list of strings"
	default:
		return "a string"
	}
}

// Rule constrains a single field.
type Rule struct {
	Type     Type
	Required bool
	// Tag is a go-playground validator tag applied to the coerced value.
	Tag string
}

// Str returns an optional string rule.
func Str(tag string) Rule { return Rule{Type: String, Tag: tag} }

// Num returns an optional number rule.
func Num(tag string) Rule { return Rule{Type: Number, Tag: tag} }

// List returns an optional string list rule.
func List(tag string) Rule { return Rule{Type: StringList, Tag: tag} }

// Require marks the rule's field as mandatory.
func (r Rule) Require() Rule {
	r.Required = true
	return r
}

// Schema maps field names to rules. Fields not declared are rejected.
type Schema map[string]Rule

// Field is the single-field shorthand, used for identifier params.
func Field(name string, rule Rule) Schema {
	return Schema{name: rule}
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// Document ids are 24 hexadecimal characters, without any 0x prefix.
	if err := v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Check validates a decoded JSON object against the schema in strict mode and
// returns every violation found, sorted by field name. A nil result means data is valid.
func (s Schema) Check(data map[string]interface{}) []string {
	return s.CheckSource(Body, data)
}

// CheckSource is Check for a fragment taken from source. Params and query
// values arrive as text, so numbers and lists may be given as strings there;
// a body must carry the JSON types themselves.
func (s Schema) CheckSource(source Source, data map[string]interface{}) []string {
	var violations []string

	unknown := make([]string, 0)
	for name := range data {
		if _, ok := s[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		violations = append(violations, fmt.Sprintf("Field '%s' is not allowed", name))
	}

	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rule := s[name]
		raw, present := data[name]
		if !present || raw == nil {
			if rule.Required {
				violations = append(violations, fmt.Sprintf("Field '%s' is required", name))
			}
			continue
		}

		value, ok := coerce(rule.Type, raw, source != Body)
		if !ok {
			violations = append(violations, fmt.Sprintf("Field '%s' must be %s", name, rule.Type))
			continue
		}
		if rule.Tag == "" {
			continue
		}
		if err := validate.Var(value, rule.Tag); err != nil {
			violations = append(violations, describe(name, err))
		}
	}

	return violations
}

func describe(name string, err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Sprintf("Field '%s' failed on the '%s' tag", name, fieldErrs[0].Tag())
	}
	return fmt.Sprintf("Field '%s' is invalid: %v", name, err)
}

// coerce converts raw into the Go type expected by t. Numbers and lists are
// parsed from strings only when fromText is set.
func coerce(t Type, raw interface{}, fromText bool) (interface{}, bool) {
	switch t {
	case String:
		s, ok := raw.(string)
		return s, ok
	case Number:
		switch v := raw.(type) {
		case float64:
			return v, true
		case json.Number:
			f, err := v.Float64()
			return f, err == nil
		case string:
			if !fromText {
				return nil, false
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			return f, err == nil
		}
		return nil, false
	case StringList:
		switch v := raw.(type) {
		case string:
			if !fromText {
				return nil, false
			}
			return SplitList([]string{v}), true
		case []string:
			return SplitList(v), true
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, false
				}
				out = append(out, s)
			}
			return out, true
		}
		return nil, false
	}
	return nil, false
}

// SplitList flattens repeated and comma separated values, dropping blanks.
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
