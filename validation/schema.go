package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidPayload wraps every schema violation.
var ErrInvalidPayload = errors.New("invalid payload")

// Request body schemas
const (
	ProposalSchema = `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"id":             {"type": "string"},
			"name":           {"type": "string", "minLength": 1},
			"avatar":         {"type": "string"},
			"skills":         {"type": "array", "items": {"type": "string"}},
			"learningGoals":  {"type": "array", "items": {"type": "string"}},
			"mutualInterest": {"type": "string"},
			"matchScore":     {"type": "integer", "minimum": 0, "maximum": 100},
			"requestedAt":    {"type": "string"},
			"message":        {"type": "string"}
		}
	}`

	ScheduleSchema = `{
		"type": "object",
		"properties": {
			"date":  {"type": "string"},
			"time":  {"type": "string"},
			"notes": {"type": "string"}
		}
	}`

	ReviewSchema = `{
		"type": "object",
		"required": ["rating"],
		"properties": {
			"rating":   {"type": "integer"},
			"feedback": {"type": "string"}
		}
	}`

	UserSchema = `{
		"type": "object",
		"properties": {
			"id":    {"type": "string"},
			"name":  {"type": "string"},
			"email": {"type": "string"}
		}
	}`

	SkillSchema = `{
		"type": "object",
		"properties": {
			"userId": {"type": "string"},
			"skill":  {"type": "string"}
		}
	}`
)

// Validate checks a raw JSON document against schema.
func Validate(schema string, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(errs, "; "))
	}
	return nil
}
