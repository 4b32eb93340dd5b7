package usecase

import (
	"errors"
	"fmt"
	"strings"

	"nagrik_seva/internal/domain/entities"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidApplicationData = errors.New("invalid application data")

// ValidateApplicationData checks the applicant's open key→value answers
// against the target's declared field list: required fields must carry a
// non-empty value, and keys outside the declared list are rejected.
//
// Targets without declared fields (legacy catalog entries) accept any
// answer map unchanged.
func ValidateApplicationData(target entities.CatalogTarget, answers map[string]string) error {
	if len(target.FormFields) == 0 {
		return nil
	}

	properties := map[string]interface{}{}
	var required []string
	for _, f := range target.FormFields {
		prop := map[string]interface{}{"type": "string"}
		if f.Required {
			prop["minLength"] = 1
			required = append(required, f.Name)
		}
		properties[f.Name] = prop
	}
	schema := map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	document := map[string]interface{}{}
	for k, v := range answers {
		document[k] = v
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidApplicationData, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidApplicationData, strings.Join(msgs, "; "))
}
