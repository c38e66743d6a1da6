package middleware

import (
	"bytes"
	"encoding/json"
	"errors"

	"platzistore/internal/apperrors"
	"platzistore/internal/schemas"

	"github.com/gofiber/fiber/v2"
)

// Validate checks the selected request fragment against schema. Body and
// params are strict; query keys the schema does not declare are ignored.
func Validate(schema schemas.Schema, source schemas.Source) Stage {
	return Stage{
		Name: "validate " + string(source),
		Run: func(c *fiber.Ctx) error {
			data, err := fragment(c, source)
			if err != nil {
				return &apperrors.ValidationError{Source: string(source), Details: []string{err.Error()}}
			}
			if source == schemas.Query {
				for k := range data {
					if _, declared := schema[k]; !declared {
						delete(data, k)
					}
				}
			}
			if violations := schema.CheckSource(source, data); len(violations) > 0 {
				return &apperrors.ValidationError{Source: string(source), Details: violations}
			}
			return nil
		},
	}
}

var errBodyNotObject = errors.New("body must be a JSON object")

func fragment(c *fiber.Ctx, source schemas.Source) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch source {
	case schemas.Body:
		body := bytes.TrimSpace(c.Body())
		if len(body) == 0 {
			return data, nil
		}
		if err := json.Unmarshal(body, &data); err != nil || data == nil {
			return nil, errBodyNotObject
		}
	case schemas.Params:
		for k, v := range c.AllParams() {
			data[k] = v
		}
	case schemas.Query:
		c.Context().QueryArgs().VisitAll(func(key, value []byte) {
			k, v := string(key), string(value)
			switch existing := data[k].(type) {
			case nil:
				data[k] = v
			case string:
				data[k] = []string{existing, v}
			case []string:
				data[k] = append(existing, v)
			}
		})
	}
	return data, nil
}
