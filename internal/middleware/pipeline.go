package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Stage is one named step of a route pipeline. Run either lets the request
// continue (nil) or short-circuits it with an error.
type Stage struct {
	Name string
	Run  func(c *fiber.Ctx) error
}

// StageError records which stage stopped a request.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Handler adapts the stage to a fiber middleware, for use with Group or Use.
func (s Stage) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Run(c); err != nil {
			return &StageError{Stage: s.Name, Err: err}
		}
		return c.Next()
	}
}

// Pipeline runs stages in order and calls handler only if all of them pass.
func Pipeline(handler fiber.Handler, stages ...Stage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, s := range stages {
			if err := s.Run(c); err != nil {
				return &StageError{Stage: s.Name, Err: err}
			}
		}
		return handler(c)
	}
}
