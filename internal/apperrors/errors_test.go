package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"platzistore/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("product with ID abc not found: %w", apperrors.ErrNotFound)
	err := apperrors.Wrap("get product", cause)

	var svcErr *apperrors.ServiceError
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "get product", svcErr.Op)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "product with ID abc not found")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, apperrors.Wrap("noop", nil))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &apperrors.ValidationError{Source: "body", Details: []string{`"title" is required`, `"foo" is not allowed`}}
	assert.Equal(t, `invalid request body: "title" is required; "foo" is not allowed`, err.Error())
}

func TestAuthenticationErrorUnwrap(t *testing.T) {
	inner := errors.New("token is expired")
	err := &apperrors.AuthenticationError{Reason: "invalid token", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "unauthorized: invalid token: token is expired", err.Error())
}
