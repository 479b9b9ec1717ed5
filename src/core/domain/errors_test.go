package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"jokehub/src/core/domain"
)

func TestErrorClassification(t *testing.T) {
	validation := domain.NewValidationError("question", "must not be blank")
	operation := domain.NewOperationError("author is already set")
	unauthorized := domain.NewUnauthorizedOperationError("only the author may update")

	assert.True(t, domain.IsValidationError(validation))
	assert.False(t, domain.IsOperationError(validation))

	assert.True(t, domain.IsOperationError(operation))
	assert.False(t, domain.IsUnauthorizedOperationError(operation))
	assert.False(t, domain.IsValidationError(operation))

	// unauthorized is a specialization of operation
	assert.True(t, domain.IsUnauthorizedOperationError(unauthorized))
	assert.True(t, domain.IsOperationError(unauthorized))
	assert.False(t, domain.IsValidationError(unauthorized))
}

func TestErrorMessages(t *testing.T) {
	withField := domain.NewValidationError("email", "is not a valid email address")
	assert.Contains(t, withField.Error(), "email")
	assert.Contains(t, withField.Error(), "is not a valid email address")
	assert.Equal(t, "email", domain.FieldName(withField))

	noField := domain.NewOperationError("joke has no likes to remove")
	assert.Contains(t, noField.Error(), "joke has no likes to remove")
	assert.Equal(t, "", domain.FieldName(noField))
}

func TestErrorUnwrap(t *testing.T) {
	err := domain.NewUnauthorizedOperationError("nope")

	var de *domain.DomainError
	assert.True(t, errors.As(err, &de))
	assert.True(t, errors.Is(err, domain.ErrUnauthorizedOperation))
	assert.True(t, errors.Is(err, domain.ErrOperation))
}
