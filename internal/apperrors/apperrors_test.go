package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"fittrack/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(apperrors.Validation("bad input")))
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(apperrors.Auth("no")))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(apperrors.NotFound("missing")))
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(apperrors.Conflict("taken")))

	// Anything unclassified is treated as a persistence failure.
	assert.Equal(t, apperrors.KindPersistence, apperrors.KindOf(errors.New("boom")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", apperrors.NotFound("Goal not found."))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(wrapped))
}

func TestPersistenceHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := apperrors.Persistence("Failed to create goal.", cause)

	// The cause stays reachable for logs but the client message is clean.
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to create goal.", err.Message)
}
