package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "abgs/pkg/domain-errors"
)

func TestSubmitRequestValidate(t *testing.T) {
	t.Run("valid request trims user id", func(t *testing.T) {
		req := &SubmitRequest{UserID: " 1 ", GoalName: "Exercise", Status: "completed"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "1", req.UserID)
	})

	t.Run("missing user id", func(t *testing.T) {
		req := &SubmitRequest{GoalName: "Exercise", Status: "completed"}
		err := req.Validate()

		var dErr *dErrors.Error
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, dErrors.CodeBadRequest, dErr.Code)
	})

	t.Run("oversized fields fail fast", func(t *testing.T) {
		req := &SubmitRequest{UserID: strings.Repeat("x", 101), GoalName: "Exercise", Status: "completed"}
		assert.Error(t, req.Validate())

		req = &SubmitRequest{UserID: "1", GoalName: strings.Repeat("x", 201), Status: "completed"}
		assert.Error(t, req.Validate())
	})

	t.Run("goal name and status are left to the service", func(t *testing.T) {
		req := &SubmitRequest{UserID: "1", GoalName: "  ", Status: "nonsense"}
		assert.NoError(t, req.Validate())
	})
}
