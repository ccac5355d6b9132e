// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/validate"
)

func TestRequired(t *testing.T) {
	t.Run("present value passes", func(t *testing.T) {
		v := &validate.Validator{}
		v.Required("name", "Relato")
		assert.False(t, v.HasErrors())
		assert.NoError(t, v.Err())
	})

	t.Run("empty value fails with the field named", func(t *testing.T) {
		v := &validate.Validator{}
		v.Required("name", "")

		require.True(t, v.HasErrors())
		appError := apperr.As(v.Err())
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		require.Len(t, appError.Details, 1)
		assert.Equal(t, "name", appError.Details[0].Field)
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		v := &validate.Validator{}
		v.Required("name", "   ")
		assert.True(t, v.HasErrors())
	})
}

func TestEmail(t *testing.T) {
	valid := []string{"test@example.com", "a.b+tag@relato.app"}
	invalid := []string{"", "plainaddress", "test@", "@relato.app"}

	for _, address := range valid {
		v := &validate.Validator{}
		v.Email("email", address)
		assert.False(t, v.HasErrors(), "expected %q to pass", address)
	}

	for _, address := range invalid {
		v := &validate.Validator{}
		v.Email("email", address)
		assert.True(t, v.HasErrors(), "expected %q to fail", address)
	}
}

func TestLengthBounds(t *testing.T) {
	v := &validate.Validator{}
	v.MinLen("password", "short", 8)
	require.True(t, v.HasErrors())

	v = &validate.Validator{}
	v.MaxLen("title", "just right", 20)
	assert.False(t, v.HasErrors())
}

// Chained rules keep collecting so one response can report every broken
// field at once.
func TestChainAccumulatesAllFailures(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("username", "").
		MinLen("username", "a", 5).
		Email("email", "not-an-email").
		Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Len(t, appError.Details, 3)
}

func TestChainCleanRun(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("username", "ada").
		MinLen("username", "ada", 3).
		MaxLen("username", "ada", 10).
		Email("email", "ada@relato.app").
		Err()

	assert.NoError(t, err)
}
