// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package apperr_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatolabs/relato/internal/platform/apperr"
)

func TestNotFound_AppendsSuffix(t *testing.T) {
	err := apperr.NotFound("Post")

	assert.Equal(t, "Post not found", err.Message)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}

// Full-sentence 404s go through NotFoundMessage so the wire never shows
// a doubled "not found".
func TestNotFoundMessage_Verbatim(t *testing.T) {
	err := apperr.NotFoundMessage("Reset token is invalid or expired")

	assert.Equal(t, "Reset token is invalid or expired", err.Message)
	assert.NotContains(t, err.Message, "expired not found")
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}

func TestAs_UnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("store: %w", apperr.NotFound("Menu"))

	appError := apperr.As(wrapped)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)

	assert.Nil(t, apperr.As(fmt.Errorf("plain failure")))
}
