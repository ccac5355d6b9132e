// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package post_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatolabs/relato/internal/blog/post"
	"github.com/relatolabs/relato/internal/platform/i18n"
)

func newHandler() *post.Handler {
	return post.NewHandler(newService(fixture()), i18n.Default(), 50)
}

type errorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Malformed pagination input is a client error: the listing endpoints
// must answer 422 naming each bad parameter rather than serving page 1.
func TestHandler_List_RejectsMalformedPagination(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantFields []string
	}{
		{"NonIntegerPage", "/?page=abc", []string{"page"}},
		{"PerPageOverCap", "/?per_page=999", []string{"per_page"}},
		{"BothBroken", "/search?q=go&page=abc&per_page=999", []string{"page", "per_page"}},
	}

	router := newHandler().Routes()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest("GET", testCase.target, nil))

			require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "VALIDATION_ERROR", body.Code)

			fields := make([]string, 0, len(body.Errors))
			for _, detail := range body.Errors {
				fields = append(fields, detail.Field)
			}
			assert.Equal(t, testCase.wantFields, fields)
		})
	}
}

// Absent parameters keep their defaults; the request succeeds.
func TestHandler_List_DefaultsWithoutParams(t *testing.T) {
	recorder := httptest.NewRecorder()
	newHandler().Routes().ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
