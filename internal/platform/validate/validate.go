// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package validate collects field-level input errors into one 422 response.
//
// Handlers chain checks against a [Validator] and call Err once at the end,
// so a bad request reports every broken field in a single round trip rather
// than one at a time.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/relatolabs/relato/internal/platform/apperr"
)

// ErrInvalidJSON is the response for a body that does not decode at all.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator accumulates failures; zero value is ready to use. Not safe for
// concurrent use, build one per request.
type Validator struct {
	fields []apperr.FieldError
}

// Required fails on values that are empty after trimming.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.fail(field, "This field is required")
	}
	return v
}

// MinLen counts runes, not bytes, so multibyte input is measured the way
// the user typed it.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.fail(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// MaxLen is the rune-counting upper bound.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.fail(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Email fails on anything net/mail cannot parse as an address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.fail(field, "Must be a valid email address")
	}
	return v
}

// HasErrors reports whether any check has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.fields) > 0
}

// Err closes the chain: nil when everything passed, otherwise one
// VALIDATION_ERROR carrying every failed field.
func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.fields...)
}

func (v *Validator) fail(field, message string) {
	v.fields = append(v.fields, apperr.FieldError{Field: field, Message: message})
}

// RequiredError builds a one-field validation error without a Validator,
// for the places where only a single check applies.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
