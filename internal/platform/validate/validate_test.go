// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenahoward/inkwell/internal/platform/apperr"
	"github.com/lenahoward/inkwell/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Inkwell", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Digits checks the numeric id shape rule.
*/
func TestValidator_Digits(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"plain_number", "5", true},
		{"long_number", "1234567890", true},
		{"negative", "-5", false},
		{"alpha", "abc", false},
		{"mixed", "12a", false},
		{"empty", "", false},
		{"decimal", "1.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.IDShape(tt.value)

			if tt.isValid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				// Malformed ids are request-shape errors: always 400, never 404.
				assert.Equal(t, 400, ae.HTTPStatus)
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "lena").
		MinLen("username", "lena", 3).
		MaxLen("username", "lena", 10).
		Email("email", "lena@inkwell.dev").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("username", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestPipeline_ShortCircuit verifies that the runner stops at the first failing
step and that later steps never execute.
*/
func TestPipeline_ShortCircuit(t *testing.T) {
	var executed []string

	step := func(name string, fail bool) validate.Step {
		return func() error {
			executed = append(executed, name)
			if fail {
				return validate.RequiredError(name, "failed")
			}
			return nil
		}
	}

	pipeline := validate.Pipeline{
		step("first", false),
		step("second", true),
		step("third", true),
	}

	err := pipeline.Run()
	require.Error(t, err)

	// The third step must not run once the second has failed.
	assert.Equal(t, []string{"first", "second"}, executed)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "second", ae.Details[0].Field)
}

/*
TestPipeline_AllPass covers the happy path and the empty pipeline.
*/
func TestPipeline_AllPass(t *testing.T) {
	pass := func() error { return nil }

	assert.NoError(t, validate.Pipeline{pass, pass}.Run())
	assert.NoError(t, validate.Pipeline{}.Run())
}

/*
TestPipeline_Deterministic confirms that repeating a failed validation with
the same input yields the identical message set.
*/
func TestPipeline_Deterministic(t *testing.T) {
	shape := func() error {
		v := &validate.Validator{}
		return v.
			MinLen("username", "ab", 3).
			Email("email", "bad").
			Err()
	}

	pipeline := validate.Pipeline{shape}

	first := apperr.As(pipeline.Run())
	second := apperr.As(pipeline.Run())

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.Details, second.Details)
}
