// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vmerrs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
		label    string
	}{
		{
			name:     "nil",
			err:      nil,
			expected: nil,
			label:    "success",
		},
		{
			name:     "unrelated",
			err:      errors.New("disk on fire"),
			expected: nil,
			label:    "internal",
		},
		{
			name:     "authorization",
			err:      Unauthorized("caller is not the owner"),
			expected: ErrAuthorization,
			label:    "authorization",
		},
		{
			name:     "validation",
			err:      Invalid("invalid address"),
			expected: ErrValidation,
			label:    "validation",
		},
		{
			name:     "policy",
			err:      Forbidden("already activated"),
			expected: ErrPolicy,
			label:    "policy",
		},
		{
			name:     "wrapped consistency",
			err:      fmt.Errorf("failed to freeze: %w", Inconsistent("already frozen")),
			expected: ErrConsistency,
			label:    "consistency",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			require.Equal(test.expected, Category(test.err))
			require.Equal(test.label, Label(test.err))
		})
	}
}

func TestErrorsKeepMessage(t *testing.T) {
	err := Forbidden("sender is not whitelisted")
	require.ErrorIs(t, err, ErrPolicy)
	require.Equal(t, "policy violation: sender is not whitelisted", err.Error())
}
