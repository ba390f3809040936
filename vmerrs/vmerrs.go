// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vmerrs defines the categories every execution failure falls into.
//
// Each concrete error returned while executing a call wraps exactly one of the
// category errors below, so callers can match either the precise failure or
// its category with errors.Is. Every failure aborts the call that produced it;
// none of them are recoverable in-process.
package vmerrs

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthorization is returned when the caller is not the administrator or
	// not the owner of the token it is acting on.
	ErrAuthorization = errors.New("unauthorized")
	// ErrValidation is returned for malformed arguments.
	ErrValidation = errors.New("invalid argument")
	// ErrPolicy is returned when an administrative policy forbids the call.
	ErrPolicy = errors.New("policy violation")
	// ErrConsistency is returned when the call would break a ledger invariant
	// or references state that doesn't exist.
	ErrConsistency = errors.New("inconsistent state")

	categories = []error{
		ErrAuthorization,
		ErrValidation,
		ErrPolicy,
		ErrConsistency,
	}
)

func Unauthorized(msg string) error {
	return fmt.Errorf("%w: %s", ErrAuthorization, msg)
}

func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func Forbidden(msg string) error {
	return fmt.Errorf("%w: %s", ErrPolicy, msg)
}

func Inconsistent(msg string) error {
	return fmt.Errorf("%w: %s", ErrConsistency, msg)
}

// Category returns the category [err] belongs to, or nil if [err] is not an
// execution failure.
func Category(err error) error {
	for _, category := range categories {
		if errors.Is(err, category) {
			return category
		}
	}
	return nil
}

// Label returns a short, metrics friendly name for the category of [err].
func Label(err error) string {
	switch Category(err) {
	case nil:
		if err == nil {
			return "success"
		}
		return "internal"
	case ErrAuthorization:
		return "authorization"
	case ErrValidation:
		return "validation"
	case ErrPolicy:
		return "policy"
	default:
		return "consistency"
	}
}
