// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orchestrator

import (
	"fmt"
	"strings"
)

// RightKind selects one of the two registries the orchestrator coordinates.
type RightKind byte

const (
	FRight RightKind = iota
	IRight
)

func (k RightKind) Verify() error {
	switch k {
	case FRight, IRight:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidKind, k)
	}
}

func (k RightKind) String() string {
	switch k {
	case FRight:
		return "f"
	case IRight:
		return "i"
	default:
		return fmt.Sprintf("RightKind(%d)", byte(k))
	}
}

// KindFromString parses the names returned by [RightKind.String].
func KindFromString(s string) (RightKind, error) {
	switch strings.ToLower(s) {
	case "f", "fright":
		return FRight, nil
	case "i", "iright":
		return IRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}
