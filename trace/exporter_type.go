// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	Disabled ExporterType = iota
	GRPC
	HTTP
)

var (
	_ pflag.Value = (*ExporterType)(nil)

	errUnknownExporterType = errors.New("unknown exporter type")
)

// ExporterType selects how spans leave the process. It can be used directly
// as a flag value and is encoded as its name in JSON.
type ExporterType byte

func ExporterTypeFromString(s string) (ExporterType, error) {
	switch strings.ToLower(s) {
	case "", "disabled", "noop", "null":
		return Disabled, nil
	case GRPC.String():
		return GRPC, nil
	case HTTP.String():
		return HTTP, nil
	default:
		return Disabled, fmt.Errorf("%w: %q", errUnknownExporterType, s)
	}
}

func (t ExporterType) String() string {
	switch t {
	case Disabled:
		return "disabled"
	case GRPC:
		return "grpc"
	case HTTP:
		return "http"
	default:
		return "unknown"
	}
}

func (t *ExporterType) Set(s string) error {
	exporterType, err := ExporterTypeFromString(s)
	if err != nil {
		return err
	}
	*t = exporterType
	return nil
}

func (*ExporterType) Type() string {
	return "exporter-type"
}

func (t ExporterType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ExporterType) UnmarshalText(b []byte) error {
	return t.Set(string(b))
}
