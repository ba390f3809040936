// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExporterTypeFromString(t *testing.T) {
	tests := []struct {
		in          string
		expected    ExporterType
		expectedErr error
	}{
		{in: "", expected: Disabled},
		{in: "null", expected: Disabled},
		{in: "GRPC", expected: GRPC},
		{in: "http", expected: HTTP},
		{in: "zipkin", expectedErr: errUnknownExporterType},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			require := require.New(t)

			exporterType, err := ExporterTypeFromString(test.in)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, exporterType)
		})
	}
}

func TestExporterTypeJSON(t *testing.T) {
	require := require.New(t)

	bytes, err := json.Marshal(ExporterConfig{Type: GRPC})
	require.NoError(err)

	var config ExporterConfig
	require.NoError(json.Unmarshal(bytes, &config))
	require.Equal(GRPC, config.Type)

	require.Error(json.Unmarshal([]byte(`{"type":"zipkin"}`), &config))
}

func TestNewDisabled(t *testing.T) {
	require := require.New(t)

	tracer, err := New(Config{})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "test")
	require.False(span.SpanContext().IsValid())
	span.End()
	require.NoError(tracer.Close())
}
