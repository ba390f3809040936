// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// #nosec G101
const (
	ConfigFileKey          = "config-file"
	HTTPHostKey            = "http-host"
	HTTPPortKey            = "http-port"
	HTTPAllowedOriginsKey  = "http-allowed-origins"
	HTTPReadTimeoutKey     = "http-read-timeout"
	HTTPWriteTimeoutKey    = "http-write-timeout"
	DBTypeKey              = "db-type"
	DBDirKey               = "db-dir"
	GenesisFileKey         = "genesis-file"
	GenesisNumAssetsKey    = "genesis-num-assets"
	LogLevelKey            = "log-level"
	LogDisplayLevelKey     = "log-display-level"
	LogFormatKey           = "log-format"
	LogDirKey              = "log-dir"
	MetricsNamespaceKey    = "metrics-namespace"
	HealthCheckFreqKey     = "health-check-frequency"
	TracingExporterTypeKey = "tracing-exporter-type"
	TracingEndpointKey     = "tracing-endpoint"
	TracingInsecureKey     = "tracing-insecure"
	TracingSampleRateKey   = "tracing-sample-rate"
	TracingHeadersKey      = "tracing-headers"
)
