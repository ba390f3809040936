// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/rightsvm"
	"github.com/ava-labs/rightsvm/trace"
)

const (
	DefaultHTTPPort = 9750
	EnvPrefix       = "RIGHTSVM"
)

var (
	defaultDataDir = filepath.Join("$HOME", "."+rightsvm.Name)
	defaultDBDir   = filepath.Join(defaultDataDir, "db")
	defaultLogDir  = filepath.Join(defaultDataDir, "logs")
)

func addNodeFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a config file. Flags and environment variables take precedence")

	// HTTP server
	fs.String(HTTPHostKey, "127.0.0.1", "Address of the HTTP server")
	fs.Uint16(HTTPPortKey, DefaultHTTPPort, "Port of the HTTP server")
	fs.StringSlice(HTTPAllowedOriginsKey, []string{"*"}, "Origins to allow on the HTTP port")
	fs.Duration(HTTPReadTimeoutKey, 30*time.Second, "Maximum duration for reading an entire request, including the body")
	fs.Duration(HTTPWriteTimeoutKey, 30*time.Second, "Maximum duration before timing out writes of the response")

	// Database
	fs.String(DBTypeKey, memdb.Name, "Database type to use. Must be one of {leveldb, memdb}")
	fs.String(DBDirKey, defaultDBDir, "Path to database directory")

	// Genesis
	fs.String(GenesisFileKey, "", "Specifies a genesis config file. If empty, a local genesis administered by the ewoq key is used")
	fs.Uint64(GenesisNumAssetsKey, 10, "Number of assets in the collection of the local genesis")

	// Logging
	fs.String(LogLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level")
	fs.String(LogDirKey, defaultLogDir, "Logging directory")
	fs.String(LogFormatKey, "auto", "The structure of log format. Should be one of {auto, plain, colors, json}")

	// Metrics
	fs.String(MetricsNamespaceKey, rightsvm.Name, "Namespace of the exported metrics")

	// Health
	fs.Duration(HealthCheckFreqKey, 30*time.Second, "Time between health checks")

	// Tracing
	fs.String(TracingExporterTypeKey, trace.Disabled.String(), "Type of exporter to use for tracing. Options are [disabled, grpc, http]")
	fs.String(TracingEndpointKey, "", "The endpoint to send trace data to. If unspecified, the default endpoint of the exporter is used")
	fs.Bool(TracingInsecureKey, true, "If true, don't use TLS when sending trace data")
	fs.Float64(TracingSampleRateKey, 0.1, "The fraction of calls to sample, in [0, 1]")
	fs.StringToString(TracingHeadersKey, map[string]string{}, "The headers to provide the trace indexer")
}

// BuildFlagSet returns the complete set of flags of the node
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(rightsvm.Name, pflag.ContinueOnError)
	addNodeFlags(fs)
	return fs
}

func expandPath(path string) string {
	return os.ExpandEnv(path)
}
