// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config resolves the node configuration from flags, environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/rightsvm"
	"github.com/ava-labs/rightsvm/genesis"
	"github.com/ava-labs/rightsvm/trace"
)

var (
	errInvalidHTTPPort   = errors.New("invalid http port")
	errUnknownDBType     = errors.New("unknown database type")
	errInvalidSampleRate = errors.New("tracing sample rate must be in [0, 1]")
	errInvalidHealthFreq = errors.New("health check frequency must be positive")
)

type HTTPConfig struct {
	Host           string        `json:"host"`
	Port           uint16        `json:"port"`
	AllowedOrigins []string      `json:"allowedOrigins"`
	ReadTimeout    time.Duration `json:"readTimeout"`
	WriteTimeout   time.Duration `json:"writeTimeout"`
}

type DatabaseConfig struct {
	// Type is either leveldb or memdb
	Type string `json:"type"`
	Dir  string `json:"dir"`
}

type LoggingConfig struct {
	Dir          string         `json:"dir"`
	Level        logging.Level  `json:"level"`
	DisplayLevel logging.Level  `json:"displayLevel"`
	Format       logging.Format `json:"format"`
}

type Config struct {
	HTTP             HTTPConfig       `json:"http"`
	Database         DatabaseConfig   `json:"database"`
	Genesis          *genesis.Genesis `json:"genesis"`
	Logging          LoggingConfig    `json:"logging"`
	MetricsNamespace string           `json:"metricsNamespace"`
	HealthCheckFreq  time.Duration    `json:"healthCheckFrequency"`
	Trace            trace.Config     `json:"trace"`
}

// BuildViper parses [args] into [fs] and layers the result over the
// environment and the config file, if one was given.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(expandPath(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// GetConfig returns the node config defined in [v].
func GetConfig(v *viper.Viper) (Config, error) {
	var (
		config Config
		err    error
	)
	config.HTTP, err = getHTTPConfig(v)
	if err != nil {
		return Config{}, err
	}
	config.Database, err = getDatabaseConfig(v)
	if err != nil {
		return Config{}, err
	}
	config.Genesis, err = getGenesis(v)
	if err != nil {
		return Config{}, err
	}
	config.Logging, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	config.MetricsNamespace = v.GetString(MetricsNamespaceKey)
	config.HealthCheckFreq = v.GetDuration(HealthCheckFreqKey)
	if config.HealthCheckFreq <= 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidHealthFreq, config.HealthCheckFreq)
	}
	config.Trace, err = getTraceConfig(v)
	return config, err
}

func getHTTPConfig(v *viper.Viper) (HTTPConfig, error) {
	port := v.GetUint(HTTPPortKey)
	if port > math.MaxUint16 {
		return HTTPConfig{}, fmt.Errorf("%w: %d", errInvalidHTTPPort, port)
	}
	return HTTPConfig{
		Host:           v.GetString(HTTPHostKey),
		Port:           uint16(port),
		AllowedOrigins: v.GetStringSlice(HTTPAllowedOriginsKey),
		ReadTimeout:    v.GetDuration(HTTPReadTimeoutKey),
		WriteTimeout:   v.GetDuration(HTTPWriteTimeoutKey),
	}, nil
}

func getDatabaseConfig(v *viper.Viper) (DatabaseConfig, error) {
	dbType := v.GetString(DBTypeKey)
	switch dbType {
	case leveldb.Name, memdb.Name:
	default:
		return DatabaseConfig{}, fmt.Errorf("%w: %q", errUnknownDBType, dbType)
	}
	return DatabaseConfig{
		Type: dbType,
		Dir:  expandPath(v.GetString(DBDirKey)),
	}, nil
}

func getGenesis(v *viper.Viper) (*genesis.Genesis, error) {
	genesisFile := v.GetString(GenesisFileKey)
	if genesisFile == "" {
		return genesis.Default(genesis.EWOQKey.Address(), v.GetUint64(GenesisNumAssetsKey)), nil
	}

	genesisBytes, err := os.ReadFile(expandPath(genesisFile))
	if err != nil {
		return nil, err
	}
	return genesis.Parse(genesisBytes)
}

func getLoggingConfig(v *viper.Viper) (LoggingConfig, error) {
	level, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return LoggingConfig{}, err
	}

	displayLevel := level
	if v.GetString(LogDisplayLevelKey) != "" {
		displayLevel, err = logging.ToLevel(v.GetString(LogDisplayLevelKey))
		if err != nil {
			return LoggingConfig{}, err
		}
	}

	format, err := logging.ToFormat(v.GetString(LogFormatKey), os.Stdout.Fd())
	return LoggingConfig{
		Dir:          expandPath(v.GetString(LogDirKey)),
		Level:        level,
		DisplayLevel: displayLevel,
		Format:       format,
	}, err
}

func getTraceConfig(v *viper.Viper) (trace.Config, error) {
	exporterType, err := trace.ExporterTypeFromString(v.GetString(TracingExporterTypeKey))
	if err != nil {
		return trace.Config{}, err
	}

	sampleRate := v.GetFloat64(TracingSampleRateKey)
	if sampleRate < 0 || sampleRate > 1 {
		return trace.Config{}, fmt.Errorf("%w: %f", errInvalidSampleRate, sampleRate)
	}
	return trace.Config{
		ExporterConfig: trace.ExporterConfig{
			Type:     exporterType,
			Endpoint: v.GetString(TracingEndpointKey),
			Headers:  v.GetStringMapString(TracingHeadersKey),
			Insecure: v.GetBool(TracingInsecureKey),
		},
		ServiceName: rightsvm.Name,
		Version:     rightsvm.Version.String(),
		SampleRate:  sampleRate,
	}, nil
}
