// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto/secp256k1"

	"github.com/ava-labs/rightsvm/config"
	"github.com/ava-labs/rightsvm/genesis"
	"github.com/ava-labs/rightsvm/orchestrator"
)

const (
	URIKey          = "uri"
	PrivateKeyKey   = "private-key"
	OrchestratorKey = "orchestrator"
)

// LocalAPIURI is the URI of a node started with the default flags
var LocalAPIURI = "http://127.0.0.1:" + fmt.Sprint(config.DefaultHTTPPort)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(URIKey, LocalAPIURI, "API URI to use during issuance")
	flags.String(PrivateKeyKey, genesis.EWOQKeyFormattedStr, "Private key to sign the transaction")
	flags.String(OrchestratorKey, "", "Orchestrator to call. If empty, the genesis orchestrator is used")
}

type Config struct {
	URI          string
	PrivateKey   *secp256k1.PrivateKey
	Orchestrator ids.ShortID
}

func ParseFlags(flags *pflag.FlagSet) (*Config, error) {
	uri, err := flags.GetString(URIKey)
	if err != nil {
		return nil, err
	}

	skStr, err := flags.GetString(PrivateKeyKey)
	if err != nil {
		return nil, err
	}

	var sk secp256k1.PrivateKey
	err = sk.UnmarshalText([]byte(`"` + skStr + `"`))
	if err != nil {
		return nil, err
	}

	orchestratorAddr, err := GetShortID(flags, OrchestratorKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		URI:          uri,
		PrivateKey:   &sk,
		Orchestrator: orchestratorAddr,
	}, nil
}

// GetShortID parses the address stored in [key]. An empty value is parsed as
// the empty address.
func GetShortID(flags *pflag.FlagSet, key string) (ids.ShortID, error) {
	str, err := flags.GetString(key)
	if err != nil || str == "" {
		return ids.ShortEmpty, err
	}
	return ids.ShortFromString(str)
}

func GetKind(flags *pflag.FlagSet, key string) (orchestrator.RightKind, error) {
	str, err := flags.GetString(key)
	if err != nil {
		return 0, err
	}
	return orchestrator.KindFromString(str)
}
