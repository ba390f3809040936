// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package freeze

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
)

const (
	CollectionKey = "collection"
	AssetIDKey    = "asset-id"
	ExpiryKey     = "expiry"
	ExclusiveKey  = "exclusive"
	MaxISupplyKey = "max-i-supply"
	FVersionKey   = "f-version"
	IVersionKey   = "i-version"
)

var errMissingCollection = errors.New("missing collection")

func AddFlags(flags *pflag.FlagSet) {
	flags.String(CollectionKey, "", "Collection holding the asset to freeze")
	flags.Uint64(AssetIDKey, 1, "Asset to freeze")
	flags.Uint64(ExpiryKey, 0, "Unix timestamp the rights expire at")
	flags.Bool(ExclusiveKey, false, "Forbid drawing further I-rights")
	flags.Uint64(MaxISupplyKey, 1, "Maximum number of I-rights in circulation")
	flags.Uint64(FVersionKey, 1, "Current F-right version")
	flags.Uint64(IVersionKey, 1, "Current I-right version")
}

type Config struct {
	*common.Config
	Collection ids.ShortID
	AssetID    uint64
	Expiry     uint64
	Exclusive  bool
	MaxISupply uint64
	FVersion   uint64
	IVersion   uint64
}

func ParseFlags(flags *pflag.FlagSet) (*Config, error) {
	commonConfig, err := common.ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	collection, err := common.GetShortID(flags, CollectionKey)
	if err != nil {
		return nil, err
	}
	if collection == ids.ShortEmpty {
		return nil, errMissingCollection
	}

	assetID, err := flags.GetUint64(AssetIDKey)
	if err != nil {
		return nil, err
	}

	expiry, err := flags.GetUint64(ExpiryKey)
	if err != nil {
		return nil, err
	}

	exclusive, err := flags.GetBool(ExclusiveKey)
	if err != nil {
		return nil, err
	}

	maxISupply, err := flags.GetUint64(MaxISupplyKey)
	if err != nil {
		return nil, err
	}

	fVersion, err := flags.GetUint64(FVersionKey)
	if err != nil {
		return nil, err
	}

	iVersion, err := flags.GetUint64(IVersionKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Config:     commonConfig,
		Collection: collection,
		AssetID:    assetID,
		Expiry:     expiry,
		Exclusive:  exclusive,
		MaxISupply: maxISupply,
		FVersion:   fVersion,
		IVersion:   iVersion,
	}, nil
}
