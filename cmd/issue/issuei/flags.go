// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package issuei

import (
	"github.com/spf13/pflag"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
)

const (
	FRightIDKey = "f-right-id"
	ExpiryKey   = "expiry"
	IVersionKey = "i-version"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.Uint64(FRightIDKey, 1, "F-right to draw the I-right against")
	flags.Uint64(ExpiryKey, 0, "Unix timestamp the I-right expires at")
	flags.Uint64(IVersionKey, 1, "Current I-right version")
}

type Config struct {
	*common.Config
	FRightID uint64
	Expiry   uint64
	IVersion uint64
}

func ParseFlags(flags *pflag.FlagSet) (*Config, error) {
	commonConfig, err := common.ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	fRightID, err := flags.GetUint64(FRightIDKey)
	if err != nil {
		return nil, err
	}

	expiry, err := flags.GetUint64(ExpiryKey)
	if err != nil {
		return nil, err
	}

	iVersion, err := flags.GetUint64(IVersionKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Config:   commonConfig,
		FRightID: fRightID,
		Expiry:   expiry,
		IVersion: iVersion,
	}, nil
}
