// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package genesis describes the initial state of a rights chain: its
// administrator, the freeze policy and the base asset collections that exist
// from the start.
package genesis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto/secp256k1"
	"github.com/ava-labs/avalanchego/utils/set"
)

// EWOQKeyFormattedStr is the well known key used by local networks.
const EWOQKeyFormattedStr = "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN"

var (
	EWOQKey *secp256k1.PrivateKey

	errMissingAdmin       = errors.New("missing admin")
	errInvalidWhitelisted = errors.New("invalid whitelisted address")
	errDuplicateAddress   = errors.New("duplicate address")
	errMissingOwner       = errors.New("missing owner")
	errInvalidAssetID     = errors.New("invalid asset id")
	errDuplicateAssetID   = errors.New("duplicate asset id")
)

func init() {
	var sk secp256k1.PrivateKey
	if err := sk.UnmarshalText([]byte(`"` + EWOQKeyFormattedStr + `"`)); err != nil {
		panic(err)
	}
	EWOQKey = &sk
}

type Genesis struct {
	// Admin administers the orchestrator and deploys every genesis contract.
	Admin            ids.ShortID   `json:"admin"`
	FreezeGateActive bool          `json:"freezeGateActive"`
	Whitelist        []ids.ShortID `json:"whitelist"`
	FRightBaseURL    string        `json:"fRightBaseURL"`
	IRightBaseURL    string        `json:"iRightBaseURL"`
	Collections      []Collection  `json:"collections"`
}

type Collection struct {
	Name   string      `json:"name"`
	Owner  ids.ShortID `json:"owner"`
	Assets []Asset     `json:"assets"`
}

type Asset struct {
	ID    uint64      `json:"id"`
	Owner ids.ShortID `json:"owner"`
}

// Default returns a genesis administered by [admin] with a single collection
// of [numAssets] assets, all owned by [admin].
func Default(admin ids.ShortID, numAssets uint64) *Genesis {
	assets := make([]Asset, numAssets)
	for i := range assets {
		assets[i] = Asset{
			ID:    uint64(i) + 1,
			Owner: admin,
		}
	}
	return &Genesis{
		Admin: admin,
		Collections: []Collection{{
			Name:   "genesis",
			Owner:  admin,
			Assets: assets,
		}},
	}
}

func (g *Genesis) Verify() error {
	if g.Admin == ids.ShortEmpty {
		return errMissingAdmin
	}

	whitelist := set.NewSet[ids.ShortID](len(g.Whitelist))
	for _, addr := range g.Whitelist {
		if addr == ids.ShortEmpty {
			return errInvalidWhitelisted
		}
		if whitelist.Contains(addr) {
			return fmt.Errorf("%w: %s", errDuplicateAddress, addr)
		}
		whitelist.Add(addr)
	}

	for i, collection := range g.Collections {
		if collection.Owner == ids.ShortEmpty {
			return fmt.Errorf("%w: collection %d", errMissingOwner, i)
		}
		assetIDs := set.NewSet[uint64](len(collection.Assets))
		for _, asset := range collection.Assets {
			if asset.ID == 0 {
				return fmt.Errorf("%w: collection %d", errInvalidAssetID, i)
			}
			if assetIDs.Contains(asset.ID) {
				return fmt.Errorf("%w: %d in collection %d", errDuplicateAssetID, asset.ID, i)
			}
			if asset.Owner == ids.ShortEmpty {
				return fmt.Errorf("%w: asset %d in collection %d", errMissingOwner, asset.ID, i)
			}
			assetIDs.Add(asset.ID)
		}
	}
	return nil
}

// Parse decodes and verifies a JSON encoded genesis.
func Parse(bytes []byte) (*Genesis, error) {
	genesis := &Genesis{}
	if err := json.Unmarshal(bytes, genesis); err != nil {
		return nil, err
	}
	return genesis, genesis.Verify()
}

func (g *Genesis) Bytes() ([]byte, error) {
	return json.MarshalIndent(g, "", "\t")
}
