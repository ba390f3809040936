// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"math"

	"github.com/ava-labs/avalanchego/codec"
	"github.com/ava-labs/avalanchego/codec/linearcodec"
	"github.com/ava-labs/avalanchego/utils/wrappers"
)

const CodecVersion = 0

var Codec codec.Manager

func init() {
	c := linearcodec.NewDefault()
	Codec = codec.NewManager(math.MaxInt32)

	// The order of registration is part of the wire format.
	errs := wrappers.Errs{}
	errs.Add(
		c.RegisterType(&Freeze{}),
		c.RegisterType(&IssueI{}),
		c.RegisterType(&RevokeI{}),
		c.RegisterType(&Unfreeze{}),
		c.RegisterType(&BindRegistry{}),
		c.RegisterType(&TransferRegistryOwnership{}),
		c.RegisterType(&SetRegistryProxy{}),
		c.RegisterType(&SetRegistryMetadataBaseURL{}),
		c.RegisterType(&IncrementVersion{}),
		c.RegisterType(&SetWhitelistStatus{}),
		c.RegisterType(&SetFreezeGate{}),
		c.RegisterType(&TransferAdmin{}),
		c.RegisterType(&Deploy{}),
		c.RegisterType(&MintAsset{}),
		c.RegisterType(&TransferToken{}),
		c.RegisterType(&Approve{}),
		c.RegisterType(&SetApprovalForAll{}),
		c.RegisterType(&TransferContractOwnership{}),
		c.RegisterType(&RegisterProxy{}),
		Codec.RegisterCodec(CodecVersion, c),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}
