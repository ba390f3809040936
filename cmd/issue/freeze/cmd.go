// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package freeze

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
	"github.com/ava-labs/rightsvm/tx"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "freeze",
		Short: "Freezes an asset into an F-right and an initial I-right",
		RunE:  freezeFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func freezeFunc(c *cobra.Command, _ []string) error {
	config, err := ParseFlags(c.Flags())
	if err != nil {
		return err
	}

	ctx := c.Context()
	orchestrator, err := config.ResolveOrchestrator(ctx)
	if err != nil {
		return err
	}

	return common.Issue(ctx, config.Config, func(nonce uint64) tx.Unsigned {
		return &tx.Freeze{
			Nonce:        nonce,
			Orchestrator: orchestrator,
			Collection:   config.Collection,
			AssetID:      config.AssetID,
			Expiry:       config.Expiry,
			Exclusive:    config.Exclusive,
			MaxISupply:   config.MaxISupply,
			FVersion:     config.FVersion,
			IVersion:     config.IVersion,
		}
	})
}
