// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package unfreeze

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
	"github.com/ava-labs/rightsvm/tx"
)

const FRightIDKey = "f-right-id"

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "unfreeze",
		Short: "Burns an F-right and returns the frozen asset to its holder",
		RunE:  unfreezeFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func AddFlags(flags *pflag.FlagSet) {
	flags.Uint64(FRightIDKey, 1, "F-right to unfreeze")
}

func unfreezeFunc(c *cobra.Command, _ []string) error {
	flags := c.Flags()
	config, err := common.ParseFlags(flags)
	if err != nil {
		return err
	}
	fRightID, err := flags.GetUint64(FRightIDKey)
	if err != nil {
		return err
	}

	ctx := c.Context()
	orchestrator, err := config.ResolveOrchestrator(ctx)
	if err != nil {
		return err
	}

	return common.Issue(ctx, config, func(nonce uint64) tx.Unsigned {
		return &tx.Unfreeze{
			Nonce:        nonce,
			Orchestrator: orchestrator,
			FRightID:     fRightID,
		}
	})
}
