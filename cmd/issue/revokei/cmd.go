// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package revokei

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
	"github.com/ava-labs/rightsvm/tx"
)

const IRightIDKey = "i-right-id"

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "revoke-i",
		Short: "Burns an I-right, returning its slot to the parent F-right",
		RunE:  revokeIFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func AddFlags(flags *pflag.FlagSet) {
	flags.Uint64(IRightIDKey, 1, "I-right to revoke")
}

func revokeIFunc(c *cobra.Command, _ []string) error {
	flags := c.Flags()
	config, err := common.ParseFlags(flags)
	if err != nil {
		return err
	}
	iRightID, err := flags.GetUint64(IRightIDKey)
	if err != nil {
		return err
	}

	ctx := c.Context()
	orchestrator, err := config.ResolveOrchestrator(ctx)
	if err != nil {
		return err
	}

	return common.Issue(ctx, config, func(nonce uint64) tx.Unsigned {
		return &tx.RevokeI{
			Nonce:        nonce,
			Orchestrator: orchestrator,
			IRightID:     iRightID,
		}
	})
}
