// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package issuei

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
	"github.com/ava-labs/rightsvm/tx"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "issue-i",
		Short: "Issues an additional I-right against an F-right",
		RunE:  issueIFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func issueIFunc(c *cobra.Command, _ []string) error {
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
		return &tx.IssueI{
			Nonce:        nonce,
			Orchestrator: orchestrator,
			FRightID:     config.FRightID,
			Expiry:       config.Expiry,
			IVersion:     config.IVersion,
		}
	})
}
