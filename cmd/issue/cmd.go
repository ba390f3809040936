// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package issue

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/rightsvm/cmd/issue/admin"
	"github.com/ava-labs/rightsvm/cmd/issue/common"
	"github.com/ava-labs/rightsvm/cmd/issue/freeze"
	"github.com/ava-labs/rightsvm/cmd/issue/issuei"
	"github.com/ava-labs/rightsvm/cmd/issue/revokei"
	"github.com/ava-labs/rightsvm/cmd/issue/token"
	"github.com/ava-labs/rightsvm/cmd/issue/unfreeze"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "issue",
		Short: "Issues transactions",
	}
	common.AddFlags(c.PersistentFlags())
	c.AddCommand(
		freeze.Command(),
		issuei.Command(),
		revokei.Command(),
		unfreeze.Command(),
		admin.Command(),
		token.Command(),
	)
	return c
}
