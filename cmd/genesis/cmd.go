// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
	"github.com/ava-labs/rightsvm/genesis"
)

const (
	AdminKey     = "admin"
	NumAssetsKey = "num-assets"
	OutputKey    = "output"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "genesis",
		Short: "Writes a genesis file with a single collection",
		RunE:  genesisFunc,
	}
	flags := c.Flags()
	flags.String(AdminKey, genesis.EWOQKey.Address().String(), "Administrator of the genesis contracts")
	flags.Uint64(NumAssetsKey, 8, "Number of assets minted to the administrator")
	flags.String(OutputKey, "genesis.json", "File to write the genesis to")
	return c
}

func genesisFunc(c *cobra.Command, _ []string) error {
	flags := c.Flags()
	admin, err := common.GetShortID(flags, AdminKey)
	if err != nil {
		return err
	}
	numAssets, err := flags.GetUint64(NumAssetsKey)
	if err != nil {
		return err
	}
	output, err := flags.GetString(OutputKey)
	if err != nil {
		return err
	}

	g := genesis.Default(admin, numAssets)
	if err := g.Verify(); err != nil {
		return err
	}
	genesisBytes, err := g.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, genesisBytes, 0o644); err != nil { //nolint:gosec
		return err
	}
	log.Printf("wrote genesis administered by %s to %s\n", admin, output)
	return nil
}
