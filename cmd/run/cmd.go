// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package run

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/rightsvm/app"
	"github.com/ava-labs/rightsvm/config"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Runs a rights node",
		// Flags are layered with the environment and the config file by
		// config.BuildViper.
		DisableFlagParsing: true,
		RunE:               runFunc,
	}
}

func runFunc(_ *cobra.Command, args []string) error {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, args)
	if err != nil {
		return err
	}

	nodeConfig, err := config.GetConfig(v)
	if err != nil {
		return err
	}

	exitCode := app.Run(app.New(nodeConfig))
	if exitCode != 0 {
		fmt.Fprintf(os.Stderr, "node exited with code %d\n", exitCode)
		os.Exit(exitCode)
	}
	return nil
}
