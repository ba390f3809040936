// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/rightsvm"
	"github.com/ava-labs/rightsvm/cmd/genesis"
	"github.com/ava-labs/rightsvm/cmd/issue"
	"github.com/ava-labs/rightsvm/cmd/query"
	"github.com/ava-labs/rightsvm/cmd/run"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	cmd := &cobra.Command{
		Use:   rightsvm.Name,
		Short: "Runs and drives a fractional rights chain",
	}
	cmd.AddCommand(
		run.Command(),
		genesis.Command(),
		issue.Command(),
		query.Command(),
		versionCommand(),
	)
	ctx := context.Background()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints out the version",
		RunE: func(*cobra.Command, []string) error {
			fmt.Printf("%s/%s [id=%s]\n", rightsvm.Name, rightsvm.Version, rightsvm.ID)
			return nil
		},
	}
}
