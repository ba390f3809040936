// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package admin holds the orchestrator administration commands.
package admin

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
	"github.com/ava-labs/rightsvm/tx"
)

// builder parses the command specific flags and returns the transaction to
// issue for a given nonce.
type builder func(flags *pflag.FlagSet, orchestrator ids.ShortID) (func(nonce uint64) tx.Unsigned, error)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "admin",
		Short: "Issues orchestrator administration transactions",
	}
	c.AddCommand(
		bindRegistryCommand(),
		transferRegistryOwnershipCommand(),
		setRegistryProxyCommand(),
		setMetadataBaseURLCommand(),
		incrementVersionCommand(),
		setWhitelistStatusCommand(),
		freezeGateCommand("activate-freeze-gate", "Restricts freezing to whitelisted collections", true),
		freezeGateCommand("deactivate-freeze-gate", "Allows freezing of any collection", false),
		transferAdminCommand(),
	)
	return c
}

func newCommand(use, short string, addFlags func(*pflag.FlagSet), build builder) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(c *cobra.Command, _ []string) error {
			flags := c.Flags()
			config, err := common.ParseFlags(flags)
			if err != nil {
				return err
			}

			ctx := c.Context()
			orchestrator, err := config.ResolveOrchestrator(ctx)
			if err != nil {
				return err
			}

			utx, err := build(flags, orchestrator)
			if err != nil {
				return err
			}
			return common.Issue(ctx, config, utx)
		},
	}
	if addFlags != nil {
		addFlags(c.Flags())
	}
	return c
}

func bindRegistryCommand() *cobra.Command {
	return newCommand(
		"bind-registry",
		"Binds a registry to the orchestrator",
		func(flags *pflag.FlagSet) {
			addKindFlag(flags)
			flags.String(RegistryKey, "", "Registry address")
		},
		func(flags *pflag.FlagSet, orchestrator ids.ShortID) (func(uint64) tx.Unsigned, error) {
			kind, err := common.GetKind(flags, KindKey)
			if err != nil {
				return nil, err
			}
			registry, err := common.GetShortID(flags, RegistryKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.BindRegistry{
					Nonce:        nonce,
					Orchestrator: orchestrator,
					Kind:         kind,
					Registry:     registry,
				}
			}, nil
		},
	)
}

func transferRegistryOwnershipCommand() *cobra.Command {
	return newCommand(
		"transfer-registry-ownership",
		"Hands ownership of a bound registry to another address",
		func(flags *pflag.FlagSet) {
			addKindFlag(flags)
			flags.String(ToKey, "", "New registry owner")
		},
		func(flags *pflag.FlagSet, orchestrator ids.ShortID) (func(uint64) tx.Unsigned, error) {
			kind, err := common.GetKind(flags, KindKey)
			if err != nil {
				return nil, err
			}
			to, err := common.GetShortID(flags, ToKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.TransferRegistryOwnership{
					Nonce:        nonce,
					Orchestrator: orchestrator,
					Kind:         kind,
					To:           to,
				}
			}, nil
		},
	)
}

func setRegistryProxyCommand() *cobra.Command {
	return newCommand(
		"set-registry-proxy",
		"Sets the proxy registry consulted by a bound registry",
		func(flags *pflag.FlagSet) {
			addKindFlag(flags)
			flags.String(ProxyKey, "", "Proxy registry address")
		},
		func(flags *pflag.FlagSet, orchestrator ids.ShortID) (func(uint64) tx.Unsigned, error) {
			kind, err := common.GetKind(flags, KindKey)
			if err != nil {
				return nil, err
			}
			proxy, err := common.GetShortID(flags, ProxyKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.SetRegistryProxy{
					Nonce:        nonce,
					Orchestrator: orchestrator,
					Kind:         kind,
					Proxy:        proxy,
				}
			}, nil
		},
	)
}

func setMetadataBaseURLCommand() *cobra.Command {
	return newCommand(
		"set-metadata-base-url",
		"Sets the token URI prefix of a bound registry",
		func(flags *pflag.FlagSet) {
			addKindFlag(flags)
			flags.String(URLKey, "", "Metadata base URL")
		},
		func(flags *pflag.FlagSet, orchestrator ids.ShortID) (func(uint64) tx.Unsigned, error) {
			kind, err := common.GetKind(flags, KindKey)
			if err != nil {
				return nil, err
			}
			url, err := flags.GetString(URLKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.SetRegistryMetadataBaseURL{
					Nonce:        nonce,
					Orchestrator: orchestrator,
					Kind:         kind,
					URL:          url,
				}
			}, nil
		},
	)
}

func incrementVersionCommand() *cobra.Command {
	return newCommand(
		"increment-version",
		"Bumps the version of a right kind",
		addKindFlag,
		func(flags *pflag.FlagSet, orchestrator ids.ShortID) (func(uint64) tx.Unsigned, error) {
			kind, err := common.GetKind(flags, KindKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.IncrementVersion{
					Nonce:        nonce,
					Orchestrator: orchestrator,
					Kind:         kind,
				}
			}, nil
		},
	)
}

func setWhitelistStatusCommand() *cobra.Command {
	return newCommand(
		"set-whitelist-status",
		"Adds or removes a collection from the freeze whitelist",
		func(flags *pflag.FlagSet) {
			flags.String(AddressKey, "", "Collection address")
			flags.Bool(IncludedKey, true, "Whether the collection is whitelisted")
		},
		func(flags *pflag.FlagSet, orchestrator ids.ShortID) (func(uint64) tx.Unsigned, error) {
			address, err := common.GetShortID(flags, AddressKey)
			if err != nil {
				return nil, err
			}
			included, err := flags.GetBool(IncludedKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.SetWhitelistStatus{
					Nonce:        nonce,
					Orchestrator: orchestrator,
					Address:      address,
					Included:     included,
				}
			}, nil
		},
	)
}

func freezeGateCommand(use, short string, active bool) *cobra.Command {
	return newCommand(
		use,
		short,
		nil,
		func(_ *pflag.FlagSet, orchestrator ids.ShortID) (func(uint64) tx.Unsigned, error) {
			return func(nonce uint64) tx.Unsigned {
				return &tx.SetFreezeGate{
					Nonce:        nonce,
					Orchestrator: orchestrator,
					Active:       active,
				}
			}, nil
		},
	)
}

func transferAdminCommand() *cobra.Command {
	return newCommand(
		"transfer-admin",
		"Hands the orchestrator administration to another address",
		func(flags *pflag.FlagSet) {
			flags.String(ToKey, "", "New administrator")
		},
		func(flags *pflag.FlagSet, orchestrator ids.ShortID) (func(uint64) tx.Unsigned, error) {
			to, err := common.GetShortID(flags, ToKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.TransferAdmin{
					Nonce:        nonce,
					Orchestrator: orchestrator,
					To:           to,
				}
			}, nil
		},
	)
}
