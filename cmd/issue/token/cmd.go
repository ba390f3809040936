// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token holds the commands operating directly on deployed contracts.
package token

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ava-labs/rightsvm/cmd/issue/common"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/tx"
)

type builder func(flags *pflag.FlagSet) (func(nonce uint64) tx.Unsigned, error)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "token",
		Short: "Issues contract deployment and token transactions",
	}
	c.AddCommand(
		deployCommand(),
		mintCommand(),
		transferCommand(),
		approveCommand(),
		approveAllCommand(),
		transferOwnershipCommand(),
		registerProxyCommand(),
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
			utx, err := build(flags)
			if err != nil {
				return err
			}
			return common.Issue(c.Context(), config, utx)
		},
	}
	addFlags(c.Flags())
	return c
}

func deployCommand() *cobra.Command {
	return newCommand(
		"deploy",
		"Deploys a new contract owned by the sender",
		func(flags *pflag.FlagSet) {
			flags.String(ContractTypeKey, state.CollectionContract.String(), "Contract to deploy: collection, fRight, iRight, proxy or orchestrator")
			flags.String(NameKey, "", "Contract name")
		},
		func(flags *pflag.FlagSet) (func(uint64) tx.Unsigned, error) {
			typeStr, err := flags.GetString(ContractTypeKey)
			if err != nil {
				return nil, err
			}
			contractType, err := state.ContractTypeFromString(typeStr)
			if err != nil {
				return nil, err
			}
			name, err := flags.GetString(NameKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.Deploy{
					Nonce:        nonce,
					ContractType: contractType,
					Name:         name,
				}
			}, nil
		},
	)
}

func mintCommand() *cobra.Command {
	return newCommand(
		"mint",
		"Mints a base asset of a collection",
		func(flags *pflag.FlagSet) {
			flags.String(ContractKey, "", "Collection address")
			flags.String(ToKey, "", "Recipient")
			flags.Uint64(TokenIDKey, 1, "Asset to mint")
		},
		func(flags *pflag.FlagSet) (func(uint64) tx.Unsigned, error) {
			collection, err := common.GetShortID(flags, ContractKey)
			if err != nil {
				return nil, err
			}
			to, err := common.GetShortID(flags, ToKey)
			if err != nil {
				return nil, err
			}
			assetID, err := flags.GetUint64(TokenIDKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.MintAsset{
					Nonce:      nonce,
					Collection: collection,
					To:         to,
					AssetID:    assetID,
				}
			}, nil
		},
	)
}

func transferCommand() *cobra.Command {
	return newCommand(
		"transfer",
		"Transfers a token",
		func(flags *pflag.FlagSet) {
			flags.String(ContractKey, "", "Token contract")
			flags.String(FromKey, "", "Current holder")
			flags.String(ToKey, "", "Recipient")
			flags.Uint64(TokenIDKey, 1, "Token to transfer")
			flags.Bool(SafeKey, false, "Require contract recipients to accept the token")
			flags.BytesHex(DataKey, nil, "Hex encoded data passed to the recipient")
		},
		func(flags *pflag.FlagSet) (func(uint64) tx.Unsigned, error) {
			contract, err := common.GetShortID(flags, ContractKey)
			if err != nil {
				return nil, err
			}
			from, err := common.GetShortID(flags, FromKey)
			if err != nil {
				return nil, err
			}
			to, err := common.GetShortID(flags, ToKey)
			if err != nil {
				return nil, err
			}
			tokenID, err := flags.GetUint64(TokenIDKey)
			if err != nil {
				return nil, err
			}
			safe, err := flags.GetBool(SafeKey)
			if err != nil {
				return nil, err
			}
			data, err := flags.GetBytesHex(DataKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.TransferToken{
					Nonce:    nonce,
					Contract: contract,
					From:     from,
					To:       to,
					TokenID:  tokenID,
					Safe:     safe,
					Data:     data,
				}
			}, nil
		},
	)
}

func approveCommand() *cobra.Command {
	return newCommand(
		"approve",
		"Approves an address to transfer a single token",
		func(flags *pflag.FlagSet) {
			flags.String(ContractKey, "", "Token contract")
			flags.String(ToKey, "", "Approved address")
			flags.Uint64(TokenIDKey, 1, "Token to approve")
		},
		func(flags *pflag.FlagSet) (func(uint64) tx.Unsigned, error) {
			contract, err := common.GetShortID(flags, ContractKey)
			if err != nil {
				return nil, err
			}
			to, err := common.GetShortID(flags, ToKey)
			if err != nil {
				return nil, err
			}
			tokenID, err := flags.GetUint64(TokenIDKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.Approve{
					Nonce:    nonce,
					Contract: contract,
					To:       to,
					TokenID:  tokenID,
				}
			}, nil
		},
	)
}

func approveAllCommand() *cobra.Command {
	return newCommand(
		"approve-all",
		"Sets whether an operator may transfer all of the sender's tokens",
		func(flags *pflag.FlagSet) {
			flags.String(ContractKey, "", "Token contract")
			flags.String(OperatorKey, "", "Operator address")
			flags.Bool(ApprovedKey, true, "Grant or revoke the approval")
		},
		func(flags *pflag.FlagSet) (func(uint64) tx.Unsigned, error) {
			contract, err := common.GetShortID(flags, ContractKey)
			if err != nil {
				return nil, err
			}
			operator, err := common.GetShortID(flags, OperatorKey)
			if err != nil {
				return nil, err
			}
			approved, err := flags.GetBool(ApprovedKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.SetApprovalForAll{
					Nonce:    nonce,
					Contract: contract,
					Operator: operator,
					Approved: approved,
				}
			}, nil
		},
	)
}

func transferOwnershipCommand() *cobra.Command {
	return newCommand(
		"transfer-ownership",
		"Hands ownership of a contract to another address",
		func(flags *pflag.FlagSet) {
			flags.String(ContractKey, "", "Contract address")
			flags.String(ToKey, "", "New owner")
		},
		func(flags *pflag.FlagSet) (func(uint64) tx.Unsigned, error) {
			contract, err := common.GetShortID(flags, ContractKey)
			if err != nil {
				return nil, err
			}
			to, err := common.GetShortID(flags, ToKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.TransferContractOwnership{
					Nonce:    nonce,
					Contract: contract,
					To:       to,
				}
			}, nil
		},
	)
}

func registerProxyCommand() *cobra.Command {
	return newCommand(
		"register-proxy",
		"Registers the sender's proxy in a proxy registry",
		func(flags *pflag.FlagSet) {
			flags.String(ContractKey, "", "Proxy registry address")
			flags.String(ProxyKey, "", "Proxy address")
		},
		func(flags *pflag.FlagSet) (func(uint64) tx.Unsigned, error) {
			registry, err := common.GetShortID(flags, ContractKey)
			if err != nil {
				return nil, err
			}
			proxy, err := common.GetShortID(flags, ProxyKey)
			if err != nil {
				return nil, err
			}
			return func(nonce uint64) tx.Unsigned {
				return &tx.RegisterProxy{
					Nonce:    nonce,
					Registry: registry,
					Proxy:    proxy,
				}
			}, nil
		},
	)
}
