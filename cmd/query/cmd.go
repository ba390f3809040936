// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package query

import (
	"encoding/json"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/api"
	"github.com/ava-labs/rightsvm/cmd/issue/common"

	avajson "github.com/ava-labs/avalanchego/utils/json"
)

const (
	AddressKey      = "address"
	OrchestratorKey = "orchestrator"
	RegistryKey     = "registry"
	ContractKey     = "contract"
	CollectionKey   = "collection"
	OwnerKey        = "owner"
	IDKey           = "id"
	TxIDKey         = "tx-id"
)

// query reads the command flags and fetches the value to print.
type query func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "query",
		Short: "Reads chain state from a running node",
	}
	c.PersistentFlags().String(common.URIKey, common.LocalAPIURI, "API URI to query")
	c.AddCommand(
		newCommand("deployment", "Prints the genesis deployment", nil,
			func(c *cobra.Command, client api.Client, _ *pflag.FlagSet) (any, error) {
				return client.Deployment(c.Context())
			},
		),
		newCommand("tx", "Prints an accepted or rejected transaction",
			func(flags *pflag.FlagSet) {
				flags.String(TxIDKey, "", "Transaction ID")
			},
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				txIDStr, err := flags.GetString(TxIDKey)
				if err != nil {
					return nil, err
				}
				txID, err := ids.FromString(txIDStr)
				if err != nil {
					return nil, err
				}
				return client.GetTx(c.Context(), txID)
			},
		),
		newCommand("nonce", "Prints the next nonce of an address",
			func(flags *pflag.FlagSet) {
				flags.String(AddressKey, "", "Account address")
			},
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				address, err := common.GetShortID(flags, AddressKey)
				if err != nil {
					return nil, err
				}
				return client.Nonce(c.Context(), address)
			},
		),
		newCommand("orchestrator", "Prints the configuration of an orchestrator",
			func(flags *pflag.FlagSet) {
				flags.String(OrchestratorKey, "", "Orchestrator address. If empty, the genesis orchestrator is used")
			},
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				orchestrator, err := common.GetShortID(flags, OrchestratorKey)
				if err != nil {
					return nil, err
				}
				return client.GetOrchestrator(c.Context(), orchestrator)
			},
		),
		newCommand("whitelisted", "Prints whether a collection is whitelisted",
			func(flags *pflag.FlagSet) {
				flags.String(OrchestratorKey, "", "Orchestrator address. If empty, the genesis orchestrator is used")
				flags.String(AddressKey, "", "Collection address")
			},
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				orchestrator, err := common.GetShortID(flags, OrchestratorKey)
				if err != nil {
					return nil, err
				}
				address, err := common.GetShortID(flags, AddressKey)
				if err != nil {
					return nil, err
				}
				return client.IsWhitelisted(c.Context(), orchestrator, address)
			},
		),
		newCommand("f-right", "Prints an F-right",
			addRightFlags,
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				registry, id, err := parseRightFlags(flags)
				if err != nil {
					return nil, err
				}
				return client.GetFRight(c.Context(), registry, id)
			},
		),
		newCommand("i-right", "Prints an I-right",
			addRightFlags,
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				registry, id, err := parseRightFlags(flags)
				if err != nil {
					return nil, err
				}
				return client.GetIRight(c.Context(), registry, id)
			},
		),
		newCommand("frozen", "Prints the F-right holding an asset, if any",
			func(flags *pflag.FlagSet) {
				addRightFlags(flags)
				flags.String(CollectionKey, "", "Collection of the asset")
			},
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				registry, assetID, err := parseRightFlags(flags)
				if err != nil {
					return nil, err
				}
				collection, err := common.GetShortID(flags, CollectionKey)
				if err != nil {
					return nil, err
				}
				fRightID, frozen, err := client.IsFrozen(c.Context(), registry, collection, assetID)
				return &api.IsFrozenReply{
					FRightID: avajson.Uint64(fRightID),
					Frozen:   frozen,
				}, err
			},
		),
		newCommand("token", "Prints the owner and approval of a token",
			func(flags *pflag.FlagSet) {
				flags.String(ContractKey, "", "Token contract")
				flags.Uint64(IDKey, 1, "Token ID")
			},
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				contract, err := common.GetShortID(flags, ContractKey)
				if err != nil {
					return nil, err
				}
				tokenID, err := flags.GetUint64(IDKey)
				if err != nil {
					return nil, err
				}
				return client.GetToken(c.Context(), contract, tokenID)
			},
		),
		newCommand("balance", "Prints how many tokens of a contract an address holds",
			func(flags *pflag.FlagSet) {
				flags.String(ContractKey, "", "Token contract")
				flags.String(OwnerKey, "", "Holder address")
			},
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				contract, err := common.GetShortID(flags, ContractKey)
				if err != nil {
					return nil, err
				}
				owner, err := common.GetShortID(flags, OwnerKey)
				if err != nil {
					return nil, err
				}
				return client.BalanceOf(c.Context(), contract, owner)
			},
		),
		newCommand("contract", "Prints the type and owner of a contract",
			func(flags *pflag.FlagSet) {
				flags.String(AddressKey, "", "Contract address")
			},
			func(c *cobra.Command, client api.Client, flags *pflag.FlagSet) (any, error) {
				address, err := common.GetShortID(flags, AddressKey)
				if err != nil {
					return nil, err
				}
				return client.GetContract(c.Context(), address)
			},
		),
	)
	return c
}

func newCommand(use, short string, addFlags func(*pflag.FlagSet), q query) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(c *cobra.Command, _ []string) error {
			flags := c.Flags()
			uri, err := flags.GetString(common.URIKey)
			if err != nil {
				return err
			}

			reply, err := q(c, api.NewClient(uri), flags)
			if err != nil {
				return err
			}

			replyJSON, err := json.MarshalIndent(reply, "", "  ")
			if err != nil {
				return err
			}
			log.Printf("%s\n", string(replyJSON))
			return nil
		},
	}
	if addFlags != nil {
		addFlags(c.Flags())
	}
	return c
}

func addRightFlags(flags *pflag.FlagSet) {
	flags.String(RegistryKey, "", "Registry address. If empty, the genesis registry is used")
	flags.Uint64(IDKey, 1, "Right or asset ID")
}

func parseRightFlags(flags *pflag.FlagSet) (ids.ShortID, uint64, error) {
	registry, err := common.GetShortID(flags, RegistryKey)
	if err != nil {
		return ids.ShortEmpty, 0, err
	}
	id, err := flags.GetUint64(IDKey)
	return registry, id, err
}
