// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/rightsvm/chain"
	"github.com/ava-labs/rightsvm/contracts/nft"
	"github.com/ava-labs/rightsvm/execute"
	"github.com/ava-labs/rightsvm/orchestrator"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/tx"

	avajson "github.com/ava-labs/avalanchego/utils/json"
)

const (
	// Endpoint is the path the service is served at
	Endpoint    = "/ext/rights"
	ServiceName = "rights"
)

var (
	errUnknownContract = errors.New("unknown contract")
	errUnknownTx       = errors.New("unknown tx")
)

// NewHandler returns the JSON-RPC handler of the rights service. Request
// metrics are registered on [registerer].
func NewHandler(
	log logging.Logger,
	c *chain.Chain,
	namespace string,
	registerer prometheus.Registerer,
) (http.Handler, error) {
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}

	server := rpc.NewServer()
	codec := avajson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	server.RegisterInterceptFunc(m.InterceptRequest)
	server.RegisterAfterFunc(m.AfterRequest)
	return server, server.RegisterService(&Service{
		log:   log,
		chain: c,
	}, ServiceName)
}

// Service exposes transaction issuance and every read-only accessor of the
// chain.
type Service struct {
	log   logging.Logger
	chain *chain.Chain
}

func (s *Service) IssueTx(r *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	newTx, err := tx.Parse(args.Tx)
	if err != nil {
		return err
	}

	txID, result, err := execute.Issue(r.Context(), s.chain, newTx)
	if err != nil {
		return fmt.Errorf("tx %s failed: %w", txID, err)
	}

	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "issueTx"),
		zap.Stringer("txID", txID),
	)
	reply.TxID = txID
	reply.Result = *result
	return nil
}

func (s *Service) GetTx(r *http.Request, args *GetTxArgs, reply *GetTxReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		record, err := state.GetTx(ctx.DB, args.TxID)
		if err == database.ErrNotFound {
			return fmt.Errorf("%w: %s", errUnknownTx, args.TxID)
		}
		if err != nil {
			return err
		}
		reply.Tx = record.Bytes
		reply.Accepted = record.Accepted
		reply.Reason = record.Reason
		return nil
	})
}

func (s *Service) Nonce(r *http.Request, args *AddressArgs, reply *NonceReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		nonce, err := state.GetNonce(ctx.DB, args.Address)
		reply.Nonce = avajson.Uint64(nonce)
		return err
	})
}

func (s *Service) Deployment(_ *http.Request, _ *EmptyArgs, reply *DeploymentReply) error {
	deployment, err := s.chain.Deployment()
	if err != nil {
		return err
	}
	reply.Deployment = *deployment
	return nil
}

func (s *Service) GetOrchestrator(r *http.Request, args *OrchestratorArgs, reply *GetOrchestratorReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		o, err := s.orchestrator(ctx, args.Orchestrator)
		if err != nil {
			return err
		}

		reply.Admin, err = o.Admin()
		if err != nil {
			return err
		}
		reply.FRightRegistry, err = o.Binding(orchestrator.FRight)
		if err != nil {
			return err
		}
		reply.IRightRegistry, err = o.Binding(orchestrator.IRight)
		if err != nil {
			return err
		}
		fVersion, err := o.Version(orchestrator.FRight)
		if err != nil {
			return err
		}
		iVersion, err := o.Version(orchestrator.IRight)
		if err != nil {
			return err
		}
		reply.FVersion = avajson.Uint64(fVersion)
		reply.IVersion = avajson.Uint64(iVersion)
		reply.FreezeGateActive, err = o.IsFreezeGateActive()
		return err
	})
}

func (s *Service) IsWhitelisted(r *http.Request, args *IsWhitelistedArgs, reply *IsWhitelistedReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		o, err := s.orchestrator(ctx, args.Orchestrator)
		if err != nil {
			return err
		}
		reply.Whitelisted, err = o.IsWhitelisted(args.Address)
		return err
	})
}

func (s *Service) GetFRight(r *http.Request, args *RightArgs, reply *GetFRightReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		address, err := s.registry(ctx, args.Registry, orchestrator.FRight)
		if err != nil {
			return err
		}
		registry, ok, err := ctx.GetFRightRegistry(address)
		if err = found(address, ok, err); err != nil {
			return err
		}

		id := uint64(args.ID)
		record, err := registry.Get(id)
		if err != nil {
			return err
		}
		reply.Right = *record
		reply.Mintable, err = registry.IsIMintable(id)
		if err != nil {
			return err
		}
		return token(registry.Collection, id, &reply.Owner, &reply.TokenURI)
	})
}

func (s *Service) GetIRight(r *http.Request, args *RightArgs, reply *GetIRightReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		address, err := s.registry(ctx, args.Registry, orchestrator.IRight)
		if err != nil {
			return err
		}
		registry, ok, err := ctx.GetIRightRegistry(address)
		if err = found(address, ok, err); err != nil {
			return err
		}

		id := uint64(args.ID)
		record, err := registry.Get(id)
		if err != nil {
			return err
		}
		reply.Right = *record
		return token(registry.Collection, id, &reply.Owner, &reply.TokenURI)
	})
}

func (s *Service) IsFrozen(r *http.Request, args *IsFrozenArgs, reply *IsFrozenReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		address, err := s.registry(ctx, args.Registry, orchestrator.FRight)
		if err != nil {
			return err
		}
		registry, ok, err := ctx.GetFRightRegistry(address)
		if err = found(address, ok, err); err != nil {
			return err
		}

		fRightID, err := registry.FrozenBy(args.BaseAsset, uint64(args.AssetID))
		reply.Frozen = fRightID != 0
		reply.FRightID = avajson.Uint64(fRightID)
		return err
	})
}

func (s *Service) GetToken(r *http.Request, args *TokenArgs, reply *GetTokenReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		c, ok, err := ctx.GetCollection(args.Contract)
		if err = found(args.Contract, ok, err); err != nil {
			return err
		}

		id := uint64(args.TokenID)
		reply.Approved, err = c.GetApproved(id)
		if err != nil {
			return err
		}
		return token(c, id, &reply.Owner, &reply.TokenURI)
	})
}

func (s *Service) BalanceOf(r *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		c, ok, err := ctx.GetCollection(args.Contract)
		if err = found(args.Contract, ok, err); err != nil {
			return err
		}
		balance, err := c.BalanceOf(args.Owner)
		reply.Balance = avajson.Uint64(balance)
		return err
	})
}

func (s *Service) GetContract(r *http.Request, args *AddressArgs, reply *GetContractReply) error {
	return s.chain.View(r.Context(), func(ctx *chain.Context) error {
		contractType, err := ctx.ContractType(args.Address)
		if err != nil {
			return err
		}
		if contractType == state.NoContract {
			return fmt.Errorf("%w: %s", errUnknownContract, args.Address)
		}
		reply.Type = contractType.String()

		switch contractType {
		case state.OrchestratorContract:
			o, err := s.orchestrator(ctx, args.Address)
			if err != nil {
				return err
			}
			reply.Owner, err = o.Admin()
			return err
		case state.ProxyContract:
			return nil
		}

		c, _, err := ctx.GetCollection(args.Address)
		if err != nil {
			return err
		}
		reply.Owner, err = c.Owner()
		if err != nil {
			return err
		}
		reply.Name, err = c.Name()
		if err != nil {
			return err
		}
		reply.BaseURL, err = c.APIBaseURL()
		return err
	})
}

// orchestrator returns the orchestrator at [address], defaulting to the
// genesis orchestrator.
func (*Service) orchestrator(ctx *chain.Context, address ids.ShortID) (*orchestrator.Orchestrator, error) {
	if address == ids.ShortEmpty {
		deployment, err := state.GetDeployment(ctx.DB)
		if err != nil {
			return nil, err
		}
		address = deployment.Orchestrator
	}
	o, ok, err := ctx.GetOrchestrator(address)
	return o, found(address, ok, err)
}

// registry returns [address], defaulting to the registry of [kind] bound to
// the genesis orchestrator.
func (s *Service) registry(ctx *chain.Context, address ids.ShortID, kind orchestrator.RightKind) (ids.ShortID, error) {
	if address != ids.ShortEmpty {
		return address, nil
	}
	o, err := s.orchestrator(ctx, ids.ShortEmpty)
	if err != nil {
		return ids.ShortEmpty, err
	}
	return o.Binding(kind)
}

func token(c *nft.Collection, tokenID uint64, owner *ids.ShortID, uri *string) error {
	var err error
	*owner, err = c.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	*uri, err = c.TokenURI(tokenID)
	return err
}

func found(address ids.ShortID, ok bool, err error) error {
	switch {
	case err != nil:
		return err
	case !ok:
		return fmt.Errorf("%w: %s", errUnknownContract, address)
	default:
		return nil
	}
}
