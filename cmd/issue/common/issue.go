// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/api"
	"github.com/ava-labs/rightsvm/tx"
)

func (c *Config) Client() api.Client {
	return api.NewClient(c.URI)
}

// ResolveOrchestrator returns the configured orchestrator, falling back to the
// one deployed at genesis.
func (c *Config) ResolveOrchestrator(ctx context.Context) (ids.ShortID, error) {
	if c.Orchestrator != ids.ShortEmpty {
		return c.Orchestrator, nil
	}
	deployment, err := c.Client().Deployment(ctx)
	if err != nil {
		return ids.ShortEmpty, err
	}
	return deployment.Orchestrator, nil
}

// Issue signs the transaction built for the sender's current nonce and
// submits it.
func Issue(ctx context.Context, config *Config, build func(nonce uint64) tx.Unsigned) error {
	client := config.Client()

	nonce, err := client.Nonce(ctx, config.PrivateKey.Address())
	if err != nil {
		return err
	}

	stx, err := tx.Sign(build(nonce), config.PrivateKey)
	if err != nil {
		return err
	}

	txJSON, err := json.MarshalIndent(stx, "", "  ")
	if err != nil {
		return err
	}

	issueTxStartTime := time.Now()
	txID, result, err := client.IssueTx(ctx, stx)
	if err != nil {
		return err
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}
	log.Printf("issued tx %s in %s\n%s\nresult: %s\n", txID, time.Since(issueTxStartTime), string(txJSON), string(resultJSON))
	return nil
}
