// Package deploy provides deployment of the Guild contract into a Neo
// blockchain network.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for Guild contract deployment.
type Blockchain interface {
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract
	// by its address. It returns an error with 'Unknown contract' substring
	// if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups deployment parameters of the Guild contract.
type Prm struct {
	// Writes progress of the deployment. Optional.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used.
	Blockchain Blockchain

	// Account signing and paying for the deployment transaction.
	LocalAccount *wallet.Account

	// Compiled contract.
	NEF      nef.File
	Manifest manifest.Manifest

	// Guild constructor arguments.
	Symbol    string
	Name      string
	Manifesto string
	Master    util.Uint160
	Treasury  util.Uint160
}

// Deploy sends the Guild contract into the given Neo blockchain, waits for
// the deployment transaction to persist and returns the on-chain contract
// address. If the contract is already on chain, its address is returned
// right away.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if prm.Master.Equals(util.Uint160{}) {
		return util.Uint160{}, errors.New("zero master account")
	}
	if prm.Treasury.Equals(util.Uint160{}) {
		return util.Uint160{}, errors.New("zero treasury account")
	}

	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender: %w", err)
	}

	address := state.CreateContractHash(act.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	if _, err := prm.Blockchain.GetContractStateByHash(address); err == nil {
		l.Info("contract is already deployed", zap.Stringer("address", address))
		return address, nil
	}

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment: %w", err)
	}

	args := []any{prm.Symbol, prm.Name, prm.Manifesto, prm.Master, prm.Treasury}

	l.Info("deploying contract...", zap.Stringer("address", address))

	txHash, vub, err := management.New(act).Deploy(&prm.NEF, &prm.Manifest, args)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction: %w", err)
	}

	if _, err := act.Wait(txHash, vub, nil); err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment transaction %s: %w", txHash.StringLE(), err)
	}

	l.Info("contract successfully deployed", zap.Stringer("address", address))

	return address, nil
}
