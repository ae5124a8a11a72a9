package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
)

// remoteBlockchain keeps the dialed Neo RPC connection for the lifetime of
// the command.
type remoteBlockchain struct {
	rpc *rpcclient.Client
}

// dialBlockchain dials the Neo RPC server. Connection and all requests are
// done within 15s timeout.
func dialBlockchain(endpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	if err := c.Init(); err != nil {
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return &remoteBlockchain{rpc: c}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}
