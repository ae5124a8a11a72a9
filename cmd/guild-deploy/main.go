// Command guild-deploy deploys the compiled Guild contract into a Neo
// blockchain network.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nspcc-dev/guild-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet paying for deployment")
	walletPassword := flag.String("password", "", "Password of the wallet account")
	nefPath := flag.String("nef", "", "Path to the compiled contract (NEF)")
	manifestPath := flag.String("manifest", "", "Path to the contract manifest (JSON)")

	symbol := flag.String("symbol", "", "Guild ticker symbol")
	name := flag.String("name", "", "Guild name")
	manifesto := flag.String("manifesto", "", "Initial guild manifesto text")
	master := flag.String("master", "", "Address of the guild master (defaults to the deployer)")
	treasury := flag.String("treasury", "", "Address receiving all guild tributes")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing wallet path")
	case *nefPath == "":
		log.Fatal("missing NEF path")
	case *manifestPath == "":
		log.Fatal("missing manifest path")
	case *symbol == "":
		log.Fatal("missing guild symbol")
	case *name == "":
		log.Fatal("missing guild name")
	case *treasury == "":
		log.Fatal("missing treasury address")
	}

	err := run(*neoRPCEndpoint, *walletPath, *walletPassword, *nefPath, *manifestPath,
		*symbol, *name, *manifesto, *master, *treasury)
	if err != nil {
		log.Fatal(err)
	}
}

func run(endpoint, walletPath, password, nefPath, manifestPath, symbol, name, manifesto, master, treasury string) error {
	acc, err := deployerAccount(walletPath, password)
	if err != nil {
		return err
	}

	nefFile, err := readNEF(nefPath)
	if err != nil {
		return err
	}

	m, err := readManifest(manifestPath)
	if err != nil {
		return err
	}

	masterAcc := acc.ScriptHash()
	if master != "" {
		masterAcc, err = address.StringToUint160(master)
		if err != nil {
			return fmt.Errorf("decode master address: %w", err)
		}
	}

	treasuryAcc, err := address.StringToUint160(treasury)
	if err != nil {
		return fmt.Errorf("decode treasury address: %w", err)
	}

	b, err := dialBlockchain(endpoint)
	if err != nil {
		return err
	}

	defer b.close()

	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	contractAddress, err := deploy.Deploy(context.Background(), deploy.Prm{
		Logger:       l,
		Blockchain:   b.rpc,
		LocalAccount: acc,
		NEF:          nefFile,
		Manifest:     m,
		Symbol:       symbol,
		Name:         name,
		Manifesto:    manifesto,
		Master:       masterAcc,
		Treasury:     treasuryAcc,
	})
	if err != nil {
		return fmt.Errorf("deploy Guild contract: %w", err)
	}

	log.Printf("Guild contract is on chain at %s (%s)\n",
		contractAddress.StringLE(), address.Uint160ToString(contractAddress))

	return nil
}

func deployerAccount(walletPath, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	var acc *wallet.Account

	addr := w.GetChangeAddress()
	if !addr.Equals(util.Uint160{}) {
		acc = w.GetAccount(addr)
	}
	if acc == nil && len(w.Accounts) > 0 {
		acc = w.Accounts[0]
	}
	if acc == nil {
		return nil, fmt.Errorf("no account in wallet '%s'", walletPath)
	}

	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("unlock wallet account: %w", err)
	}

	return acc, nil
}

func readNEF(path string) (nef.File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nef.File{}, fmt.Errorf("read NEF file: %w", err)
	}

	f, err := nef.FileFromBytes(raw)
	if err != nil {
		return nef.File{}, fmt.Errorf("parse NEF file: %w", err)
	}

	return f, nil
}

func readManifest(path string) (manifest.Manifest, error) {
	var m manifest.Manifest

	raw, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest file: %w", err)
	}

	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("parse manifest file: %w", err)
	}

	return m, nil
}
