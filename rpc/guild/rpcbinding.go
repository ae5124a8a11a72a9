// Package guild contains RPC wrappers for Guild contract.
package guild

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
	gas   *nep17.Token
}

// NewReader creates an instance of ContractReader using provided contract
// hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and
// the given Actor. Tribute payments (Join, AddProposal) are issued as
// native GAS transfers to the contract.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash, gas.New(actor)}
}

// Symbol invokes `symbol` method of contract.
func (c *ContractReader) Symbol() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "symbol"))
}

// Name invokes `name` method of contract.
func (c *ContractReader) Name() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "name"))
}

// Manifesto invokes `manifesto` method of contract.
func (c *ContractReader) Manifesto() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "manifesto"))
}

// Proposal invokes `proposal` method of contract.
func (c *ContractReader) Proposal() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "proposal"))
}

// Master invokes `master` method of contract. An error is returned after
// the role was renounced (the contract returns null).
func (c *ContractReader) Master() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "master"))
}

// Member invokes `member` method of contract. An error is returned while
// nobody has joined (the contract returns null).
func (c *ContractReader) Member() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "member"))
}

// Treasury invokes `treasury` method of contract.
func (c *ContractReader) Treasury() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "treasury"))
}

// TotalTribute invokes `totalTribute` method of contract.
func (c *ContractReader) TotalTribute() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalTribute"))
}

// IsGuildMember invokes `isGuildMember` method of contract.
func (c *ContractReader) IsGuildMember(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isGuildMember", account))
}

// IsGuildMaster invokes `isGuildMaster` method of contract.
func (c *ContractReader) IsGuildMaster(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isGuildMaster", account))
}

// ReputationOf invokes `reputationOf` method of contract.
func (c *ContractReader) ReputationOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reputationOf", account))
}

// GetMandate invokes `getMandate` method of contract. The method is
// witness-gated, so the current member must be among the invocation
// signers.
func (c *ContractReader) GetMandate() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "getMandate"))
}

// ListReputation invokes `listReputation` method of contract.
func (c *ContractReader) ListReputation() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listReputation"))
}

// ListReputationExpanded is similar to ListReputation (uses the same
// contract method), but can be useful if the server used doesn't support
// sessions and doesn't expand iterators. It creates a script that will get
// the specified number of result items from the iterator right in the VM
// and return them to you. It's only limited by VM stack and GAS available
// for RPC invocations.
func (c *ContractReader) ListReputationExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listReputation", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Join claims the guild member slot for the from account by transferring
// the exact join tribute in GAS to the contract. The transaction is signed
// and immediately sent to the network. The values returned are its hash,
// ValidUntilBlock value and error if any.
func (c *Contract) Join(from util.Uint160) (util.Uint256, uint32, error) {
	return c.gas.Transfer(from, c.hash, big.NewInt(JoinTribute), []any{"join"})
}

// AddProposal submits a proposal text on behalf of the from account by
// transferring the exact proposal tribute in GAS to the contract. The
// transaction is signed and immediately sent to the network. The values
// returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddProposal(from util.Uint160, text string) (util.Uint256, uint32, error) {
	return c.gas.Transfer(from, c.hash, big.NewInt(ProposalTribute), []any{"proposal", text})
}

// AddMandate creates a transaction invoking `addMandate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddMandate(text string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addMandate", text)
}

// AddMandateTransaction creates a transaction invoking `addMandate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddMandateTransaction(text string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addMandate", text)
}

// AddMandateUnsigned creates a transaction invoking `addMandate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddMandateUnsigned(text string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addMandate", nil, text)
}

// UpdateManifesto creates a transaction invoking `updateManifesto` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateManifesto(text string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateManifesto", text)
}

// UpdateManifestoTransaction creates a transaction invoking `updateManifesto` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateManifestoTransaction(text string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateManifesto", text)
}

// UpdateManifestoUnsigned creates a transaction invoking `updateManifesto` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateManifestoUnsigned(text string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateManifesto", nil, text)
}

// RenounceMasterRole creates a transaction invoking `renounceMasterRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RenounceMasterRole() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renounceMasterRole")
}

// RenounceMasterRoleTransaction creates a transaction invoking `renounceMasterRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenounceMasterRoleTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renounceMasterRole")
}

// RenounceMasterRoleUnsigned creates a transaction invoking `renounceMasterRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenounceMasterRoleUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renounceMasterRole", nil)
}

// TransferMasterRole creates a transaction invoking `transferMasterRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferMasterRole(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferMasterRole", account)
}

// TransferMasterRoleTransaction creates a transaction invoking `transferMasterRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferMasterRoleTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferMasterRole", account)
}

// TransferMasterRoleUnsigned creates a transaction invoking `transferMasterRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferMasterRoleUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferMasterRole", nil, account)
}

// TransferMemberAccess creates a transaction invoking `transferMemberAccess` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferMemberAccess(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferMemberAccess", account)
}

// TransferMemberAccessTransaction creates a transaction invoking `transferMemberAccess` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferMemberAccessTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferMemberAccess", account)
}

// TransferMemberAccessUnsigned creates a transaction invoking `transferMemberAccess` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferMemberAccessUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferMemberAccess", nil, account)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}
