package guild

import (
	"github.com/nspcc-dev/guild-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	// ErrUnauthorized is thrown when the caller does not hold the role
	// required by the method.
	ErrUnauthorized = "unauthorized"
	// ErrInvalidPayment is thrown when the attached tribute differs from
	// the exact amount required by the operation.
	ErrInvalidPayment = "invalid tribute amount"
	// ErrInvalidAccount is thrown when a zero or malformed account is
	// passed to a role transfer.
	ErrInvalidAccount = "invalid account"
	// ErrInvalidPurpose is thrown when a GAS payment carries no or unknown
	// tribute purpose.
	ErrInvalidPurpose = "unknown tribute purpose"
)

const (
	// JoinTribute is the exact GAS amount (Fixed8) that must accompany a
	// join payment: 0.1 GAS.
	JoinTribute = 0_1000_0000
	// ProposalTribute is the exact GAS amount (Fixed8) that must accompany
	// a proposal payment: 0.001 GAS.
	ProposalTribute = 0_0010_0000

	// initialReputation is assigned to every account on join.
	initialReputation = 10
)

const (
	symbolKey       = "symbol"
	nameKey         = "name"
	manifestoKey    = "manifesto"
	mandateKey      = "mandate"
	proposalKey     = "proposal"
	masterKey       = "master"
	memberKey       = "member"
	treasuryKey     = "treasury"
	totalTributeKey = "totalTribute"

	reputationPrefix = 'r'
)

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		symbol    string
		name      string
		manifesto string
		master    interop.Hash160
		treasury  interop.Hash160
	})

	validateAccount(args.master)
	validateAccount(args.treasury)

	storage.Put(ctx, symbolKey, args.symbol)
	storage.Put(ctx, nameKey, args.name)
	storage.Put(ctx, manifestoKey, args.manifesto)
	storage.Put(ctx, masterKey, args.master)
	storage.Put(ctx, treasuryKey, args.treasury)

	runtime.Log("guild contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update", contract.All,
		script, manifest, common.AppendVersion(data))
	runtime.Log("guild contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Tribute-paid operations are invoked by transferring GAS to the contract
// with the operation encoded in the data argument: ["join"] to claim
// membership, ["proposal", text] to submit a proposal. The tribute amount
// must match the operation exactly, any mismatch aborts the whole transfer.
func OnNEP17Payment(from interop.Hash160, amount int, data interface{}) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, interop.Hash160(gas.Hash)) {
		panic("only GAS can be accepted as tribute")
	}

	if data == nil {
		panic(ErrInvalidPurpose)
	}

	ctx := storage.GetContext()
	args := data.([]interface{})

	switch args[0].(string) {
	case "join":
		join(ctx, from, amount)
	case "proposal":
		addProposal(ctx, from, amount, args[1].(string))
	default:
		panic(ErrInvalidPurpose)
	}
}

// join claims the single member slot for the payer. The slot is overwritten
// unconditionally, a previous member is displaced but keeps its reputation
// entry.
func join(ctx storage.Context, from interop.Hash160, amount int) {
	if amount != JoinTribute {
		panic(ErrInvalidPayment)
	}

	prev := common.GetHash160(ctx, memberKey)

	storage.Put(ctx, memberKey, from)
	storage.Put(ctx, reputationKey(from), initialReputation)

	runtime.Notify("MembershipChanged", accountOrEmpty(prev), from)

	forwardTribute(ctx, amount)
}

// addProposal overwrites the proposal text. Only the current member can
// submit proposals.
func addProposal(ctx storage.Context, from interop.Hash160, amount int, text string) {
	member := common.GetHash160(ctx, memberKey)
	if member == nil || !common.BytesEqual(from, member) {
		panic(ErrUnauthorized)
	}

	if amount != ProposalTribute {
		panic(ErrInvalidPayment)
	}

	prev := common.GetString(ctx, proposalKey)
	storage.Put(ctx, proposalKey, text)

	runtime.Notify("ProposalChanged", prev, text)

	forwardTribute(ctx, amount)
}

// AddMandate overwrites the mandate text. Can be invoked only by the guild
// master.
func AddMandate(text string) {
	ctx := storage.GetContext()
	checkMasterWitness(ctx)

	prev := common.GetString(ctx, mandateKey)
	storage.Put(ctx, mandateKey, text)

	runtime.Notify("MandateChanged", prev, text)
}

// UpdateManifesto overwrites the manifesto text. Can be invoked only by the
// guild master.
func UpdateManifesto(text string) {
	ctx := storage.GetContext()
	checkMasterWitness(ctx)

	prev := common.GetString(ctx, manifestoKey)
	storage.Put(ctx, manifestoKey, text)

	runtime.Notify("ManifestoChanged", prev, text)
}

// RenounceMasterRole removes the master role from the guild permanently.
// Can be invoked only by the guild master. No method can re-establish the
// role afterwards.
func RenounceMasterRole() {
	ctx := storage.GetContext()
	master := checkMasterWitness(ctx)

	storage.Delete(ctx, masterKey)

	runtime.Notify("MasterChanged", master, interop.Hash160([]byte{}))
}

// TransferMasterRole hands the master role over to another account. Can be
// invoked only by the guild master.
func TransferMasterRole(account interop.Hash160) {
	ctx := storage.GetContext()
	master := checkMasterWitness(ctx)

	validateAccount(account)

	storage.Put(ctx, masterKey, account)

	runtime.Notify("MasterChanged", master, account)
}

// TransferMemberAccess hands the member slot over to another account without
// a new tribute. Can be invoked only by the current member. The receiving
// account gets no reputation entry, only join assigns reputation.
func TransferMemberAccess(account interop.Hash160) {
	ctx := storage.GetContext()
	member := checkMemberWitness(ctx)

	validateAccount(account)

	storage.Put(ctx, memberKey, account)

	runtime.Notify("MembershipChanged", member, account)
}

// GetMandate returns the mandate text. Can be invoked only by the current
// member.
func GetMandate() string {
	ctx := storage.GetReadOnlyContext()
	checkMemberWitness(ctx)

	return common.GetString(ctx, mandateKey)
}

// Symbol returns the guild ticker symbol.
func Symbol() string {
	ctx := storage.GetReadOnlyContext()
	return common.GetString(ctx, symbolKey)
}

// Name returns the guild name.
func Name() string {
	ctx := storage.GetReadOnlyContext()
	return common.GetString(ctx, nameKey)
}

// Manifesto returns the public manifesto text.
func Manifesto() string {
	ctx := storage.GetReadOnlyContext()
	return common.GetString(ctx, manifestoKey)
}

// Proposal returns the last submitted proposal text.
func Proposal() string {
	ctx := storage.GetReadOnlyContext()
	return common.GetString(ctx, proposalKey)
}

// Master returns the current master account or null after the role was
// renounced.
func Master() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return common.GetHash160(ctx, masterKey)
}

// Member returns the current member account or null if nobody has joined.
func Member() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return common.GetHash160(ctx, memberKey)
}

// Treasury returns the account all tributes are forwarded to.
func Treasury() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return common.GetHash160(ctx, treasuryKey)
}

// TotalTribute returns the total amount of GAS (Fixed8) forwarded to the
// treasury so far.
func TotalTribute() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, totalTributeKey)
}

// IsGuildMember returns true if the account holds the member slot.
func IsGuildMember(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	member := common.GetHash160(ctx, memberKey)

	return member != nil && common.BytesEqual(account, member)
}

// IsGuildMaster returns true if the account holds the master role.
func IsGuildMaster(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	master := common.GetHash160(ctx, masterKey)

	return master != nil && common.BytesEqual(account, master)
}

// ReputationOf returns the reputation score of the account, zero if it has
// never joined.
func ReputationOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, reputationKey(account))
}

// ListReputation returns an iterator over all reputation table entries. Keys
// are account script hashes, values are scores.
func ListReputation() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{reputationPrefix}, storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// checkMasterWitness panics unless the transaction is witnessed by the
// current master. Returns the master account.
func checkMasterWitness(ctx storage.Context) interop.Hash160 {
	master := common.GetHash160(ctx, masterKey)
	if master == nil || !runtime.CheckWitness(master) {
		panic(ErrUnauthorized)
	}

	return master
}

// checkMemberWitness panics unless the transaction is witnessed by the
// current member. Returns the member account.
func checkMemberWitness(ctx storage.Context) interop.Hash160 {
	member := common.GetHash160(ctx, memberKey)
	if member == nil || !runtime.CheckWitness(member) {
		panic(ErrUnauthorized)
	}

	return member
}

// forwardTribute sends the received tribute to the treasury. It is the last
// step of every paid operation, after all contract state is consistent.
func forwardTribute(ctx storage.Context, amount int) {
	total := common.GetInt(ctx, totalTributeKey)
	storage.Put(ctx, totalTributeKey, total+amount)

	treasury := common.GetHash160(ctx, treasuryKey)

	transferred := gas.Transfer(runtime.GetExecutingScriptHash(), treasury, amount, nil)
	if !transferred {
		panic("failed to forward tribute, aborting")
	}
}

func validateAccount(account interop.Hash160) {
	if len(account) != interop.Hash160Len {
		panic(ErrInvalidAccount)
	}

	zero := true
	for i := 0; i < len(account); i++ {
		if account[i] != 0 {
			zero = false
			break
		}
	}

	if zero {
		panic(ErrInvalidAccount)
	}
}

func reputationKey(account interop.Hash160) []byte {
	return append([]byte{reputationPrefix}, account...)
}

// accountOrEmpty normalizes an absent role slot to an empty value for
// notifications.
func accountOrEmpty(account interop.Hash160) interop.Hash160 {
	if account == nil {
		return interop.Hash160([]byte{})
	}

	return account
}
