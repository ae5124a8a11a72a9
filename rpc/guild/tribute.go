package guild

import (
	"github.com/holiman/uint256"
	"github.com/nspcc-dev/guild-contract/safemath"
)

// Tribute amounts mirrored from the contract, in Fixed8 GAS units.
const (
	// JoinTribute is the exact payment required to join the guild: 0.1 GAS.
	JoinTribute = 0_1000_0000
	// ProposalTribute is the exact payment required to submit a proposal:
	// 0.001 GAS.
	ProposalTribute = 0_0010_0000
)

// JoinTributeAmount returns JoinTribute as a 256-bit unsigned integer.
func JoinTributeAmount() *uint256.Int {
	return uint256.NewInt(JoinTribute)
}

// ProposalTributeAmount returns ProposalTribute as a 256-bit unsigned
// integer.
func ProposalTributeAmount() *uint256.Int {
	return uint256.NewInt(ProposalTribute)
}

// ExpectedTreasuryIncome returns the total tribute the treasury receives
// for the given number of joins and proposals. All arithmetic is checked,
// an out-of-width total surfaces as safemath.ErrOverflow.
func ExpectedTreasuryIncome(joins, proposals uint64) (*uint256.Int, error) {
	joinTotal, err := safemath.Mul(uint256.NewInt(joins), JoinTributeAmount())
	if err != nil {
		return nil, err
	}

	proposalTotal, err := safemath.Mul(uint256.NewInt(proposals), ProposalTributeAmount())
	if err != nil {
		return nil, err
	}

	return safemath.Add(joinTotal, proposalTotal)
}
