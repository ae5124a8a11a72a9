package guild

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpectedTreasuryIncome(t *testing.T) {
	total, err := ExpectedTreasuryIncome(0, 0)
	require.NoError(t, err)
	require.True(t, total.IsZero())

	total, err = ExpectedTreasuryIncome(1, 0)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(JoinTribute), total.ToBig())

	total, err = ExpectedTreasuryIncome(0, 1)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(ProposalTribute), total.ToBig())

	total, err = ExpectedTreasuryIncome(3, 7)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(3*JoinTribute+7*ProposalTribute), total.ToBig())
}

func TestTributeAmountsMatchConstants(t *testing.T) {
	require.Equal(t, big.NewInt(JoinTribute), JoinTributeAmount().ToBig())
	require.Equal(t, big.NewInt(ProposalTribute), ProposalTributeAmount().ToBig())

	// 0.1 and 0.001 GAS in Fixed8.
	require.EqualValues(t, 10_000_000, JoinTribute)
	require.EqualValues(t, 100_000, ProposalTribute)
}
