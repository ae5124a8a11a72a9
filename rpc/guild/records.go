package guild

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ReputationRecord is one entry of the guild reputation table as returned
// by ListReputation.
type ReputationRecord struct {
	Account util.Uint160
	Score   *big.Int
}

// String implements fmt.Stringer, the account is base58-encoded.
func (r ReputationRecord) String() string {
	return base58.Encode(r.Account.BytesBE()) + ": " + r.Score.String()
}

// ReputationRecordFromStackItem parses a single reputation iterator item,
// a (key, value) pair produced by the contract storage iterator.
func ReputationRecordFromStackItem(item stackitem.Item) (ReputationRecord, error) {
	var rec ReputationRecord

	pair, ok := item.Value().([]stackitem.Item)
	if !ok || len(pair) != 2 {
		return rec, errors.New("not a key-value pair")
	}

	rawAccount, err := pair[0].TryBytes()
	if err != nil {
		return rec, fmt.Errorf("invalid account key: %w", err)
	}

	rec.Account, err = util.Uint160DecodeBytesBE(rawAccount)
	if err != nil {
		return rec, fmt.Errorf("invalid account key: %w", err)
	}

	rec.Score, err = pair[1].TryInteger()
	if err != nil {
		return rec, fmt.Errorf("invalid score: %w", err)
	}

	return rec, nil
}

// ReputationRecordsFromItems parses a slice of reputation iterator items,
// e.g. the result of ListReputationExpanded.
func ReputationRecordsFromItems(items []stackitem.Item) ([]ReputationRecord, error) {
	records := make([]ReputationRecord, 0, len(items))

	for i := range items {
		rec, err := ReputationRecordFromStackItem(items[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		records = append(records, rec)
	}

	return records, nil
}
