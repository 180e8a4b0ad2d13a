package aggregates

// TxOwnership names the party that opens the transaction around an
// aggregate write.
type TxOwnership string

const (
	TxOwnedByAggregate TxOwnership = "aggregate"
	TxOwnedByCaller    TxOwnership = "caller"
)

// Contract describes the write boundary of an aggregate. The data layer
// reads it before every write.
type Contract struct {
	Name        string
	TxOwnership TxOwnership
	// Invariants are the rules the aggregate guards; they are attached to
	// write spans.
	Invariants []string
}

type Aggregate interface {
	Contract() Contract
}

// RequiresAggregateOwnedTx reports whether writes must open their own
// transaction. An unset ownership counts as aggregate-owned.
func (c Contract) RequiresAggregateOwnedTx() bool {
	return c.TxOwnership == "" || c.TxOwnership == TxOwnedByAggregate
}
