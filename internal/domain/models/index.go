package models

// Index identifies a tracked index universe.
type Index string

const (
	IndexNifty     Index = "NIFTY"
	IndexBankNifty Index = "BANKNIFTY"
)

// Indexes lists all tracked indexes in reporting order.
func Indexes() []Index {
	return []Index{IndexNifty, IndexBankNifty}
}

func (i Index) String() string {
	return string(i)
}
