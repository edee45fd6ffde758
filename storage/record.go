package storage

// Storage records are the flat persistence representation of the domain
// entities. Category, source and date stay raw strings here so that values
// written by an older or newer client survive a load/store cycle untouched;
// only the promotion to a domain entity resolves unknown values.

// Field names are the wire contract for both the local blobs and the remote
// documents. Renaming one requires a migration.

type ExpenseRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
}

func (r ExpenseRecord) Key() string { return r.ID }

type IncomeRecord struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Source string  `json:"source"`
	Note   string  `json:"note"`
}

func (r IncomeRecord) Key() string { return r.ID }

type UserRecord struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r UserRecord) Key() string { return r.ID }
