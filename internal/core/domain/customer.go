package domain

// Customer represents a bank customer who owns one or more accounts.
// The ledger engine never mutates customers; only the profile endpoints do.
type Customer struct {
	CustomerID int    `json:"customerID"` // Primary Key
	Name       string `json:"name"`
	TFN        string `json:"tfn"` // Tax file number, optional
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostCode   string `json:"postCode"`
	Mobile     string `json:"mobile"` // Format: 04XX XXX XXX
	AuditFields
}

// Credential holds a customer's login identity.
// The password hash is a bcrypt hash and never leaves the service layer.
type Credential struct {
	LoginID      string `json:"loginID"` // 8-digit login identifier
	CustomerID   int    `json:"customerID"`
	PasswordHash string `json:"-"`
}
