package domain

// Payee is a registered biller that bill payments can be scheduled against.
type Payee struct {
	PayeeID  int    `json:"payeeID"` // Primary Key
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	PostCode string `json:"postCode"`
	Phone    string `json:"phone"`
}
