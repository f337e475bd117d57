package models

// Customer is the central domain entity of the gateway.
//
// ID is the relational surrogate key assigned by the database on insert and
// is never exposed over the API. Code is the public opaque identifier (UUID,
// generated by the database) used to address a customer in URLs. External is
// a caller-supplied deduplication key, unique across all customers and
// immutable after creation.
type Customer struct {
	ID       int64    `json:"-"`
	Code     string   `json:"code"`
	External string   `json:"external"`
	Name     string   `json:"name"`
	Document string   `json:"document"`
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
}

// CustomerInput carries the caller-supplied fields of a new customer.
// ID and Code are assigned by the store on insert.
type CustomerInput struct {
	External string   `json:"external"`
	Name     string   `json:"name"`
	Document string   `json:"document"`
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
}
