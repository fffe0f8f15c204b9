package domain

// PartyKind is the role a counterparty plays for the property.
type PartyKind string

const (
	PartyOwner    PartyKind = "OWNER"
	PartyTenant   PartyKind = "TENANT"
	PartySupplier PartyKind = "SUPPLIER"
)

// Party is a counterparty (tercero) referenced by posting lines.
type Party struct {
	PartyID     string    `json:"partyID"`
	Kind        PartyKind `json:"kind"`
	PersonType  string    `json:"personType"` // natural or legal
	IDType      string    `json:"idType"`     // cedula, nit, pasaporte, ...
	IDNumber    string    `json:"idNumber"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Active      bool      `json:"active"`
	AuditFields
}
