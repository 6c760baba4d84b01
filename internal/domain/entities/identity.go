package entities

// Identity provider webhook event types
const (
	IdentityEventUserCreated = "user.created"
)

// IdentityEvent is an inbound identity provider webhook payload
type IdentityEvent struct {
	Type string       `json:"type"`
	Data IdentityUser `json:"data"`
}

type IdentityUser struct {
	ID                    string                 `json:"id"`
	FirstName             *string                `json:"first_name"`
	LastName              *string                `json:"last_name"`
	PrimaryEmailAddressID string                 `json:"primary_email_address_id"`
	EmailAddresses        []IdentityEmailAddress `json:"email_addresses"`
	PhoneNumbers          []IdentityPhoneNumber  `json:"phone_numbers"`
}

type IdentityEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type IdentityPhoneNumber struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}
