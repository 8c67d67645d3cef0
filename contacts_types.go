package mailrify

import (
	"time"

	"github.com/mailrify/mailrify-go/internal/api"
)

// Contact is one entry of a contact book.
type Contact struct {
	ID            string            `json:"id"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Email         string            `json:"email"`
	Subscribed    bool              `json:"subscribed"`
	Properties    map[string]string `json:"properties"`
	ContactBookID string            `json:"contactBookId"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func (Contact) requiredKeys() []string {
	return []string{"id", "email"}
}

func (c Contact) missingFields() []string {
	if c.ID == "" {
		return []string{"id"}
	}
	return nil
}

// ListContactsParams filters GET /contactBooks/{bookId}/contacts. Emails and
// IDs are each sent as one comma-separated value; zero values are not sent.
type ListContactsParams struct {
	Emails []string
	IDs    []string
	Page   int
	Limit  int
}

func (p *ListContactsParams) query() api.Query {
	if p == nil {
		return nil
	}
	return api.Query{
		"emails": p.Emails,
		"ids":    p.IDs,
		"page":   p.Page,
		"limit":  p.Limit,
	}
}

// CreateContactRequest is the body of POST /contactBooks/{bookId}/contacts.
type CreateContactRequest struct {
	Email      string            `json:"email"`
	FirstName  string            `json:"firstName,omitempty"`
	LastName   string            `json:"lastName,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Subscribed *bool             `json:"subscribed,omitempty"`
}

// Validate checks the request locally.
func (r CreateContactRequest) Validate() error {
	var v violations
	v.requireString("email", r.Email)
	return v.err()
}

// UpsertContactRequest is the body of PUT /contactBooks/{bookId}/contacts/{id}.
type UpsertContactRequest struct {
	Email      string            `json:"email"`
	FirstName  string            `json:"firstName,omitempty"`
	LastName   string            `json:"lastName,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Subscribed *bool             `json:"subscribed,omitempty"`
}

// Validate checks the request locally.
func (r UpsertContactRequest) Validate() error {
	var v violations
	v.requireString("email", r.Email)
	return v.err()
}

// UpdateContactRequest is the partial body of PATCH
// /contactBooks/{bookId}/contacts/{id}. Nil fields are left unchanged.
type UpdateContactRequest struct {
	Email      *string           `json:"email,omitempty"`
	FirstName  *string           `json:"firstName,omitempty"`
	LastName   *string           `json:"lastName,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Subscribed *bool             `json:"subscribed,omitempty"`
}

// Validate checks the request locally.
func (r UpdateContactRequest) Validate() error {
	var v violations
	v.require(r.Email == nil || *r.Email != "", "email must not be empty when set")
	return v.err()
}

// ContactIDResponse is returned by Create, Upsert and Update.
type ContactIDResponse struct {
	ContactID string `json:"contactId"`
}

func (ContactIDResponse) requiredKeys() []string {
	return []string{"contactId"}
}

func (r ContactIDResponse) missingFields() []string {
	if r.ContactID == "" {
		return []string{"contactId"}
	}
	return nil
}

// DeleteContactResponse is returned by Delete.
type DeleteContactResponse struct {
	Success bool `json:"success"`
}

func (DeleteContactResponse) requiredKeys() []string {
	return []string{"success"}
}
