package mailrify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ContactsService covers the /contactBooks/{bookId}/contacts endpoints.
type ContactsService struct {
	transport transportFunc
}

// List returns contacts of a book. Unlike Emails.List the API answers with a
// bare array and no total count. params may be nil.
func (s *ContactsService) List(ctx context.Context, contactBookID string, params *ListContactsParams) ([]Contact, error) {
	if err := requireID("contactBookID", contactBookID); err != nil {
		return nil, err
	}
	return callList[Contact](ctx, s.transport, ResourceContact, http.MethodGet, contactsPath(contactBookID), params.query())
}

// Create adds a contact to a book.
func (s *ContactsService) Create(ctx context.Context, contactBookID string, req CreateContactRequest) (*ContactIDResponse, error) {
	if err := requireID("contactBookID", contactBookID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return call[ContactIDResponse](ctx, s.transport, ResourceContact, http.MethodPost, contactsPath(contactBookID), nil, req)
}

// Get retrieves one contact.
func (s *ContactsService) Get(ctx context.Context, contactBookID, contactID string) (*Contact, error) {
	path, err := contactPath(contactBookID, contactID)
	if err != nil {
		return nil, err
	}
	return call[Contact](ctx, s.transport, ResourceContact, http.MethodGet, path, nil, nil)
}

// Upsert creates the contact or replaces it.
func (s *ContactsService) Upsert(ctx context.Context, contactBookID, contactID string, req UpsertContactRequest) (*ContactIDResponse, error) {
	path, err := contactPath(contactBookID, contactID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return call[ContactIDResponse](ctx, s.transport, ResourceContact, http.MethodPut, path, nil, req)
}

// Update changes only the fields set in req.
func (s *ContactsService) Update(ctx context.Context, contactBookID, contactID string, req UpdateContactRequest) (*ContactIDResponse, error) {
	path, err := contactPath(contactBookID, contactID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return call[ContactIDResponse](ctx, s.transport, ResourceContact, http.MethodPatch, path, nil, req)
}

// Delete removes a contact from a book.
func (s *ContactsService) Delete(ctx context.Context, contactBookID, contactID string) (*DeleteContactResponse, error) {
	path, err := contactPath(contactBookID, contactID)
	if err != nil {
		return nil, err
	}
	return call[DeleteContactResponse](ctx, s.transport, ResourceContact, http.MethodDelete, path, nil, nil)
}

func contactsPath(contactBookID string) string {
	return fmt.Sprintf("/contactBooks/%s/contacts", url.PathEscape(contactBookID))
}

func contactPath(contactBookID, contactID string) (string, error) {
	var v violations
	v.requireString("contactBookID", contactBookID)
	v.requireString("contactID", contactID)
	if err := v.err(); err != nil {
		return "", err
	}
	return contactsPath(contactBookID) + "/" + url.PathEscape(contactID), nil
}
