package mailrify

import (
	"context"
	"net/http"
	"strconv"
)

// DomainsService covers the /domains endpoints.
type DomainsService struct {
	transport transportFunc
}

// List returns every domain of the team. The API answers with a bare array.
func (s *DomainsService) List(ctx context.Context) ([]Domain, error) {
	return callList[Domain](ctx, s.transport, ResourceDomain, http.MethodGet, "/domains", nil)
}

// Create registers a new sending domain.
func (s *DomainsService) Create(ctx context.Context, req CreateDomainRequest) (*Domain, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return call[Domain](ctx, s.transport, ResourceDomain, http.MethodPost, "/domains", nil, req)
}

// Get retrieves one domain with its DNS records.
func (s *DomainsService) Get(ctx context.Context, domainID int) (*Domain, error) {
	if err := requireIntID("domainID", domainID); err != nil {
		return nil, err
	}
	return call[Domain](ctx, s.transport, ResourceDomain, http.MethodGet, domainPath(domainID), nil, nil)
}

// Verify asks the service to re-check the domain's DNS records.
func (s *DomainsService) Verify(ctx context.Context, domainID int) (*VerifyDomainResponse, error) {
	if err := requireIntID("domainID", domainID); err != nil {
		return nil, err
	}
	return call[VerifyDomainResponse](ctx, s.transport, ResourceDomain, http.MethodPut, domainPath(domainID)+"/verify", nil, nil)
}

// Delete removes a domain.
func (s *DomainsService) Delete(ctx context.Context, domainID int) (*DeleteDomainResponse, error) {
	if err := requireIntID("domainID", domainID); err != nil {
		return nil, err
	}
	return call[DeleteDomainResponse](ctx, s.transport, ResourceDomain, http.MethodDelete, domainPath(domainID), nil, nil)
}

func domainPath(domainID int) string {
	return "/domains/" + strconv.Itoa(domainID)
}
