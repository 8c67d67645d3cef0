package mailrify

import "context"

// AsyncClient is the non-blocking Mailrify client. Every method starts the
// call on its own goroutine and returns a Future. It issues exactly the same
// requests as Client and shares its transport.
type AsyncClient struct {
	Emails    *AsyncEmailsService
	Domains   *AsyncDomainsService
	Campaigns *AsyncCampaignsService
	Contacts  *AsyncContactsService

	client *Client
}

// NewAsync creates an AsyncClient. Configuration follows New.
func NewAsync(apiKey string, opts ...Option) (*AsyncClient, error) {
	c, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return newAsyncClient(c), nil
}

func newAsyncClient(c *Client) *AsyncClient {
	return &AsyncClient{
		Emails:    &AsyncEmailsService{svc: c.Emails},
		Domains:   &AsyncDomainsService{svc: c.Domains},
		Campaigns: &AsyncCampaignsService{svc: c.Campaigns},
		Contacts:  &AsyncContactsService{svc: c.Contacts},
		client:    c,
	}
}

// Config returns the resolved settings the client was built with.
func (a *AsyncClient) Config() Config {
	return a.client.Config()
}

// Sync returns the blocking Client sharing this client's transport.
func (a *AsyncClient) Sync() *Client {
	return a.client
}

// Close releases pooled connections. Calls already in flight finish or fail
// on their own; later calls fail with ErrClientClosed.
func (a *AsyncClient) Close() error {
	return a.client.Close()
}

// AsyncEmailsService is the asynchronous form of EmailsService.
type AsyncEmailsService struct {
	svc *EmailsService
}

// Send is the asynchronous form of EmailsService.Send.
func (s *AsyncEmailsService) Send(ctx context.Context, req SendEmailRequest) *Future[*SendEmailResponse] {
	return goFuture(ctx, func(ctx context.Context) (*SendEmailResponse, error) {
		return s.svc.Send(ctx, req)
	})
}

// BatchSend is the asynchronous form of EmailsService.BatchSend.
func (s *AsyncEmailsService) BatchSend(ctx context.Context, reqs []SendEmailRequest) *Future[*BatchEmailResponse] {
	return goFuture(ctx, func(ctx context.Context) (*BatchEmailResponse, error) {
		return s.svc.BatchSend(ctx, reqs)
	})
}

// List is the asynchronous form of EmailsService.List.
func (s *AsyncEmailsService) List(ctx context.Context, params *ListEmailsParams) *Future[*ListEmailsResponse] {
	return goFuture(ctx, func(ctx context.Context) (*ListEmailsResponse, error) {
		return s.svc.List(ctx, params)
	})
}

// Get is the asynchronous form of EmailsService.Get.
func (s *AsyncEmailsService) Get(ctx context.Context, emailID string) *Future[*Email] {
	return goFuture(ctx, func(ctx context.Context) (*Email, error) {
		return s.svc.Get(ctx, emailID)
	})
}

// UpdateSchedule is the asynchronous form of EmailsService.UpdateSchedule.
func (s *AsyncEmailsService) UpdateSchedule(ctx context.Context, emailID string, req UpdateScheduleRequest) *Future[*UpdateEmailResponse] {
	return goFuture(ctx, func(ctx context.Context) (*UpdateEmailResponse, error) {
		return s.svc.UpdateSchedule(ctx, emailID, req)
	})
}

// Cancel is the asynchronous form of EmailsService.Cancel.
func (s *AsyncEmailsService) Cancel(ctx context.Context, emailID string) *Future[*CancelScheduleResponse] {
	return goFuture(ctx, func(ctx context.Context) (*CancelScheduleResponse, error) {
		return s.svc.Cancel(ctx, emailID)
	})
}

// AsyncDomainsService is the asynchronous form of DomainsService.
type AsyncDomainsService struct {
	svc *DomainsService
}

// List is the asynchronous form of DomainsService.List.
func (s *AsyncDomainsService) List(ctx context.Context) *Future[[]Domain] {
	return goFuture(ctx, s.svc.List)
}

// Create is the asynchronous form of DomainsService.Create.
func (s *AsyncDomainsService) Create(ctx context.Context, req CreateDomainRequest) *Future[*Domain] {
	return goFuture(ctx, func(ctx context.Context) (*Domain, error) {
		return s.svc.Create(ctx, req)
	})
}

// Get is the asynchronous form of DomainsService.Get.
func (s *AsyncDomainsService) Get(ctx context.Context, domainID int) *Future[*Domain] {
	return goFuture(ctx, func(ctx context.Context) (*Domain, error) {
		return s.svc.Get(ctx, domainID)
	})
}

// Verify is the asynchronous form of DomainsService.Verify.
func (s *AsyncDomainsService) Verify(ctx context.Context, domainID int) *Future[*VerifyDomainResponse] {
	return goFuture(ctx, func(ctx context.Context) (*VerifyDomainResponse, error) {
		return s.svc.Verify(ctx, domainID)
	})
}

// Delete is the asynchronous form of DomainsService.Delete.
func (s *AsyncDomainsService) Delete(ctx context.Context, domainID int) *Future[*DeleteDomainResponse] {
	return goFuture(ctx, func(ctx context.Context) (*DeleteDomainResponse, error) {
		return s.svc.Delete(ctx, domainID)
	})
}

// AsyncCampaignsService is the asynchronous form of CampaignsService.
type AsyncCampaignsService struct {
	svc *CampaignsService
}

// Create is the asynchronous form of CampaignsService.Create.
func (s *AsyncCampaignsService) Create(ctx context.Context, req CreateCampaignRequest) *Future[*Campaign] {
	return goFuture(ctx, func(ctx context.Context) (*Campaign, error) {
		return s.svc.Create(ctx, req)
	})
}

// Get is the asynchronous form of CampaignsService.Get.
func (s *AsyncCampaignsService) Get(ctx context.Context, campaignID string) *Future[*Campaign] {
	return goFuture(ctx, func(ctx context.Context) (*Campaign, error) {
		return s.svc.Get(ctx, campaignID)
	})
}

// Schedule is the asynchronous form of CampaignsService.Schedule.
func (s *AsyncCampaignsService) Schedule(ctx context.Context, campaignID string, req ScheduleCampaignRequest) *Future[*CampaignActionResponse] {
	return goFuture(ctx, func(ctx context.Context) (*CampaignActionResponse, error) {
		return s.svc.Schedule(ctx, campaignID, req)
	})
}

// Pause is the asynchronous form of CampaignsService.Pause.
func (s *AsyncCampaignsService) Pause(ctx context.Context, campaignID string) *Future[*CampaignActionResponse] {
	return goFuture(ctx, func(ctx context.Context) (*CampaignActionResponse, error) {
		return s.svc.Pause(ctx, campaignID)
	})
}

// Resume is the asynchronous form of CampaignsService.Resume.
func (s *AsyncCampaignsService) Resume(ctx context.Context, campaignID string) *Future[*CampaignActionResponse] {
	return goFuture(ctx, func(ctx context.Context) (*CampaignActionResponse, error) {
		return s.svc.Resume(ctx, campaignID)
	})
}

// AsyncContactsService is the asynchronous form of ContactsService.
type AsyncContactsService struct {
	svc *ContactsService
}

// List is the asynchronous form of ContactsService.List.
func (s *AsyncContactsService) List(ctx context.Context, contactBookID string, params *ListContactsParams) *Future[[]Contact] {
	return goFuture(ctx, func(ctx context.Context) ([]Contact, error) {
		return s.svc.List(ctx, contactBookID, params)
	})
}

// Create is the asynchronous form of ContactsService.Create.
func (s *AsyncContactsService) Create(ctx context.Context, contactBookID string, req CreateContactRequest) *Future[*ContactIDResponse] {
	return goFuture(ctx, func(ctx context.Context) (*ContactIDResponse, error) {
		return s.svc.Create(ctx, contactBookID, req)
	})
}

// Get is the asynchronous form of ContactsService.Get.
func (s *AsyncContactsService) Get(ctx context.Context, contactBookID, contactID string) *Future[*Contact] {
	return goFuture(ctx, func(ctx context.Context) (*Contact, error) {
		return s.svc.Get(ctx, contactBookID, contactID)
	})
}

// Upsert is the asynchronous form of ContactsService.Upsert.
func (s *AsyncContactsService) Upsert(ctx context.Context, contactBookID, contactID string, req UpsertContactRequest) *Future[*ContactIDResponse] {
	return goFuture(ctx, func(ctx context.Context) (*ContactIDResponse, error) {
		return s.svc.Upsert(ctx, contactBookID, contactID, req)
	})
}

// Update is the asynchronous form of ContactsService.Update.
func (s *AsyncContactsService) Update(ctx context.Context, contactBookID, contactID string, req UpdateContactRequest) *Future[*ContactIDResponse] {
	return goFuture(ctx, func(ctx context.Context) (*ContactIDResponse, error) {
		return s.svc.Update(ctx, contactBookID, contactID, req)
	})
}

// Delete is the asynchronous form of ContactsService.Delete.
func (s *AsyncContactsService) Delete(ctx context.Context, contactBookID, contactID string) *Future[*DeleteContactResponse] {
	return goFuture(ctx, func(ctx context.Context) (*DeleteContactResponse, error) {
		return s.svc.Delete(ctx, contactBookID, contactID)
	})
}
