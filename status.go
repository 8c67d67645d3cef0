package mailrify

import "fmt"

// EmailStatus is the delivery state of an email or one of its events.
type EmailStatus string

// Email statuses reported by the API.
const (
	EmailStatusScheduled        EmailStatus = "SCHEDULED"
	EmailStatusQueued           EmailStatus = "QUEUED"
	EmailStatusSent             EmailStatus = "SENT"
	EmailStatusDeliveryDelayed  EmailStatus = "DELIVERY_DELAYED"
	EmailStatusBounced          EmailStatus = "BOUNCED"
	EmailStatusRejected         EmailStatus = "REJECTED"
	EmailStatusRenderingFailure EmailStatus = "RENDERING_FAILURE"
	EmailStatusDelivered        EmailStatus = "DELIVERED"
	EmailStatusOpened           EmailStatus = "OPENED"
	EmailStatusClicked          EmailStatus = "CLICKED"
	EmailStatusComplained       EmailStatus = "COMPLAINED"
	EmailStatusFailed           EmailStatus = "FAILED"
	EmailStatusCancelled        EmailStatus = "CANCELLED"
	EmailStatusSuppressed       EmailStatus = "SUPPRESSED"
)

var emailStatuses = set(
	EmailStatusScheduled, EmailStatusQueued, EmailStatusSent,
	EmailStatusDeliveryDelayed, EmailStatusBounced, EmailStatusRejected,
	EmailStatusRenderingFailure, EmailStatusDelivered, EmailStatusOpened,
	EmailStatusClicked, EmailStatusComplained, EmailStatusFailed,
	EmailStatusCancelled, EmailStatusSuppressed,
)

// Valid reports whether s is a known email status.
func (s EmailStatus) Valid() bool {
	_, ok := emailStatuses[s]
	return ok
}

// UnmarshalText rejects unknown statuses.
func (s *EmailStatus) UnmarshalText(b []byte) error {
	return parseEnum(s, "email status", b, emailStatuses)
}

// DomainStatus is the verification state of a domain or DNS record.
type DomainStatus string

// Domain statuses reported by the API.
const (
	DomainStatusNotStarted       DomainStatus = "NOT_STARTED"
	DomainStatusPending          DomainStatus = "PENDING"
	DomainStatusSuccess          DomainStatus = "SUCCESS"
	DomainStatusFailed           DomainStatus = "FAILED"
	DomainStatusTemporaryFailure DomainStatus = "TEMPORARY_FAILURE"
)

var domainStatuses = set(
	DomainStatusNotStarted, DomainStatusPending, DomainStatusSuccess,
	DomainStatusFailed, DomainStatusTemporaryFailure,
)

// Valid reports whether s is a known domain status.
func (s DomainStatus) Valid() bool {
	_, ok := domainStatuses[s]
	return ok
}

// UnmarshalText rejects unknown statuses.
func (s *DomainStatus) UnmarshalText(b []byte) error {
	return parseEnum(s, "domain status", b, domainStatuses)
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

// Campaign statuses reported by the API.
const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusScheduled CampaignStatus = "SCHEDULED"
	CampaignStatusRunning   CampaignStatus = "RUNNING"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusSent      CampaignStatus = "SENT"
)

var campaignStatuses = set(
	CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusRunning,
	CampaignStatusPaused, CampaignStatusSent,
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	_, ok := campaignStatuses[s]
	return ok
}

// UnmarshalText rejects unknown statuses.
func (s *CampaignStatus) UnmarshalText(b []byte) error {
	return parseEnum(s, "campaign status", b, campaignStatuses)
}

func set[T comparable](values ...T) map[T]struct{} {
	m := make(map[T]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func parseEnum[T ~string](dst *T, kind string, b []byte, known map[T]struct{}) error {
	v := T(b)
	if _, ok := known[v]; !ok {
		return fmt.Errorf("unknown %s %q", kind, string(b))
	}
	*dst = v
	return nil
}
