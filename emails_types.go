package mailrify

import (
	"time"

	"github.com/mailrify/mailrify-go/internal/api"
)

// SendEmailRequest is the body of POST /emails and one element of a batch.
type SendEmailRequest struct {
	To          []string   `json:"to"`
	From        string     `json:"from"`
	Subject     string     `json:"subject"`
	HTML        string     `json:"html,omitempty"`
	Text        string     `json:"text,omitempty"`
	CC          []string   `json:"cc,omitempty"`
	BCC         []string   `json:"bcc,omitempty"`
	ReplyTo     []string   `json:"replyTo,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

// Validate checks the request locally.
func (r SendEmailRequest) Validate() error {
	var v violations
	v.requireList("to", r.To)
	v.requireString("from", r.From)
	v.requireString("subject", r.Subject)
	return v.err()
}

// SendEmailResponse is returned by Send.
type SendEmailResponse struct {
	EmailID string `json:"emailId"`
}

func (SendEmailResponse) requiredKeys() []string {
	return []string{"emailId"}
}

func (r SendEmailResponse) missingFields() []string {
	if r.EmailID == "" {
		return []string{"emailId"}
	}
	return nil
}

// BatchEmailResponse is returned by BatchSend, one entry per input email in
// the same order.
type BatchEmailResponse struct {
	Data []SendEmailResponse `json:"data"`
}

func (BatchEmailResponse) requiredKeys() []string {
	return []string{"data"}
}

func (r BatchEmailResponse) missingFields() []string {
	var missing []string
	for _, d := range r.Data {
		if d.EmailID == "" {
			missing = append(missing, "data.emailId")
			break
		}
	}
	return missing
}

// UpdateScheduleRequest is the partial body of PATCH /emails/{id}. Only
// non-nil fields are sent.
type UpdateScheduleRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

// Validate checks the request locally.
func (r UpdateScheduleRequest) Validate() error {
	var v violations
	v.require(r.ScheduledAt != nil, "scheduledAt is required")
	return v.err()
}

// UpdateEmailResponse is returned by UpdateSchedule.
type UpdateEmailResponse struct {
	EmailID string `json:"emailId"`
}

func (UpdateEmailResponse) requiredKeys() []string {
	return []string{"emailId"}
}

func (r UpdateEmailResponse) missingFields() []string {
	if r.EmailID == "" {
		return []string{"emailId"}
	}
	return nil
}

// CancelScheduleResponse is returned by Cancel.
type CancelScheduleResponse struct {
	EmailID string `json:"emailId"`
}

func (CancelScheduleResponse) requiredKeys() []string {
	return []string{"emailId"}
}

func (r CancelScheduleResponse) missingFields() []string {
	if r.EmailID == "" {
		return []string{"emailId"}
	}
	return nil
}

// EmailEvent is one state transition in an email's history.
type EmailEvent struct {
	EmailID   string      `json:"emailId"`
	Status    EmailStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Email is the full record returned by GET /emails/{id}.
type Email struct {
	ID          string       `json:"id"`
	TeamID      int          `json:"teamId"`
	To          []string     `json:"to"`
	ReplyTo     []string     `json:"replyTo"`
	CC          []string     `json:"cc"`
	BCC         []string     `json:"bcc"`
	From        string       `json:"from"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Text        string       `json:"text"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	EmailEvents []EmailEvent `json:"emailEvents"`
}

func (Email) requiredKeys() []string {
	return []string{"id", "from", "subject"}
}

func (e Email) missingFields() []string {
	if e.ID == "" {
		return []string{"id"}
	}
	return nil
}

// EmailSummary is one row of ListEmailsResponse.
type EmailSummary struct {
	ID           string      `json:"id"`
	To           []string    `json:"to"`
	ReplyTo      []string    `json:"replyTo"`
	CC           []string    `json:"cc"`
	BCC          []string    `json:"bcc"`
	From         string      `json:"from"`
	Subject      string      `json:"subject"`
	HTML         string      `json:"html"`
	Text         string      `json:"text"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	LatestStatus EmailStatus `json:"latestStatus"`
	ScheduledAt  *time.Time  `json:"scheduledAt"`
	DomainID     int         `json:"domainId"`
}

// ListEmailsResponse is returned by GET /emails. Count is the total number of
// matching emails, not the length of Data.
type ListEmailsResponse struct {
	Data  []EmailSummary `json:"data"`
	Count int            `json:"count"`
}

func (ListEmailsResponse) requiredKeys() []string {
	return []string{"data", "count"}
}

func (r ListEmailsResponse) missingFields() []string {
	for _, e := range r.Data {
		if e.ID == "" {
			return []string{"data.id"}
		}
	}
	return nil
}

// ListEmailsParams filters GET /emails. Zero values are not sent.
type ListEmailsParams struct {
	Page         int
	Limit        int
	StartDate    time.Time
	EndDate      time.Time
	DomainID     []string // sent as one comma-separated value
	LatestStatus EmailStatus
}

func (p *ListEmailsParams) query() api.Query {
	if p == nil {
		return nil
	}
	return api.Query{
		"page":         p.Page,
		"limit":        p.Limit,
		"startDate":    p.StartDate,
		"endDate":      p.EndDate,
		"domainId":     p.DomainID,
		"latestStatus": p.LatestStatus,
	}
}
