package mailrify

import "time"

// Campaign is a bulk send to a contact book, with its delivery counters.
type Campaign struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	From               string         `json:"from"`
	Subject            string         `json:"subject"`
	PreviewText        string         `json:"previewText"`
	ContactBookID      string         `json:"contactBookId"`
	HTML               string         `json:"html"`
	Content            string         `json:"content"`
	Status             CampaignStatus `json:"status"`
	ScheduledAt        *time.Time     `json:"scheduledAt"`
	BatchSize          int            `json:"batchSize"`
	BatchWindowMinutes int            `json:"batchWindowMinutes"`
	Total              int            `json:"total"`
	Sent               int            `json:"sent"`
	Delivered          int            `json:"delivered"`
	Opened             int            `json:"opened"`
	Clicked            int            `json:"clicked"`
	Unsubscribed       int            `json:"unsubscribed"`
	Bounced            int            `json:"bounced"`
	HardBounced        int            `json:"hardBounced"`
	Complained         int            `json:"complained"`
	ReplyTo            []string       `json:"replyTo"`
	CC                 []string       `json:"cc"`
	BCC                []string       `json:"bcc"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func (Campaign) requiredKeys() []string {
	return []string{"id", "name", "status"}
}

func (c Campaign) missingFields() []string {
	if c.ID == "" {
		return []string{"id"}
	}
	return nil
}

// CreateCampaignRequest is the body of POST /campaigns.
type CreateCampaignRequest struct {
	Name          string     `json:"name"`
	From          string     `json:"from"`
	Subject       string     `json:"subject"`
	ContactBookID string     `json:"contactBookId"`
	PreviewText   string     `json:"previewText,omitempty"`
	Content       string     `json:"content,omitempty"`
	HTML          string     `json:"html,omitempty"`
	ReplyTo       []string   `json:"replyTo,omitempty"`
	CC            []string   `json:"cc,omitempty"`
	BCC           []string   `json:"bcc,omitempty"`
	SendNow       bool       `json:"sendNow,omitempty"`
	ScheduledAt   *time.Time `json:"scheduledAt,omitempty"`
	BatchSize     int        `json:"batchSize,omitempty"`
}

// Validate checks the request locally.
func (r CreateCampaignRequest) Validate() error {
	var v violations
	v.requireString("name", r.Name)
	v.requireString("from", r.From)
	v.requireString("subject", r.Subject)
	v.requireString("contactBookId", r.ContactBookID)
	v.require(r.BatchSize >= 0, "batchSize must not be negative")
	return v.err()
}

// ScheduleCampaignRequest is the body of POST /campaigns/{id}/schedule.
// Only non-nil fields are sent.
type ScheduleCampaignRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	BatchSize   *int       `json:"batchSize,omitempty"`
}

// Validate checks the request locally.
func (r ScheduleCampaignRequest) Validate() error {
	var v violations
	v.require(r.BatchSize == nil || *r.BatchSize > 0, "batchSize must be positive")
	return v.err()
}

// CampaignActionResponse is returned by Schedule, Pause and Resume.
type CampaignActionResponse struct {
	Success bool `json:"success"`
}

func (CampaignActionResponse) requiredKeys() []string {
	return []string{"success"}
}
