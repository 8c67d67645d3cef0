package mailrify

import "time"

// DNSRecord is one record the caller must publish for a domain.
type DNSRecord struct {
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Value       string       `json:"value"`
	TTL         string       `json:"ttl"`
	Priority    *string      `json:"priority"`
	Status      DomainStatus `json:"status"`
	Recommended bool         `json:"recommended"`
}

// Domain is a sending domain and its verification state.
type Domain struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	TeamID            int          `json:"teamId"`
	Status            DomainStatus `json:"status"`
	Region            string       `json:"region"`
	ClickTracking     bool         `json:"clickTracking"`
	OpenTracking      bool         `json:"openTracking"`
	PublicKey         string       `json:"publicKey"`
	DKIMStatus        *string      `json:"dkimStatus"`
	SPFDetails        *string      `json:"spfDetails"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	DMARCAdded        bool         `json:"dmarcAdded"`
	IsVerifying       bool         `json:"isVerifying"`
	ErrorMessage      *string      `json:"errorMessage"`
	Subdomain         *string      `json:"subdomain"`
	VerificationError *string      `json:"verificationError"`
	LastCheckedTime   *time.Time   `json:"lastCheckedTime"`
	DNSRecords        []DNSRecord  `json:"dnsRecords"`
}

func (Domain) requiredKeys() []string {
	return []string{"id", "name", "status"}
}

func (d Domain) missingFields() []string {
	var missing []string
	if d.ID == 0 {
		missing = append(missing, "id")
	}
	if d.Name == "" {
		missing = append(missing, "name")
	}
	return missing
}

// CreateDomainRequest is the body of POST /domains.
type CreateDomainRequest struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// Validate checks the request locally.
func (r CreateDomainRequest) Validate() error {
	var v violations
	v.requireString("name", r.Name)
	return v.err()
}

// VerifyDomainResponse is returned by Verify.
type VerifyDomainResponse struct {
	Message string `json:"message"`
}

func (VerifyDomainResponse) requiredKeys() []string {
	return []string{"message"}
}

// DeleteDomainResponse is returned by Delete.
type DeleteDomainResponse struct {
	ID      int    `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (DeleteDomainResponse) requiredKeys() []string {
	return []string{"id", "success", "message"}
}
