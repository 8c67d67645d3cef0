package mailrify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// EmailsService covers the /emails endpoints.
type EmailsService struct {
	transport transportFunc
}

// Send sends one email, or schedules it when ScheduledAt is set.
func (s *EmailsService) Send(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return call[SendEmailResponse](ctx, s.transport, ResourceEmail, http.MethodPost, "/emails", nil, req)
}

// BatchSend sends several emails in one request. The body is a JSON array.
func (s *EmailsService) BatchSend(ctx context.Context, reqs []SendEmailRequest) (*BatchEmailResponse, error) {
	if len(reqs) == 0 {
		return nil, &ValidationError{Errors: []string{"batch must contain at least one email"}}
	}
	var v violations
	for i, r := range reqs {
		if ve, ok := r.Validate().(*ValidationError); ok {
			for _, msg := range ve.Errors {
				v = append(v, fmt.Sprintf("[%d] %s", i, msg))
			}
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return call[BatchEmailResponse](ctx, s.transport, ResourceEmail, http.MethodPost, "/emails/batch", nil, reqs)
}

// List returns a page of emails and the total count. params may be nil.
func (s *EmailsService) List(ctx context.Context, params *ListEmailsParams) (*ListEmailsResponse, error) {
	return call[ListEmailsResponse](ctx, s.transport, ResourceEmail, http.MethodGet, "/emails", params.query(), nil)
}

// Get retrieves one email including its event history.
func (s *EmailsService) Get(ctx context.Context, emailID string) (*Email, error) {
	if err := requireID("emailID", emailID); err != nil {
		return nil, err
	}
	return call[Email](ctx, s.transport, ResourceEmail, http.MethodGet, emailPath(emailID), nil, nil)
}

// UpdateSchedule moves a scheduled email. Only the fields set in req are sent.
func (s *EmailsService) UpdateSchedule(ctx context.Context, emailID string, req UpdateScheduleRequest) (*UpdateEmailResponse, error) {
	if err := requireID("emailID", emailID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return call[UpdateEmailResponse](ctx, s.transport, ResourceEmail, http.MethodPatch, emailPath(emailID), nil, req)
}

// Cancel cancels a scheduled email.
func (s *EmailsService) Cancel(ctx context.Context, emailID string) (*CancelScheduleResponse, error) {
	if err := requireID("emailID", emailID); err != nil {
		return nil, err
	}
	return call[CancelScheduleResponse](ctx, s.transport, ResourceEmail, http.MethodPost, emailPath(emailID)+"/cancel", nil, nil)
}

func emailPath(emailID string) string {
	return fmt.Sprintf("/emails/%s", url.PathEscape(emailID))
}
