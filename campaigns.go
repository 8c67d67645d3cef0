package mailrify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CampaignsService covers the /campaigns endpoints.
type CampaignsService struct {
	transport transportFunc
}

// Create creates a campaign in DRAFT state unless SendNow or ScheduledAt is set.
func (s *CampaignsService) Create(ctx context.Context, req CreateCampaignRequest) (*Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return call[Campaign](ctx, s.transport, ResourceCampaign, http.MethodPost, "/campaigns", nil, req)
}

// Get retrieves one campaign with its counters.
func (s *CampaignsService) Get(ctx context.Context, campaignID string) (*Campaign, error) {
	if err := requireID("campaignID", campaignID); err != nil {
		return nil, err
	}
	return call[Campaign](ctx, s.transport, ResourceCampaign, http.MethodGet, campaignPath(campaignID), nil, nil)
}

// Schedule schedules a campaign for sending.
func (s *CampaignsService) Schedule(ctx context.Context, campaignID string, req ScheduleCampaignRequest) (*CampaignActionResponse, error) {
	if err := requireID("campaignID", campaignID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return call[CampaignActionResponse](ctx, s.transport, ResourceCampaign, http.MethodPost, campaignPath(campaignID)+"/schedule", nil, req)
}

// Pause pauses a running campaign.
func (s *CampaignsService) Pause(ctx context.Context, campaignID string) (*CampaignActionResponse, error) {
	return s.action(ctx, campaignID, "pause")
}

// Resume resumes a paused campaign.
func (s *CampaignsService) Resume(ctx context.Context, campaignID string) (*CampaignActionResponse, error) {
	return s.action(ctx, campaignID, "resume")
}

func (s *CampaignsService) action(ctx context.Context, campaignID, action string) (*CampaignActionResponse, error) {
	if err := requireID("campaignID", campaignID); err != nil {
		return nil, err
	}
	return call[CampaignActionResponse](ctx, s.transport, ResourceCampaign, http.MethodPost, campaignPath(campaignID)+"/"+action, nil, nil)
}

func campaignPath(campaignID string) string {
	return fmt.Sprintf("/campaigns/%s", url.PathEscape(campaignID))
}
