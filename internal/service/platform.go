// Package service wraps the donation platform's backend REST API.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/givebridge/sharepage/internal/config"
	"github.com/givebridge/sharepage/internal/model"
)

// ErrNotFound is returned when the backend does not know the requested
// profile or campaign.
var ErrNotFound = errors.New("platform resource not found")

// PlatformService fetches profile and campaign data from the donation
// platform backend.
type PlatformService struct {
	baseURL string
	client  *http.Client
}

// PlatformOption is a functional option for configuring a PlatformService.
type PlatformOption func(*PlatformService)

// WithHTTPClient sets a custom HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) PlatformOption {
	return func(s *PlatformService) {
		s.client = client
	}
}

// NewPlatformService creates a platform client for the given base URL.
// Returns error if baseURL is empty.
func NewPlatformService(baseURL string, opts ...PlatformOption) (*PlatformService, error) {
	if baseURL == "" {
		return nil, errors.New("platform API URL is required")
	}

	s := &PlatformService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// profileSegment maps a share link target type to its API path segment.
func profileSegment(t model.TargetType) (string, error) {
	switch t {
	case model.TargetNGOProfile:
		return "ngos", nil
	case model.TargetCompanyProfile:
		return "companies", nil
	default:
		return "", fmt.Errorf("no profile endpoint for target type %q", t)
	}
}

// GetProfile fetches the account and organization profile behind a target.
func (s *PlatformService) GetProfile(ctx context.Context, targetType model.TargetType, targetID string) (*model.ProfileUser, error) {
	seg, err := profileSegment(targetType)
	if err != nil {
		return nil, err
	}

	var user model.ProfileUser
	path := fmt.Sprintf("/api/%s/%s", seg, url.PathEscape(targetID))
	if err := s.get(ctx, path, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetCampaigns fetches the target's active campaigns in display order.
func (s *PlatformService) GetCampaigns(ctx context.Context, targetType model.TargetType, targetID string, limit int) ([]model.CampaignSummary, error) {
	seg, err := profileSegment(targetType)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = config.DefaultCampaignLimit
	}

	var campaigns []model.CampaignSummary
	path := fmt.Sprintf("/api/%s/%s/campaigns?status=active&limit=%d", seg, url.PathEscape(targetID), limit)
	if err := s.get(ctx, path, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// campaignDetail is the backend payload for a single campaign: the campaign
// summary plus its organizer's account.
type campaignDetail struct {
	Campaign  model.CampaignSummary `json:"campaign"`
	Organizer model.ProfileUser     `json:"organizer"`
}

// GetCampaign fetches one campaign and its organizer.
func (s *PlatformService) GetCampaign(ctx context.Context, campaignID string) (*model.CampaignSummary, *model.ProfileUser, error) {
	var detail campaignDetail
	path := fmt.Sprintf("/api/campaigns/%s", url.PathEscape(campaignID))
	if err := s.get(ctx, path, &detail); err != nil {
		return nil, nil, err
	}
	return &detail.Campaign, &detail.Organizer, nil
}

// PageData fetches everything one share page render needs. Profile targets
// fetch the profile and its campaign list in parallel; campaign targets
// fetch the single campaign with its organizer, and the campaign list
// contains just that campaign.
func (s *PlatformService) PageData(ctx context.Context, link *model.ShareLink) (*model.ProfileUser, []model.CampaignSummary, error) {
	if link == nil {
		return nil, nil, errors.New("share link is required")
	}

	if link.TargetType == model.TargetCampaign {
		campaign, organizer, err := s.GetCampaign(ctx, link.TargetID)
		if err != nil {
			return nil, nil, err
		}
		return organizer, []model.CampaignSummary{*campaign}, nil
	}

	var (
		user      *model.ProfileUser
		campaigns []model.CampaignSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.GetProfile(gctx, link.TargetType, link.TargetID)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		c, err := s.GetCampaigns(gctx, link.TargetType, link.TargetID, config.DefaultCampaignLimit)
		if err != nil {
			return err
		}
		campaigns = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return user, campaigns, nil
}

func (s *PlatformService) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("platform request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("GET %s: %w", path, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
