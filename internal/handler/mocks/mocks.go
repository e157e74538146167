// Package mocks provides testify mocks for the handler and API dependency
// interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/givebridge/sharepage/internal/model"
)

// ShareLinkStore mocks handler.ShareLinkStore.
type ShareLinkStore struct {
	mock.Mock
}

func (m *ShareLinkStore) Resolve(ctx context.Context, shareID string) (*model.ShareLink, error) {
	args := m.Called(ctx, shareID)
	link, _ := args.Get(0).(*model.ShareLink)
	return link, args.Error(1)
}

func (m *ShareLinkStore) Mint(ctx context.Context, targetType model.TargetType, targetID string) (*model.ShareLink, error) {
	args := m.Called(ctx, targetType, targetID)
	link, _ := args.Get(0).(*model.ShareLink)
	return link, args.Error(1)
}

// DesignStore mocks handler.DesignStore.
type DesignStore struct {
	mock.Mock
}

func (m *DesignStore) Load(ctx context.Context, shareID string) (model.TemplateDesign, error) {
	args := m.Called(ctx, shareID)
	return args.Get(0).(model.TemplateDesign), args.Error(1)
}

func (m *DesignStore) Save(ctx context.Context, shareID string, d model.TemplateDesign) error {
	args := m.Called(ctx, shareID, d)
	return args.Error(0)
}

func (m *DesignStore) DefaultDesign() model.TemplateDesign {
	args := m.Called()
	return args.Get(0).(model.TemplateDesign)
}

// PlatformClient mocks handler.PlatformClient.
type PlatformClient struct {
	mock.Mock
}

func (m *PlatformClient) PageData(ctx context.Context, link *model.ShareLink) (*model.ProfileUser, []model.CampaignSummary, error) {
	args := m.Called(ctx, link)
	user, _ := args.Get(0).(*model.ProfileUser)
	campaigns, _ := args.Get(1).([]model.CampaignSummary)
	return user, campaigns, args.Error(2)
}

// TemplateRenderer mocks handler.TemplateRenderer.
type TemplateRenderer struct {
	mock.Mock
}

func (m *TemplateRenderer) Render(w io.Writer, name string, data any) error {
	args := m.Called(w, name, data)
	return args.Error(0)
}
