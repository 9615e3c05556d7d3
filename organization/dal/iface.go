package dal

import (
	"context"

	"github.com/triggerkit/scheduled-webhooks/organization/domain"
)

//go:generate mockery --name Organizations --output ./mocks
type Organizations interface {
	GetOrganizations(ctx context.Context) ([]*domain.Organization, error)
	Get(ctx context.Context, orgID string) (*domain.Organization, error)
	UpdateUsage(ctx context.Context, orgID string, usage domain.Usage) error
}
