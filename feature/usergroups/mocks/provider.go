// Package mocks provides testify mocks for the usergroups provider.
package mocks

import (
	"context"

	"state-reconciler/feature/usergroups/models"

	"github.com/stretchr/testify/mock"
)

// Provider is a mock implementation of usergroups.Provider.
type Provider struct {
	mock.Mock
}

func (m *Provider) ListGroups(ctx context.Context) ([]models.Group, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]models.Group)
	return groups, args.Error(1)
}

func (m *Provider) CreateGroup(ctx context.Context, group models.Group) (string, error) {
	args := m.Called(ctx, group)
	return args.String(0), args.Error(1)
}

func (m *Provider) UpdateGroup(ctx context.Context, providerID string, group models.Group) error {
	args := m.Called(ctx, providerID, group)
	return args.Error(0)
}

func (m *Provider) DeleteGroup(ctx context.Context, providerID string) error {
	args := m.Called(ctx, providerID)
	return args.Error(0)
}
