package usergroups

import (
	"context"
	"fmt"

	"state-reconciler/core/reconcile"
	"state-reconciler/core/utils"
	"state-reconciler/feature/usergroups/models"

	"gorm.io/gorm"
)

// Source loads usergroup state for reconciliation: the declared side from
// the database, the live side from the provider. Implements
// reconcile.Source.
type Source struct {
	db       *gorm.DB
	provider Provider
}

// NewSource creates a usergroups state source.
func NewSource(db *gorm.DB, provider Provider) *Source {
	return &Source{db: db, provider: provider}
}

// Name returns the integration name.
func (s *Source) Name() string {
	return "usergroups"
}

// CurrentState fetches the provider's live usergroups.
func (s *Source) CurrentState(ctx context.Context) (map[string]reconcile.Resource, error) {
	groups, err := s.provider.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider groups: %w", err)
	}

	state := make(map[string]reconcile.Resource, len(groups))
	for _, g := range groups {
		state[Key(g)] = g
	}
	return state, nil
}

// DesiredState builds the declared usergroups from the database tables.
func (s *Source) DesiredState(ctx context.Context) (map[string]reconcile.Resource, error) {
	var rows []models.Usergroup
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load usergroups: %w", err)
	}

	var memberRows []models.UsergroupMember
	if err := s.db.WithContext(ctx).Find(&memberRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load usergroup members: %w", err)
	}

	var channelRows []models.UsergroupChannel
	if err := s.db.WithContext(ctx).Find(&channelRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load usergroup channels: %w", err)
	}

	members := make(map[string][]string)
	for _, m := range memberRows {
		key := Key(models.Group{Handle: m.Handle})
		members[key] = append(members[key], m.Username)
	}
	channels := make(map[string][]string)
	for _, c := range channelRows {
		key := Key(models.Group{Handle: c.Handle})
		channels[key] = append(channels[key], c.Channel)
	}

	state := make(map[string]reconcile.Resource, len(rows))
	for _, row := range rows {
		group := models.Group{
			Handle:      row.Handle,
			Description: row.Description,
			Broadcast:   utils.ToBool(row.Broadcast),
			Members:     members[Key(models.Group{Handle: row.Handle})],
			Channels:    channels[Key(models.Group{Handle: row.Handle})],
		}
		state[Key(group)] = group
	}
	return state, nil
}

// Equal reports whether a live and a declared group are converged.
func (s *Source) Equal(current, desired reconcile.Resource) bool {
	cg, ok := current.(models.Group)
	if !ok {
		return false
	}
	dg, ok := desired.(models.Group)
	if !ok {
		return false
	}
	return GroupsEqual(cg, dg)
}
