package models

// Usergroup represents the 'usergroups' table: the declared definition of a
// chat usergroup.
type Usergroup struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	Handle      string `gorm:"column:handle;uniqueIndex;size:80"`
	Description string `gorm:"column:description"`
	// Broadcast is stored as enum('0','1') in legacy schemas.
	Broadcast string `gorm:"column:broadcast;size:1;default:0"`
}

// TableName overrides the table name.
func (Usergroup) TableName() string {
	return "usergroups"
}

// UsergroupMember represents the 'usergroup_members' table.
type UsergroupMember struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Handle   string `gorm:"column:handle;index;size:80"`
	Username string `gorm:"column:username;size:80"`
}

// TableName overrides the table name.
func (UsergroupMember) TableName() string {
	return "usergroup_members"
}

// UsergroupChannel represents the 'usergroup_channels' table.
type UsergroupChannel struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	Handle  string `gorm:"column:handle;index;size:80"`
	Channel string `gorm:"column:channel;size:80"`
}

// TableName overrides the table name.
func (UsergroupChannel) TableName() string {
	return "usergroup_channels"
}

// Group is the normalized usergroup used for comparison between the
// database-declared state and the provider's live state.
type Group struct {
	// ProviderID is assigned by the provider and unknown on the declared
	// side. It is excluded from equality.
	ProviderID string `json:"provider_id,omitempty"`

	Handle      string   `json:"handle"`
	Description string   `json:"description"`
	Broadcast   bool     `json:"broadcast"`
	Members     []string `json:"members"`
	Channels    []string `json:"channels"`
}
