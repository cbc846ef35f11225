package models

import "time"

// Artifact represents the 'artifacts' table: an object that is declared to
// exist in the storage bucket.
type Artifact struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	ObjectKey string    `gorm:"column:object_key;uniqueIndex;size:255"`
	Checksum  string    `gorm:"column:checksum;size:64"`
	SizeBytes int64     `gorm:"column:size_bytes"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (Artifact) TableName() string {
	return "artifacts"
}
