// file: internals/features/home/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID       uuid.UUID `gorm:"column:announcement_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"announcement_id"`
	AnnouncementTempleID uuid.UUID `gorm:"column:announcement_temple_id;type:uuid;not null;index" json:"announcement_temple_id"`

	AnnouncementTitle   string         `gorm:"column:announcement_title;type:varchar(255);not null" json:"announcement_title"`
	AnnouncementContent string         `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`
	AnnouncementTags    pq.StringArray `gorm:"column:announcement_tags;type:text[]" json:"announcement_tags"`

	AnnouncementIsPinned    bool       `gorm:"column:announcement_is_pinned;not null;default:false" json:"announcement_is_pinned"`
	AnnouncementPublishedAt *time.Time `gorm:"column:announcement_published_at;type:timestamptz" json:"announcement_published_at,omitempty"`
	AnnouncementExpiresAt   *time.Time `gorm:"column:announcement_expires_at;type:timestamptz" json:"announcement_expires_at,omitempty"`

	AnnouncementCreatedBy *uuid.UUID     `gorm:"column:announcement_created_by;type:uuid" json:"announcement_created_by,omitempty"`
	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;type:timestamptz;not null;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"column:announcement_updated_at;type:timestamptz;not null;autoUpdateTime" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"announcement_deleted_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
