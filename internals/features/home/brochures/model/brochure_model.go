// file: internals/features/home/brochures/model/brochure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrochureModel stores festival flyers and event pamphlets shown on the
// home screen. Images are stored as webp under uploads/brochures.
type BrochureModel struct {
	BrochureID       uuid.UUID `gorm:"column:brochure_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"brochure_id"`
	BrochureTempleID uuid.UUID `gorm:"column:brochure_temple_id;type:uuid;not null;index" json:"brochure_temple_id"`

	BrochureTitle       string  `gorm:"column:brochure_title;type:varchar(255);not null" json:"brochure_title"`
	BrochureDescription string  `gorm:"column:brochure_description;type:text" json:"brochure_description"`
	BrochureImageURL    *string `gorm:"column:brochure_image_url;type:text" json:"brochure_image_url,omitempty"`

	BrochureEventDate *time.Time `gorm:"column:brochure_event_date;type:date" json:"brochure_event_date,omitempty"`
	BrochureIsActive  bool       `gorm:"column:brochure_is_active;not null;default:true" json:"brochure_is_active"`

	BrochureCreatedBy *uuid.UUID     `gorm:"column:brochure_created_by;type:uuid" json:"brochure_created_by,omitempty"`
	BrochureCreatedAt time.Time      `gorm:"column:brochure_created_at;type:timestamptz;not null;autoCreateTime" json:"brochure_created_at"`
	BrochureUpdatedAt time.Time      `gorm:"column:brochure_updated_at;type:timestamptz;not null;autoUpdateTime" json:"brochure_updated_at"`
	BrochureDeletedAt gorm.DeletedAt `gorm:"column:brochure_deleted_at;index" json:"brochure_deleted_at,omitempty"`
}

func (BrochureModel) TableName() string { return "brochures" }
