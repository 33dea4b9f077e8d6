// file: internals/features/home/message_templates/model/message_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MessageTemplateModel is a reusable notification body with {{placeholder}}
// slots. Defaults holds sample values so the admin preview can render
// without a live occurrence.
type MessageTemplateModel struct {
	MessageTemplateID       uuid.UUID `gorm:"column:message_template_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"message_template_id"`
	MessageTemplateTempleID uuid.UUID `gorm:"column:message_template_temple_id;type:uuid;not null;index" json:"message_template_temple_id"`

	MessageTemplateName    string `gorm:"column:message_template_name;type:varchar(120);not null" json:"message_template_name"`
	MessageTemplateSubject string `gorm:"column:message_template_subject;type:varchar(255)" json:"message_template_subject"`
	MessageTemplateBody    string `gorm:"column:message_template_body;type:text;not null" json:"message_template_body"`

	MessageTemplateDefaults datatypes.JSONMap `gorm:"column:message_template_defaults;type:jsonb" json:"message_template_defaults"`

	MessageTemplateCreatedBy *uuid.UUID     `gorm:"column:message_template_created_by;type:uuid" json:"message_template_created_by,omitempty"`
	MessageTemplateCreatedAt time.Time      `gorm:"column:message_template_created_at;type:timestamptz;not null;autoCreateTime" json:"message_template_created_at"`
	MessageTemplateUpdatedAt time.Time      `gorm:"column:message_template_updated_at;type:timestamptz;not null;autoUpdateTime" json:"message_template_updated_at"`
	MessageTemplateDeletedAt gorm.DeletedAt `gorm:"column:message_template_deleted_at;index" json:"message_template_deleted_at,omitempty"`
}

func (MessageTemplateModel) TableName() string { return "message_templates" }
