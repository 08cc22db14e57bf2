package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ResourceLog is an audit row written for each generated resource or
// activity recommendation. Logging is best-effort; generation never fails
// because a row could not be written.
type ResourceLog struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RequestType     string         `gorm:"not null;column:request_type" json:"request_type"`
	AETTarget       string         `gorm:"column:aet_target" json:"aet_target"`
	StudentAge      int            `gorm:"column:student_age" json:"student_age"`
	AbilityLevel    string         `gorm:"column:ability_level" json:"ability_level"`
	FormatType      string         `gorm:"column:format_type" json:"format_type"`
	PredictionLabel *int           `gorm:"column:prediction_label" json:"prediction_label"`
	ActivityType    string         `gorm:"column:activity_type" json:"activity_type"`
	ModelAvailable  bool           `gorm:"column:model_available" json:"model_available"`
	Metadata        datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ResourceLog) TableName() string {
	return "resource_log"
}
