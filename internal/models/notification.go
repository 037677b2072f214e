package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	NotificationTypeApplicationSubmitted = "application_submitted"
	NotificationTypeApplicationReceived  = "application_received"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "application_submitted", "application_received"
	Title   string `gorm:"not null"`
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"job_id": "...", "application_id": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
