package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MessageLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	From       string         `gorm:"column:from_id;type:varchar(30);not null;index"`
	Text       string         `gorm:"type:text;not null"`
	RawPayload datatypes.JSON `gorm:"type:jsonb"`
	ReceivedAt time.Time      `gorm:"not null;index"`
}

func (MessageLog) TableName() string {
	return "message_logs"
}
