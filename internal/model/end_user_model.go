package model

import "time"

type EndUser struct {
	Rut                string    `gorm:"primaryKey;type:varchar(20)"`
	InstitutionalEmail string    `gorm:"type:varchar(255);not null"`
	Gender             *string   `gorm:"type:varchar(20)"`
	FirstName          string    `gorm:"type:varchar(100);not null"`
	LastName           string    `gorm:"type:varchar(100);not null"`
	Phone              *string   `gorm:"type:varchar(30)"`
	ModalityId         uint      `gorm:"not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (EndUser) TableName() string {
	return "end_users"
}
