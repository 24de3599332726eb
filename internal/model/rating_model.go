package model

import "time"

type Rating struct {
	Id      uint      `gorm:"primaryKey;autoIncrement"`
	Rut     string    `gorm:"type:varchar(20);not null;index"`
	Score   int       `gorm:"not null"`
	Comment *string   `gorm:"type:text"`
	Date    time.Time `gorm:"not null;index"`
}

func (Rating) TableName() string {
	return "ratings"
}
