package model

import "time"

type TutorialStatus struct {
	Id   uint      `gorm:"primaryKey;autoIncrement"`
	Rut  string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Seen bool      `gorm:"default:false"`
	Date time.Time `gorm:"not null;index"`
}

func (TutorialStatus) TableName() string {
	return "tutorial_status"
}
