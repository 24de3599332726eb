package model

type Question struct {
	Id         uint   `gorm:"primaryKey;autoIncrement"`
	CategoryId uint   `gorm:"not null;index"`
	Question   string `gorm:"type:text;not null"`
	Answer     string `gorm:"type:text;not null"`
	IsActive   bool   `gorm:"default:true;index"`
}

func (Question) TableName() string {
	return "questions"
}
