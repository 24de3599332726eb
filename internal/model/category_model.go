package model

type Category struct {
	Id   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:name_category;type:varchar(255);not null"`
}

func (Category) TableName() string {
	return "categories"
}
