package model

type Modality struct {
	Id   uint   `gorm:"column:id_modality;primaryKey;autoIncrement"`
	Type string `gorm:"type:varchar(100);not null"`
}

func (Modality) TableName() string {
	return "modalities"
}
