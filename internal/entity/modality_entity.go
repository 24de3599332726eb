package entity

type Modality struct {
	Id   uint
	Type string
}
