package entity

type Category struct {
	Id   uint
	Name string
}
