package entity

import "time"

type Rating struct {
	Id      uint
	Rut     string
	Score   int
	Comment *string
	Date    time.Time
}
