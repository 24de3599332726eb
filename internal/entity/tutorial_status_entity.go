package entity

import "time"

// TutorialStatus records the first time a student completed the mobile
// onboarding tutorial. One row per RUT; the insert date drives the
// usuarios-por-dia dashboard chart.
type TutorialStatus struct {
	Id   uint
	Rut  string
	Seen bool
	Date time.Time
}
