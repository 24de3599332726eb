package specification

import "gorm.io/gorm"

// ActiveOnly keeps only questions visible to the bot
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByCategoryID filters questions of one category
type ByCategoryID struct {
	CategoryID uint
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}
