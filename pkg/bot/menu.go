package bot

import (
	"fmt"
	"strings"

	"ducochat-be/internal/constant"
)

// Category is a menu entry backed by at least one active question.
type Category struct {
	Id   uint
	Name string
}

// Question is an active FAQ entry as shown inside a category.
type Question struct {
	Id     uint
	Text   string
	Answer string
}

// BuildMenu renders the main menu. Positions are 1-based and match what
// PositionFor parses back from the user's reply.
func BuildMenu(categories []Category) string {
	if len(categories) == 0 {
		return constant.MenuEmptyText
	}
	var b strings.Builder
	b.WriteString(constant.MenuHeader)
	for i, c := range categories {
		b.WriteString(fmt.Sprintf("%s %s\n", GlyphFor(i+1), c.Name))
	}
	b.WriteString(constant.MenuFooter)
	return b.String()
}

// BuildQuestionList renders the questions of one category.
func BuildQuestionList(categoryName string, questions []Question) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(constant.CategoryListHeader, categoryName))
	for i, q := range questions {
		b.WriteString(fmt.Sprintf("%s %s\n", GlyphFor(i+1), q.Text))
	}
	b.WriteString(constant.CategoryListFooter)
	return b.String()
}

// BuildAnswer renders a single question with its answer. The navigation
// hint is sent as a separate follow-up message.
func BuildAnswer(q Question) string {
	return fmt.Sprintf("*%s*\n\n✅ %s", q.Text, q.Answer)
}
