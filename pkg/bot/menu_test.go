package bot

import (
	"strings"
	"testing"

	"ducochat-be/internal/constant"
)

func TestBuildMenu(t *testing.T) {
	categories := []Category{
		{Id: 4, Name: "Matrícula"},
		{Id: 7, Name: "Becas"},
	}
	menu := BuildMenu(categories)

	if !strings.Contains(menu, "① Matrícula") {
		t.Errorf("menu missing first option: %q", menu)
	}
	if !strings.Contains(menu, "② Becas") {
		t.Errorf("menu missing second option: %q", menu)
	}
	if !strings.HasSuffix(menu, constant.MenuFooter) {
		t.Errorf("menu missing footer: %q", menu)
	}
}

func TestBuildMenuEmpty(t *testing.T) {
	if got := BuildMenu(nil); got != constant.MenuEmptyText {
		t.Errorf("BuildMenu(nil) = %q, want empty menu text", got)
	}
}

func TestBuildQuestionList(t *testing.T) {
	questions := []Question{
		{Id: 1, Text: "¿Cómo me matriculo?", Answer: "En línea."},
		{Id: 2, Text: "¿Cuándo parten las clases?", Answer: "En marzo."},
	}
	list := BuildQuestionList("Matrícula", questions)

	if !strings.Contains(list, "📚 *Matrícula*") {
		t.Errorf("list missing category header: %q", list)
	}
	if !strings.Contains(list, "① ¿Cómo me matriculo?") {
		t.Errorf("list missing first question: %q", list)
	}
	if !strings.Contains(list, constant.CategoryListFooter) {
		t.Errorf("list missing footer: %q", list)
	}
}

func TestBuildAnswer(t *testing.T) {
	q := Question{Id: 1, Text: "¿Cómo me matriculo?", Answer: "En línea."}
	answer := BuildAnswer(q)

	if !strings.Contains(answer, "*¿Cómo me matriculo?*") {
		t.Errorf("answer missing bold question: %q", answer)
	}
	if !strings.Contains(answer, "En línea.") {
		t.Errorf("answer missing body: %q", answer)
	}
	if strings.Contains(answer, constant.AnswerFooterText) {
		t.Errorf("navigation hint should not be embedded in the answer: %q", answer)
	}
}
