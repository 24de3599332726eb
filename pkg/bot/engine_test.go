package bot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ducochat-be/internal/constant"
)

type fakeData struct {
	categories []Category
	questions  map[uint][]Question
	failList   bool
}

func (f *fakeData) ListMenuCategories(ctx context.Context) ([]Category, error) {
	if f.failList {
		return nil, errors.New("db down")
	}
	return f.categories, nil
}

func (f *fakeData) ListCategoryQuestions(ctx context.Context, categoryId uint) ([]Question, error) {
	return f.questions[categoryId], nil
}

type fakeSender struct {
	sent []string
}

func (f *fakeSender) SendText(ctx context.Context, to string, body string) error {
	f.sent = append(f.sent, body)
	return nil
}

func (f *fakeSender) last(t *testing.T) string {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatal("no message was sent")
	}
	return f.sent[len(f.sent)-1]
}

type fakeStates struct {
	m map[string]*State
}

func newFakeStates() *fakeStates {
	return &fakeStates{m: make(map[string]*State)}
}

func (f *fakeStates) Get(userId string) (*State, bool) {
	s, ok := f.m[userId]
	return s, ok
}

func (f *fakeStates) Set(userId string, state *State) {
	f.m[userId] = state
}

func (f *fakeStates) Delete(userId string) {
	delete(f.m, userId)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestEngine(data *fakeData) (*Engine, *fakeSender, *fakeStates) {
	sender := &fakeSender{}
	states := newFakeStates()
	return NewEngine(data, sender, states, nopLogger{}), sender, states
}

func faqData() *fakeData {
	return &fakeData{
		categories: []Category{
			{Id: 4, Name: "Matrícula"},
			{Id: 7, Name: "Becas"},
		},
		questions: map[uint][]Question{
			4: {
				{Id: 1, Text: "¿Cómo me matriculo?", Answer: "En línea."},
				{Id: 2, Text: "¿Cuándo parten las clases?", Answer: "En marzo."},
			},
			7: {},
		},
	}
}

func TestGreetingShowsMenu(t *testing.T) {
	for _, greeting := range []string{"hola", "MENU", "  Inicio ", "hola, necesito ayuda", "qué es duco?"} {
		engine, sender, _ := newTestEngine(faqData())
		if err := engine.OnMessage(context.Background(), "56911111111", greeting); err != nil {
			t.Fatalf("OnMessage(%q) returned error: %v", greeting, err)
		}
		if !strings.Contains(sender.last(t), "① Matrícula") {
			t.Errorf("greeting %q did not produce the menu: %q", greeting, sender.last(t))
		}
	}
}

func TestOnGreetingResetsStateAndShowsMenu(t *testing.T) {
	engine, sender, states := newTestEngine(faqData())
	states.Set("56911111111", InCategoryState(4, "Matrícula"))

	if err := engine.OnGreeting(context.Background(), "56911111111"); err != nil {
		t.Fatal(err)
	}
	if _, ok := states.Get("56911111111"); ok {
		t.Error("state should be cleared by OnGreeting")
	}
	if !strings.Contains(sender.last(t), "① Matrícula") {
		t.Errorf("expected the menu, got %q", sender.last(t))
	}
}

func TestIsGreeting(t *testing.T) {
	for _, text := range []string{"hola", "MENU", "  Inicio ", "hola, necesito ayuda", "qué es duco?"} {
		if !IsGreeting(text) {
			t.Errorf("IsGreeting(%q) = false, want true", text)
		}
	}
	for _, text := range []string{"1", "0", "+3", "gracias"} {
		if IsGreeting(text) {
			t.Errorf("IsGreeting(%q) = true, want false", text)
		}
	}
}

func TestGreetingResetsState(t *testing.T) {
	engine, sender, states := newTestEngine(faqData())
	states.Set("56911111111", InCategoryState(4, "Matrícula"))

	if err := engine.OnMessage(context.Background(), "56911111111", "menu"); err != nil {
		t.Fatal(err)
	}
	if _, ok := states.Get("56911111111"); ok {
		t.Error("state should be cleared after a greeting")
	}
	if !strings.Contains(sender.last(t), constant.MenuFooter) {
		t.Errorf("expected the menu, got %q", sender.last(t))
	}
}

func TestCategorySelectionListsQuestions(t *testing.T) {
	engine, sender, states := newTestEngine(faqData())

	if err := engine.OnMessage(context.Background(), "56911111111", "1"); err != nil {
		t.Fatal(err)
	}
	reply := sender.last(t)
	if !strings.Contains(reply, "📚 *Matrícula*") || !strings.Contains(reply, "① ¿Cómo me matriculo?") {
		t.Errorf("expected question list, got %q", reply)
	}
	state, ok := states.Get("56911111111")
	if !ok || state.Kind != StateInCategory || state.CategoryId != 4 {
		t.Errorf("expected state in category 4, got %+v", state)
	}
}

func TestQuestionSelectionSendsAnswer(t *testing.T) {
	engine, sender, states := newTestEngine(faqData())
	states.Set("56911111111", InCategoryState(4, "Matrícula"))

	if err := engine.OnMessage(context.Background(), "56911111111", "2"); err != nil {
		t.Fatal(err)
	}
	// The answer and the navigation hint go out as two messages.
	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d: %v", len(sender.sent), sender.sent)
	}
	if !strings.Contains(sender.sent[0], "*¿Cuándo parten las clases?*") || !strings.Contains(sender.sent[0], "En marzo.") {
		t.Errorf("expected answer, got %q", sender.sent[0])
	}
	if sender.sent[1] != constant.AnswerFooterText {
		t.Errorf("expected navigation hint, got %q", sender.sent[1])
	}
	// The user stays in the category with the answered offset recorded.
	state, ok := states.Get("56911111111")
	if !ok || state.CategoryId != 4 {
		t.Fatalf("state should remain in category 4, got %+v", state)
	}
	if state.LastIndex == nil || *state.LastIndex != 1 {
		t.Errorf("expected last index 1, got %+v", state.LastIndex)
	}
}

func TestGlyphAndDigitAreInterchangeable(t *testing.T) {
	for _, input := range []string{"1", "①"} {
		engine, sender, states := newTestEngine(faqData())
		if err := engine.OnMessage(context.Background(), "56911111111", input); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(sender.last(t), "📚 *Matrícula*") {
			t.Errorf("input %q should select category 1, got %q", input, sender.last(t))
		}
		if state, ok := states.Get("56911111111"); !ok || state.CategoryId != 4 {
			t.Errorf("input %q should leave user in category 4, got %+v", input, state)
		}
	}
}

func TestInvalidCategoryNumber(t *testing.T) {
	// "0" is below the range and "9" above it; both are selections, so
	// both get the invalid-option reply rather than the free-text fallback.
	for _, input := range []string{"0", "9"} {
		engine, sender, _ := newTestEngine(faqData())

		if err := engine.OnMessage(context.Background(), "56911111111", input); err != nil {
			t.Fatal(err)
		}
		if sender.last(t) != constant.InvalidCategoryText {
			t.Errorf("input %q: expected invalid category reply, got %q", input, sender.last(t))
		}
	}
}

func TestInvalidQuestionNumber(t *testing.T) {
	for _, input := range []string{"0", "5"} {
		engine, sender, states := newTestEngine(faqData())
		states.Set("56911111111", InCategoryState(4, "Matrícula"))

		if err := engine.OnMessage(context.Background(), "56911111111", input); err != nil {
			t.Fatal(err)
		}
		if sender.last(t) != constant.QuestionNotFoundText {
			t.Errorf("input %q: expected question not found reply, got %q", input, sender.last(t))
		}
	}
}

func TestSignedNumberIsFreeText(t *testing.T) {
	engine, sender, _ := newTestEngine(faqData())

	if err := engine.OnMessage(context.Background(), "56911111111", "+3"); err != nil {
		t.Fatal(err)
	}
	if sender.last(t) != constant.FallbackText {
		t.Errorf("expected fallback reply, got %q", sender.last(t))
	}
}

func TestEmptyCategory(t *testing.T) {
	engine, sender, states := newTestEngine(faqData())

	if err := engine.OnMessage(context.Background(), "56911111111", "2"); err != nil {
		t.Fatal(err)
	}
	if sender.last(t) != constant.EmptyCategoryText {
		t.Errorf("expected empty category reply, got %q", sender.last(t))
	}
	if _, ok := states.Get("56911111111"); ok {
		t.Error("empty category should not change the stored state")
	}
}

func TestFallbackOnFreeText(t *testing.T) {
	engine, sender, _ := newTestEngine(faqData())

	if err := engine.OnMessage(context.Background(), "56911111111", "necesito un certificado"); err != nil {
		t.Fatal(err)
	}
	if sender.last(t) != constant.FallbackText {
		t.Errorf("expected fallback reply, got %q", sender.last(t))
	}
}

func TestMenuErrorWhenDataUnavailable(t *testing.T) {
	data := faqData()
	data.failList = true
	engine, sender, _ := newTestEngine(data)

	if err := engine.OnMessage(context.Background(), "56911111111", "hola"); err != nil {
		t.Fatal(err)
	}
	if sender.last(t) != constant.MenuErrorText {
		t.Errorf("expected menu error reply, got %q", sender.last(t))
	}
}

func TestUsersDoNotShareState(t *testing.T) {
	engine, sender, _ := newTestEngine(faqData())

	if err := engine.OnMessage(context.Background(), "56911111111", "1"); err != nil {
		t.Fatal(err)
	}
	if err := engine.OnMessage(context.Background(), "56922222222", "1"); err != nil {
		t.Fatal(err)
	}
	// Second user starts idle, so "1" selects a category, not a question.
	if !strings.Contains(sender.last(t), "📚 *Matrícula*") {
		t.Errorf("second user should get the question list, got %q", sender.last(t))
	}
}
