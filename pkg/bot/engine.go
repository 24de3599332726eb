package bot

import (
	"context"
	"strings"
	"sync"

	"ducochat-be/internal/constant"
	"ducochat-be/internal/pkg/logger"
)

// DataAccess is the read side the engine needs. Implementations query the
// FAQ tables; only active questions and non-empty categories are returned.
type DataAccess interface {
	ListMenuCategories(ctx context.Context) ([]Category, error)
	ListCategoryQuestions(ctx context.Context, categoryId uint) ([]Question, error)
}

// Sender delivers a text reply to a user. Implementations talk to the
// WhatsApp Cloud API.
type Sender interface {
	SendText(ctx context.Context, to string, body string) error
}

// StateStore holds the per-user conversation state.
type StateStore interface {
	Get(userId string) (*State, bool)
	Set(userId string, state *State)
	Delete(userId string)
}

// Engine drives the FAQ conversation. Messages from the same user are
// processed one at a time; different users never block each other.
type Engine struct {
	data   DataAccess
	sender Sender
	states StateStore
	logger logger.ILogger

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewEngine(data DataAccess, sender Sender, states StateStore, log logger.ILogger) *Engine {
	return &Engine{
		data:      data,
		sender:    sender,
		states:    states,
		logger:    log,
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (e *Engine) lockFor(userId string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.userLocks[userId]
	if !ok {
		l = &sync.Mutex{}
		e.userLocks[userId] = l
	}
	return l
}

// OnGreeting resets the user to the main menu, as if they had just said
// hello.
func (e *Engine) OnGreeting(ctx context.Context, from string) error {
	l := e.lockFor(from)
	l.Lock()
	defer l.Unlock()
	return e.showMenu(ctx, from)
}

// OnMessage routes one inbound text. The reply (menu, question list,
// answer, or fallback) is pushed through the Sender.
func (e *Engine) OnMessage(ctx context.Context, from string, text string) error {
	l := e.lockFor(from)
	l.Lock()
	defer l.Unlock()

	if IsGreeting(text) {
		return e.showMenu(ctx, from)
	}

	if pos, ok := PositionFor(text); ok {
		state, found := e.states.Get(from)
		if found && state.Kind == StateInCategory {
			return e.answerQuestion(ctx, from, state, pos)
		}
		return e.enterCategory(ctx, from, pos)
	}

	e.logger.Debug("bot", "unrecognized message, sending fallback", map[string]interface{}{
		"from": from,
	})
	return e.sender.SendText(ctx, from, constant.FallbackText)
}

func (e *Engine) showMenu(ctx context.Context, from string) error {
	e.states.Delete(from)
	categories, err := e.data.ListMenuCategories(ctx)
	if err != nil {
		e.logger.Error("bot", "failed to load menu categories", map[string]interface{}{
			"error": err.Error(),
		})
		return e.sender.SendText(ctx, from, constant.MenuErrorText)
	}
	return e.sender.SendText(ctx, from, BuildMenu(categories))
}

func (e *Engine) enterCategory(ctx context.Context, from string, pos int) error {
	categories, err := e.data.ListMenuCategories(ctx)
	if err != nil {
		e.logger.Error("bot", "failed to load menu categories", map[string]interface{}{
			"error": err.Error(),
		})
		return e.sender.SendText(ctx, from, constant.MenuErrorText)
	}
	if pos < 1 || pos > len(categories) {
		return e.sender.SendText(ctx, from, constant.InvalidCategoryText)
	}
	category := categories[pos-1]

	questions, err := e.data.ListCategoryQuestions(ctx, category.Id)
	if err != nil {
		e.logger.Error("bot", "failed to load category questions", map[string]interface{}{
			"category_id": category.Id,
			"error":       err.Error(),
		})
		return e.sender.SendText(ctx, from, constant.MenuErrorText)
	}
	if len(questions) == 0 {
		return e.sender.SendText(ctx, from, constant.EmptyCategoryText)
	}

	e.states.Set(from, InCategoryState(category.Id, category.Name))
	return e.sender.SendText(ctx, from, BuildQuestionList(category.Name, questions))
}

func (e *Engine) answerQuestion(ctx context.Context, from string, state *State, pos int) error {
	questions, err := e.data.ListCategoryQuestions(ctx, state.CategoryId)
	if err != nil {
		e.logger.Error("bot", "failed to load category questions", map[string]interface{}{
			"category_id": state.CategoryId,
			"error":       err.Error(),
		})
		return e.sender.SendText(ctx, from, constant.MenuErrorText)
	}
	if pos < 1 || pos > len(questions) {
		return e.sender.SendText(ctx, from, constant.QuestionNotFoundText)
	}

	e.states.Set(from, state.WithIndex(pos-1))
	if err := e.sender.SendText(ctx, from, BuildAnswer(questions[pos-1])); err != nil {
		return err
	}
	return e.sender.SendText(ctx, from, constant.AnswerFooterText)
}

// IsGreeting reports whether a message resets the conversation: an exact
// greeting keyword, or the brand name appearing anywhere in the text.
// Dispatchers use it to route greetings to OnGreeting.
func IsGreeting(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, kw := range constant.GreetingKeywords {
		if normalized == kw {
			return true
		}
	}
	return strings.Contains(normalized, constant.BrandKeyword)
}
