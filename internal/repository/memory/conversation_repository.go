package memory

import (
	"ducochat-be/pkg/bot"

	"github.com/patrickmn/go-cache"
)

// ConversationRepository keeps per-user conversation state in process
// memory. Entries never expire; a greeting or a restart resets them.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Get(userId string) (*bot.State, bool) {
	if x, found := r.cache.Get(userId); found {
		return x.(*bot.State), true
	}
	return nil, false
}

func (r *ConversationRepository) Set(userId string, state *bot.State) {
	r.cache.Set(userId, state, cache.NoExpiration)
}

func (r *ConversationRepository) Delete(userId string) {
	r.cache.Delete(userId)
}
