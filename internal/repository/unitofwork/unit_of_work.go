package unitofwork

import (
	"context"

	"ducochat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CategoryRepository() contract.CategoryRepository
	QuestionRepository() contract.QuestionRepository
	EndUserRepository() contract.EndUserRepository
	ModalityRepository() contract.ModalityRepository
	TutorialStatusRepository() contract.TutorialStatusRepository
	RatingRepository() contract.RatingRepository
	AdminUserRepository() contract.AdminUserRepository
	MessageLogRepository() contract.MessageLogRepository
}
