package contract

import (
	"context"

	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
)

type TutorialStatusRepository interface {
	Create(ctx context.Context, status *entity.TutorialStatus) error
	Update(ctx context.Context, status *entity.TutorialStatus) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TutorialStatus, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorialStatus, error)
}
