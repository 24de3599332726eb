package contract

import (
	"context"

	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
)

type ModalityRepository interface {
	Create(ctx context.Context, modality *entity.Modality) error
	Update(ctx context.Context, modality *entity.Modality) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Modality, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Modality, error)
}
