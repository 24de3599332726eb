package contract

import (
	"context"

	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
)

type EndUserRepository interface {
	Create(ctx context.Context, user *entity.EndUser) error
	Update(ctx context.Context, user *entity.EndUser) error
	Delete(ctx context.Context, rut string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EndUser, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EndUser, error)
}
