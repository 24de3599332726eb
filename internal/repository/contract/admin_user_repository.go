package contract

import (
	"context"

	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
)

type AdminUserRepository interface {
	Create(ctx context.Context, admin *entity.AdminUser) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error)
}
