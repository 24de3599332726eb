package contract

import (
	"context"

	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
)

type MessageLogRepository interface {
	Create(ctx context.Context, log *entity.MessageLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MessageLog, error)
}
