package implementation

import (
	"context"
	"errors"

	"ducochat-be/internal/entity"
	"ducochat-be/internal/mapper"
	"ducochat-be/internal/model"
	"ducochat-be/internal/repository/contract"
	"ducochat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EndUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EndUserMapper
}

func NewEndUserRepository(db *gorm.DB) contract.EndUserRepository {
	return &EndUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewEndUserMapper(),
	}
}

func (r *EndUserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EndUserRepositoryImpl) Create(ctx context.Context, user *entity.EndUser) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *EndUserRepositoryImpl) Update(ctx context.Context, user *entity.EndUser) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *EndUserRepositoryImpl) Delete(ctx context.Context, rut string) error {
	return r.db.WithContext(ctx).Where("rut = ?", rut).Delete(&model.EndUser{}).Error
}

func (r *EndUserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EndUser, error) {
	var m model.EndUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EndUserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EndUser, error) {
	var models []*model.EndUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
