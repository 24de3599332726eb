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

type TutorialStatusRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorialStatusMapper
}

func NewTutorialStatusRepository(db *gorm.DB) contract.TutorialStatusRepository {
	return &TutorialStatusRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorialStatusMapper(),
	}
}

func (r *TutorialStatusRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TutorialStatusRepositoryImpl) Create(ctx context.Context, status *entity.TutorialStatus) error {
	m := r.mapper.ToModel(status)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*status = *r.mapper.ToEntity(m)
	return nil
}

func (r *TutorialStatusRepositoryImpl) Update(ctx context.Context, status *entity.TutorialStatus) error {
	m := r.mapper.ToModel(status)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*status = *r.mapper.ToEntity(m)
	return nil
}

func (r *TutorialStatusRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TutorialStatus{}, id).Error
}

func (r *TutorialStatusRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TutorialStatus, error) {
	var m model.TutorialStatus
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TutorialStatusRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorialStatus, error) {
	var models []*model.TutorialStatus
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
