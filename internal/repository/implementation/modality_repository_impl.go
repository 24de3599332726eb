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

type ModalityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ModalityMapper
}

func NewModalityRepository(db *gorm.DB) contract.ModalityRepository {
	return &ModalityRepositoryImpl{
		db:     db,
		mapper: mapper.NewModalityMapper(),
	}
}

func (r *ModalityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ModalityRepositoryImpl) Create(ctx context.Context, modality *entity.Modality) error {
	m := r.mapper.ToModel(modality)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*modality = *r.mapper.ToEntity(m)
	return nil
}

func (r *ModalityRepositoryImpl) Update(ctx context.Context, modality *entity.Modality) error {
	m := r.mapper.ToModel(modality)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*modality = *r.mapper.ToEntity(m)
	return nil
}

func (r *ModalityRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id_modality = ?", id).Delete(&model.Modality{}).Error
}

func (r *ModalityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Modality, error) {
	var m model.Modality
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ModalityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Modality, error) {
	var models []*model.Modality
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
