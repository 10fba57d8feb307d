// file: internals/features/school/timelines/service/store_gorm.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "escolaviva_backend/internals/features/school/classes/model"
	m "escolaviva_backend/internals/features/school/timelines/model"
)

// GormStore implementa Store sobre o banco.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) EnrollmentLink(ctx context.Context, enrollmentID uuid.UUID) (*uuid.UUID, *uuid.UUID, error) {
	var enr cmodel.ClassEnrollmentModel
	err := s.DB.WithContext(ctx).
		Select("class_enrollment_daily_timeline_id", "class_enrollment_class_id").
		Where("class_enrollment_id = ?", enrollmentID).
		First(&enr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// matrícula inexistente não interrompe a cadeia
			return nil, nil, nil
		}
		return nil, nil, err
	}
	classID := enr.ClassEnrollmentClassID
	return enr.ClassEnrollmentDailyTimelineID, &classID, nil
}

func (s *GormStore) ClassDefaultTemplate(ctx context.Context, classID uuid.UUID) (*uuid.UUID, error) {
	var cls cmodel.ClassModel
	err := s.DB.WithContext(ctx).
		Select("class_daily_timeline_id").
		Where("class_id = ?", classID).
		First(&cls).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cls.ClassDailyTimelineID, nil
}

func (s *GormStore) TemplateWithItems(ctx context.Context, templateID uuid.UUID) (*m.TimelineTemplateModel, []m.TimelineItemModel, error) {
	var tpl m.TimelineTemplateModel
	if err := s.DB.WithContext(ctx).
		Where("timeline_template_id = ?", templateID).
		First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var items []m.TimelineItemModel
	if err := s.DB.WithContext(ctx).
		Where("timeline_item_template_id = ?", templateID).
		Order("timeline_item_order_index ASC").
		Find(&items).Error; err != nil {
		return nil, nil, err
	}
	return &tpl, items, nil
}
