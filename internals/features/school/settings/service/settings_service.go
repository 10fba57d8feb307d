// file: internals/features/school/settings/service/settings_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "escolaviva_backend/internals/features/school/settings/model"
)

// Chaves conhecidas
const (
	// Liga/desliga a exibição da rotina diária para responsáveis (escopo escola).
	SettingDailyTimelineEnabled = "daily_timeline_enabled"
)

// GetSetting devolve (valor, encontrado, erro).
func GetSetting(ctx context.Context, db *gorm.DB, schoolID uuid.UUID, key string) (string, bool, error) {
	var s model.SchoolSettingModel
	err := db.WithContext(ctx).
		Where("school_setting_school_id = ? AND school_setting_key = ?", schoolID, key).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return s.SchoolSettingValue, true, nil
}

// SetSetting grava por upsert (uma linha por escola+chave).
func SetSetting(ctx context.Context, db *gorm.DB, schoolID uuid.UUID, key, value string) error {
	s := model.SchoolSettingModel{
		SchoolSettingSchoolID: schoolID,
		SchoolSettingKey:      key,
		SchoolSettingValue:    value,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "school_setting_school_id"}, {Name: "school_setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"school_setting_value", "school_setting_updated_at"}),
		}).
		Create(&s).Error
}

// DailyTimelineEnabled: ausente = ligado; só "false" explícito desliga.
// Falha de leitura degrada para ligado (feature suplementar, nunca bloqueia).
func DailyTimelineEnabled(ctx context.Context, db *gorm.DB, schoolID uuid.UUID) bool {
	v, found, err := GetSetting(ctx, db, schoolID, SettingDailyTimelineEnabled)
	if err != nil {
		log.Printf("[ERROR] settings: %s: %v", SettingDailyTimelineEnabled, err)
		return true
	}
	if !found {
		return true
	}
	return strings.ToLower(strings.TrimSpace(v)) != "false"
}
