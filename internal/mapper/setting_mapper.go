package mapper

import (
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/model"
)

type SettingMapper struct{}

func NewSettingMapper() *SettingMapper {
	return &SettingMapper{}
}

func (m *SettingMapper) ToEntity(s *model.SystemSetting) *entity.SystemSetting {
	if s == nil {
		return nil
	}
	return &entity.SystemSetting{
		Id:          s.Id,
		Category:    s.Category,
		Key:         s.Key,
		Description: s.Description,
		Value:       jsonToMap(s.Value),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *SettingMapper) ToModel(s *entity.SystemSetting) *model.SystemSetting {
	if s == nil {
		return nil
	}
	return &model.SystemSetting{
		Id:          s.Id,
		Category:    s.Category,
		Key:         s.Key,
		Description: s.Description,
		Value:       mapToJSON(s.Value),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *SettingMapper) ToEntities(settings []*model.SystemSetting) []*entity.SystemSetting {
	entities := make([]*entity.SystemSetting, len(settings))
	for i, s := range settings {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SettingMapper) AuditToEntity(a *model.SettingsAuditLog) *entity.SettingsAuditLog {
	if a == nil {
		return nil
	}
	return &entity.SettingsAuditLog{
		Id:        a.Id,
		SettingId: a.SettingId,
		UserId:    a.UserId,
		Action:    a.Action,
		OldValue:  jsonToMap(a.OldValue),
		NewValue:  jsonToMap(a.NewValue),
		CreatedAt: a.CreatedAt,
	}
}

func (m *SettingMapper) AuditToModel(a *entity.SettingsAuditLog) *model.SettingsAuditLog {
	if a == nil {
		return nil
	}
	return &model.SettingsAuditLog{
		Id:        a.Id,
		SettingId: a.SettingId,
		UserId:    a.UserId,
		Action:    a.Action,
		OldValue:  mapToJSON(a.OldValue),
		NewValue:  mapToJSON(a.NewValue),
		CreatedAt: a.CreatedAt,
	}
}

func (m *SettingMapper) AuditsToEntities(audits []*model.SettingsAuditLog) []*entity.SettingsAuditLog {
	entities := make([]*entity.SettingsAuditLog, len(audits))
	for i, a := range audits {
		entities[i] = m.AuditToEntity(a)
	}
	return entities
}
