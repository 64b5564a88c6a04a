package mapper

import (
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/model"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) ToEntity(a *model.Admin) *entity.Admin {
	if a == nil {
		return nil
	}
	return &entity.Admin{
		Id:           a.Id,
		UserId:       a.UserId,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         entity.AdminRole(a.Role),
		LastLoginAt:  a.LastLoginAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToModel(a *entity.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	return &model.Admin{
		Id:           a.Id,
		UserId:       a.UserId,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		LastLoginAt:  a.LastLoginAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToEntities(admins []*model.Admin) []*entity.Admin {
	entities := make([]*entity.Admin, len(admins))
	for i, a := range admins {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AdminMapper) ActionLogToEntity(l *model.AdminActionLog) *entity.AdminActionLog {
	if l == nil {
		return nil
	}
	return &entity.AdminActionLog{
		Id:         l.Id,
		AdminId:    l.AdminId,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityId:   l.EntityId,
		Details:    jsonToMap(l.Details),
		IpAddress:  l.IpAddress,
		UserAgent:  l.UserAgent,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *AdminMapper) ActionLogToModel(l *entity.AdminActionLog) *model.AdminActionLog {
	if l == nil {
		return nil
	}
	return &model.AdminActionLog{
		Id:         l.Id,
		AdminId:    l.AdminId,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityId:   l.EntityId,
		Details:    mapToJSON(l.Details),
		IpAddress:  l.IpAddress,
		UserAgent:  l.UserAgent,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *AdminMapper) ActionLogsToEntities(logs []*model.AdminActionLog) []*entity.AdminActionLog {
	entities := make([]*entity.AdminActionLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ActionLogToEntity(l)
	}
	return entities
}

func (m *AdminMapper) LoginAttemptToEntity(a *model.AdminLoginAttempt) *entity.AdminLoginAttempt {
	if a == nil {
		return nil
	}
	return &entity.AdminLoginAttempt{
		Id:        a.Id,
		Email:     a.Email,
		IpAddress: a.IpAddress,
		Success:   a.Success,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AdminMapper) LoginAttemptToModel(a *entity.AdminLoginAttempt) *model.AdminLoginAttempt {
	if a == nil {
		return nil
	}
	return &model.AdminLoginAttempt{
		Id:        a.Id,
		Email:     a.Email,
		IpAddress: a.IpAddress,
		Success:   a.Success,
		CreatedAt: a.CreatedAt,
	}
}
