package mapper

import (
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/model"
)

type ErrorMapper struct{}

func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

func (m *ErrorMapper) ToEntity(e *model.ErrorRecord) *entity.ErrorRecord {
	if e == nil {
		return nil
	}
	return &entity.ErrorRecord{
		Id:             e.Id,
		ShopId:         e.ShopId,
		VerificationId: e.VerificationId,
		Source:         e.Source,
		ErrorType:      e.ErrorType,
		ErrorMessage:   e.ErrorMessage,
		ErrorDetails:   jsonToMap(e.ErrorDetails),
		Status:         entity.ErrorStatus(e.Status),
		ResolutionNote: e.ResolutionNote,
		ResolvedBy:     e.ResolvedBy,
		ResolvedAt:     e.ResolvedAt,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ErrorMapper) ToModel(e *entity.ErrorRecord) *model.ErrorRecord {
	if e == nil {
		return nil
	}
	return &model.ErrorRecord{
		Id:             e.Id,
		ShopId:         e.ShopId,
		VerificationId: e.VerificationId,
		Source:         e.Source,
		ErrorType:      e.ErrorType,
		ErrorMessage:   e.ErrorMessage,
		ErrorDetails:   mapToJSON(e.ErrorDetails),
		Status:         string(e.Status),
		ResolutionNote: e.ResolutionNote,
		ResolvedBy:     e.ResolvedBy,
		ResolvedAt:     e.ResolvedAt,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ErrorMapper) ToEntities(errs []*model.ErrorRecord) []*entity.ErrorRecord {
	entities := make([]*entity.ErrorRecord, len(errs))
	for i, e := range errs {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
