package mapper

import (
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/model"
)

type VerificationMapper struct{}

func NewVerificationMapper() *VerificationMapper {
	return &VerificationMapper{}
}

func (m *VerificationMapper) ToEntity(v *model.Verification) *entity.Verification {
	if v == nil {
		return nil
	}
	return &entity.Verification{
		Id:           v.Id,
		ShopId:       v.ShopId,
		SessionId:    v.SessionId,
		Method:       v.Method,
		Status:       entity.VerificationStatus(v.Status),
		Result:       entity.VerificationResult(v.Result),
		Price:        v.Price,
		ErrorMessage: v.ErrorMessage,
		Metadata:     jsonToMap(v.Metadata),
		CreatedAt:    v.CreatedAt,
		CompletedAt:  v.CompletedAt,
	}
}

func (m *VerificationMapper) ToModel(v *entity.Verification) *model.Verification {
	if v == nil {
		return nil
	}
	return &model.Verification{
		Id:           v.Id,
		ShopId:       v.ShopId,
		SessionId:    v.SessionId,
		Method:       v.Method,
		Status:       string(v.Status),
		Result:       string(v.Result),
		Price:        v.Price,
		ErrorMessage: v.ErrorMessage,
		Metadata:     mapToJSON(v.Metadata),
		CreatedAt:    v.CreatedAt,
		CompletedAt:  v.CompletedAt,
	}
}

func (m *VerificationMapper) ToEntities(verifications []*model.Verification) []*entity.Verification {
	entities := make([]*entity.Verification, len(verifications))
	for i, v := range verifications {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
