package mapper

import (
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/model"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}
	return &entity.Company{
		Id:              c.Id,
		Name:            c.Name,
		Ico:             c.Ico,
		Dic:             c.Dic,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		ContactPerson:   c.ContactPerson,
		Status:          entity.CompanyStatus(c.Status),
		UserId:          c.UserId,
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      c.ApprovedAt,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *CompanyMapper) ToModel(c *entity.Company) *model.Company {
	if c == nil {
		return nil
	}
	return &model.Company{
		Id:              c.Id,
		Name:            c.Name,
		Ico:             c.Ico,
		Dic:             c.Dic,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		ContactPerson:   c.ContactPerson,
		Status:          string(c.Status),
		UserId:          c.UserId,
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      c.ApprovedAt,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *CompanyMapper) ToEntities(companies []*model.Company) []*entity.Company {
	entities := make([]*entity.Company, len(companies))
	for i, c := range companies {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
