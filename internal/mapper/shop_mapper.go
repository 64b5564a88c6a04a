package mapper

import (
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/model"
)

type ShopMapper struct{}

func NewShopMapper() *ShopMapper {
	return &ShopMapper{}
}

func (m *ShopMapper) ToEntity(s *model.Shop) *entity.Shop {
	if s == nil {
		return nil
	}
	return &entity.Shop{
		Id:                  s.Id,
		CompanyId:           s.CompanyId,
		Name:                s.Name,
		Url:                 s.Url,
		Sector:              s.Sector,
		IntegrationType:     s.IntegrationType,
		PricingPlan:         s.PricingPlan,
		VerificationMethods: jsonToStrings(s.VerificationMethods),
		Status:              entity.ShopStatus(s.Status),
		ApiKey:              s.ApiKey,
		CreatedAt:           s.CreatedAt,
	}
}

func (m *ShopMapper) ToModel(s *entity.Shop) *model.Shop {
	if s == nil {
		return nil
	}
	return &model.Shop{
		Id:                  s.Id,
		CompanyId:           s.CompanyId,
		Name:                s.Name,
		Url:                 s.Url,
		Sector:              s.Sector,
		IntegrationType:     s.IntegrationType,
		PricingPlan:         s.PricingPlan,
		VerificationMethods: stringsToJSON(s.VerificationMethods),
		Status:              string(s.Status),
		ApiKey:              s.ApiKey,
		CreatedAt:           s.CreatedAt,
	}
}

func (m *ShopMapper) ToEntities(shops []*model.Shop) []*entity.Shop {
	entities := make([]*entity.Shop, len(shops))
	for i, s := range shops {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *ShopMapper) CustomizationToEntity(c *model.Customization) *entity.Customization {
	if c == nil {
		return nil
	}
	return &entity.Customization{
		Id:                  c.Id,
		ShopId:              c.ShopId,
		LogoUrl:             c.LogoUrl,
		PrimaryColor:        c.PrimaryColor,
		SecondaryColor:      c.SecondaryColor,
		Font:                c.Font,
		ButtonStyle:         c.ButtonStyle,
		VerificationMethods: jsonToStrings(c.VerificationMethods),
		FailureAction:       entity.FailureAction(c.FailureAction),
		FailureRedirect:     c.FailureRedirect,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *ShopMapper) CustomizationToModel(c *entity.Customization) *model.Customization {
	if c == nil {
		return nil
	}
	return &model.Customization{
		Id:                  c.Id,
		ShopId:              c.ShopId,
		LogoUrl:             c.LogoUrl,
		PrimaryColor:        c.PrimaryColor,
		SecondaryColor:      c.SecondaryColor,
		Font:                c.Font,
		ButtonStyle:         c.ButtonStyle,
		VerificationMethods: stringsToJSON(c.VerificationMethods),
		FailureAction:       string(c.FailureAction),
		FailureRedirect:     c.FailureRedirect,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
