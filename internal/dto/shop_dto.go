package dto

import (
	"time"

	"github.com/google/uuid"
)

type ShopListRequest struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Search    string `query:"search"`
	Status    string `query:"status" validate:"omitempty,oneof=active inactive"`
	CompanyId string `query:"company_id"`
}

type ShopResponse struct {
	Id                  uuid.UUID `json:"id"`
	CompanyId           uuid.UUID `json:"company_id"`
	CompanyName         string    `json:"company_name,omitempty"`
	Name                string    `json:"name"`
	Url                 string    `json:"url"`
	Sector              string    `json:"sector"`
	IntegrationType     string    `json:"integration_type"`
	PricingPlan         string    `json:"pricing_plan"`
	VerificationMethods []string  `json:"verification_methods"`
	Status              string    `json:"status"`
	ApiKey              string    `json:"api_key"`
	CreatedAt           time.Time `json:"created_at"`
}

type UpdateShopRequest struct {
	Name                string   `json:"name" validate:"omitempty,min=1"`
	Url                 string   `json:"url" validate:"omitempty,url"`
	Sector              string   `json:"sector"`
	IntegrationType     string   `json:"integration_type"`
	PricingPlan         string   `json:"pricing_plan"`
	VerificationMethods []string `json:"verification_methods" validate:"omitempty,dive,oneof=bankid mojeid ocr facescan repeated qr"`
	Status              string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

type RegenerateApiKeyResponse struct {
	ApiKey string `json:"api_key"`
}

type CustomizationResponse struct {
	Id                  uuid.UUID `json:"id"`
	ShopId              uuid.UUID `json:"shop_id"`
	LogoUrl             *string   `json:"logo_url"`
	PrimaryColor        string    `json:"primary_color"`
	SecondaryColor      string    `json:"secondary_color"`
	Font                string    `json:"font"`
	ButtonStyle         string    `json:"button_style"`
	VerificationMethods []string  `json:"verification_methods"`
	FailureAction       string    `json:"failure_action"`
	FailureRedirect     *string   `json:"failure_redirect"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type SaveCustomizationRequest struct {
	LogoUrl             *string  `json:"logo_url" validate:"omitempty,url"`
	PrimaryColor        string   `json:"primary_color" validate:"required"`
	SecondaryColor      string   `json:"secondary_color" validate:"required"`
	Font                string   `json:"font" validate:"required"`
	ButtonStyle         string   `json:"button_style" validate:"required"`
	VerificationMethods []string `json:"verification_methods" validate:"required,min=1,dive,oneof=bankid mojeid ocr facescan repeated qr"`
	FailureAction       string   `json:"failure_action" validate:"required,oneof=block redirect"`
	FailureRedirect     *string  `json:"failure_redirect" validate:"required_if=FailureAction redirect,omitempty,url"`
}
