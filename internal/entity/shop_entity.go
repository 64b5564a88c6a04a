package entity

import (
	"time"

	"github.com/google/uuid"
)

type ShopStatus string

const (
	ShopStatusActive   ShopStatus = "active"
	ShopStatusInactive ShopStatus = "inactive"
)

// Supported verification methods.
const (
	MethodBankId   = "bankid"
	MethodMojeId   = "mojeid"
	MethodOcr      = "ocr"
	MethodFaceScan = "facescan"
	MethodRepeated = "repeated"
	MethodQr       = "qr"
)

type Shop struct {
	Id                  uuid.UUID
	CompanyId           uuid.UUID
	Name                string
	Url                 string
	Sector              string
	IntegrationType     string
	PricingPlan         string
	VerificationMethods []string
	Status              ShopStatus
	ApiKey              string
	CreatedAt           time.Time
}

// ShopListItem is the joined projection used by the shop list view.
type ShopListItem struct {
	Shop
	CompanyName string
}

type FailureAction string

const (
	FailureActionBlock    FailureAction = "block"
	FailureActionRedirect FailureAction = "redirect"
)

// Customization is the 1:1 presentation record of a shop.
type Customization struct {
	Id                  uuid.UUID
	ShopId              uuid.UUID
	LogoUrl             *string
	PrimaryColor        string
	SecondaryColor      string
	Font                string
	ButtonStyle         string
	VerificationMethods []string
	FailureAction       FailureAction
	FailureRedirect     *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
