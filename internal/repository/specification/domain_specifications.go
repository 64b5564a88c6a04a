package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCompany struct {
	CompanyId uuid.UUID
}

func (s ByCompany) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyId)
}

type ByShop struct {
	ShopId uuid.UUID
}

func (s ByShop) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("shop_id = ?", s.ShopId)
}

type ByApiKey struct {
	ApiKey string
}

func (s ByApiKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("api_key = ?", s.ApiKey)
}

type ByMethod struct {
	Method string
}

func (s ByMethod) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("method = ?", s.Method)
}

type BySettingCategory struct {
	Category string
}

func (s BySettingCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type BySettingKey struct {
	Category string
	Key      string
}

func (s BySettingKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ? AND key = ?", s.Category, s.Key)
}

type ByInvoiceNumber struct {
	InvoiceNumber string
}

func (s ByInvoiceNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("invoice_number = ?", s.InvoiceNumber)
}
