package mapper

import (
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/model"
)

type WalletMapper struct{}

func NewWalletMapper() *WalletMapper {
	return &WalletMapper{}
}

func (m *WalletMapper) ToEntity(t *model.WalletTransaction) *entity.WalletTransaction {
	if t == nil {
		return nil
	}
	return &entity.WalletTransaction{
		Id:            t.Id,
		CompanyId:     t.CompanyId,
		Type:          entity.TransactionType(t.Type),
		Amount:        t.Amount,
		Status:        entity.TransactionStatus(t.Status),
		Description:   t.Description,
		InvoiceNumber: t.InvoiceNumber,
		CreatedAt:     t.CreatedAt,
	}
}

func (m *WalletMapper) ToModel(t *entity.WalletTransaction) *model.WalletTransaction {
	if t == nil {
		return nil
	}
	return &model.WalletTransaction{
		Id:            t.Id,
		CompanyId:     t.CompanyId,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Status:        string(t.Status),
		Description:   t.Description,
		InvoiceNumber: t.InvoiceNumber,
		CreatedAt:     t.CreatedAt,
	}
}

func (m *WalletMapper) ToEntities(txs []*model.WalletTransaction) []*entity.WalletTransaction {
	entities := make([]*entity.WalletTransaction, len(txs))
	for i, t := range txs {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
