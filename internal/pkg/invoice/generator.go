package invoice

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"agegate-admin-be/internal/entity"
)

// SupplierDetails come from the billing/company_details setting.
type SupplierDetails struct {
	Name        string
	Address     string
	Ico         string
	Dic         string
	BankAccount string
}

// Options come from the billing/invoice_settings setting.
type Options struct {
	VatRate decimal.Decimal
	DueDays int
}

// Generator renders credit transaction invoices as xlsx workbooks.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Build renders the invoice for a credited transaction. The transaction
// must carry an invoice number.
func (g *Generator) Build(tx *entity.TransactionListItem, supplier SupplierDetails, opts Options) (*bytes.Buffer, error) {
	if tx.InvoiceNumber == nil {
		return nil, fmt.Errorf("transaction %s has no invoice number", tx.Id)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Invoice"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 40)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Invoice %s", *tx.InvoiceNumber))
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	rows := [][2]interface{}{
		{"Supplier", supplier.Name},
		{"Address", supplier.Address},
		{"ICO", supplier.Ico},
		{"DIC", supplier.Dic},
		{"Bank account", supplier.BankAccount},
		{"", ""},
		{"Customer", tx.CompanyName},
		{"", ""},
		{"Issued", tx.CreatedAt.Format("2006-01-02")},
		{"Due date", tx.CreatedAt.AddDate(0, 0, opts.DueDays).Format("2006-01-02")},
		{"Description", tx.Description},
	}

	rowIdx := 3
	for _, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), row[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), row[1])
		rowIdx++
	}

	// Amount breakdown. The stored amount is the total including VAT.
	hundred := decimal.NewFromInt(100)
	base := tx.Amount.Mul(hundred).Div(hundred.Add(opts.VatRate)).Round(2)
	vat := tx.Amount.Sub(base)

	rowIdx++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Base amount")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), base.InexactFloat64())
	rowIdx++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), fmt.Sprintf("VAT %s%%", opts.VatRate.String()))
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), vat.InexactFloat64())
	rowIdx++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), tx.Amount.InexactFloat64())
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowIdx), fmt.Sprintf("B%d", rowIdx), boldStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
