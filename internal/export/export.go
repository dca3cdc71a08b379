// Package export writes quotations and customer lists as CSV (UTF-8 with BOM so
// Excel detects Thai text) and XLSX workbooks.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Format is an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates the ?format= query value; empty means csv
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the response content type for the format
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return ContentTypeXLSX
	}
	return ContentTypeCSV
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// QuotationItemHeader matches the item table printed on the quotation document
var QuotationItemHeader = []string{"ลำดับ", "รายการ", "จำนวน", "หน่วย", "ราคาต่อหน่วย", "ส่วนลด(%)", "จำนวนเงิน"}

var customerHeader = []string{
	"ชื่อลูกค้า", "บริษัท", "เลขประจำตัวผู้เสียภาษี", "อีเมล", "โทรศัพท์", "ที่อยู่", "แขวง/ตำบล",
	"เขต/อำเภอ", "จังหวัด", "รหัสไปรษณีย์", "ประเภทลูกค้า", "ยอดซื้อสะสม", "จำนวนคำสั่งซื้อ", "สั่งซื้อล่าสุด",
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func quantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.Round(2).String()
}

// QuotationItemRows returns the item rows in display order
func QuotationItemRows(q *domain.Quotation) [][]string {
	rows := make([][]string, 0, len(q.Items))
	for i, item := range q.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Description,
			quantity(item.Quantity),
			item.Unit,
			amount(item.UnitPrice),
			quantity(item.DiscountPercent),
			amount(item.LineTotal),
		})
	}
	return rows
}

// WriteQuotationCSV writes the quotation line items
func WriteQuotationCSV(w io.Writer, q *domain.Quotation) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(QuotationItemHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(QuotationItemRows(q)); err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}
	return nil
}

func customerRow(c *domain.Customer) []string {
	lastOrder := ""
	if c.LastOrderAt != nil {
		lastOrder = c.LastOrderAt.Format("2006-01-02")
	}
	return []string{
		c.Name,
		c.CompanyName,
		c.TaxID,
		c.Email,
		c.Phone,
		c.Address,
		c.SubDistrict,
		c.District,
		c.Province,
		c.PostalCode,
		c.Type.Label(),
		amount(c.TotalSpent),
		strconv.Itoa(c.OrderCount),
		lastOrder,
	}
}

// WriteCustomersCSV writes the customer list
func WriteCustomersCSV(w io.Writer, customers []domain.Customer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(customerHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range customers {
		if err := cw.Write(customerRow(&customers[i])); err != nil {
			return fmt.Errorf("failed to write customer row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
