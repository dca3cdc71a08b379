package export

import (
	"fmt"
	"io"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	quotationSheet = "ใบเสนอราคา"
	customerSheet  = "ลูกค้า"
)

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func stringsToRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func boldStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
}

// WriteQuotationXLSX writes a workbook with the quotation header, items and totals
func WriteQuotationXLSX(w io.Writer, q *domain.Quotation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quotationSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	bold, err := boldStyle(f)
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	header := [][]interface{}{
		{"เลขที่", q.Number},
		{"ลูกค้า", q.CustomerName},
		{"วันที่", q.IssueDate.Format("2006-01-02")},
		{"ยืนราคาถึง", q.ValidUntil.Format("2006-01-02")},
	}
	row := 1
	for _, values := range header {
		if err := setRow(f, quotationSheet, row, values); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		row++
	}

	row++
	tableStart := row
	if err := setRow(f, quotationSheet, row, stringsToRow(QuotationItemHeader)); err != nil {
		return fmt.Errorf("failed to write item header: %w", err)
	}
	if err := f.SetCellStyle(quotationSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), bold); err != nil {
		return fmt.Errorf("failed to style item header: %w", err)
	}
	row++

	for i, item := range q.Items {
		values := []interface{}{
			i + 1,
			item.Description,
			item.Quantity.InexactFloat64(),
			item.Unit,
			item.UnitPrice.InexactFloat64(),
			item.DiscountPercent.InexactFloat64(),
			item.LineTotal.InexactFloat64(),
		}
		if err := setRow(f, quotationSheet, row, values); err != nil {
			return fmt.Errorf("failed to write item %d: %w", i+1, err)
		}
		row++
	}

	row++
	totals := [][]interface{}{
		{"รวมเป็นเงิน", q.GrossAmount.InexactFloat64()},
		{"ส่วนลดรายการ", q.ItemDiscount.InexactFloat64()},
		{"ส่วนลดพิเศษ", q.SpecialDiscount.InexactFloat64()},
		{"ยอดหลังหักส่วนลด", q.AmountAfterDiscount.InexactFloat64()},
		{fmt.Sprintf("ภาษีมูลค่าเพิ่ม %s%%", quantity(q.VATRate)), q.VATAmount.InexactFloat64()},
		{"จำนวนเงินรวมทั้งสิ้น", q.GrandTotal.InexactFloat64()},
	}
	for _, values := range totals {
		cell := fmt.Sprintf("F%d", row)
		if err := f.SetSheetRow(quotationSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
		row++
	}
	if err := f.SetCellStyle(quotationSheet, fmt.Sprintf("F%d", row-1), fmt.Sprintf("G%d", row-1), bold); err != nil {
		return fmt.Errorf("failed to style totals: %w", err)
	}

	if err := f.SetColWidth(quotationSheet, "B", "B", 45); err != nil {
		return err
	}
	if err := f.SetColWidth(quotationSheet, "E", "G", 16); err != nil {
		return err
	}
	if err := f.AutoFilter(quotationSheet, fmt.Sprintf("A%d:G%d", tableStart, tableStart+len(q.Items)), nil); err != nil {
		return fmt.Errorf("failed to set filter: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteCustomersXLSX writes the customer list as a workbook
func WriteCustomersXLSX(w io.Writer, customers []domain.Customer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", customerSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	bold, err := boldStyle(f)
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := setRow(f, customerSheet, 1, stringsToRow(customerHeader)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(customerHeader))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(customerSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i := range customers {
		c := &customers[i]
		values := stringsToRow(customerRow(c))
		// numeric columns stay numeric in the workbook
		values[11] = c.TotalSpent.InexactFloat64()
		values[12] = c.OrderCount
		if err := setRow(f, customerSheet, i+2, values); err != nil {
			return fmt.Errorf("failed to write customer row: %w", err)
		}
	}

	if err := f.SetPanes(customerSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
