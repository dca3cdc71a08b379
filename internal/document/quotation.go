package document

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/domain"
)

// DefaultItemsPerPage is the number of item rows printed on each quotation page
const DefaultItemsPerPage = 15

// Company is the seller block printed in the document header
type Company struct {
	Name    string
	Address string
	TaxID   string
	Phone   string
}

// QuotationDocument is the input for rendering a quotation
type QuotationDocument struct {
	Company      Company
	Quotation    *domain.Quotation
	ItemsPerPage int
}

type lineView struct {
	No          int
	SKU         string
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
	Discount    string
	LineTotal   string
}

type pageView struct {
	Number int
	Total  int
	Last   bool
	Lines  []lineView
}

type quotationView struct {
	Company         Company
	Number          string
	IssueDate       string
	ValidUntil      string
	CustomerName    string
	CustomerCompany string
	CustomerTaxID   string
	CustomerAddress string
	CustomerPhone   string
	Pages           []pageView
	Gross           string
	ItemDiscount    string
	Subtotal        string
	SpecialDiscount string
	AfterDiscount   string
	VATRate         string
	VAT             string
	Grand           string
	GrandText       string
	Notes           string
	Terms           string
}

var quotationTemplate = template.Must(template.New("quotation").Parse(quotationHTML))

// RenderQuotationHTML renders the quotation as a self-contained A4 HTML document.
// Every page repeats the header and item table heading; the totals block and the
// amount in words appear on the last page only.
func RenderQuotationHTML(doc QuotationDocument) ([]byte, error) {
	if doc.Quotation == nil {
		return nil, fmt.Errorf("quotation is required")
	}

	perPage := doc.ItemsPerPage
	if perPage <= 0 {
		perPage = DefaultItemsPerPage
	}

	q := doc.Quotation
	lines := make([]lineView, 0, len(q.Items))
	for i, item := range q.Items {
		lines = append(lines, lineView{
			No:          i + 1,
			SKU:         item.SKU,
			Description: item.Description,
			Quantity:    FormatQuantity(item.Quantity),
			Unit:        item.Unit,
			UnitPrice:   FormatMoney(item.UnitPrice),
			Discount:    FormatQuantity(item.DiscountPercent),
			LineTotal:   FormatMoney(item.LineTotal),
		})
	}

	view := quotationView{
		Company:         doc.Company,
		Number:          q.Number,
		IssueDate:       ThaiDate(q.IssueDate),
		ValidUntil:      ThaiDate(q.ValidUntil),
		CustomerName:    q.CustomerName,
		CustomerCompany: q.CustomerCompany,
		CustomerTaxID:   q.CustomerTaxID,
		CustomerAddress: q.CustomerAddress,
		CustomerPhone:   q.CustomerPhone,
		Pages:           paginate(lines, perPage),
		Gross:           FormatMoney(q.GrossAmount),
		ItemDiscount:    FormatMoney(q.ItemDiscount),
		Subtotal:        FormatMoney(q.Subtotal),
		SpecialDiscount: FormatMoney(q.SpecialDiscount),
		AfterDiscount:   FormatMoney(q.AmountAfterDiscount),
		VATRate:         FormatQuantity(q.VATRate),
		VAT:             FormatMoney(q.VATAmount),
		Grand:           FormatMoney(q.GrandTotal),
		GrandText:       BahtText(q.GrandTotal),
		Notes:           q.Notes,
		Terms:           q.Terms,
	}

	var buf bytes.Buffer
	if err := quotationTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render quotation %s: %w", q.Number, err)
	}
	return buf.Bytes(), nil
}

// paginate always yields at least one page so an empty quotation still prints its header
func paginate(lines []lineView, perPage int) []pageView {
	total := (len(lines) + perPage - 1) / perPage
	if total == 0 {
		total = 1
	}

	pages := make([]pageView, 0, total)
	for i := 0; i < total; i++ {
		start := i * perPage
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, pageView{
			Number: i + 1,
			Total:  total,
			Last:   i == total-1,
			Lines:  lines[start:end],
		})
	}
	return pages
}

// FormatMoney formats an amount with thousands separators and two decimals
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('.')
	sb.WriteString(frac)
	return sb.String()
}

// FormatQuantity prints whole numbers without decimals and fractions with up to two
func FormatQuantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.Round(2).String()
}

// ThaiDate formats a date as dd/mm/yyyy in the Buddhist era
func ThaiDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year()+543)
}

const quotationHTML = `<!DOCTYPE html>
<html lang="th">
<head>
<meta charset="utf-8">
<title>ใบเสนอราคา {{.Number}}</title>
<style>
  @page { size: A4; margin: 12mm; }
  body { font-family: "Sarabun", "TH Sarabun New", sans-serif; font-size: 13px; color: #222; margin: 0; }
  .page { page-break-after: always; position: relative; min-height: 265mm; }
  .page:last-child { page-break-after: auto; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #1f4e79; padding-bottom: 6px; }
  .title { font-size: 22px; font-weight: bold; color: #1f4e79; text-align: right; }
  .parties { display: flex; justify-content: space-between; margin: 10px 0; }
  table.items { width: 100%; border-collapse: collapse; }
  table.items th { background: #1f4e79; color: #fff; padding: 4px; font-weight: normal; }
  table.items td { border-bottom: 1px solid #ddd; padding: 4px; }
  td.num { text-align: right; }
  .totals { width: 45%; margin-left: auto; margin-top: 10px; border-collapse: collapse; }
  .totals td { padding: 3px 4px; }
  .totals tr.grand td { font-weight: bold; border-top: 2px solid #1f4e79; }
  .baht-text { margin-top: 6px; text-align: right; font-weight: bold; }
  .footer { position: absolute; bottom: 0; width: 100%; text-align: center; font-size: 11px; color: #666; }
</style>
</head>
<body>
{{- range .Pages}}
<div class="page" data-page="{{.Number}}">
  <div class="header">
    <div class="seller">
      <div><strong>{{$.Company.Name}}</strong></div>
      <div>{{$.Company.Address}}</div>
      {{- if $.Company.TaxID}}<div>เลขประจำตัวผู้เสียภาษี {{$.Company.TaxID}}</div>{{end}}
      {{- if $.Company.Phone}}<div>โทร {{$.Company.Phone}}</div>{{end}}
    </div>
    <div>
      <div class="title">ใบเสนอราคา</div>
      <div>เลขที่ <span class="doc-number">{{$.Number}}</span></div>
      <div>วันที่ {{$.IssueDate}}</div>
      <div>ยืนราคาถึง {{$.ValidUntil}}</div>
    </div>
  </div>
  <div class="parties">
    <div class="customer">
      <div>ลูกค้า: <strong>{{$.CustomerName}}</strong></div>
      {{- if $.CustomerCompany}}<div>{{$.CustomerCompany}}</div>{{end}}
      {{- if $.CustomerAddress}}<div>{{$.CustomerAddress}}</div>{{end}}
      {{- if $.CustomerTaxID}}<div>เลขประจำตัวผู้เสียภาษี {{$.CustomerTaxID}}</div>{{end}}
      {{- if $.CustomerPhone}}<div>โทร {{$.CustomerPhone}}</div>{{end}}
    </div>
  </div>
  <table class="items">
    <thead>
      <tr><th>ลำดับ</th><th>รายการ</th><th>จำนวน</th><th>หน่วย</th><th>ราคาต่อหน่วย</th><th>ส่วนลด(%)</th><th>จำนวนเงิน</th></tr>
    </thead>
    <tbody>
      {{- range .Lines}}
      <tr class="item">
        <td class="num">{{.No}}</td>
        <td>{{.Description}}{{if .SKU}} <small>({{.SKU}})</small>{{end}}</td>
        <td class="num">{{.Quantity}}</td>
        <td>{{.Unit}}</td>
        <td class="num">{{.UnitPrice}}</td>
        <td class="num">{{.Discount}}</td>
        <td class="num">{{.LineTotal}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>
  {{- if .Last}}
  <table class="totals">
    <tr><td>รวมเป็นเงิน</td><td class="num">{{$.Gross}}</td></tr>
    <tr><td>ส่วนลดรายการ</td><td class="num">{{$.ItemDiscount}}</td></tr>
    <tr><td>ยอดหลังหักส่วนลดรายการ</td><td class="num">{{$.Subtotal}}</td></tr>
    <tr><td>ส่วนลดพิเศษ</td><td class="num">{{$.SpecialDiscount}}</td></tr>
    <tr><td>ยอดหลังหักส่วนลด</td><td class="num">{{$.AfterDiscount}}</td></tr>
    <tr><td>ภาษีมูลค่าเพิ่ม {{$.VATRate}}%</td><td class="num">{{$.VAT}}</td></tr>
    <tr class="grand"><td>จำนวนเงินรวมทั้งสิ้น</td><td class="num grand-total">{{$.Grand}}</td></tr>
  </table>
  <div class="baht-text">({{$.GrandText}})</div>
  {{- if $.Notes}}<div class="notes">หมายเหตุ: {{$.Notes}}</div>{{end}}
  {{- if $.Terms}}<div class="terms">เงื่อนไข: {{$.Terms}}</div>{{end}}
  {{- end}}
  <div class="footer">หน้า {{.Number}}/{{.Total}}</div>
</div>
{{- end}}
</body>
</html>
`
