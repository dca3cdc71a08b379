package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/document"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/export"
	"github.com/siamsupply/shop-api/internal/mapper"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/pricing"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Quotation service errors
var (
	ErrQuotationNotFound          = errors.New("quotation not found")
	ErrQuotationNotEditable       = errors.New("only draft quotations can be edited")
	ErrInvalidQuotationTransition = errors.New("quotation status does not allow this action")
	ErrQuotationExpired           = errors.New("quotation validity has ended")
	ErrQuotationAlreadyConverted  = errors.New("quotation already converted to an order")
	ErrInvalidQuotationPricing    = errors.New("invalid quotation pricing")
	ErrInvalidValidity            = errors.New("valid until must not be before the issue date")
)

const expiryBatchSize = 100

// File is a generated document ready to be sent to a client
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

const contentTypePDF = "application/pdf"
const contentTypeHTML = "text/html; charset=utf-8"

type QuotationService struct {
	db            *gorm.DB
	quotationRepo *repository.QuotationRepository
	customerRepo  *repository.CustomerRepository
	orderRepo     *repository.SalesOrderRepository
	numbers       *NumberSequenceService
	customers     *CustomerService
	renderer      document.PDFRenderer
	store         storage.Storage
	company       document.Company
	itemsPerPage  int
	vatRate       decimal.Decimal
	validityDays  int
	activities    activityRecorder
	metrics       *metrics.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// NewQuotationService wires the quotation workflow. store may be nil, in which
// case sent quotations are not archived and PDFs are always rendered on demand.
func NewQuotationService(
	db *gorm.DB,
	quotationRepo *repository.QuotationRepository,
	customerRepo *repository.CustomerRepository,
	orderRepo *repository.SalesOrderRepository,
	activityRepo *repository.ActivityRepository,
	numbers *NumberSequenceService,
	customers *CustomerService,
	renderer document.PDFRenderer,
	store storage.Storage,
	shop *config.ShopConfig,
	pdf *config.PDFConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *QuotationService {
	validity := shop.QuotationValidityDays
	if validity <= 0 {
		validity = 30
	}
	return &QuotationService{
		db:            db,
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		orderRepo:     orderRepo,
		numbers:       numbers,
		customers:     customers,
		renderer:      renderer,
		store:         store,
		company: document.Company{
			Name:    shop.CompanyName,
			Address: shop.CompanyAddress,
			TaxID:   shop.CompanyTaxID,
			Phone:   shop.CompanyPhone,
		},
		itemsPerPage: pdf.ItemsPerPage,
		vatRate:      decimal.NewFromFloat(shop.VATRate),
		validityDays: validity,
		activities:   activityRecorder{repo: activityRepo, logger: logger},
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *QuotationService) load(ctx context.Context, id uuid.UUID) (*domain.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	return quotation, nil
}

func toDTO(q *domain.Quotation) *domain.QuotationDTO {
	dto := mapper.ToQuotationDTO(q)
	return &dto
}

// customerAddress joins the address parts of a customer into one printable line
func customerAddress(c *domain.Customer) string {
	parts := []string{c.Address, c.SubDistrict, c.District, c.Province, c.PostalCode}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// priceItems builds quotation lines and totals from the request items
func priceItems(inputs []domain.QuotationItemInput, special, vatRate decimal.Decimal) ([]domain.QuotationItem, pricing.QuotationTotals, error) {
	lines := make([]pricing.LineInput, len(inputs))
	for i, in := range inputs {
		lines[i] = pricing.LineInput{
			Quantity:        decimal.NewFromFloat(in.Quantity),
			UnitPrice:       decimal.NewFromFloat(in.UnitPrice),
			DiscountPercent: decimal.NewFromFloat(in.DiscountPercent),
		}
	}

	totals, err := pricing.CalculateQuotation(lines, special, vatRate)
	if err != nil {
		return nil, totals, fmt.Errorf("%w: %w", ErrInvalidQuotationPricing, err)
	}

	items := make([]domain.QuotationItem, len(inputs))
	for i, in := range inputs {
		items[i] = domain.QuotationItem{
			LineNo:          i + 1,
			ProductID:       in.ProductID,
			SKU:             in.SKU,
			Description:     strings.TrimSpace(in.Description),
			Quantity:        lines[i].Quantity,
			Unit:            in.Unit,
			UnitPrice:       lines[i].UnitPrice,
			DiscountPercent: lines[i].DiscountPercent,
			LineTotal:       totals.Lines[i].Total,
		}
	}
	return items, totals, nil
}

// repriceExisting recomputes totals for the items already on the quotation
func repriceExisting(q *domain.Quotation, special, vatRate decimal.Decimal) (pricing.QuotationTotals, error) {
	lines := make([]pricing.LineInput, len(q.Items))
	for i, item := range q.Items {
		lines[i] = pricing.LineInput{
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
		}
	}
	totals, err := pricing.CalculateQuotation(lines, special, vatRate)
	if err != nil {
		return totals, fmt.Errorf("%w: %w", ErrInvalidQuotationPricing, err)
	}
	for i := range q.Items {
		q.Items[i].LineTotal = totals.Lines[i].Total
	}
	return totals, nil
}

func applyTotals(q *domain.Quotation, totals pricing.QuotationTotals) {
	q.GrossAmount = totals.Gross
	q.ItemDiscount = totals.ItemDiscount
	q.Subtotal = totals.Subtotal
	q.SpecialDiscount = totals.SpecialDiscount
	q.AmountAfterDiscount = totals.AfterDiscount
	q.VATRate = totals.VATRate
	q.VATAmount = totals.VAT
	q.GrandTotal = totals.Grand
}

// Create drafts a quotation for an active customer, snapshotting their details
func (s *QuotationService) Create(ctx context.Context, req *domain.CreateQuotationRequest) (*domain.QuotationDTO, error) {
	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer.Status != domain.CustomerStatusActive {
		return nil, ErrCustomerNotFound
	}

	vatRate := s.vatRate
	if req.VATRate != nil {
		vatRate = decimal.NewFromFloat(*req.VATRate)
	}

	items, totals, err := priceItems(req.Items, decimal.NewFromFloat(req.SpecialDiscount), vatRate)
	if err != nil {
		return nil, err
	}

	issued := s.now()
	if req.IssueDate != nil {
		issued = *req.IssueDate
	}
	issueDate := startOfDay(issued)

	validDays := s.validityDays
	if req.ValidDays != nil {
		validDays = *req.ValidDays
	}

	number, err := s.numbers.GenerateQuotationNumber(ctx)
	if err != nil {
		return nil, err
	}

	quotation := &domain.Quotation{
		Number:          number,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerCompany: customer.CompanyName,
		CustomerTaxID:   customer.TaxID,
		CustomerAddress: customerAddress(customer),
		CustomerPhone:   customer.Phone,
		CustomerEmail:   customer.Email,
		Status:          domain.QuotationStatusDraft,
		IssueDate:       issueDate,
		ValidUntil:      endOfDay(issueDate.AddDate(0, 0, validDays)),
		Items:           items,
		Notes:           req.Notes,
		Terms:           req.Terms,
		CreatedBy:       auth.ActorFromContext(ctx),
	}
	applyTotals(quotation, totals)

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}

	s.metrics.QuotationTransition(string(domain.QuotationStatusDraft))
	s.activities.record(ctx, domain.ActivityTargetQuotation, quotation.ID, "created",
		"สร้างใบเสนอราคา", fmt.Sprintf("สร้างใบเสนอราคา %s ให้ '%s'", quotation.Number, quotation.CustomerName))

	s.logger.Info("quotation created",
		zap.String("quotation_id", quotation.ID.String()),
		zap.String("number", quotation.Number),
		zap.String("grand_total", quotation.GrandTotal.StringFixed(2)))

	return toDTO(quotation), nil
}

func (s *QuotationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuotationDTO, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(quotation), nil
}

func (s *QuotationService) List(ctx context.Context, page, pageSize int, filters *repository.QuotationFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	quotations, total, err := s.quotationRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}

	dtos := make([]domain.QuotationDTO, len(quotations))
	for i := range quotations {
		dtos[i] = mapper.ToQuotationDTO(&quotations[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

// Update edits a draft. Totals are recomputed whenever pricing inputs change.
func (s *QuotationService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateQuotationRequest) (*domain.QuotationDTO, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation.Status != domain.QuotationStatusDraft {
		return nil, ErrQuotationNotEditable
	}

	if req.ValidUntil != nil {
		validUntil := endOfDay(*req.ValidUntil)
		if validUntil.Before(quotation.IssueDate) {
			return nil, ErrInvalidValidity
		}
		quotation.ValidUntil = validUntil
	}
	if req.Notes != nil {
		quotation.Notes = *req.Notes
	}
	if req.Terms != nil {
		quotation.Terms = *req.Terms
	}

	special := quotation.SpecialDiscount
	if req.SpecialDiscount != nil {
		special = decimal.NewFromFloat(*req.SpecialDiscount)
	}
	vatRate := quotation.VATRate
	if req.VATRate != nil {
		vatRate = decimal.NewFromFloat(*req.VATRate)
	}

	if req.Items != nil {
		items, totals, err := priceItems(req.Items, special, vatRate)
		if err != nil {
			return nil, err
		}
		quotation.Items = items
		applyTotals(quotation, totals)
		if err := s.quotationRepo.UpdateWithItems(ctx, quotation); err != nil {
			return nil, fmt.Errorf("failed to update quotation: %w", err)
		}
	} else {
		totals, err := repriceExisting(quotation, special, vatRate)
		if err != nil {
			return nil, err
		}
		applyTotals(quotation, totals)
		if err := s.quotationRepo.Update(ctx, quotation); err != nil {
			return nil, fmt.Errorf("failed to update quotation: %w", err)
		}
	}

	s.activities.record(ctx, domain.ActivityTargetQuotation, quotation.ID, "updated",
		"แก้ไขใบเสนอราคา", fmt.Sprintf("ยอดรวมสุทธิ %s บาท", document.FormatMoney(quotation.GrandTotal)))

	return s.GetByID(ctx, quotation.ID)
}

// ReplaceItems swaps every line of a draft and recomputes totals
func (s *QuotationService) ReplaceItems(ctx context.Context, id uuid.UUID, items []domain.QuotationItemInput) (*domain.QuotationDTO, error) {
	return s.Update(ctx, id, &domain.UpdateQuotationRequest{Items: items})
}

// transition moves the quotation between statuses after checking the table
func (s *QuotationService) transition(ctx context.Context, q *domain.Quotation, to domain.QuotationStatus, fields map[string]interface{}) error {
	if !q.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidQuotationTransition, q.Status, to)
	}
	if err := s.quotationRepo.UpdateStatus(ctx, q.ID, q.Status, to, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: status changed concurrently", ErrInvalidQuotationTransition)
		}
		return fmt.Errorf("failed to update quotation status: %w", err)
	}

	s.metrics.QuotationTransition(string(to))
	s.activities.record(ctx, domain.ActivityTargetQuotation, q.ID, string(to),
		"เปลี่ยนสถานะใบเสนอราคา",
		fmt.Sprintf("%s: %s → %s", q.Number, q.Status.Label(), to.Label()))
	q.Status = to
	return nil
}

// Delete cancels a draft or sent quotation; the record is kept
func (s *QuotationService) Delete(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	return s.transition(ctx, quotation, domain.QuotationStatusCancelled, nil)
}

// Send marks a draft as sent and archives its PDF
func (s *QuotationService) Send(ctx context.Context, id uuid.UUID) (*domain.QuotationDTO, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quotation.Status.CanTransitionTo(domain.QuotationStatusSent) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidQuotationTransition, quotation.Status, domain.QuotationStatusSent)
	}

	sentAt := s.now()
	fields := map[string]interface{}{"sent_at": sentAt}

	archived := ""
	if s.store != nil {
		pdf, err := s.renderPDF(ctx, quotation)
		if err != nil {
			return nil, err
		}
		key := storage.QuotationKey(quotation.IssueDate.In(bangkok).Year(), quotation.Number)
		if _, err := s.store.Upload(ctx, key, contentTypePDF, bytes.NewReader(pdf)); err != nil {
			return nil, fmt.Errorf("%w: archive: %v", ErrDocumentGeneration, err)
		}
		fields["document_path"] = key
		archived = key
	}

	if err := s.transition(ctx, quotation, domain.QuotationStatusSent, fields); err != nil {
		if archived != "" {
			s.discardArchive(ctx, quotation.ID, archived)
		}
		return nil, err
	}

	s.logger.Info("quotation sent",
		zap.String("quotation_id", quotation.ID.String()),
		zap.String("number", quotation.Number))

	return s.GetByID(ctx, id)
}

// discardArchive removes a PDF uploaded by a send that lost its status change.
// A key already recorded on the quotation belongs to the winning send and stays.
func (s *QuotationService) discardArchive(ctx context.Context, id uuid.UUID, key string) {
	if current, err := s.quotationRepo.GetByID(ctx, id); err == nil && current.DocumentPath == key {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to remove orphaned quotation pdf",
			zap.String("quotation_id", id.String()),
			zap.String("key", key),
			zap.Error(err))
	}
}

// Accept records the customer's acceptance of a sent quotation. A quotation
// past its validity is expired instead.
func (s *QuotationService) Accept(ctx context.Context, id uuid.UUID) (*domain.QuotationDTO, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if quotation.Status == domain.QuotationStatusSent && now.After(quotation.ValidUntil) {
		if err := s.transition(ctx, quotation, domain.QuotationStatusExpired, nil); err != nil {
			return nil, err
		}
		return nil, ErrQuotationExpired
	}

	if err := s.transition(ctx, quotation, domain.QuotationStatusAccepted, map[string]interface{}{
		"responded_at": now,
	}); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Reject records the customer's refusal with a reason
func (s *QuotationService) Reject(ctx context.Context, id uuid.UUID, reason string) (*domain.QuotationDTO, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.transition(ctx, quotation, domain.QuotationStatusRejected, map[string]interface{}{
		"responded_at":  s.now(),
		"reject_reason": strings.TrimSpace(reason),
	}); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ExpireOverdue moves every sent quotation past its validity to expired and
// returns how many were changed
func (s *QuotationService) ExpireOverdue(ctx context.Context) (int, error) {
	now := s.now()
	expired := 0

	for {
		candidates, err := s.quotationRepo.FindExpiredCandidates(ctx, now, expiryBatchSize)
		if err != nil {
			return expired, fmt.Errorf("failed to find overdue quotations: %w", err)
		}
		if len(candidates) == 0 {
			break
		}

		for i := range candidates {
			if err := ctx.Err(); err != nil {
				return expired, err
			}
			err := s.transition(ctx, &candidates[i], domain.QuotationStatusExpired, nil)
			if errors.Is(err, ErrInvalidQuotationTransition) {
				// accepted or cancelled since the query ran
				continue
			}
			if err != nil {
				return expired, err
			}
			expired++
		}

		if len(candidates) < expiryBatchSize {
			break
		}
	}

	if expired > 0 {
		s.logger.Info("expired overdue quotations", zap.Int("count", expired))
	}
	return expired, nil
}

// ConvertToOrder creates a sales order from an accepted quotation
func (s *QuotationService) ConvertToOrder(ctx context.Context, id uuid.UUID) (*domain.SalesOrderDTO, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation.SalesOrderID != nil {
		return nil, ErrQuotationAlreadyConverted
	}
	if quotation.Status != domain.QuotationStatusAccepted {
		return nil, fmt.Errorf("%w: only accepted quotations can be converted", ErrInvalidQuotationTransition)
	}

	customer, err := s.customerRepo.GetByID(ctx, quotation.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	number, err := s.numbers.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	placedAt := s.now()
	order := &domain.SalesOrder{
		Number:          number,
		CustomerID:      customer.ID,
		QuotationID:     &quotation.ID,
		RecipientName:   customer.Name,
		RecipientPhone:  customer.Phone,
		ShippingAddress: customer.Address,
		SubDistrict:     customer.SubDistrict,
		District:        customer.District,
		Province:        customer.Province,
		PostalCode:      customer.PostalCode,
		Subtotal:        quotation.Subtotal,
		ShippingFee:     decimal.Zero,
		Discount:        quotation.SpecialDiscount,
		VATAmount:       quotation.VATAmount,
		VATIncluded:     false,
		Total:           quotation.GrandTotal,
		PaymentMethod:   domain.PaymentMethodBankTransfer,
		PaymentStatus:   domain.PaymentStatusPending,
		DeliveryStatus:  domain.DeliveryStatusPending,
		Notes:           fmt.Sprintf("จากใบเสนอราคา %s", quotation.Number),
		PlacedAt:        placedAt,
	}
	for _, item := range quotation.Items {
		order.Items = append(order.Items, domain.SalesOrderItem{
			ProductID:   item.ProductID,
			SKU:         item.SKU,
			Name:        item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ShippingFee: decimal.Zero,
			LineTotal:   item.LineTotal,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := s.quotationRepo.WithTx(tx).SetSalesOrder(ctx, quotation.ID, order.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuotationAlreadyConverted
			}
			return fmt.Errorf("failed to link quotation: %w", err)
		}
		return s.customers.RecordOrder(ctx, tx, customer.ID, order.Total, placedAt)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.OrderPlaced("quotation", string(order.PaymentMethod), mapper.Money(order.Total))
	s.activities.record(ctx, domain.ActivityTargetQuotation, quotation.ID, "converted",
		"แปลงเป็นคำสั่งซื้อ", fmt.Sprintf("%s → %s", quotation.Number, order.Number))
	s.activities.record(ctx, domain.ActivityTargetOrder, order.ID, "created",
		"สร้างคำสั่งซื้อ", fmt.Sprintf("สร้างจากใบเสนอราคา %s", quotation.Number))

	created, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}
	dto := mapper.ToSalesOrderDTO(created)
	return &dto, nil
}

func (s *QuotationService) renderHTML(q *domain.Quotation) ([]byte, error) {
	html, err := document.RenderQuotationHTML(document.QuotationDocument{
		Company:      s.company,
		Quotation:    q,
		ItemsPerPage: s.itemsPerPage,
	})
	s.metrics.DocumentRendered("html", err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentGeneration, err)
	}
	return html, nil
}

func (s *QuotationService) renderPDF(ctx context.Context, q *domain.Quotation) ([]byte, error) {
	if s.renderer == nil {
		return nil, fmt.Errorf("%w: no pdf renderer configured", ErrDocumentGeneration)
	}
	html, err := s.renderHTML(q)
	if err != nil {
		return nil, err
	}
	pdf, err := s.renderer.RenderPDF(ctx, html)
	s.metrics.DocumentRendered("pdf", err)
	if err != nil {
		s.logger.Error("failed to render quotation pdf",
			zap.String("quotation_id", q.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDocumentGeneration, err)
	}
	return pdf, nil
}

// RenderHTML returns the printable quotation page
func (s *QuotationService) RenderHTML(ctx context.Context, id uuid.UUID) (*File, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	html, err := s.renderHTML(quotation)
	if err != nil {
		return nil, err
	}
	return &File{Filename: quotation.Number + ".html", ContentType: contentTypeHTML, Data: html}, nil
}

// RenderPDF returns the archived PDF of a sent quotation, or renders a fresh one
func (s *QuotationService) RenderPDF(ctx context.Context, id uuid.UUID) (*File, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	file := &File{Filename: quotation.Number + ".pdf", ContentType: contentTypePDF}

	if quotation.DocumentPath != "" && s.store != nil {
		data, err := s.readArchive(ctx, quotation.DocumentPath)
		if err == nil {
			file.Data = data
			return file, nil
		}
		s.logger.Warn("archived quotation pdf unavailable, rendering again",
			zap.String("quotation_id", quotation.ID.String()),
			zap.String("path", quotation.DocumentPath),
			zap.Error(err))
	}

	file.Data, err = s.renderPDF(ctx, quotation)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (s *QuotationService) readArchive(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.store.Download(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Export writes the quotation line items as CSV or XLSX
func (s *QuotationService) Export(ctx context.Context, id uuid.UUID, format export.Format) (*File, error) {
	quotation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case export.FormatXLSX:
		err = export.WriteQuotationXLSX(&buf, quotation)
	default:
		format = export.FormatCSV
		err = export.WriteQuotationCSV(&buf, quotation)
	}
	s.metrics.DocumentRendered(string(format), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentGeneration, err)
	}

	return &File{
		Filename:    fmt.Sprintf("%s.%s", quotation.Number, format),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}
