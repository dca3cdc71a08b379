package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/mapper"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/pricing"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/wms"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Order service errors
var (
	ErrOrderNotFound             = errors.New("order not found")
	ErrProductUnavailable        = errors.New("product is not available for sale")
	ErrInvalidUnit               = errors.New("unit does not belong to the product")
	ErrOptionRequired            = errors.New("every product option must be selected")
	ErrInvalidOption             = errors.New("option does not belong to the product")
	ErrOptionUnavailable         = errors.New("selected option value is sold out")
	ErrOutOfStock                = errors.New("insufficient stock")
	ErrInvalidDeliveryTransition = errors.New("delivery status change not allowed")
	ErrInvalidPaymentTransition  = errors.New("payment status change not allowed")
	ErrClaimNotAllowed           = errors.New("claims can only be opened on delivered orders")
	ErrClaimAlreadyOpen          = errors.New("order already has an open claim")
	ErrClaimNotFound             = errors.New("claim not found")
	ErrClaimClosed               = errors.New("claim is already closed")
	ErrInvalidClaimTransition    = errors.New("claim status change not allowed")
)

var claimTransitions = map[domain.ClaimStatus][]domain.ClaimStatus{
	domain.ClaimStatusOpen:     {domain.ClaimStatusApproved, domain.ClaimStatusRejected, domain.ClaimStatusResolved},
	domain.ClaimStatusApproved: {domain.ClaimStatusResolved, domain.ClaimStatusRejected},
}

var paymentTransitions = map[domain.PaymentStatus][]domain.PaymentStatus{
	domain.PaymentStatusPending: {domain.PaymentStatusPaid},
	domain.PaymentStatusPaid:    {domain.PaymentStatusRefunded},
}

type OrderService struct {
	db           *gorm.DB
	orderRepo    *repository.SalesOrderRepository
	productRepo  *repository.ProductRepository
	customerRepo *repository.CustomerRepository
	numbers      *NumberSequenceService
	customers    *CustomerService
	settings     *SettingService
	stock        wms.StockChecker
	activities   activityRecorder
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	orderRepo *repository.SalesOrderRepository,
	productRepo *repository.ProductRepository,
	customerRepo *repository.CustomerRepository,
	activityRepo *repository.ActivityRepository,
	numbers *NumberSequenceService,
	customers *CustomerService,
	settings *SettingService,
	stock wms.StockChecker,
	m *metrics.Metrics,
	logger *zap.Logger,
) *OrderService {
	if stock == nil {
		stock = wms.Disabled{}
	}
	return &OrderService{
		db:           db,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		numbers:      numbers,
		customers:    customers,
		settings:     settings,
		stock:        stock,
		activities:   activityRecorder{repo: activityRepo, logger: logger},
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// cartLine is a cart input resolved against the catalogue
type cartLine struct {
	product     *domain.Product
	unit        string
	factor      decimal.Decimal
	unitPrice   decimal.Decimal
	shippingFee decimal.Decimal
	options     string
	quantity    int
}

// resolveLine prices one cart line and checks its unit and option choices
func resolveLine(product *domain.Product, in domain.CartLineInput) (cartLine, error) {
	line := cartLine{
		product:     product,
		unit:        product.BaseUnit,
		factor:      decimal.NewFromInt(1),
		unitPrice:   product.Price,
		shippingFee: product.ShippingFee,
		quantity:    in.Quantity,
	}

	if in.UnitID != nil {
		found := false
		for _, u := range product.Units {
			if u.ID == *in.UnitID {
				line.unit = u.Name
				line.factor = u.Factor
				line.unitPrice = u.Price
				line.shippingFee = product.ShippingFee.Mul(u.Factor)
				found = true
				break
			}
		}
		if !found {
			return line, fmt.Errorf("%w: %s", ErrInvalidUnit, product.Name)
		}
	}

	selected := make(map[uuid.UUID]uuid.UUID, len(in.Options))
	for _, o := range in.Options {
		if _, dup := selected[o.OptionID]; dup {
			return line, fmt.Errorf("%w: %s", ErrInvalidOption, product.Name)
		}
		selected[o.OptionID] = o.ValueID
	}
	if len(selected) > len(product.Options) {
		return line, fmt.Errorf("%w: %s", ErrInvalidOption, product.Name)
	}

	labels := make([]string, 0, len(product.Options))
	for _, option := range product.Options {
		valueID, ok := selected[option.ID]
		if !ok {
			return line, fmt.Errorf("%w: %s (%s)", ErrOptionRequired, product.Name, option.Name)
		}
		var value *domain.ProductOptionValue
		for i := range option.Values {
			if option.Values[i].ID == valueID {
				value = &option.Values[i]
				break
			}
		}
		if value == nil {
			return line, fmt.Errorf("%w: %s (%s)", ErrInvalidOption, product.Name, option.Name)
		}
		if !value.Available {
			return line, fmt.Errorf("%w: %s %s", ErrOptionUnavailable, product.Name, value.Value)
		}
		labels = append(labels, fmt.Sprintf("%s: %s", option.Name, value.Value))
	}
	line.options = strings.Join(labels, ", ")

	return line, nil
}

// resolveCart loads every product in the cart and resolves each line
func (s *OrderService) resolveCart(ctx context.Context, inputs []domain.CartLineInput) ([]cartLine, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	lines := make([]cartLine, 0, len(inputs))
	for _, in := range inputs {
		product, ok := products[in.ProductID]
		if !ok || product.Status != domain.ProductStatusActive {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, in.ProductID)
		}
		line, err := resolveLine(product, in)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *OrderService) priceCart(ctx context.Context, inputs []domain.CartLineInput) ([]cartLine, pricing.CartTotals, error) {
	lines, err := s.resolveCart(ctx, inputs)
	if err != nil {
		return nil, pricing.CartTotals{}, err
	}
	policy, err := s.settings.ShippingPolicy(ctx)
	if err != nil {
		return nil, pricing.CartTotals{}, err
	}

	cart := make([]pricing.CartLine, len(lines))
	for i, l := range lines {
		cart[i] = pricing.CartLine{UnitPrice: l.unitPrice, Quantity: l.quantity, ShippingFee: l.shippingFee}
	}
	return lines, pricing.CalculateCart(cart, policy), nil
}

// QuoteCart prices a cart without placing an order
func (s *OrderService) QuoteCart(ctx context.Context, req *domain.CartQuoteRequest) (*domain.CartQuoteDTO, error) {
	lines, totals, err := s.priceCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	dto := &domain.CartQuoteDTO{
		Lines:        make([]domain.CartLineDTO, len(lines)),
		Subtotal:     mapper.Money(totals.Subtotal),
		ShippingFee:  mapper.Money(totals.Shipping),
		FreeShipping: totals.FreeShipping,
		VATIncluded:  mapper.Money(totals.VATIncluded),
		Total:        mapper.Money(totals.Total),
	}
	for i, l := range lines {
		dto.Lines[i] = domain.CartLineDTO{
			ProductID:   l.product.ID,
			SKU:         l.product.SKU,
			Name:        l.product.Name,
			Unit:        l.unit,
			Options:     l.options,
			Quantity:    l.quantity,
			UnitPrice:   mapper.Money(l.unitPrice),
			ShippingFee: mapper.Money(l.shippingFee),
			LineTotal:   mapper.Money(totals.LineTotals[i]),
		}
	}
	return dto, nil
}

// checkStock asks the warehouse for every product in the cart, using the same
// item code as the admin stock view. A disabled integration skips the check.
// An explicit WMS code the warehouse does not know is out of stock; a SKU
// fallback it does not know is an untracked item and passes.
func (s *OrderService) checkStock(ctx context.Context, lines []cartLine) error {
	needed := make(map[string]decimal.Decimal)
	names := make(map[string]string)
	linked := make(map[string]bool)
	var codes []string
	for _, l := range lines {
		code := itemCode(l.product)
		if _, seen := needed[code]; !seen {
			codes = append(codes, code)
			names[code] = l.product.Name
		}
		if l.product.WMSItemCode != "" {
			linked[code] = true
		}
		needed[code] = needed[code].Add(l.factor.Mul(decimal.NewFromInt(int64(l.quantity))))
	}

	for _, code := range codes {
		level, err := s.stock.CheckStock(ctx, code)
		switch {
		case errors.Is(err, wms.ErrWMSDisabled):
			s.metrics.StockChecked("disabled")
			return nil
		case errors.Is(err, wms.ErrItemNotFound):
			s.metrics.StockChecked("not_found")
			if !linked[code] {
				continue
			}
			return fmt.Errorf("%w: %s", ErrOutOfStock, names[code])
		case err != nil:
			s.metrics.StockChecked("error")
			s.logger.Warn("stock check failed during checkout", zap.String("item_code", code), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrStockCheckFailed, err)
		}
		s.metrics.StockChecked("ok")
		if decimal.NewFromFloat(level.Available()).LessThan(needed[code]) {
			return fmt.Errorf("%w: %s", ErrOutOfStock, names[code])
		}
	}
	return nil
}

// checkoutCustomer finds the buyer: the signed-in customer, else an active
// customer with the same phone. Nil means a new customer must be created.
func (s *OrderService) checkoutCustomer(ctx context.Context, phone string) (*domain.Customer, error) {
	if id, ok := auth.CustomerIDFromContext(ctx); ok {
		customer, err := s.customerRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, fmt.Errorf("failed to get customer: %w", err)
		}
		if customer.Status != domain.CustomerStatusActive {
			return nil, ErrCustomerNotFound
		}
		return customer, nil
	}

	customer, err := s.customerRepo.GetActiveByPhone(ctx, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	return customer, nil
}

// Checkout places a storefront order and updates the customer's aggregates
func (s *OrderService) Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.SalesOrderDTO, error) {
	if !domain.IsValidPostalCode(req.PostalCode) {
		return nil, ErrInvalidPostalCode
	}

	lines, totals, err := s.priceCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if err := s.checkStock(ctx, lines); err != nil {
		return nil, err
	}

	customer, err := s.checkoutCustomer(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	number, err := s.numbers.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	placedAt := s.now()
	order := &domain.SalesOrder{
		Number:          number,
		RecipientName:   strings.TrimSpace(req.RecipientName),
		RecipientPhone:  req.Phone,
		ShippingAddress: req.Address,
		SubDistrict:     req.SubDistrict,
		District:        req.District,
		Province:        req.Province,
		PostalCode:      req.PostalCode,
		Subtotal:        totals.Subtotal,
		ShippingFee:     totals.Shipping,
		Discount:        decimal.Zero,
		VATAmount:       totals.VATIncluded,
		VATIncluded:     true,
		Total:           totals.Total,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		DeliveryStatus:  domain.DeliveryStatusPending,
		Notes:           req.Notes,
		PlacedAt:        placedAt,
		Items:           make([]domain.SalesOrderItem, len(lines)),
	}
	for i, l := range lines {
		productID := l.product.ID
		order.Items[i] = domain.SalesOrderItem{
			ProductID:   &productID,
			SKU:         l.product.SKU,
			Name:        l.product.Name,
			Unit:        l.unit,
			Options:     l.options,
			Quantity:    decimal.NewFromInt(int64(l.quantity)),
			UnitPrice:   l.unitPrice,
			ShippingFee: l.shippingFee,
			LineTotal:   totals.LineTotals[i],
		}
	}

	newCustomer := customer == nil
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if newCustomer {
			customer = &domain.Customer{
				Name:        order.RecipientName,
				Email:       strings.ToLower(req.Email),
				Phone:       req.Phone,
				Address:     req.Address,
				SubDistrict: req.SubDistrict,
				District:    req.District,
				Province:    req.Province,
				PostalCode:  req.PostalCode,
				Type:        domain.CustomerTypeNew,
				Status:      domain.CustomerStatusActive,
				TotalSpent:  decimal.Zero,
			}
			if err := s.customerRepo.WithTx(tx).Create(ctx, customer); err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}
		}
		order.CustomerID = customer.ID

		if err := s.orderRepo.WithTx(tx).Create(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return s.customers.RecordOrder(ctx, tx, customer.ID, order.Total, placedAt)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.OrderPlaced("storefront", string(order.PaymentMethod), mapper.Money(order.Total))
	if newCustomer {
		s.activities.record(ctx, domain.ActivityTargetCustomer, customer.ID, "created",
			"ลูกค้าใหม่จากหน้าร้าน", fmt.Sprintf("สร้างจากคำสั่งซื้อ %s", order.Number))
	}
	s.activities.record(ctx, domain.ActivityTargetOrder, order.ID, "created",
		"คำสั่งซื้อใหม่", fmt.Sprintf("%s ยอดรวม %s บาท", order.Number, order.Total.StringFixed(2)))

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("number", order.Number),
		zap.String("customer_id", customer.ID.String()),
		zap.Bool("new_customer", newCustomer),
		zap.String("total", order.Total.StringFixed(2)))

	return s.GetByID(ctx, order.ID)
}

func (s *OrderService) load(ctx context.Context, id uuid.UUID) (*domain.SalesOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func orderDTO(order *domain.SalesOrder) *domain.SalesOrderDTO {
	dto := mapper.ToSalesOrderDTO(order)
	return &dto
}

func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesOrderDTO, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return orderDTO(order), nil
}

// GetForCustomer returns an order only to the customer who placed it
func (s *OrderService) GetForCustomer(ctx context.Context, customerID, id uuid.UUID) (*domain.SalesOrderDTO, error) {
	order, err := s.orderRepo.GetForCustomer(ctx, id, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return orderDTO(order), nil
}

func (s *OrderService) list(ctx context.Context, page, pageSize int, filters *repository.SalesOrderFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	orders, total, err := s.orderRepo.List(ctx, page, pageSize, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	dtos := make([]domain.SalesOrderDTO, len(orders))
	for i := range orders {
		dtos[i] = mapper.ToSalesOrderDTO(&orders[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

// ListForCustomer returns the order history of one customer, newest first
func (s *OrderService) ListForCustomer(ctx context.Context, customerID uuid.UUID, page, pageSize int) (*domain.PaginatedResponse, error) {
	return s.list(ctx, page, pageSize, &repository.SalesOrderFilters{CustomerID: &customerID},
		repository.SortConfig{Field: "placedAt", Order: repository.SortOrderDesc})
}

func (s *OrderService) ListAdmin(ctx context.Context, page, pageSize int, filters *repository.SalesOrderFilters, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	return s.list(ctx, page, pageSize, filters, sort)
}

// UpdateDelivery moves the order along the delivery workflow. Sending the
// current status again only updates carrier and tracking number.
func (s *OrderService) UpdateDelivery(ctx context.Context, id uuid.UUID, req *domain.UpdateDeliveryRequest) (*domain.SalesOrderDTO, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := order.DeliveryStatus
	wasCounted := order.CountsTowardSpend()
	if req.Status != previous && !previous.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidDeliveryTransition, previous, req.Status)
	}

	if req.Carrier != "" {
		order.Carrier = req.Carrier
	}
	if req.TrackingNumber != "" {
		order.TrackingNumber = req.TrackingNumber
	}

	now := s.now()
	if req.Status != previous {
		order.DeliveryStatus = req.Status
		switch req.Status {
		case domain.DeliveryStatusShipped:
			order.ShippedAt = &now
		case domain.DeliveryStatusDelivered:
			order.DeliveredAt = &now
		}
	}

	if err := s.save(ctx, order, wasCounted); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("%s: %s → %s", order.Number, previous.Label(), order.DeliveryStatus.Label())
	if order.TrackingNumber != "" {
		body += fmt.Sprintf(" (%s %s)", order.Carrier, order.TrackingNumber)
	}
	s.activities.record(ctx, domain.ActivityTargetOrder, order.ID, "delivery_updated", "อัปเดตสถานะจัดส่ง", body)

	return s.GetByID(ctx, id)
}

// UpdatePayment records payment or refund
func (s *OrderService) UpdatePayment(ctx context.Context, id uuid.UUID, req *domain.UpdatePaymentRequest) (*domain.SalesOrderDTO, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := order.PaymentStatus
	if req.Status == previous {
		return orderDTO(order), nil
	}
	if !allowed(paymentTransitions[previous], req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidPaymentTransition, previous, req.Status)
	}

	wasCounted := order.CountsTowardSpend()
	order.PaymentStatus = req.Status
	if req.Status == domain.PaymentStatusPaid {
		now := s.now()
		order.PaidAt = &now
	}

	if err := s.save(ctx, order, wasCounted); err != nil {
		return nil, err
	}

	s.activities.record(ctx, domain.ActivityTargetOrder, order.ID, "payment_updated", "อัปเดตสถานะชำระเงิน",
		fmt.Sprintf("%s: %s → %s", order.Number, previous.Label(), req.Status.Label()))

	return s.GetByID(ctx, id)
}

// save writes a status change. When the order stops counting toward the
// customer's spend, the aggregates are rebuilt in the same transaction.
func (s *OrderService) save(ctx context.Context, order *domain.SalesOrder, wasCounted bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Update(ctx, order); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		if wasCounted == order.CountsTowardSpend() {
			return nil
		}
		return s.customers.RefreshOrderStats(ctx, tx, order.CustomerID)
	})
}

func allowed[T comparable](options []T, next T) bool {
	for _, o := range options {
		if o == next {
			return true
		}
	}
	return false
}

// OpenClaim files a claim on a delivered order owned by the customer
func (s *OrderService) OpenClaim(ctx context.Context, customerID, orderID uuid.UUID, req *domain.OpenClaimRequest) (*domain.SalesOrderDTO, error) {
	order, err := s.orderRepo.GetForCustomer(ctx, orderID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.DeliveryStatus != domain.DeliveryStatusDelivered {
		return nil, ErrClaimNotAllowed
	}

	open, err := s.orderRepo.CountOpenClaims(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count claims: %w", err)
	}
	if open > 0 {
		return nil, ErrClaimAlreadyOpen
	}

	claim := &domain.OrderClaim{
		SalesOrderID: order.ID,
		Reason:       strings.TrimSpace(req.Reason),
		Description:  req.Description,
		Status:       domain.ClaimStatusOpen,
	}
	if err := s.orderRepo.CreateClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	s.activities.record(ctx, domain.ActivityTargetOrder, order.ID, "claim_opened", "ลูกค้าแจ้งเคลมสินค้า",
		fmt.Sprintf("%s: %s", order.Number, claim.Reason))

	return s.GetByID(ctx, order.ID)
}

// ResolveClaim moves a claim to approved, rejected or resolved
func (s *OrderService) ResolveClaim(ctx context.Context, orderID, claimID uuid.UUID, req *domain.ResolveClaimRequest) (*domain.SalesOrderDTO, error) {
	claim, err := s.orderRepo.GetClaim(ctx, orderID, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	if claim.Status.IsClosed() {
		return nil, ErrClaimClosed
	}
	if !allowed(claimTransitions[claim.Status], req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidClaimTransition, claim.Status, req.Status)
	}

	previous := claim.Status
	claim.Status = req.Status
	if req.Resolution != "" {
		claim.Resolution = req.Resolution
	}
	if req.Status.IsClosed() {
		now := s.now()
		claim.ResolvedAt = &now
	}

	if err := s.orderRepo.UpdateClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to update claim: %w", err)
	}

	s.activities.record(ctx, domain.ActivityTargetOrder, orderID, "claim_updated", "อัปเดตสถานะเคลม",
		fmt.Sprintf("%s → %s", previous.Label(), req.Status.Label()))

	return s.GetByID(ctx, orderID)
}
