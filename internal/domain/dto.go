package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs for API responses. Money is serialized as a JSON number with two decimals,
// timestamps as ISO 8601 strings.

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// PaginatedResponse wraps a page of results
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Customers

type CustomerDTO struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	CompanyName string         `json:"companyName,omitempty"`
	TaxID       string         `json:"taxId,omitempty"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address,omitempty"`
	SubDistrict string         `json:"subDistrict,omitempty"`
	District    string         `json:"district,omitempty"`
	Province    string         `json:"province,omitempty"`
	PostalCode  string         `json:"postalCode,omitempty"`
	Type        CustomerType   `json:"type"`
	TypeLabel   string         `json:"typeLabel"`
	Status      CustomerStatus `json:"status"`
	TotalSpent  float64        `json:"totalSpent"`
	OrderCount  int            `json:"orderCount"`
	LastOrderAt *string        `json:"lastOrderAt,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	CompanyName string `json:"companyName,omitempty" validate:"max=200"`
	TaxID       string `json:"taxId,omitempty" validate:"omitempty,thtaxid"`
	Email       string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       string `json:"phone" validate:"required,thphone"`
	Address     string `json:"address,omitempty" validate:"max=500"`
	SubDistrict string `json:"subDistrict,omitempty" validate:"max=100"`
	District    string `json:"district,omitempty" validate:"max=100"`
	Province    string `json:"province,omitempty" validate:"max=100"`
	PostalCode  string `json:"postalCode,omitempty" validate:"omitempty,thpostal"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateCustomerRequest has PATCH semantics: nil fields are left unchanged
type UpdateCustomerRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	CompanyName *string `json:"companyName,omitempty" validate:"omitempty,max=200"`
	TaxID       *string `json:"taxId,omitempty" validate:"omitempty,thtaxid"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,thphone"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	SubDistrict *string `json:"subDistrict,omitempty" validate:"omitempty,max=100"`
	District    *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Province    *string `json:"province,omitempty" validate:"omitempty,max=100"`
	PostalCode  *string `json:"postalCode,omitempty" validate:"omitempty,thpostal"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateProfileRequest is the subset of customer fields a customer may edit
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,thphone"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	SubDistrict *string `json:"subDistrict,omitempty" validate:"omitempty,max=100"`
	District    *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Province    *string `json:"province,omitempty" validate:"omitempty,max=100"`
	PostalCode  *string `json:"postalCode,omitempty" validate:"omitempty,thpostal"`
}

// ToCustomerUpdate converts a profile edit into the admin update shape
func (r *UpdateProfileRequest) ToCustomerUpdate() *UpdateCustomerRequest {
	return &UpdateCustomerRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		SubDistrict: r.SubDistrict,
		District:    r.District,
		Province:    r.Province,
		PostalCode:  r.PostalCode,
	}
}

type CustomerTypeCountDTO struct {
	Type  CustomerType `json:"type"`
	Label string       `json:"label"`
	Count int64        `json:"count"`
}

type CustomerSummaryDTO struct {
	Total  int64                  `json:"total"`
	ByType []CustomerTypeCountDTO `json:"byType"`
}

// Products

type ProductUnitDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Factor float64   `json:"factor"`
	Price  float64   `json:"price"`
}

type ProductOptionValueDTO struct {
	ID        uuid.UUID `json:"id"`
	Value     string    `json:"value"`
	Available bool      `json:"available"`
}

type ProductOptionDTO struct {
	ID     uuid.UUID               `json:"id"`
	Name   string                  `json:"name"`
	Values []ProductOptionValueDTO `json:"values"`
}

type ProductDTO struct {
	ID          uuid.UUID          `json:"id"`
	SKU         string             `json:"sku"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category,omitempty"`
	Price       float64            `json:"price"`
	ShippingFee float64            `json:"shippingFee"`
	BaseUnit    string             `json:"baseUnit"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	Status      ProductStatus      `json:"status"`
	StatusLabel string             `json:"statusLabel"`
	WMSItemCode string             `json:"wmsItemCode,omitempty"`
	Units       []ProductUnitDTO   `json:"units"`
	Options     []ProductOptionDTO `json:"options"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

type ProductUnitInput struct {
	Name   string  `json:"name" validate:"required,max=50"`
	Factor float64 `json:"factor" validate:"gt=0"`
	Price  float64 `json:"price" validate:"gte=0"`
}

type ProductOptionValueInput struct {
	Value     string `json:"value" validate:"required,max=100"`
	Available *bool  `json:"available,omitempty"`
}

type ProductOptionInput struct {
	Name   string                    `json:"name" validate:"required,max=100"`
	Values []ProductOptionValueInput `json:"values" validate:"required,min=1,dive"`
}

type CreateProductRequest struct {
	SKU         string               `json:"sku" validate:"required,max=64"`
	Name        string               `json:"name" validate:"required,max=200"`
	Description string               `json:"description,omitempty"`
	Category    string               `json:"category,omitempty" validate:"max=100"`
	Price       float64              `json:"price" validate:"gte=0"`
	ShippingFee float64              `json:"shippingFee" validate:"gte=0"`
	BaseUnit    string               `json:"baseUnit" validate:"required,max=50"`
	ImageURL    string               `json:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	Status      ProductStatus        `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	WMSItemCode string               `json:"wmsItemCode,omitempty" validate:"max=64"`
	Units       []ProductUnitInput   `json:"units,omitempty" validate:"omitempty,dive"`
	Options     []ProductOptionInput `json:"options,omitempty" validate:"omitempty,dive"`
}

// UpdateProductRequest has PATCH semantics. A non-nil Units or Options slice
// replaces the existing set; an empty array removes it.
type UpdateProductRequest struct {
	SKU         *string              `json:"sku,omitempty" validate:"omitempty,min=1,max=64"`
	Name        *string              `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string              `json:"description,omitempty"`
	Category    *string              `json:"category,omitempty" validate:"omitempty,max=100"`
	Price       *float64             `json:"price,omitempty" validate:"omitempty,gte=0"`
	ShippingFee *float64             `json:"shippingFee,omitempty" validate:"omitempty,gte=0"`
	BaseUnit    *string              `json:"baseUnit,omitempty" validate:"omitempty,min=1,max=50"`
	ImageURL    *string              `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	Status      *ProductStatus       `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	WMSItemCode *string              `json:"wmsItemCode,omitempty" validate:"omitempty,max=64"`
	Units       []ProductUnitInput   `json:"units,omitempty" validate:"omitempty,dive"`
	Options     []ProductOptionInput `json:"options,omitempty" validate:"omitempty,dive"`
}

type SetOptionAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type StockLevelDTO struct {
	ProductID uuid.UUID `json:"productId"`
	SKU       string    `json:"sku"`
	ItemCode  string    `json:"itemCode"`
	Warehouse string    `json:"warehouse,omitempty"`
	OnHand    float64   `json:"onHand"`
	Reserved  float64   `json:"reserved"`
	Available float64   `json:"available"`
	InStock   bool      `json:"inStock"`
	CheckedAt string    `json:"checkedAt"`
}

// Quotations

type QuotationItemInput struct {
	ProductID       *uuid.UUID `json:"productId,omitempty"`
	SKU             string     `json:"sku,omitempty" validate:"max=64"`
	Description     string     `json:"description" validate:"required,max=500"`
	Quantity        float64    `json:"quantity" validate:"gt=0"`
	Unit            string     `json:"unit,omitempty" validate:"max=50"`
	UnitPrice       float64    `json:"unitPrice" validate:"gte=0"`
	DiscountPercent float64    `json:"discountPercent" validate:"gte=0,lte=100"`
}

type CreateQuotationRequest struct {
	CustomerID      uuid.UUID            `json:"customerId" validate:"required"`
	IssueDate       *time.Time           `json:"issueDate,omitempty"`
	ValidDays       *int                 `json:"validDays,omitempty" validate:"omitempty,gte=1,lte=365"`
	Items           []QuotationItemInput `json:"items" validate:"required,min=1,dive"`
	SpecialDiscount float64              `json:"specialDiscount" validate:"gte=0"`
	VATRate         *float64             `json:"vatRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes           string               `json:"notes,omitempty"`
	Terms           string               `json:"terms,omitempty"`
}

// UpdateQuotationRequest has PATCH semantics and is only accepted for drafts
type UpdateQuotationRequest struct {
	ValidUntil      *time.Time           `json:"validUntil,omitempty"`
	SpecialDiscount *float64             `json:"specialDiscount,omitempty" validate:"omitempty,gte=0"`
	VATRate         *float64             `json:"vatRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes           *string              `json:"notes,omitempty"`
	Terms           *string              `json:"terms,omitempty"`
	Items           []QuotationItemInput `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

type ReplaceQuotationItemsRequest struct {
	Items []QuotationItemInput `json:"items" validate:"required,min=1,dive"`
}

type RejectQuotationRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type QuotationItemDTO struct {
	ID              uuid.UUID  `json:"id"`
	LineNo          int        `json:"lineNo"`
	ProductID       *uuid.UUID `json:"productId,omitempty"`
	SKU             string     `json:"sku,omitempty"`
	Description     string     `json:"description"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit,omitempty"`
	UnitPrice       float64    `json:"unitPrice"`
	DiscountPercent float64    `json:"discountPercent"`
	LineTotal       float64    `json:"lineTotal"`
}

type QuotationDTO struct {
	ID                  uuid.UUID          `json:"id"`
	Number              string             `json:"number"`
	CustomerID          uuid.UUID          `json:"customerId"`
	CustomerName        string             `json:"customerName"`
	CustomerCompany     string             `json:"customerCompany,omitempty"`
	CustomerTaxID       string             `json:"customerTaxId,omitempty"`
	CustomerAddress     string             `json:"customerAddress,omitempty"`
	CustomerPhone       string             `json:"customerPhone,omitempty"`
	CustomerEmail       string             `json:"customerEmail,omitempty"`
	Status              QuotationStatus    `json:"status"`
	StatusLabel         string             `json:"statusLabel"`
	IssueDate           string             `json:"issueDate"`
	ValidUntil          string             `json:"validUntil"`
	Items               []QuotationItemDTO `json:"items"`
	GrossAmount         float64            `json:"grossAmount"`
	ItemDiscount        float64            `json:"itemDiscount"`
	Subtotal            float64            `json:"subtotal"`
	SpecialDiscount     float64            `json:"specialDiscount"`
	AmountAfterDiscount float64            `json:"amountAfterDiscount"`
	VATRate             float64            `json:"vatRate"`
	VATAmount           float64            `json:"vatAmount"`
	GrandTotal          float64            `json:"grandTotal"`
	GrandTotalText      string             `json:"grandTotalText"`
	Notes               string             `json:"notes,omitempty"`
	Terms               string             `json:"terms,omitempty"`
	SentAt              *string            `json:"sentAt,omitempty"`
	RespondedAt         *string            `json:"respondedAt,omitempty"`
	RejectReason        string             `json:"rejectReason,omitempty"`
	SalesOrderID        *uuid.UUID         `json:"salesOrderId,omitempty"`
	HasDocument         bool               `json:"hasDocument"`
	CreatedAt           string             `json:"createdAt"`
	UpdatedAt           string             `json:"updatedAt"`
}

// Storefront cart and orders

type CartOptionInput struct {
	OptionID uuid.UUID `json:"optionId" validate:"required"`
	ValueID  uuid.UUID `json:"valueId" validate:"required"`
}

type CartLineInput struct {
	ProductID uuid.UUID         `json:"productId" validate:"required"`
	UnitID    *uuid.UUID        `json:"unitId,omitempty"`
	Quantity  int               `json:"quantity" validate:"gt=0,lte=9999"`
	Options   []CartOptionInput `json:"options,omitempty" validate:"omitempty,dive"`
}

type CartQuoteRequest struct {
	Items []CartLineInput `json:"items" validate:"required,min=1,dive"`
}

type CartLineDTO struct {
	ProductID   uuid.UUID `json:"productId"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Options     string    `json:"options,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	ShippingFee float64   `json:"shippingFee"`
	LineTotal   float64   `json:"lineTotal"`
}

type CartQuoteDTO struct {
	Lines        []CartLineDTO `json:"lines"`
	Subtotal     float64       `json:"subtotal"`
	ShippingFee  float64       `json:"shippingFee"`
	FreeShipping bool          `json:"freeShipping"`
	VATIncluded  float64       `json:"vatIncluded"`
	Total        float64       `json:"total"`
}

type CheckoutRequest struct {
	Items         []CartLineInput `json:"items" validate:"required,min=1,dive"`
	RecipientName string          `json:"recipientName" validate:"required,max=200"`
	Phone         string          `json:"phone" validate:"required,thphone"`
	Email         string          `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Address       string          `json:"address" validate:"required,max=500"`
	SubDistrict   string          `json:"subDistrict,omitempty" validate:"max=100"`
	District      string          `json:"district,omitempty" validate:"max=100"`
	Province      string          `json:"province" validate:"required,max=100"`
	PostalCode    string          `json:"postalCode" validate:"required,thpostal"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required,oneof=bank_transfer promptpay credit_card cod"`
	Notes         string          `json:"notes,omitempty" validate:"max=1000"`
}

type SalesOrderItemDTO struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   *uuid.UUID `json:"productId,omitempty"`
	SKU         string     `json:"sku,omitempty"`
	Name        string     `json:"name"`
	Unit        string     `json:"unit,omitempty"`
	Options     string     `json:"options,omitempty"`
	Quantity    float64    `json:"quantity"`
	UnitPrice   float64    `json:"unitPrice"`
	ShippingFee float64    `json:"shippingFee"`
	LineTotal   float64    `json:"lineTotal"`
}

type OrderClaimDTO struct {
	ID          uuid.UUID   `json:"id"`
	Reason      string      `json:"reason"`
	Description string      `json:"description,omitempty"`
	Status      ClaimStatus `json:"status"`
	StatusLabel string      `json:"statusLabel"`
	Resolution  string      `json:"resolution,omitempty"`
	ResolvedAt  *string     `json:"resolvedAt,omitempty"`
	CreatedAt   string      `json:"createdAt"`
}

type SalesOrderDTO struct {
	ID                  uuid.UUID           `json:"id"`
	Number              string              `json:"number"`
	CustomerID          uuid.UUID           `json:"customerId"`
	QuotationID         *uuid.UUID          `json:"quotationId,omitempty"`
	RecipientName       string              `json:"recipientName"`
	RecipientPhone      string              `json:"recipientPhone"`
	ShippingAddress     string              `json:"shippingAddress"`
	SubDistrict         string              `json:"subDistrict,omitempty"`
	District            string              `json:"district,omitempty"`
	Province            string              `json:"province,omitempty"`
	PostalCode          string              `json:"postalCode"`
	Items               []SalesOrderItemDTO `json:"items"`
	Subtotal            float64             `json:"subtotal"`
	ShippingFee         float64             `json:"shippingFee"`
	Discount            float64             `json:"discount"`
	VATAmount           float64             `json:"vatAmount"`
	VATIncluded         bool                `json:"vatIncluded"`
	Total               float64             `json:"total"`
	PaymentMethod       PaymentMethod       `json:"paymentMethod"`
	PaymentMethodLabel  string              `json:"paymentMethodLabel"`
	PaymentStatus       PaymentStatus       `json:"paymentStatus"`
	PaymentStatusLabel  string              `json:"paymentStatusLabel"`
	PaidAt              *string             `json:"paidAt,omitempty"`
	DeliveryStatus      DeliveryStatus      `json:"deliveryStatus"`
	DeliveryStatusLabel string              `json:"deliveryStatusLabel"`
	Carrier             string              `json:"carrier,omitempty"`
	TrackingNumber      string              `json:"trackingNumber,omitempty"`
	ShippedAt           *string             `json:"shippedAt,omitempty"`
	DeliveredAt         *string             `json:"deliveredAt,omitempty"`
	Notes               string              `json:"notes,omitempty"`
	Claims              []OrderClaimDTO     `json:"claims"`
	PlacedAt            string              `json:"placedAt"`
	CreatedAt           string              `json:"createdAt"`
	UpdatedAt           string              `json:"updatedAt"`
}

type UpdateDeliveryRequest struct {
	Status         DeliveryStatus `json:"status" validate:"required,oneof=pending preparing shipped delivered cancelled returned"`
	Carrier        string         `json:"carrier,omitempty" validate:"max=100"`
	TrackingNumber string         `json:"trackingNumber,omitempty" validate:"max=100"`
}

type UpdatePaymentRequest struct {
	Status PaymentStatus `json:"status" validate:"required,oneof=pending paid refunded"`
}

type OpenClaimRequest struct {
	Reason      string `json:"reason" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

type ResolveClaimRequest struct {
	Status     ClaimStatus `json:"status" validate:"required,oneof=approved rejected resolved"`
	Resolution string      `json:"resolution,omitempty" validate:"max=2000"`
}

// Settings

type ShippingSettingDTO struct {
	BaseShippingFee       float64 `json:"baseShippingFee"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	UpdatedBy             string  `json:"updatedBy,omitempty"`
	UpdatedAt             string  `json:"updatedAt,omitempty"`
}

type UpdateShippingSettingRequest struct {
	BaseShippingFee       float64 `json:"baseShippingFee" validate:"gte=0"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold" validate:"gte=0"`
}

// Activities

type ActivityDTO struct {
	ID         uuid.UUID          `json:"id"`
	TargetType ActivityTargetType `json:"targetType"`
	TargetID   uuid.UUID          `json:"targetId"`
	Action     string             `json:"action"`
	Title      string             `json:"title"`
	Body       string             `json:"body,omitempty"`
	ActorID    string             `json:"actorId,omitempty"`
	OccurredAt string             `json:"occurredAt"`
}
