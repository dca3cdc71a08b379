package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BaseModel with common fields. IDs are generated client side so the same
// models work against PostgreSQL and the sqlite test database.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns a new UUID when none is set
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// CustomerType is the lifecycle tag derived from order recency and spend
type CustomerType string

const (
	CustomerTypeNew      CustomerType = "new"
	CustomerTypeRegular  CustomerType = "regular"
	CustomerTypeTarget   CustomerType = "target"
	CustomerTypeInactive CustomerType = "inactive"
)

// AllCustomerTypes lists customer types in display order
var AllCustomerTypes = []CustomerType{
	CustomerTypeNew,
	CustomerTypeRegular,
	CustomerTypeTarget,
	CustomerTypeInactive,
}

// IsValid checks if the customer type is known
func (t CustomerType) IsValid() bool {
	switch t {
	case CustomerTypeNew, CustomerTypeRegular, CustomerTypeTarget, CustomerTypeInactive:
		return true
	}
	return false
}

// Label returns the Thai display name
func (t CustomerType) Label() string {
	switch t {
	case CustomerTypeNew:
		return "ลูกค้าใหม่"
	case CustomerTypeRegular:
		return "ลูกค้าประจำ"
	case CustomerTypeTarget:
		return "ลูกค้าเป้าหมาย"
	case CustomerTypeInactive:
		return "ลูกค้าไม่เคลื่อนไหว"
	}
	return string(t)
}

// CustomerStatus represents the record status of a customer
type CustomerStatus string

const (
	CustomerStatusActive  CustomerStatus = "active"
	CustomerStatusDeleted CustomerStatus = "deleted"
)

// IsValid checks if the customer status is known
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusDeleted
}

// Customer is a storefront buyer or B2B account
type Customer struct {
	BaseModel
	Name        string          `gorm:"type:varchar(200);not null;index"`
	CompanyName string          `gorm:"type:varchar(200);column:company_name"`
	TaxID       string          `gorm:"type:varchar(13);column:tax_id"`
	Email       string          `gorm:"type:varchar(255);index"`
	Phone       string          `gorm:"type:varchar(20);not null"`
	Address     string          `gorm:"type:varchar(500)"`
	SubDistrict string          `gorm:"type:varchar(100);column:sub_district"`
	District    string          `gorm:"type:varchar(100)"`
	Province    string          `gorm:"type:varchar(100)"`
	PostalCode  string          `gorm:"type:varchar(5);column:postal_code"`
	Type        CustomerType    `gorm:"type:varchar(20);not null;index"`
	Status      CustomerStatus  `gorm:"type:varchar(20);not null;index"`
	TotalSpent  decimal.Decimal `gorm:"type:decimal(15,2);not null;column:total_spent"`
	OrderCount  int             `gorm:"not null;column:order_count"`
	LastOrderAt *time.Time      `gorm:"column:last_order_at;index"`
	Notes       string          `gorm:"type:text"`
}

// ProductStatus represents the availability of a product in the store
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusDeleted  ProductStatus = "deleted"
)

// IsValid checks if the product status is known
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDeleted:
		return true
	}
	return false
}

// Label returns the Thai display name
func (s ProductStatus) Label() string {
	switch s {
	case ProductStatusActive:
		return "เปิดขาย"
	case ProductStatusInactive:
		return "ปิดการขาย"
	case ProductStatusDeleted:
		return "ลบแล้ว"
	}
	return string(s)
}

// Product is a sellable item
type Product struct {
	BaseModel
	SKU         string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null;index"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(100);index"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ShippingFee decimal.Decimal `gorm:"type:decimal(15,2);not null;column:shipping_fee"`
	BaseUnit    string          `gorm:"type:varchar(50);not null;column:base_unit"`
	ImageURL    string          `gorm:"type:varchar(500);column:image_url"`
	Status      ProductStatus   `gorm:"type:varchar(20);not null;index"`
	// WMSItemCode links the product to the warehouse system; empty means stock is not tracked
	WMSItemCode string          `gorm:"type:varchar(64);column:wms_item_code"`
	Units       []ProductUnit   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Options     []ProductOption `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductUnit is a sales unit variant, e.g. box of 12
type ProductUnit struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index;column:product_id"`
	Name      string          `gorm:"type:varchar(50);not null"`
	Factor    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SortOrder int             `gorm:"not null;column:sort_order"`
}

// ProductOption is a named choice such as colour or size
type ProductOption struct {
	BaseModel
	ProductID uuid.UUID            `gorm:"type:uuid;not null;index;column:product_id"`
	Name      string               `gorm:"type:varchar(100);not null"`
	SortOrder int                  `gorm:"not null;column:sort_order"`
	Values    []ProductOptionValue `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
}

// ProductOptionValue is one selectable value of an option
type ProductOptionValue struct {
	BaseModel
	OptionID  uuid.UUID `gorm:"type:uuid;not null;index;column:option_id"`
	Value     string    `gorm:"type:varchar(100);not null"`
	Available bool      `gorm:"not null"`
	SortOrder int       `gorm:"not null;column:sort_order"`
}

// QuotationStatus represents where a quotation is in its lifecycle
type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "draft"
	QuotationStatusSent      QuotationStatus = "sent"
	QuotationStatusAccepted  QuotationStatus = "accepted"
	QuotationStatusRejected  QuotationStatus = "rejected"
	QuotationStatusExpired   QuotationStatus = "expired"
	QuotationStatusCancelled QuotationStatus = "cancelled"
)

var quotationTransitions = map[QuotationStatus][]QuotationStatus{
	QuotationStatusDraft: {QuotationStatusSent, QuotationStatusCancelled},
	QuotationStatusSent: {
		QuotationStatusAccepted,
		QuotationStatusRejected,
		QuotationStatusExpired,
		QuotationStatusCancelled,
	},
}

// IsValid checks if the quotation status is known
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted,
		QuotationStatusRejected, QuotationStatusExpired, QuotationStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving to next is allowed
func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	for _, allowed := range quotationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label returns the Thai display name
func (s QuotationStatus) Label() string {
	switch s {
	case QuotationStatusDraft:
		return "ร่าง"
	case QuotationStatusSent:
		return "ส่งแล้ว"
	case QuotationStatusAccepted:
		return "อนุมัติ"
	case QuotationStatusRejected:
		return "ปฏิเสธ"
	case QuotationStatusExpired:
		return "หมดอายุ"
	case QuotationStatusCancelled:
		return "ยกเลิก"
	}
	return string(s)
}

// Quotation is a price proposal sent to a customer.
// Customer fields are a snapshot taken when the quotation is created.
type Quotation struct {
	BaseModel
	Number              string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;not null;index;column:customer_id"`
	CustomerName        string          `gorm:"type:varchar(200);not null;column:customer_name"`
	CustomerCompany     string          `gorm:"type:varchar(200);column:customer_company"`
	CustomerTaxID       string          `gorm:"type:varchar(13);column:customer_tax_id"`
	CustomerAddress     string          `gorm:"type:varchar(800);column:customer_address"`
	CustomerPhone       string          `gorm:"type:varchar(20);column:customer_phone"`
	CustomerEmail       string          `gorm:"type:varchar(255);column:customer_email"`
	Status              QuotationStatus `gorm:"type:varchar(20);not null;index"`
	IssueDate           time.Time       `gorm:"not null;column:issue_date"`
	ValidUntil          time.Time       `gorm:"not null;index;column:valid_until"`
	Items               []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	GrossAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null;column:gross_amount"`
	ItemDiscount        decimal.Decimal `gorm:"type:decimal(15,2);not null;column:item_discount"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SpecialDiscount     decimal.Decimal `gorm:"type:decimal(15,2);not null;column:special_discount"`
	AmountAfterDiscount decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount_after_discount"`
	VATRate             decimal.Decimal `gorm:"type:decimal(5,2);not null;column:vat_rate"`
	VATAmount           decimal.Decimal `gorm:"type:decimal(15,2);not null;column:vat_amount"`
	GrandTotal          decimal.Decimal `gorm:"type:decimal(15,2);not null;column:grand_total"`
	Notes               string          `gorm:"type:text"`
	Terms               string          `gorm:"type:text"`
	SentAt              *time.Time      `gorm:"column:sent_at"`
	RespondedAt         *time.Time      `gorm:"column:responded_at"`
	RejectReason        string          `gorm:"type:varchar(500);column:reject_reason"`
	SalesOrderID        *uuid.UUID      `gorm:"type:uuid;column:sales_order_id"`
	DocumentPath        string          `gorm:"type:varchar(500);column:document_path"`
	CreatedBy           string          `gorm:"type:varchar(100);column:created_by"`
}

// QuotationItem is one priced line of a quotation
type QuotationItem struct {
	BaseModel
	QuotationID     uuid.UUID       `gorm:"type:uuid;not null;index;column:quotation_id"`
	LineNo          int             `gorm:"not null;column:line_no"`
	ProductID       *uuid.UUID      `gorm:"type:uuid;column:product_id"`
	SKU             string          `gorm:"type:varchar(64)"`
	Description     string          `gorm:"type:varchar(500);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unit            string          `gorm:"type:varchar(50)"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(15,2);not null;column:unit_price"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;column:discount_percent"`
	LineTotal       decimal.Decimal `gorm:"type:decimal(15,2);not null;column:line_total"`
}

// PaymentMethod is how a customer pays for an order
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodPromptPay    PaymentMethod = "promptpay"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodCOD          PaymentMethod = "cod"
)

// Label returns the Thai display name
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodBankTransfer:
		return "โอนเงินผ่านธนาคาร"
	case PaymentMethodPromptPay:
		return "พร้อมเพย์"
	case PaymentMethodCreditCard:
		return "บัตรเครดิต"
	case PaymentMethodCOD:
		return "เก็บเงินปลายทาง"
	}
	return string(m)
}

// PaymentStatus tracks whether an order has been paid
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Label returns the Thai display name
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "รอชำระเงิน"
	case PaymentStatusPaid:
		return "ชำระเงินแล้ว"
	case PaymentStatusRefunded:
		return "คืนเงินแล้ว"
	}
	return string(s)
}

// DeliveryStatus tracks shipment progress of an order
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusPreparing DeliveryStatus = "preparing"
	DeliveryStatusShipped   DeliveryStatus = "shipped"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
	DeliveryStatusReturned  DeliveryStatus = "returned"
)

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPending:   {DeliveryStatusPreparing, DeliveryStatusCancelled},
	DeliveryStatusPreparing: {DeliveryStatusShipped, DeliveryStatusCancelled},
	DeliveryStatusShipped:   {DeliveryStatusDelivered, DeliveryStatusReturned},
	DeliveryStatusDelivered: {DeliveryStatusReturned},
}

// CanTransitionTo reports whether moving to next is allowed
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label returns the Thai display name
func (s DeliveryStatus) Label() string {
	switch s {
	case DeliveryStatusPending:
		return "รอดำเนินการ"
	case DeliveryStatusPreparing:
		return "กำลังเตรียมสินค้า"
	case DeliveryStatusShipped:
		return "จัดส่งแล้ว"
	case DeliveryStatusDelivered:
		return "ได้รับสินค้าแล้ว"
	case DeliveryStatusCancelled:
		return "ยกเลิก"
	case DeliveryStatusReturned:
		return "ตีกลับ"
	}
	return string(s)
}

// SalesOrder is a confirmed purchase, from the storefront or a converted quotation
type SalesOrder struct {
	BaseModel
	Number          string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID      uuid.UUID        `gorm:"type:uuid;not null;index;column:customer_id"`
	Customer        *Customer        `gorm:"foreignKey:CustomerID"`
	QuotationID     *uuid.UUID       `gorm:"type:uuid;column:quotation_id"`
	RecipientName   string           `gorm:"type:varchar(200);not null;column:recipient_name"`
	RecipientPhone  string           `gorm:"type:varchar(20);not null;column:recipient_phone"`
	ShippingAddress string           `gorm:"type:varchar(500);not null;column:shipping_address"`
	SubDistrict     string           `gorm:"type:varchar(100);column:sub_district"`
	District        string           `gorm:"type:varchar(100)"`
	Province        string           `gorm:"type:varchar(100)"`
	PostalCode      string           `gorm:"type:varchar(5);not null;column:postal_code"`
	Items           []SalesOrderItem `gorm:"foreignKey:SalesOrderID;constraint:OnDelete:CASCADE"`
	Subtotal        decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	ShippingFee     decimal.Decimal  `gorm:"type:decimal(15,2);not null;column:shipping_fee"`
	Discount        decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	// VATAmount is the VAT contained in Total when VATIncluded (storefront
	// prices), otherwise VAT added on top of the discounted subtotal (quotations).
	VATAmount       decimal.Decimal  `gorm:"type:decimal(15,2);not null;column:vat_amount"`
	VATIncluded     bool             `gorm:"not null;default:false;column:vat_included"`
	Total           decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	PaymentMethod   PaymentMethod    `gorm:"type:varchar(30);not null;column:payment_method"`
	PaymentStatus   PaymentStatus    `gorm:"type:varchar(20);not null;index;column:payment_status"`
	PaidAt          *time.Time       `gorm:"column:paid_at"`
	DeliveryStatus  DeliveryStatus   `gorm:"type:varchar(20);not null;index;column:delivery_status"`
	Carrier         string           `gorm:"type:varchar(100)"`
	TrackingNumber  string           `gorm:"type:varchar(100);column:tracking_number"`
	ShippedAt       *time.Time       `gorm:"column:shipped_at"`
	DeliveredAt     *time.Time       `gorm:"column:delivered_at"`
	Notes           string           `gorm:"type:text"`
	Claims          []OrderClaim     `gorm:"foreignKey:SalesOrderID;constraint:OnDelete:CASCADE"`
	PlacedAt        time.Time        `gorm:"not null;index;column:placed_at"`
}

// CountsTowardSpend reports whether the order is part of the customer's order
// count and total spent. Cancelled, returned and refunded orders are not.
func (o *SalesOrder) CountsTowardSpend() bool {
	switch {
	case o.DeliveryStatus == DeliveryStatusCancelled, o.DeliveryStatus == DeliveryStatusReturned:
		return false
	case o.PaymentStatus == PaymentStatusRefunded:
		return false
	}
	return true
}

// SalesOrderItem is one line of an order
type SalesOrderItem struct {
	BaseModel
	SalesOrderID uuid.UUID       `gorm:"type:uuid;not null;index;column:sales_order_id"`
	ProductID    *uuid.UUID      `gorm:"type:uuid;column:product_id"`
	SKU          string          `gorm:"type:varchar(64)"`
	Name         string          `gorm:"type:varchar(500);not null"`
	Unit         string          `gorm:"type:varchar(50)"`
	Options      string          `gorm:"type:varchar(500)"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(15,2);not null;column:unit_price"`
	ShippingFee  decimal.Decimal `gorm:"type:decimal(15,2);not null;column:shipping_fee"`
	LineTotal    decimal.Decimal `gorm:"type:decimal(15,2);not null;column:line_total"`
}

// ClaimStatus is the state of a post-delivery claim
type ClaimStatus string

const (
	ClaimStatusOpen     ClaimStatus = "open"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
	ClaimStatusResolved ClaimStatus = "resolved"
)

// Label returns the Thai display name
func (s ClaimStatus) Label() string {
	switch s {
	case ClaimStatusOpen:
		return "รอตรวจสอบ"
	case ClaimStatusApproved:
		return "อนุมัติเคลม"
	case ClaimStatusRejected:
		return "ไม่อนุมัติ"
	case ClaimStatusResolved:
		return "ดำเนินการเสร็จสิ้น"
	}
	return string(s)
}

// IsClosed reports whether the claim needs no further action
func (s ClaimStatus) IsClosed() bool {
	return s == ClaimStatusRejected || s == ClaimStatusResolved
}

// OrderClaim is a customer complaint about a delivered order
type OrderClaim struct {
	BaseModel
	SalesOrderID uuid.UUID   `gorm:"type:uuid;not null;index;column:sales_order_id"`
	Reason       string      `gorm:"type:varchar(200);not null"`
	Description  string      `gorm:"type:text"`
	Status       ClaimStatus `gorm:"type:varchar(20);not null;index"`
	Resolution   string      `gorm:"type:text"`
	ResolvedAt   *time.Time  `gorm:"column:resolved_at"`
}

// SiteSettingShipping is the key of the shipping configuration row
const SiteSettingShipping = "shipping"

// SiteSetting holds store-wide shipping fee configuration
type SiteSetting struct {
	Key                   string          `gorm:"type:varchar(50);primaryKey;column:setting_key"`
	BaseShippingFee       decimal.Decimal `gorm:"type:decimal(15,2);not null;column:base_shipping_fee"`
	FreeShippingThreshold decimal.Decimal `gorm:"type:decimal(15,2);not null;column:free_shipping_threshold"`
	UpdatedBy             string          `gorm:"type:varchar(100);column:updated_by"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`
}

// NumberSequence tracks the last issued document number per prefix and year
type NumberSequence struct {
	Prefix       string    `gorm:"type:varchar(10);primaryKey"`
	Year         int       `gorm:"primaryKey"`
	LastSequence int       `gorm:"not null;column:last_sequence"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// ActivityTargetType is the kind of record an activity refers to
type ActivityTargetType string

const (
	ActivityTargetCustomer  ActivityTargetType = "customer"
	ActivityTargetProduct   ActivityTargetType = "product"
	ActivityTargetQuotation ActivityTargetType = "quotation"
	ActivityTargetOrder     ActivityTargetType = "order"
	ActivityTargetSetting   ActivityTargetType = "setting"
)

// IsValid checks if the target type is known
func (t ActivityTargetType) IsValid() bool {
	switch t {
	case ActivityTargetCustomer, ActivityTargetProduct, ActivityTargetQuotation,
		ActivityTargetOrder, ActivityTargetSetting:
		return true
	}
	return false
}

// Activity is an audit trail entry for back office changes
type Activity struct {
	BaseModel
	TargetType ActivityTargetType `gorm:"type:varchar(20);not null;index;column:target_type"`
	TargetID   uuid.UUID          `gorm:"type:uuid;not null;index;column:target_id"`
	Action     string             `gorm:"type:varchar(50);not null"`
	Title      string             `gorm:"type:varchar(200);not null"`
	Body       string             `gorm:"type:varchar(2000)"`
	ActorID    string             `gorm:"type:varchar(100);column:actor_id"`
	OccurredAt time.Time          `gorm:"not null;index;column:occurred_at"`
}
