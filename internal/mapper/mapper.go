package mapper

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siamsupply/shop-api/internal/document"
	"github.com/siamsupply/shop-api/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// Money converts a stored amount to the JSON representation
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// ToCustomerDTO converts Customer to CustomerDTO
func ToCustomerDTO(customer *domain.Customer) domain.CustomerDTO {
	return domain.CustomerDTO{
		ID:          customer.ID,
		Name:        customer.Name,
		CompanyName: customer.CompanyName,
		TaxID:       customer.TaxID,
		Email:       customer.Email,
		Phone:       customer.Phone,
		Address:     customer.Address,
		SubDistrict: customer.SubDistrict,
		District:    customer.District,
		Province:    customer.Province,
		PostalCode:  customer.PostalCode,
		Type:        customer.Type,
		TypeLabel:   customer.Type.Label(),
		Status:      customer.Status,
		TotalSpent:  Money(customer.TotalSpent),
		OrderCount:  customer.OrderCount,
		LastOrderAt: formatTimePtr(customer.LastOrderAt),
		Notes:       customer.Notes,
		CreatedAt:   formatTime(customer.CreatedAt),
		UpdatedAt:   formatTime(customer.UpdatedAt),
	}
}

// ToProductDTO converts Product to ProductDTO including units and options
func ToProductDTO(product *domain.Product) domain.ProductDTO {
	dto := domain.ProductDTO{
		ID:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       Money(product.Price),
		ShippingFee: Money(product.ShippingFee),
		BaseUnit:    product.BaseUnit,
		ImageURL:    product.ImageURL,
		Status:      product.Status,
		StatusLabel: product.Status.Label(),
		WMSItemCode: product.WMSItemCode,
		Units:       make([]domain.ProductUnitDTO, 0, len(product.Units)),
		Options:     make([]domain.ProductOptionDTO, 0, len(product.Options)),
		CreatedAt:   formatTime(product.CreatedAt),
		UpdatedAt:   formatTime(product.UpdatedAt),
	}

	for _, u := range product.Units {
		dto.Units = append(dto.Units, domain.ProductUnitDTO{
			ID:     u.ID,
			Name:   u.Name,
			Factor: u.Factor.InexactFloat64(),
			Price:  Money(u.Price),
		})
	}

	for _, o := range product.Options {
		opt := domain.ProductOptionDTO{
			ID:     o.ID,
			Name:   o.Name,
			Values: make([]domain.ProductOptionValueDTO, 0, len(o.Values)),
		}
		for _, v := range o.Values {
			opt.Values = append(opt.Values, domain.ProductOptionValueDTO{
				ID:        v.ID,
				Value:     v.Value,
				Available: v.Available,
			})
		}
		dto.Options = append(dto.Options, opt)
	}

	return dto
}

// ToQuotationItemDTO converts QuotationItem to QuotationItemDTO
func ToQuotationItemDTO(item *domain.QuotationItem) domain.QuotationItemDTO {
	return domain.QuotationItemDTO{
		ID:              item.ID,
		LineNo:          item.LineNo,
		ProductID:       item.ProductID,
		SKU:             item.SKU,
		Description:     item.Description,
		Quantity:        item.Quantity.InexactFloat64(),
		Unit:            item.Unit,
		UnitPrice:       Money(item.UnitPrice),
		DiscountPercent: item.DiscountPercent.InexactFloat64(),
		LineTotal:       Money(item.LineTotal),
	}
}

// ToQuotationDTO converts Quotation to QuotationDTO
func ToQuotationDTO(q *domain.Quotation) domain.QuotationDTO {
	dto := domain.QuotationDTO{
		ID:                  q.ID,
		Number:              q.Number,
		CustomerID:          q.CustomerID,
		CustomerName:        q.CustomerName,
		CustomerCompany:     q.CustomerCompany,
		CustomerTaxID:       q.CustomerTaxID,
		CustomerAddress:     q.CustomerAddress,
		CustomerPhone:       q.CustomerPhone,
		CustomerEmail:       q.CustomerEmail,
		Status:              q.Status,
		StatusLabel:         q.Status.Label(),
		IssueDate:           formatTime(q.IssueDate),
		ValidUntil:          formatTime(q.ValidUntil),
		Items:               make([]domain.QuotationItemDTO, 0, len(q.Items)),
		GrossAmount:         Money(q.GrossAmount),
		ItemDiscount:        Money(q.ItemDiscount),
		Subtotal:            Money(q.Subtotal),
		SpecialDiscount:     Money(q.SpecialDiscount),
		AmountAfterDiscount: Money(q.AmountAfterDiscount),
		VATRate:             q.VATRate.InexactFloat64(),
		VATAmount:           Money(q.VATAmount),
		GrandTotal:          Money(q.GrandTotal),
		GrandTotalText:      document.BahtText(q.GrandTotal),
		Notes:               q.Notes,
		Terms:               q.Terms,
		SentAt:              formatTimePtr(q.SentAt),
		RespondedAt:         formatTimePtr(q.RespondedAt),
		RejectReason:        q.RejectReason,
		SalesOrderID:        q.SalesOrderID,
		HasDocument:         q.DocumentPath != "",
		CreatedAt:           formatTime(q.CreatedAt),
		UpdatedAt:           formatTime(q.UpdatedAt),
	}
	for i := range q.Items {
		dto.Items = append(dto.Items, ToQuotationItemDTO(&q.Items[i]))
	}
	return dto
}

// ToOrderClaimDTO converts OrderClaim to OrderClaimDTO
func ToOrderClaimDTO(claim *domain.OrderClaim) domain.OrderClaimDTO {
	return domain.OrderClaimDTO{
		ID:          claim.ID,
		Reason:      claim.Reason,
		Description: claim.Description,
		Status:      claim.Status,
		StatusLabel: claim.Status.Label(),
		Resolution:  claim.Resolution,
		ResolvedAt:  formatTimePtr(claim.ResolvedAt),
		CreatedAt:   formatTime(claim.CreatedAt),
	}
}

// ToSalesOrderDTO converts SalesOrder to SalesOrderDTO
func ToSalesOrderDTO(order *domain.SalesOrder) domain.SalesOrderDTO {
	dto := domain.SalesOrderDTO{
		ID:                  order.ID,
		Number:              order.Number,
		CustomerID:          order.CustomerID,
		QuotationID:         order.QuotationID,
		RecipientName:       order.RecipientName,
		RecipientPhone:      order.RecipientPhone,
		ShippingAddress:     order.ShippingAddress,
		SubDistrict:         order.SubDistrict,
		District:            order.District,
		Province:            order.Province,
		PostalCode:          order.PostalCode,
		Items:               make([]domain.SalesOrderItemDTO, 0, len(order.Items)),
		Subtotal:            Money(order.Subtotal),
		ShippingFee:         Money(order.ShippingFee),
		Discount:            Money(order.Discount),
		VATAmount:           Money(order.VATAmount),
		VATIncluded:         order.VATIncluded,
		Total:               Money(order.Total),
		PaymentMethod:       order.PaymentMethod,
		PaymentMethodLabel:  order.PaymentMethod.Label(),
		PaymentStatus:       order.PaymentStatus,
		PaymentStatusLabel:  order.PaymentStatus.Label(),
		PaidAt:              formatTimePtr(order.PaidAt),
		DeliveryStatus:      order.DeliveryStatus,
		DeliveryStatusLabel: order.DeliveryStatus.Label(),
		Carrier:             order.Carrier,
		TrackingNumber:      order.TrackingNumber,
		ShippedAt:           formatTimePtr(order.ShippedAt),
		DeliveredAt:         formatTimePtr(order.DeliveredAt),
		Notes:               order.Notes,
		Claims:              make([]domain.OrderClaimDTO, 0, len(order.Claims)),
		PlacedAt:            formatTime(order.PlacedAt),
		CreatedAt:           formatTime(order.CreatedAt),
		UpdatedAt:           formatTime(order.UpdatedAt),
	}

	for _, item := range order.Items {
		dto.Items = append(dto.Items, domain.SalesOrderItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			SKU:         item.SKU,
			Name:        item.Name,
			Unit:        item.Unit,
			Options:     item.Options,
			Quantity:    item.Quantity.InexactFloat64(),
			UnitPrice:   Money(item.UnitPrice),
			ShippingFee: Money(item.ShippingFee),
			LineTotal:   Money(item.LineTotal),
		})
	}
	for i := range order.Claims {
		dto.Claims = append(dto.Claims, ToOrderClaimDTO(&order.Claims[i]))
	}

	return dto
}

// ToShippingSettingDTO converts the shipping SiteSetting to ShippingSettingDTO
func ToShippingSettingDTO(setting *domain.SiteSetting) domain.ShippingSettingDTO {
	dto := domain.ShippingSettingDTO{
		BaseShippingFee:       Money(setting.BaseShippingFee),
		FreeShippingThreshold: Money(setting.FreeShippingThreshold),
		UpdatedBy:             setting.UpdatedBy,
	}
	if !setting.UpdatedAt.IsZero() {
		dto.UpdatedAt = formatTime(setting.UpdatedAt)
	}
	return dto
}

// ToActivityDTO converts Activity to ActivityDTO
func ToActivityDTO(activity *domain.Activity) domain.ActivityDTO {
	return domain.ActivityDTO{
		ID:         activity.ID,
		TargetType: activity.TargetType,
		TargetID:   activity.TargetID,
		Action:     activity.Action,
		Title:      activity.Title,
		Body:       activity.Body,
		ActorID:    activity.ActorID,
		OccurredAt: formatTime(activity.OccurredAt),
	}
}

// FormatError creates a formatted error message
func FormatError(entity, operation string, err error) error {
	return fmt.Errorf("failed to %s %s: %w", operation, entity, err)
}
