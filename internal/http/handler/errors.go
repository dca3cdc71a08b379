package handler

import (
	"errors"
	"net/http"

	"github.com/siamsupply/shop-api/internal/pricing"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

const msgInternal = "เกิดข้อผิดพลาดในระบบ กรุณาลองใหม่อีกครั้ง"

// errorMapping pairs a service error with the status and Thai message returned for it
type errorMapping struct {
	err     error
	status  int
	message string
}

// serviceErrors is checked in order; more specific errors come before the
// errors that wrap them.
var serviceErrors = []errorMapping{
	// customers
	{service.ErrCustomerNotFound, http.StatusNotFound, "ไม่พบข้อมูลลูกค้า"},
	{service.ErrDuplicatePhone, http.StatusConflict, "หมายเลขโทรศัพท์นี้ถูกใช้กับลูกค้ารายอื่นแล้ว"},
	{service.ErrInvalidPostalCode, http.StatusBadRequest, "รหัสไปรษณีย์ต้องเป็นตัวเลข 5 หลัก"},

	// products
	{service.ErrProductNotFound, http.StatusNotFound, "ไม่พบสินค้า"},
	{service.ErrDuplicateSKU, http.StatusConflict, "รหัสสินค้านี้ถูกใช้แล้ว"},
	{service.ErrOptionValueNotFound, http.StatusNotFound, "ไม่พบตัวเลือกสินค้า"},
	{service.ErrDuplicateOptionValue, http.StatusBadRequest, "ค่าตัวเลือกในกลุ่มเดียวกันต้องไม่ซ้ำกัน"},
	{service.ErrStockCheckDisabled, http.StatusServiceUnavailable, "ยังไม่ได้เชื่อมต่อระบบคลังสินค้า"},
	{service.ErrStockItemNotFound, http.StatusNotFound, "ไม่พบสินค้านี้ในระบบคลังสินค้า"},
	{service.ErrStockCheckFailed, http.StatusBadGateway, "ไม่สามารถตรวจสอบสต็อกสินค้าได้ในขณะนี้"},

	// quotation pricing, specific reasons first
	{pricing.ErrDiscountExceedsSubtotal, http.StatusBadRequest, "ส่วนลดพิเศษต้องไม่เกินยอดรวมหลังหักส่วนลดรายการ"},
	{pricing.ErrInvalidSpecialDiscount, http.StatusBadRequest, "ส่วนลดพิเศษต้องไม่ติดลบ"},
	{pricing.ErrInvalidDiscountPercent, http.StatusBadRequest, "ส่วนลดต่อรายการต้องอยู่ระหว่าง 0 ถึง 100 เปอร์เซ็นต์"},
	{pricing.ErrInvalidVATRate, http.StatusBadRequest, "อัตราภาษีมูลค่าเพิ่มต้องอยู่ระหว่าง 0 ถึง 100 เปอร์เซ็นต์"},
	{pricing.ErrInvalidQuantity, http.StatusBadRequest, "จำนวนสินค้าต้องมากกว่าศูนย์"},
	{pricing.ErrInvalidPrice, http.StatusBadRequest, "ราคาต่อหน่วยต้องไม่ติดลบ"},
	{service.ErrInvalidQuotationPricing, http.StatusBadRequest, "ข้อมูลราคาในใบเสนอราคาไม่ถูกต้อง"},

	// quotations
	{service.ErrQuotationNotFound, http.StatusNotFound, "ไม่พบใบเสนอราคา"},
	{service.ErrQuotationNotEditable, http.StatusConflict, "แก้ไขได้เฉพาะใบเสนอราคาที่เป็นฉบับร่างเท่านั้น"},
	{service.ErrQuotationExpired, http.StatusConflict, "ใบเสนอราคานี้หมดอายุแล้ว"},
	{service.ErrQuotationAlreadyConverted, http.StatusConflict, "ใบเสนอราคานี้ถูกสร้างเป็นคำสั่งซื้อแล้ว"},
	{service.ErrInvalidQuotationTransition, http.StatusConflict, "สถานะของใบเสนอราคาไม่อนุญาตให้ทำรายการนี้"},
	{service.ErrInvalidValidity, http.StatusBadRequest, "วันหมดอายุต้องไม่ก่อนวันที่ออกใบเสนอราคา"},

	// orders
	{service.ErrOrderNotFound, http.StatusNotFound, "ไม่พบคำสั่งซื้อ"},
	{service.ErrProductUnavailable, http.StatusUnprocessableEntity, "สินค้าบางรายการไม่พร้อมจำหน่าย"},
	{service.ErrInvalidUnit, http.StatusBadRequest, "หน่วยสินค้าที่เลือกไม่ถูกต้อง"},
	{service.ErrOptionRequired, http.StatusBadRequest, "กรุณาเลือกตัวเลือกสินค้าให้ครบทุกรายการ"},
	{service.ErrInvalidOption, http.StatusBadRequest, "ตัวเลือกสินค้าไม่ถูกต้อง"},
	{service.ErrOptionUnavailable, http.StatusUnprocessableEntity, "ตัวเลือกสินค้าที่เลือกหมดแล้ว"},
	{service.ErrOutOfStock, http.StatusUnprocessableEntity, "สินค้าในคลังมีไม่เพียงพอ"},
	{service.ErrInvalidDeliveryTransition, http.StatusConflict, "ไม่สามารถเปลี่ยนสถานะการจัดส่งเป็นสถานะที่เลือกได้"},
	{service.ErrInvalidPaymentTransition, http.StatusConflict, "ไม่สามารถเปลี่ยนสถานะการชำระเงินเป็นสถานะที่เลือกได้"},
	{service.ErrClaimNotAllowed, http.StatusConflict, "แจ้งเคลมได้เฉพาะคำสั่งซื้อที่จัดส่งสำเร็จแล้วเท่านั้น"},
	{service.ErrClaimAlreadyOpen, http.StatusConflict, "คำสั่งซื้อนี้มีรายการเคลมที่ยังไม่ปิด"},
	{service.ErrClaimNotFound, http.StatusNotFound, "ไม่พบรายการเคลม"},
	{service.ErrClaimClosed, http.StatusConflict, "รายการเคลมนี้ปิดไปแล้ว"},
	{service.ErrInvalidClaimTransition, http.StatusConflict, "ไม่สามารถเปลี่ยนสถานะเคลมเป็นสถานะที่เลือกได้"},

	// shared
	{service.ErrDocumentGeneration, http.StatusInternalServerError, "ไม่สามารถสร้างเอกสารได้ กรุณาลองใหม่อีกครั้ง"},
}

// lookupError returns the status and Thai message for err
func lookupError(err error) (int, string, bool) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return m.status, m.message, true
		}
	}
	return http.StatusInternalServerError, msgInternal, false
}

// handleServiceError maps a service error to a response. Unknown errors and
// server-side failures are logged.
func handleServiceError(w http.ResponseWriter, logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	status, message, known := lookupError(err)
	if !known || status >= http.StatusInternalServerError {
		logger.Error(msg, append(fields, zap.Error(err))...)
	} else {
		logger.Debug(msg, append(fields, zap.Error(err))...)
	}
	respondWithError(w, status, message)
}
