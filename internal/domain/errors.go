package domain

// APIError represents a standardized API error with HTTP status code
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// ValidationMessages maps validator tags to Thai messages shown to users
var ValidationMessages = map[string]string{
	"required":         "กรุณากรอกข้อมูล",
	"email":            "รูปแบบอีเมลไม่ถูกต้อง",
	"max":              "ข้อมูลยาวเกินกำหนด",
	"min":              "ข้อมูลสั้นกว่าที่กำหนด",
	"gte":              "ค่าต้องไม่น้อยกว่าที่กำหนด",
	"gt":               "ค่าต้องมากกว่าที่กำหนด",
	"lte":              "ค่าต้องไม่เกินที่กำหนด",
	"lt":               "ค่าต้องน้อยกว่าที่กำหนด",
	"uuid":             "รหัสอ้างอิงไม่ถูกต้อง",
	"url":              "รูปแบบ URL ไม่ถูกต้อง",
	"oneof":            "ค่าที่เลือกไม่ถูกต้อง",
	"numeric":          "ต้องเป็นตัวเลขเท่านั้น",
	"len":              "ความยาวข้อมูลไม่ถูกต้อง",
	"dive":             "รายการไม่ถูกต้อง",
	"thpostal":         "รหัสไปรษณีย์ต้องเป็นตัวเลข 5 หลัก",
	"thphone":          "หมายเลขโทรศัพท์ไม่ถูกต้อง",
	"thtaxid":          "เลขประจำตัวผู้เสียภาษีต้องเป็นตัวเลข 13 หลัก",
	"required_without": "กรุณากรอกข้อมูล",
}

// GetValidationMessage returns the Thai message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := ValidationMessages[tag]; ok {
		return msg
	}
	return "ข้อมูลไม่ถูกต้อง (" + tag + ")"
}

// Common error types for RFC 7807 Problem Details
const (
	ErrorTypeValidation   = "validation_error"
	ErrorTypeNotFound     = "not_found"
	ErrorTypeBadRequest   = "bad_request"
	ErrorTypeConflict     = "conflict"
	ErrorTypeUnauthorized = "unauthorized"
	ErrorTypeForbidden    = "forbidden"
	ErrorTypeUnavailable  = "service_unavailable"
	ErrorTypeInternal     = "internal_error"
)
