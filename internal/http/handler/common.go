package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/service"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

const (
	msgInvalidBody   = "รูปแบบข้อมูลที่ส่งมาไม่ถูกต้อง"
	msgInvalidID     = "รหัสอ้างอิงไม่ถูกต้อง"
	msgValidation    = "ข้อมูลบางรายการไม่ถูกต้อง กรุณาตรวจสอบอีกครั้ง"
	msgInvalidFormat = "รูปแบบไฟล์ต้องเป็น csv หรือ xlsx"
)

var validate = domain.NewValidator()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a validation error response with a Thai message per field
func respondValidationError(w http.ResponseWriter, err error) {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fieldPath(fe)] = formatValidationError(fe)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "ข้อมูลไม่ถูกต้อง",
		Status: http.StatusBadRequest,
		Detail: msgValidation,
		Errors: fields,
	})
}

// formatValidationError creates the Thai message shown next to a field
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("ความยาวต้องไม่เกิน %s ตัวอักษร", fe.Param())
		}
		return fmt.Sprintf("ค่าต้องไม่เกิน %s", fe.Param())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("ความยาวต้องไม่น้อยกว่า %s ตัวอักษร", fe.Param())
		}
		return fmt.Sprintf("ต้องมีอย่างน้อย %s รายการ", fe.Param())
	case "gte":
		return fmt.Sprintf("ค่าต้องไม่น้อยกว่า %s", fe.Param())
	case "gt":
		return fmt.Sprintf("ค่าต้องมากกว่า %s", fe.Param())
	case "lte":
		return fmt.Sprintf("ค่าต้องไม่เกิน %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("ต้องเป็นค่าใดค่าหนึ่งต่อไปนี้: %s", fe.Param())
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// fieldPath turns "CheckoutRequest.Items[0].Quantity" into "items[0].quantity"
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = toJSONFieldName(p)
	}
	return strings.Join(parts, ".")
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	if field == "ID" {
		return "id"
	}
	if strings.HasSuffix(field, "ID") {
		field = strings.TrimSuffix(field, "ID") + "Id"
	}
	switch {
	case strings.HasPrefix(field, "SKU"):
		return "sku" + field[3:]
	case strings.HasPrefix(field, "VAT"):
		return "vat" + field[3:]
	case strings.HasPrefix(field, "WMS"):
		return "wms" + field[3:]
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a JSON error response carrying a Thai message
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.ErrorResponse{
		Error:   getErrorType(status),
		Message: message,
		Code:    status,
	})
}

// getErrorType returns the error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return domain.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return domain.ErrorTypeForbidden
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return domain.ErrorTypeUnavailable
	default:
		return domain.ErrorTypeInternal
	}
}

// decodeJSON reads and validates a request body. It writes the error response
// itself and reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		respondValidationError(w, err)
		return false
	}
	return true
}

// urlUUID parses a UUID path parameter, answering 400 when malformed
func urlUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID query value; ok is false when present but malformed
func queryUUID(r *http.Request, name string) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// parsePagination reads page and pageSize; the repository clamps them
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	return repository.NormalizePagination(page, pageSize)
}

// parseSort reads sortBy and sortOrder, defaulting to newest first
func parseSort(r *http.Request) repository.SortConfig {
	sort := repository.DefaultSortConfig()
	if field := r.URL.Query().Get("sortBy"); field != "" {
		sort.Field = field
	}
	if order := r.URL.Query().Get("sortOrder"); order != "" {
		sort.Order = repository.ParseSortOrder(order)
	}
	return sort
}

// respondFile streams a generated document. Inline files open in the browser.
func respondFile(w http.ResponseWriter, file *service.File, inline bool) {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
