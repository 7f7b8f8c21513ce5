package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound            = NewAppError("NOT_FOUND", "Recurso no encontrado", http.StatusNotFound)
	ErrBadRequest          = NewAppError("BAD_REQUEST", "Solicitud inválida", http.StatusBadRequest)
	ErrInternalServer      = NewAppError("INTERNAL_SERVER_ERROR", "Error interno del servidor", http.StatusInternalServerError)
	ErrValidation          = NewAppError("VALIDATION_ERROR", "Error de validación", http.StatusBadRequest)
	ErrNoActiveSession     = NewAppError("NO_ACTIVE_SESSION", "No hay una sesión activa. Debes iniciar sesión.", http.StatusUnauthorized)
	ErrAccountNotFound     = NewAppError("ACCOUNT_NOT_FOUND", "Cuenta no encontrada", http.StatusNotFound)
	ErrTransactionNotFound = NewAppError("TRANSACTION_NOT_FOUND", "Transacción no encontrada", http.StatusNotFound)
	ErrCategoryNotFound    = NewAppError("CATEGORY_NOT_FOUND", "Categoría no encontrada", http.StatusNotFound)
	ErrServiceNotFound     = NewAppError("SERVICE_NOT_FOUND", "Servicio no encontrado", http.StatusNotFound)
	ErrGoalNotFound        = NewAppError("GOAL_NOT_FOUND", "Meta de ahorro no encontrada", http.StatusNotFound)
	ErrResourceNotOwned    = NewAppError("RESOURCE_NOT_OWNED", "El recurso no pertenece al usuario", http.StatusForbidden)
)

// ErrRecordNotFound marks a lookup that matched no row. Repositories
// translate their store's own not-found error into it so services can tell
// an absent record from a failing store.
var ErrRecordNotFound = errors.New("registro no encontrado")

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Solicitud cancelada por el cliente", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Error desconocido", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

// NewDatabaseError wraps a failed persistence call; the cause is propagated
// verbatim and never retried.
func NewDatabaseError(err error) *AppError {
	return WrapError(err, "STORE_WRITE_FAILURE", "Error al ejecutar la operación en la base de datos", http.StatusInternalServerError)
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		translatedField := translateFieldName(fieldErr.Field())
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translatedField,
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Error de validación en los campos",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateFieldName(field string) string {
	fieldLower := strings.ToLower(field)
	fieldMap := map[string]string{
		"amount":        "monto",
		"account_id":    "cuenta",
		"accountid":     "cuenta",
		"category_id":   "categoría",
		"categoryid":    "categoría",
		"type":          "tipo",
		"label":         "descripción",
		"name":          "nombre",
		"date":          "fecha",
		"deadline":      "fecha límite",
		"billingday":    "día de cobro",
		"targetamount":  "monto objetivo",
		"currentamount": "monto actual",
	}
	if translated, ok := fieldMap[fieldLower]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", fieldName)
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s debe tener como máximo %s caracteres", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", fieldName, fe.Param())
	case "lt":
		return fmt.Sprintf("%s debe ser menor que %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de los valores: %s", fieldName, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s debe ser una fecha válida", fieldName)
	default:
		return fmt.Sprintf("La validación '%s' falló para %s", fe.Tag(), fieldName)
	}
}
