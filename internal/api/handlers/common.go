package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const (
	msgInternalError = "internal server error"
	msgUnauthorized  = "authentication required"
	msgForbidden     = "access denied"
)

// Коды ошибок, не входящие в доменную таксономию
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// В сообщениях об ошибках используем имена полей из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Validate проверяет struct-теги validate и возвращает ошибку валидации
// с сообщением для клиента
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Errorf(domain.ErrValidation, "invalid request")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.Errorf(domain.ErrValidation, "%s is required", fe.Field())
	case "email":
		return domain.Errorf(domain.ErrValidation, "%s must be a valid email", fe.Field())
	case "max":
		return domain.Errorf(domain.ErrValidation, "%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return domain.Errorf(domain.ErrValidation, "%s must be at least %s characters", fe.Field(), fe.Param())
	case "gt":
		return domain.Errorf(domain.ErrValidation, "%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return domain.Errorf(domain.ErrValidation, "%s is invalid", fe.Field())
	}
}

// PathID читает положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Errorf(domain.ErrValidation, "%s must be a positive integer", name)
	}
	return id, nil
}

// QueryID читает необязательный положительный int64 из query-параметра
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.Errorf(domain.ErrValidation, "%s must be a positive integer", name)
	}
	return &id, nil
}

// ParseDateTime разбирает "YYYY-MM-DDTHH:MM" (секунды допускаются и отбрасываются)
func ParseDateTime(field, value string) (time.Time, error) {
	for _, layout := range []string{domain.DateTimeFormat, "2006-01-02T15:04:05", "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Truncate(time.Minute), nil
		}
	}
	return time.Time{}, domain.Errorf(domain.ErrValidation, "%s must be in %s format", field, "YYYY-MM-DDTHH:MM")
}

// ParseDate разбирает "YYYY-MM-DD"
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, domain.Errorf(domain.ErrValidation, "%s must be in %s format", field, "YYYY-MM-DD")
	}
	return t, nil
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeValidation, message)
}

func RespondUnauthorized(w http.ResponseWriter) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, msgUnauthorized)
}

func RespondForbidden(w http.ResponseWriter) {
	RespondError(w, http.StatusForbidden, CodeForbidden, msgForbidden)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, msgInternalError)
}

// StatusFor возвращает HTTP статус для ошибки доменной таксономии
// Для остальных ошибок - 500
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrSchedulingConflict),
		errors.Is(err, domain.ErrOutOfHours),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrDuplicatePayment):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError отвечает ошибкой таксономии с ее сообщением
// Ошибки вне таксономии скрываются за общим 500
func RespondDomainError(w http.ResponseWriter, err error) {
	code := domain.Kind(err)
	if code == "" {
		RespondInternalError(w)
		return
	}
	RespondError(w, StatusFor(err), code, err.Error())
}

// Describe возвращает короткое описание ошибки для логов
func Describe(err error) string {
	if code := domain.Kind(err); code != "" {
		return fmt.Sprintf("%s: %s", code, err.Error())
	}
	return err.Error()
}

// Logger логгер обработчиков
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RespondFailure логирует ошибку и отвечает клиенту
// Ошибки таксономии пишутся как warn, остальные как error
func RespondFailure(w http.ResponseWriter, logger Logger, route string, err error) {
	if domain.Kind(err) == "" {
		logger.Error("%s - %v", route, err)
	} else {
		logger.Warn("%s - %s", route, Describe(err))
	}
	RespondDomainError(w, err)
}
