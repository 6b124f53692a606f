package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers"
)

const (
	// HeaderTenantID заголовок с ID арендатора
	// Заполняется API-шлюзом после проверки токена, до этого сервиса
	// запрос без него дойти не должен
	HeaderTenantID = "X-Tenant-ID"

	msgMissingTenantID = "отсутствует ID арендатора"
	msgInvalidTenantID = "некорректный ID арендатора"
)

type contextKey string

const tenantIDKey contextKey = "tenantID"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// TenantAuth извлекает ID арендатора из заголовка и кладет его в контекст
// Запросы без валидного заголовка отклоняются до бизнес-логики
func TenantAuth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderTenantID)
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderTenantID)
				handlers.RespondUnauthorized(w, msgMissingTenantID)
				return
			}

			tenantID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || tenantID <= 0 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, HeaderTenantID, raw)
				handlers.RespondUnauthorized(w, msgInvalidTenantID)
				return
			}

			ctx := context.WithValue(r.Context(), tenantIDKey, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTenantID возвращает ID арендатора из контекста
func GetTenantID(ctx context.Context) (int64, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(int64)
	return tenantID, ok
}
