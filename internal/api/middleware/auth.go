package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const clientIDKey contextKey = "clientID"

// HeaderClientID заголовок с ID клиента, проставляется API-шлюзом
const HeaderClientID = "X-Client-ID"

// Auth извлекает ID клиента из заголовка и кладет его в контекст запроса
// Запросы без корректного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderClientID)
		if header == "" {
			http.Error(w, "missing "+HeaderClientID+" header", http.StatusUnauthorized)
			return
		}

		clientID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || clientID <= 0 {
			http.Error(w, "invalid "+HeaderClientID+" header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientID извлекает ID клиента из контекста запроса
func GetClientID(ctx context.Context) (int64, bool) {
	clientID, ok := ctx.Value(clientIDKey).(int64)
	return clientID, ok
}
