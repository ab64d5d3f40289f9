package middleware

import "net/http"

// DefaultMaxBodyBytes cobre com folga os corpos JSON de campanhas, criadores e convites
const DefaultMaxBodyBytes int64 = 1 << 20

// LimitBody corta o corpo da requisição em maxBytes; a leitura além disso falha no decode
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)
		})
	}
}
