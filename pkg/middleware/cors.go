package middleware

import (
	"net/http"
	"strings"
)

const wildcardOrigin = "*"

type corsPolicy struct {
	allowAll bool
	origins  map[string]struct{}
}

func newCorsPolicy(allowedOrigins []string) corsPolicy {
	policy := corsPolicy{origins: make(map[string]struct{}, len(allowedOrigins))}

	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == wildcardOrigin {
			policy.allowAll = true
		}
		policy.origins[strings.TrimSuffix(origin, "/")] = struct{}{}
	}

	return policy
}

func (p corsPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if p.allowAll {
		return true
	}

	_, ok := p.origins[origin]
	return ok
}

// Cors libera as origens configuradas; "*" libera qualquer origem
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	policy := newCorsPolicy(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			w.Header().Add("Vary", "Origin")

			if !policy.allows(origin) {
				// Sem cabeçalhos CORS; um OPTIONS recusado segue para o router
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With, X-Correlation-ID")
			w.Header().Set("Access-Control-Expose-Headers", CorrelationHeader)
			w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
