package server

import (
	"net/http"
	"slices"

	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
)

const corsMaxAgeSeconds = "86400" // 24 hours

// chainMiddleware chains together all HTTP middleware.
// Execution order: PathValidator -> CORS -> Logging -> Handler
func chainMiddleware(log *logger.Service, httpPath string, allowedOrigins []string, next http.Handler) http.Handler {
	// Chain in reverse order (last added = first to execute)
	handler := next
	handler = loggingMiddleware(log)(handler)
	handler = corsMiddleware(allowedOrigins)(handler)
	handler = pathValidationMiddleware(httpPath)(handler)
	return handler
}

// corsMiddleware implements CORS (Cross-Origin Resource Sharing).
// If allowedOrigins is empty, CORS is disabled.
// If allowedOrigins contains "*", all origins are allowed.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(allowedOrigins) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")

			if slices.Contains(allowedOrigins, "*") {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if origin != "" && slices.Contains(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", corsMaxAgeSeconds)

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// pathValidationMiddleware rejects requests to anything but the MCP
// endpoint path, avoiding hanging connections on unknown routes.
func pathValidationMiddleware(httpPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != httpPath {
				http.Error(w, "Not Found: This server only handles requests to "+httpPath, http.StatusNotFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// loggingMiddleware logs HTTP requests for debugging
func loggingMiddleware(log *logger.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug("HTTP Request",
				"method", r.Method,
				"url", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"content_length", r.ContentLength,
				"host", r.Host,
			)

			next.ServeHTTP(w, r)
		})
	}
}
