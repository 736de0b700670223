package middleware

import (
	"net"
	"net/http"
)

// WithSubnet restricts a route to callers whose X-Real-IP falls inside
// the trusted CIDR. An empty CIDR closes the route entirely.
func WithSubnet(cidr string) func(next http.Handler) http.Handler {
	var trusted *net.IPNet
	if cidr != "" {
		_, trusted, _ = net.ParseCIDR(cidr)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if trusted == nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ip := net.ParseIP(r.Header.Get("X-Real-IP"))
			if ip == nil || !trusted.Contains(ip) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
