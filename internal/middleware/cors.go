package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// Wildcard allows any value for a CORS policy field.
const Wildcard = "*"

// allMethods is what a wildcard method policy expands to. Browsers treat
// "*" in Access-Control-Allow-Methods literally on credentialed requests.
var allMethods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// CORSPolicy is a process-wide cross-origin policy. It is the same for
// every route and never varies per request.
type CORSPolicy struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	MaxAge           int
}

// Permissive allows any origin, method and header.
// TODO: replace with an explicit origin list before production rollout.
func Permissive() CORSPolicy {
	return CORSPolicy{
		AllowOrigins:     []string{Wildcard},
		AllowMethods:     []string{Wildcard},
		AllowHeaders:     []string{Wildcard},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

// Handler wraps next so that every response carries the policy headers.
// Preflight requests are answered here and never reach next.
func (p CORSPolicy) Handler(next http.Handler) http.Handler {
	methods := strings.Join(p.methods(), ", ")
	maxAge := strconv.Itoa(p.MaxAge)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		h := w.Header()

		h.Set("Access-Control-Allow-Origin", p.allowOrigin(r, origin))
		if p.echoesOrigin(r, origin) {
			h.Add("Vary", "Origin")
		}
		h.Set("Access-Control-Allow-Methods", methods)
		if p.AllowCredentials {
			h.Set("Access-Control-Allow-Credentials", "true")
		}

		if isPreflight(r) {
			h.Set("Access-Control-Allow-Headers", p.allowHeaders(r.Header.Get("Access-Control-Request-Headers")))
			if p.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		h.Set("Access-Control-Allow-Headers", strings.Join(p.AllowHeaders, ", "))
		next.ServeHTTP(w, r)
	})
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}

func (p CORSPolicy) allowsAnyOrigin() bool {
	return slices.Contains(p.AllowOrigins, Wildcard)
}

// echoesOrigin reports whether the request origin replaces "*", which is
// required for credentialed requests.
func (p CORSPolicy) echoesOrigin(r *http.Request, origin string) bool {
	if origin == "" || !p.allowsAnyOrigin() {
		return origin != "" && slices.Contains(p.AllowOrigins, origin)
	}
	return p.AllowCredentials && r.Header.Get("Cookie") != ""
}

func (p CORSPolicy) allowOrigin(r *http.Request, origin string) string {
	if p.echoesOrigin(r, origin) {
		return origin
	}
	if p.allowsAnyOrigin() {
		return Wildcard
	}
	return "null"
}

func (p CORSPolicy) methods() []string {
	if slices.Contains(p.AllowMethods, Wildcard) {
		return allMethods
	}
	return p.AllowMethods
}

func (p CORSPolicy) allowHeaders(requested string) string {
	if slices.Contains(p.AllowHeaders, Wildcard) && requested != "" {
		return requested
	}
	return strings.Join(p.AllowHeaders, ", ")
}
