package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap layers mws around h. The first middleware listed becomes the
// outermost handler, so requests pass through them in listed order.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
