package httpkit

import (
	"net/http"

	phttp "questhud/internal/platform/net/http"
)

// PostJSON mounts a validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.JSONHandlerNoBody(h))
}

// Post registers a no-body handler and uses the envelope adapter
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, phttp.JSONHandlerNoBody(h))
}
