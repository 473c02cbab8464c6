package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	header http.Header
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for key, values := range j.header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// WithJSONHeader sets a response header, e.g. Cache-Control.
func WithJSONHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		if r.header == nil {
			r.header = http.Header{}
		}
		r.header.Set(key, value)
	}
}

// JSON wraps v in the data envelope. Status defaults to 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Data: v},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Error defers err to the ErrorHandler configured on Wrap, which picks the
// status code and renders the error envelope.
func Error(err error) Response {
	return errorResult{err: err}
}

type errorResult struct {
	err error
}

func (e errorResult) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

func errorResponse(info ErrorInfo) Response {
	return &jsonResponse{
		status: info.StatusCode,
		body: JSONResponse{Error: &ErrorDetail{
			Code:    info.Code,
			Message: info.Message,
			Details: info.Details,
		}},
	}
}
