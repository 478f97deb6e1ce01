package models

import "net/http"

type contextKey struct {
	name string
}

// Universal context key to get the page data from context
var DataContextKey = contextKey{name: "data"}

// Context key of the unique id of the request
var RequestIDContextKey = contextKey{name: "request_id"}

// Context key flagging a request that carries a valid preview session
var PreviewContextKey = contextKey{name: "preview"}

// GetDataFromContext gets the template data from context
func GetDataFromContext(r *http.Request) *TemplateData {
	data, _ := r.Context().Value(DataContextKey).(*TemplateData)
	return data // nil if data not in context
}

// GetRequestID gets the request id from context
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(RequestIDContextKey).(string)
	return id
}

// IsPreview reports whether the request is in preview mode
func IsPreview(r *http.Request) bool {
	preview, _ := r.Context().Value(PreviewContextKey).(bool)
	return preview
}
