// Package api is the typed route table shared by the HTTP server and
// the Go client. Both sides register and call operations through these
// descriptors so they agree on methods and paths.
package api

import (
	"fmt"
	"net/http"
	"strings"
)

// Operation describes one API endpoint. Path may contain :name
// placeholders, substituted by URL.
type Operation struct {
	Name   string
	Method string
	Path   string
}

// URL substitutes path parameters into the operation's path template.
// Placeholders with no matching parameter are left untouched.
func (o Operation) URL(params map[string]any) string {
	url := o.Path
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, fmt.Sprint(value))
	}
	return url
}

var (
	Register    = Operation{Name: "auth.register", Method: http.MethodPost, Path: "/api/register"}
	Login       = Operation{Name: "auth.login", Method: http.MethodPost, Path: "/api/login"}
	Logout      = Operation{Name: "auth.logout", Method: http.MethodPost, Path: "/api/logout"}
	CurrentUser = Operation{Name: "auth.me", Method: http.MethodGet, Path: "/api/user"}

	ListRequests        = Operation{Name: "requests.list", Method: http.MethodGet, Path: "/api/requests"}
	CreateRequest       = Operation{Name: "requests.create", Method: http.MethodPost, Path: "/api/requests"}
	UpdateRequestStatus = Operation{Name: "requests.updateStatus", Method: http.MethodPatch, Path: "/api/requests/:id/status"}
	AttachRequestFile   = Operation{Name: "requests.attachFile", Method: http.MethodPatch, Path: "/api/requests/:id/attachment"}

	ListUsers      = Operation{Name: "users.list", Method: http.MethodGet, Path: "/api/users"}
	UpdateUserRole = Operation{Name: "users.updateRole", Method: http.MethodPatch, Path: "/api/users/:id/role"}
	ToggleUserBan  = Operation{Name: "users.toggleBan", Method: http.MethodPatch, Path: "/api/users/:id/ban"}

	ListReports        = Operation{Name: "reports.list", Method: http.MethodGet, Path: "/api/reports"}
	CreateReport       = Operation{Name: "reports.create", Method: http.MethodPost, Path: "/api/reports"}
	UpdateReportStatus = Operation{Name: "reports.updateStatus", Method: http.MethodPatch, Path: "/api/reports/:id/status"}

	ListNews   = Operation{Name: "news.list", Method: http.MethodGet, Path: "/api/news"}
	CreateNews = Operation{Name: "news.create", Method: http.MethodPost, Path: "/api/news"}
	DeleteNews = Operation{Name: "news.delete", Method: http.MethodDelete, Path: "/api/news/:id"}
)

// Error is the wire shape of every non-2xx response body. Field is set
// only for validation failures and names the first failing field.
type Error struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
