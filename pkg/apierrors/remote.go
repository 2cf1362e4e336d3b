package apierrors

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type ErrorMeta struct {
	Description string `json:"description,omitempty"`
	Token       string `json:"token,omitempty"`
}

// APIError ошибка, пришедшая в теле ответа API в поле error
type APIError struct {
	Code         string    `json:"code"`
	Fields       []any     `json:"fields"`
	OriginalType string    `json:"originalType"`
	Meta         ErrorMeta `json:"meta"`
}

var codeClasses = map[string]DefinedError{
	"JwtIncorrect":      ErrAuth,
	"JwtExpired":        ErrAuth,
	"ValidationError":   ErrValidation,
	"NotFound":          ErrNotFound,
	"PermissionDenied":  ErrPermission,
	"RateLimitExceeded": ErrRateLimit,
}

// RemoteCodes известные коды ошибок API в алфавитном порядке
func RemoteCodes() []string {
	codes := make([]string, 0, len(codeClasses))
	for code := range codeClasses {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Class возвращает класс ошибки по коду API. Неизвестные коды относятся к ErrSDK.
func (e *APIError) Class() DefinedError {
	if c, ok := codeClasses[e.Code]; ok {
		return c
	}
	return ErrSDK
}

func (e *APIError) Message() string {
	if e.Meta.Description != "" {
		return e.Meta.Description
	}
	if e.Code == "" {
		return "UnknownError"
	}
	return e.Code
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Class().Err, e.Message())
	fmt.Fprintf(&b, "\n\nError code: %s", e.Code)
	fmt.Fprintf(&b, "\nOriginal type: %s", e.OriginalType)
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			if m, ok := f.(map[string]any); ok {
				if name, ok := m["name"]; ok {
					names = append(names, fmt.Sprint(name))
					continue
				}
			}
			names = append(names, fmt.Sprint(f))
		}
		fmt.Fprintf(&b, "\nAffected fields: %s", strings.Join(names, ", "))
	}
	if e.Meta.Description != "" {
		fmt.Fprintf(&b, "\nDetails: %s", e.Meta.Description)
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.Class()
}

func (e *APIError) MCPError(hints ...string) *mcp.CallToolResult {
	c := e.Class()
	c.Err = c.Err + ": " + e.Message()
	return c.MCPError(hints...)
}

// HTTPError сетевая ошибка или ответ с неуспешным статусом без тела ошибки API
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("http error for %s: status %d: %s", e.URL, e.StatusCode, e.Body)
}

func (e *HTTPError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrHTTP, e.Err}
	}
	return []error{ErrHTTP}
}

func (e *HTTPError) MCPError(hints ...string) *mcp.CallToolResult {
	c := ErrHTTP
	if e.StatusCode != 0 {
		c.Err = fmt.Sprintf("%s: status %d", c.Err, e.StatusCode)
	}
	return c.MCPError(hints...)
}
