// Пакет содержит определения ошибок SDK Vaiz. Ошибки удаленного API приводятся к классам
// (авторизация, валидация, не найдено, доступ, лимит запросов), локальные ошибки хелперов
// имеют собственные коды. Каждая ошибка имеет код, HTTP статус и описание на двух языках.
//
// Основные возможности:
//   - Классы ошибок, соответствующие кодам ответа API (JwtIncorrect, NotFound и т.д.).
//   - Локальные ошибки поиска опций, связей и участников.
//   - Сравнение через errors.Is по коду ошибки.
//   - Преобразование в результат MCP инструмента.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type DefinedError struct {
	Code       int    `json:"code"`
	StatusCode int    `json:"-"`
	Err        string `json:"error"`
	RuErr      string `json:"ru_error,omitempty"`
}

func (e DefinedError) Error() string {
	return e.Err
}

// Is сравнивает ошибки по коду, поэтому отформатированная ошибка совпадает с исходной.
func (e DefinedError) Is(target error) bool {
	var t DefinedError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// MCPError формирует ошибку MCP инструмента. hints добавляются к тексту через точку с запятой.
func (e DefinedError) MCPError(hints ...string) *mcp.CallToolResult {
	msg := e.Err
	if len(hints) > 0 {
		msg += ": " + strings.Join(hints, "; ")
	}
	return mcp.NewToolResultError(fmt.Sprintf("[%d] %s", e.Code, msg))
}

var (
	// 1*** - ошибки удаленного API
	ErrSDK        = DefinedError{Code: 1000, StatusCode: http.StatusInternalServerError, Err: "vaiz sdk error", RuErr: "Ошибка SDK Vaiz"}
	ErrAuth       = DefinedError{Code: 1001, StatusCode: http.StatusUnauthorized, Err: "authentication error", RuErr: "Ошибка авторизации"}
	ErrValidation = DefinedError{Code: 1002, StatusCode: http.StatusBadRequest, Err: "validation error", RuErr: "Ошибка валидации"}
	ErrNotFound   = DefinedError{Code: 1003, StatusCode: http.StatusNotFound, Err: "resource not found", RuErr: "Ресурс не найден"}
	ErrPermission = DefinedError{Code: 1004, StatusCode: http.StatusForbidden, Err: "permission denied", RuErr: "Доступ запрещен"}
	ErrRateLimit  = DefinedError{Code: 1005, StatusCode: http.StatusTooManyRequests, Err: "rate limit exceeded", RuErr: "Превышен лимит запросов"}
	ErrHTTP       = DefinedError{Code: 1006, StatusCode: http.StatusBadGateway, Err: "http error", RuErr: "Ошибка HTTP запроса"}

	// 2*** - локальные ошибки
	ErrOptionNotFound       = DefinedError{Code: 2001, StatusCode: http.StatusNotFound, Err: "option with ID '%s' not found in existing options", RuErr: "Опция с ID '%s' не найдена"}
	ErrTaskRelationNotFound = DefinedError{Code: 2002, StatusCode: http.StatusNotFound, Err: "task relation '%s' not found", RuErr: "Связь с задачей '%s' не найдена"}
	ErrMemberNotFound       = DefinedError{Code: 2003, StatusCode: http.StatusNotFound, Err: "member '%s' not found in field value", RuErr: "Участник '%s' не найден в значении поля"}
	ErrInvalidOption        = DefinedError{Code: 2004, StatusCode: http.StatusBadRequest, Err: "invalid option: title is required", RuErr: "Некорректная опция: не задано название"}
	ErrUnknownReaction      = DefinedError{Code: 2005, StatusCode: http.StatusBadRequest, Err: "unknown reaction type: %s", RuErr: "Неизвестный тип реакции: %s"}
	ErrFileNotFound         = DefinedError{Code: 2006, StatusCode: http.StatusBadRequest, Err: "file not found: %s", RuErr: "Файл не найден: %s"}
	ErrInvalidRequest       = DefinedError{Code: 2007, StatusCode: http.StatusBadRequest, Err: "invalid request: %s", RuErr: "Некорректный запрос: %s"}
	ErrInvalidDocument      = DefinedError{Code: 2008, StatusCode: http.StatusBadRequest, Err: "invalid document content: %s", RuErr: "Некорректное содержимое документа: %s"}
)

func (e DefinedError) WithFormattedMessage(args ...interface{}) DefinedError {
	if len(args) > 0 {
		e.Err = fmt.Sprintf(e.Err, args...)
		e.RuErr = fmt.Sprintf(e.RuErr, args...)
	} else {
		e.Err = strings.Replace(e.Err, "%s", "", -1)
		e.RuErr = strings.Replace(e.RuErr, "%s", "", -1)
	}
	return e
}
