package clustertest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
)

// Param is a path parameter of a test request.
type Param struct {
	Name, Value string
}

// NewContext returns an echo context for a request with an optional
// JSON body and the path parameters set.
func NewContext(method, target, body string, params ...Param) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	names := make([]string, len(params))
	values := make([]string, len(params))
	for i, p := range params {
		names[i], values[i] = p.Name, p.Value
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

// StatusCode returns the HTTP status of a handler result: the code of
// a returned *echo.HTTPError, or the recorded one.
func StatusCode(err error, rec *httptest.ResponseRecorder) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	if err != nil {
		return http.StatusInternalServerError
	}
	return rec.Code
}
