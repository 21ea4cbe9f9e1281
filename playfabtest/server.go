// Package playfabtest runs an in-process fake of the PlayFab HTTP API for tests.
package playfabtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"fabforge/playfab"
)

// Request is a request received by the fake service.
type Request struct {
	Path   string
	Header http.Header
	Body   []byte
}

// Decode unmarshals the request body into v.
func (r Request) Decode(v any) error {
	return sonic.ConfigStd.Unmarshal(r.Body, v)
}

// Reply is what a handler answers. Error takes precedence over Data.
type Reply struct {
	Data  any
	Error *playfab.APIError
	// Status overrides the HTTP status. Raw, when set, is written verbatim.
	Status int
	Raw    []byte
}

type HandlerFunc func(req Request) Reply

// Server is the fake service. Unregistered paths answer 404 APINotFound.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]HandlerFunc
	requests []Request
}

func NewServer() *Server {
	s := &Server{handlers: make(map[string]HandlerFunc)}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.POST("/*", s.serve)

	s.Server = httptest.NewServer(e)
	return s
}

// Handle registers fn for path.
func (s *Server) Handle(path string, fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[path] = fn
}

// Respond makes path answer data in a success envelope.
func (s *Server) Respond(path string, data any) {
	s.Handle(path, func(Request) Reply {
		return Reply{Data: data}
	})
}

// Fail makes path answer apiErr in an error envelope.
func (s *Server) Fail(path string, apiErr playfab.APIError) {
	s.Handle(path, func(Request) Reply {
		return Reply{Error: &apiErr}
	})
}

// Requests returns every request received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request for path.
func (s *Server) LastRequest(path string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Path == path {
			return s.requests[i], true
		}
	}
	return Request{}, false
}

// Reset forgets recorded requests but keeps handlers.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// Settings returns client settings pointing at the fake service.
func (s *Server) Settings() playfab.Settings {
	return playfab.Settings{
		TitleID:     "TEST",
		EndpointURL: s.URL,
		HTTPClient:  s.Client(),
	}
}

func (s *Server) serve(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	req := Request{
		Path:   c.Request().URL.Path,
		Header: c.Request().Header.Clone(),
		Body:   body,
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	handler := s.handlers[req.Path]
	s.mu.Unlock()

	if handler == nil {
		return writeError(c, &playfab.APIError{
			HTTPCode:     http.StatusNotFound,
			ErrorName:    "APINotFound",
			ErrorCode:    1123,
			ErrorMessage: "The API " + req.Path + " does not exist",
		})
	}

	reply := handler(req)
	switch {
	case reply.Raw != nil:
		status := reply.Status
		if status == 0 {
			status = http.StatusOK
		}
		return c.Blob(status, echo.MIMEApplicationJSON, reply.Raw)
	case reply.Error != nil:
		apiErr := *reply.Error
		if reply.Status != 0 {
			apiErr.HTTPCode = reply.Status
		}
		return writeError(c, &apiErr)
	default:
		status := reply.Status
		if status == 0 {
			status = http.StatusOK
		}
		return c.JSON(status, map[string]any{
			"code":   status,
			"status": http.StatusText(status),
			"data":   reply.Data,
		})
	}
}

func writeError(c echo.Context, apiErr *playfab.APIError) error {
	if apiErr.HTTPCode == 0 {
		apiErr.HTTPCode = http.StatusBadRequest
	}
	if apiErr.HTTPStatus == "" {
		apiErr.HTTPStatus = http.StatusText(apiErr.HTTPCode)
	}
	return c.JSON(apiErr.HTTPCode, apiErr)
}
