package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cabadmin/internal/domain"
	"cabadmin/internal/gateway"
	"cabadmin/internal/imaging"
	"cabadmin/internal/listing"
	"cabadmin/internal/middleware"
	"cabadmin/internal/service"
	"cabadmin/internal/workflow"
)

// Response is the envelope of every response.
type Response struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// respondJSON sends data wrapped in the envelope.
func respondJSON(c *gin.Context, code int, message string, data any) {
	if message == "" {
		message = http.StatusText(code)
	}
	c.JSON(code, Response{Code: code, Message: message, Data: data})
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code, message := mapError(err)
	resp := Response{Code: code, Message: message}

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = verr.Fields
	}

	if code >= http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
	}
	_ = c.Error(err)
	c.JSON(code, resp)
}

// mapError maps service and upstream errors to an HTTP status and a message fit to show.
func mapError(err error) (int, string) {
	var verr *service.ValidationError
	var apiErr *gateway.APIError

	switch {
	// Validation errors - Bad Request
	case errors.As(err, &verr):
		return http.StatusBadRequest, "Please correct the highlighted fields."
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrImageRequired),
		errors.Is(err, imaging.ErrDecode):
		return http.StatusBadRequest, err.Error()

	// Auth errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrRoleNotPermitted):
		return http.StatusForbidden, err.Error()

	// Not found errors
	case errors.Is(err, service.ErrModificationNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, workflow.ErrCabNotFound),
		errors.Is(err, gateway.ErrEmptyData):
		return http.StatusNotFound, err.Error()

	// Conflict errors
	case errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, workflow.ErrCabNotSelected),
		errors.Is(err, service.ErrInFlight),
		errors.Is(err, service.ErrModificationClosed):
		return http.StatusConflict, err.Error()

	case errors.Is(err, service.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, err.Error()

	// Upstream failures
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, service.UserMessage(err)
	case errors.Is(err, gateway.ErrUnavailable),
		errors.Is(err, gateway.ErrInvalidPayload):
		return http.StatusBadGateway, domain.GenericErrorMessage

	default:
		return http.StatusInternalServerError, domain.GenericErrorMessage
	}
}

// bindJSON decodes the request body into v and answers 400 when it cannot.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: "invalid request body"})
		return false
	}
	return true
}

// listQuery reads search, sortBy, order and page from the query string.
func listQuery(c *gin.Context) listing.Query {
	page, _ := strconv.Atoi(c.Query("page"))
	order := listing.Asc
	if strings.EqualFold(c.Query("order"), string(listing.Desc)) {
		order = listing.Desc
	}
	return listing.Query{
		Search: c.Query("search"),
		SortBy: c.Query("sortBy"),
		Order:  order,
		Page:   page,
	}
}

// confirmed reports whether the request carries confirm=true.
func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

// session returns the signed-in session. The route guard guarantees one on guarded routes.
func session(c *gin.Context) *domain.Session {
	return middleware.SessionFrom(c)
}
