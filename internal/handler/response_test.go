package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cabadmin/internal/domain"
	"cabadmin/internal/gateway"
	"cabadmin/internal/imaging"
	"cabadmin/internal/listing"
	"cabadmin/internal/service"
	"cabadmin/internal/workflow"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", &service.ValidationError{Fields: map[string]string{"email": "must be a valid email"}}, http.StatusBadRequest, ""},
		{"undecodable image", fmt.Errorf("%w: png", imaging.ErrDecode), http.StatusBadRequest, ""},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, ""},
		{"role", service.ErrRoleNotPermitted, http.StatusForbidden, ""},
		{"missing modification", service.ErrModificationNotFound, http.StatusNotFound, ""},
		{"unknown cab", workflow.ErrCabNotFound, http.StatusNotFound, ""},
		{"wrong state", fmt.Errorf("%w: save on EDITING", workflow.ErrInvalidTransition), http.StatusConflict, ""},
		{"in flight", service.ErrInFlight, http.StatusConflict, ""},
		{"unconfirmed delete", service.ErrConfirmationRequired, http.StatusPreconditionRequired, ""},
		{"server message", &gateway.APIError{Status: 400, Code: 400, Message: "Email already exists"}, http.StatusBadGateway, "Email already exists"},
		{"server without message", &gateway.APIError{Status: 500}, http.StatusBadGateway, domain.GenericErrorMessage},
		{"transport", fmt.Errorf("%w: login: refused", gateway.ErrUnavailable), http.StatusBadGateway, domain.GenericErrorMessage},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, domain.GenericErrorMessage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := mapError(tc.err)
			if status != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, status)
			}
			if tc.wantMessage != "" && message != tc.wantMessage {
				t.Errorf("expected message %q, got %q", tc.wantMessage, message)
			}
		})
	}
}

func TestListQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		url         string
		want        listing.Query
		wantConfirm bool
	}{
		{
			name:        "all parameters",
			url:         "/v1/bookings?search=Asha&sortBy=fare&order=DESC&page=2&confirm=true",
			want:        listing.Query{Search: "Asha", SortBy: "fare", Order: listing.Desc, Page: 2},
			wantConfirm: true,
		},
		{
			name: "defaults",
			url:  "/v1/bookings?page=x",
			want: listing.Query{Order: listing.Asc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			if q := listQuery(c); q != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, q)
			}
			if got := confirmed(c); got != tt.wantConfirm {
				t.Errorf("expected confirm %v, got %v", tt.wantConfirm, got)
			}
		})
	}
}
