package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/mocks"
	"github.com/shopstack/commerce-analytics-api/internal/service"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

type TenantMiddlewareTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	router     *gin.Engine

	// tenant id seen by the handler behind the middleware chain,
	// empty when the request arrived unscoped
	resolvedID string
	// whether the handler behind the chain was reached at all
	handled bool
}

func (s *TenantMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockRepo.On("Tenant").Return(s.mockTenant)

	tenantSvc := service.NewTenantService(s.mockRepo, nil, 0, logger.NewLogger("test"))
	mw := NewTenantMiddleware(tenantSvc, logger.NewLogger("test"))

	s.resolvedID = ""
	s.handled = false

	s.router = gin.New()
	s.router.Use(mw.Resolve())
	group := s.router.Group("/scoped", mw.RequireTenant())
	group.GET("/ping", func(c *gin.Context) {
		s.handled = true
		id, _ := tenantscope.TenantID(c.Request.Context())
		s.resolvedID = id
		c.Status(http.StatusOK)
	})
	s.router.GET("/open", func(c *gin.Context) {
		s.handled = true
		if id, err := tenantscope.TenantID(c.Request.Context()); err == nil {
			s.resolvedID = id
		}
		c.Status(http.StatusOK)
	})
}

func TestTenantMiddleware(t *testing.T) {
	suite.Run(t, new(TenantMiddlewareTestSuite))
}

func tenantFixture(id string) *domain.Tenant {
	return &domain.Tenant{
		ID:       id,
		Name:     "Tenant " + id,
		Domain:   id,
		APIKey:   "key-" + id,
		IsActive: true,
	}
}

func (s *TenantMiddlewareTestSuite) do(path string, setup func(*http.Request)) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TenantMiddlewareTestSuite) TestHeaderResolves() {
	s.mockTenant.On("GetByID", mock.Anything, "t1").Return(tenantFixture("t1"), nil)

	w := s.do("/scoped/ping", func(r *http.Request) {
		r.Header.Set("X-Tenant-ID", "t1")
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("t1", s.resolvedID)
}

func (s *TenantMiddlewareTestSuite) TestHeaderWinsOverHost() {
	// The explicit header outranks the host subdomain even when they
	// disagree; the subdomain must not even be looked up.
	s.mockTenant.On("GetByID", mock.Anything, "t1").Return(tenantFixture("t1"), nil)

	w := s.do("/scoped/ping", func(r *http.Request) {
		r.Header.Set("X-Tenant-ID", "t1")
		r.Host = "t2.example.com"
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("t1", s.resolvedID)
	s.mockTenant.AssertNotCalled(s.T(), "GetByDomain", mock.Anything, mock.Anything)
}

func (s *TenantMiddlewareTestSuite) TestAPIKeyResolves() {
	s.mockTenant.On("GetByAPIKey", mock.Anything, "key-t1").Return(tenantFixture("t1"), nil)

	w := s.do("/scoped/ping", func(r *http.Request) {
		r.Header.Set("X-API-Key", "key-t1")
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("t1", s.resolvedID)
}

func (s *TenantMiddlewareTestSuite) TestUnknownAPIKeyRejected() {
	// A key that matches no tenant is a hard failure, not a fall-through
	// to weaker signals.
	s.mockTenant.On("GetByAPIKey", mock.Anything, "bogus").Return(nil, domain.ErrNotFound)

	w := s.do("/scoped/ping", func(r *http.Request) {
		r.Header.Set("X-API-Key", "bogus")
		r.Host = "t1.example.com"
	})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.False(s.handled)
	s.mockTenant.AssertNotCalled(s.T(), "GetByDomain", mock.Anything, mock.Anything)
}

func (s *TenantMiddlewareTestSuite) TestUnknownHeaderFallsThrough() {
	// An unknown X-Tenant-ID is not a match; the API key is consulted next.
	s.mockTenant.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
	s.mockTenant.On("GetByAPIKey", mock.Anything, "key-t2").Return(tenantFixture("t2"), nil)

	w := s.do("/scoped/ping", func(r *http.Request) {
		r.Header.Set("X-Tenant-ID", "ghost")
		r.Header.Set("X-API-Key", "key-t2")
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("t2", s.resolvedID)
}

func (s *TenantMiddlewareTestSuite) TestSubdomainResolves() {
	s.mockTenant.On("GetByDomain", mock.Anything, "acme").Return(tenantFixture("acme"), nil)

	w := s.do("/scoped/ping", func(r *http.Request) {
		r.Host = "acme.example.com"
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("acme", s.resolvedID)
}

func (s *TenantMiddlewareTestSuite) TestSubdomainWithPortResolves() {
	s.mockTenant.On("GetByDomain", mock.Anything, "acme").Return(tenantFixture("acme"), nil)

	w := s.do("/scoped/ping", func(r *http.Request) {
		r.Host = "acme.example.com:8080"
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("acme", s.resolvedID)
}

func (s *TenantMiddlewareTestSuite) TestReservedSubdomainSkipped() {
	s.mockTenant.On("GetByID", mock.Anything, "t3").Return(tenantFixture("t3"), nil)

	w := s.do("/scoped/ping?tenant_id=t3", func(r *http.Request) {
		r.Host = "www.example.com"
	})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("t3", s.resolvedID)
	s.mockTenant.AssertNotCalled(s.T(), "GetByDomain", mock.Anything, mock.Anything)
}

func (s *TenantMiddlewareTestSuite) TestQueryParamResolves() {
	s.mockTenant.On("GetByID", mock.Anything, "t4").Return(tenantFixture("t4"), nil)

	w := s.do("/scoped/ping?tenant_id=t4", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("t4", s.resolvedID)
}

func (s *TenantMiddlewareTestSuite) TestNoSignalRejectedOnScopedRoute() {
	w := s.do("/scoped/ping", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(s.handled)
}

func (s *TenantMiddlewareTestSuite) TestNoSignalPassesOnOpenRoute() {
	w := s.do("/open", nil)

	s.Equal(http.StatusOK, w.Code)
	s.True(s.handled)
	s.Empty(s.resolvedID)
}

func (s *TenantMiddlewareTestSuite) TestResolutionIsIdempotent() {
	s.mockTenant.On("GetByID", mock.Anything, "t1").Return(tenantFixture("t1"), nil)

	for i := 0; i < 3; i++ {
		w := s.do("/scoped/ping", func(r *http.Request) {
			r.Header.Set("X-Tenant-ID", "t1")
			r.Host = "other.example.com"
		})
		s.Equal(http.StatusOK, w.Code)
		s.Equal("t1", s.resolvedID)
	}
}

func TestExtractSubdomain(t *testing.T) {
	cases := []struct {
		host string
		want string
	}{
		{"acme.example.com", "acme"},
		{"acme.example.com:8080", "acme"},
		{"ACME.example.com", "acme"},
		{"example.com", ""},
		{"localhost", ""},
		{"localhost:10000", ""},
		{"www.example.com", ""},
		{"api.example.com", ""},
		{"admin.example.com", ""},
	}

	for _, tc := range cases {
		if got := extractSubdomain(tc.host); got != tc.want {
			t.Errorf("extractSubdomain(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
}
