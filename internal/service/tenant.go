package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/metrics"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

// TenantService fronts the tenant registry. Lookups by id, API key and
// domain sit on the hot path of every request, so results are cached in
// Redis for a short TTL. Cache misses and Redis failures fall through to
// Postgres.
type TenantService struct {
	repo     repository.Repository
	redis    *redis.Client
	cacheTTL time.Duration
	logger   *logger.Logger
	metrics  *metrics.APIMetrics
}

func NewTenantService(repo repository.Repository, redisClient *redis.Client, cacheTTL time.Duration, logger *logger.Logger) *TenantService {
	return &TenantService{
		repo:     repo,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// SetMetrics enables cache hit/miss counters.
func (s *TenantService) SetMetrics(m *metrics.APIMetrics) {
	s.metrics = m
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	tenant := &domain.Tenant{
		Name:      req.Name,
		Domain:    req.Domain,
		Timezone:  req.Timezone,
		Currency:  req.Currency,
		RateLimit: req.RateLimit,
		IsActive:  true,
	}
	if tenant.Timezone == "" {
		tenant.Timezone = "UTC"
	}
	if tenant.Currency == "" {
		tenant.Currency = "USD"
	}

	created, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		return nil, err
	}

	return dto.FromTenant(created), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.getCached(ctx, "tenant:id:"+id, func() (*domain.Tenant, error) {
		return s.repo.Tenant().GetByID(ctx, id)
	})
}

func (s *TenantService) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Tenant, error) {
	return s.getCached(ctx, "tenant:key:"+apiKey, func() (*domain.Tenant, error) {
		return s.repo.Tenant().GetByAPIKey(ctx, apiKey)
	})
}

func (s *TenantService) GetByDomain(ctx context.Context, tenantDomain string) (*domain.Tenant, error) {
	return s.getCached(ctx, "tenant:domain:"+tenantDomain, func() (*domain.Tenant, error) {
		return s.repo.Tenant().GetByDomain(ctx, tenantDomain)
	})
}

func (s *TenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		tenant.Name = req.Name
	}
	if req.Timezone != "" {
		tenant.Timezone = req.Timezone
	}
	if req.Currency != "" {
		tenant.Currency = req.Currency
	}
	if req.RateLimit > 0 {
		tenant.RateLimit = req.RateLimit
	}
	tenant.UpdatedAt = time.Now()

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, err
	}

	s.invalidate(ctx, tenant)
	return dto.FromTenant(tenant), nil
}

// Deactivate disables a tenant. Its records stay in place but all lookups
// stop resolving, so subsequent requests fail tenant resolution.
func (s *TenantService) Deactivate(ctx context.Context, id string) error {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Tenant().Deactivate(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, tenant)

	// Search indices for a deactivated tenant are dropped eagerly.
	if err := s.repo.Search().DeleteTenantIndex(ctx, id); err != nil {
		s.logger.Errorf("Failed to delete search index for tenant %s: %v", id, err)
	}
	return nil
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromTenants(tenants), nil
}

func (s *TenantService) getCached(ctx context.Context, key string, load func() (*domain.Tenant, error)) (*domain.Tenant, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, key).Result(); err == nil {
			var tenant domain.Tenant
			if err := json.Unmarshal([]byte(cached), &tenant); err == nil {
				if s.metrics != nil {
					s.metrics.TenantCacheHits.Inc()
				}
				return &tenant, nil
			}
		}
	}
	if s.metrics != nil {
		s.metrics.TenantCacheMisses.Inc()
	}

	tenant, err := load()
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(tenant); err == nil {
			if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
				s.logger.Debugf("Failed to cache tenant %s: %v", tenant.ID, err)
			}
		}
	}

	return tenant, nil
}

func (s *TenantService) invalidate(ctx context.Context, tenant *domain.Tenant) {
	if s.redis == nil {
		return
	}
	keys := []string{
		"tenant:id:" + tenant.ID,
		"tenant:key:" + tenant.APIKey,
		"tenant:domain:" + tenant.Domain,
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		s.logger.Debugf("Failed to invalidate tenant cache for %s: %v", tenant.ID, err)
	}
}
