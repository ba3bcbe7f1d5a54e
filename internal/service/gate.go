package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"hr-platform-backend/internal/catalog"
	"hr-platform-backend/internal/database/models"
	apperrors "hr-platform-backend/internal/errors"
	"hr-platform-backend/internal/logger"
	"hr-platform-backend/internal/repository"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DenyReason classifies why the gate denied a request
type DenyReason string

const (
	DenyTenantNotActive DenyReason = "tenant_not_active"
	DenyUnknownModule   DenyReason = "unknown_module"
	DenyLicenseMissing  DenyReason = "license_missing"
	DenyQuotaExceeded   DenyReason = "quota_exceeded"
)

// Decision is the gate's answer for one (tenant, module) pair. It carries
// enough detail for the caller to surface a useful rejection.
type Decision struct {
	Allowed  bool       `json:"allowed"`
	ModuleID string     `json:"module_id"`
	Reason   DenyReason `json:"reason,omitempty"`
	// FailedModule names the first unsatisfied module in closure order when
	// Reason is license_missing
	FailedModule string `json:"failed_module,omitempty"`
	// Resource names the exhausted resource kind when Reason is quota_exceeded
	Resource string `json:"resource,omitempty"`
	// Warning flags a soft-limit breach on an allowed request
	Warning bool `json:"warning,omitempty"`
}

// Err converts a denial into its typed error; nil for allowed decisions
func (d *Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case DenyTenantNotActive:
		return apperrors.ErrTenantNotActive
	case DenyUnknownModule:
		return apperrors.NewUnknownModuleError(d.ModuleID)
	case DenyLicenseMissing:
		return apperrors.NewLicenseMissingError(d.FailedModule)
	case DenyQuotaExceeded:
		return apperrors.NewQuotaExceededError(d.Resource, 0)
	}
	return fmt.Errorf("denied: %s", d.Reason)
}

type gateCacheKey struct {
	tenantID uuid.UUID
	moduleID string
}

type gateCacheEntry struct {
	decision  Decision
	expiresAt time.Time
}

// GateService is the read-only authorization decision function consulted by
// every module-scoped route. It performs no mutation and is safe to call
// concurrently. Decisions are cached with a short TTL; any lifecycle or
// license mutation for a tenant invalidates its entries.
type GateService struct {
	tenants  repository.TenantRepositoryInterface
	licenses repository.ModuleLicenseRepositoryInterface
	catalog  *catalog.Catalog
	clock    clock.Clock
	log      *logger.Logger

	ttl   time.Duration
	mu    sync.RWMutex
	cache map[gateCacheKey]gateCacheEntry
}

// NewGateService creates a new gate service. A zero ttl disables caching.
func NewGateService(
	tenants repository.TenantRepositoryInterface,
	licenses repository.ModuleLicenseRepositoryInterface,
	cat *catalog.Catalog,
	clk clock.Clock,
	ttl time.Duration,
) *GateService {
	if clk == nil {
		clk = clock.New()
	}
	return &GateService{
		tenants:  tenants,
		licenses: licenses,
		catalog:  cat,
		clock:    clk,
		log:      logger.New(),
		ttl:      ttl,
		cache:    make(map[gateCacheKey]gateCacheEntry),
	}
}

// Authorize decides whether the tenant may use the module right now. The
// checks run in order and short-circuit on the first failure: lifecycle
// state, module existence, license closure, quota. Denials are normal
// outcomes; the error return is reserved for unexpected failures such as a
// persistence error or a misconfigured catalog.
func (s *GateService) Authorize(tenantID uuid.UUID, moduleID string) (*Decision, error) {
	key := gateCacheKey{tenantID: tenantID, moduleID: moduleID}
	if d, ok := s.cached(key); ok {
		return d, nil
	}

	decision, err := s.decide(tenantID, moduleID)
	if err != nil {
		return nil, err
	}

	s.store(key, *decision)
	if !decision.Allowed {
		s.log.WithFields(map[string]interface{}{
			"tenant_id": tenantID,
			"module":    moduleID,
			"reason":    decision.Reason,
		}).Debug("authorization denied")
	}
	return decision, nil
}

func (s *GateService) decide(tenantID uuid.UUID, moduleID string) (*Decision, error) {
	decision := &Decision{ModuleID: moduleID}

	// 1. Tenant must exist and be active. Unknown tenants deny rather than
	// error: the gate's callers treat both identically.
	tenant, err := s.tenants.GetByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			decision.Reason = DenyTenantNotActive
			return decision, nil
		}
		return nil, fmt.Errorf("gate: failed to read tenant: %w", err)
	}
	if !tenant.IsActive() {
		decision.Reason = DenyTenantNotActive
		return decision, nil
	}

	// 2. Module must exist in the catalog
	module, err := s.catalog.Get(moduleID)
	if err != nil {
		decision.Reason = DenyUnknownModule
		return decision, nil
	}

	// 3. Every module in the dependency closure needs a valid license.
	// Revoked dependencies deny dependents here even though the dependent's
	// own row still says enabled.
	closure, err := s.catalog.Resolve(moduleID)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			s.log.Errorf("gate: catalog misconfiguration resolving %s: %v", moduleID, err)
			return nil, err
		}
		decision.Reason = DenyUnknownModule
		return decision, nil
	}

	licenses, err := s.licenses.GetByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("gate: failed to read licenses: %w", err)
	}
	byModule := make(map[string]*models.ModuleLicense, len(licenses))
	for i := range licenses {
		byModule[licenses[i].ModuleID] = &licenses[i]
	}

	now := s.clock.Now()
	for _, id := range closure {
		license, ok := byModule[id]
		if !ok || !license.ValidAt(now) {
			decision.Reason = DenyLicenseMissing
			decision.FailedModule = id
			return decision, nil
		}
	}

	// 4. Quota: a hard-limit breach on any resource the module consumes
	// denies; a soft-limit breach allows with a warning.
	for _, kind := range module.Resources {
		limit, limited := tenant.LimitFor(kind)
		if !limited {
			continue
		}
		usage := tenant.UsageFor(kind)
		if usage >= limit {
			decision.Reason = DenyQuotaExceeded
			decision.Resource = string(kind)
			return decision, nil
		}
		if overSoftLimit(usage, limit) {
			decision.Warning = true
		}
	}

	decision.Allowed = true
	return decision, nil
}

// InvalidateTenant drops all cached decisions for a tenant. Called by every
// lifecycle, license and usage mutation.
func (s *GateService) InvalidateTenant(tenantID uuid.UUID) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.cache {
		if key.tenantID == tenantID {
			delete(s.cache, key)
		}
	}
}

func (s *GateService) cached(key gateCacheKey) (*Decision, bool) {
	if s.ttl <= 0 {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[key]
	if !ok || s.clock.Now().After(entry.expiresAt) {
		return nil, false
	}
	d := entry.decision
	return &d, true
}

func (s *GateService) store(key gateCacheKey, decision Decision) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = gateCacheEntry{decision: decision, expiresAt: s.clock.Now().Add(s.ttl)}
}
