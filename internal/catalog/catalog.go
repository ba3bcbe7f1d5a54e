package catalog

import (
	"fmt"
	"sort"

	"hr-platform-backend/internal/database/models"
	apperrors "hr-platform-backend/internal/errors"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// ModuleConfig declares a single licensable module. The catalog is loaded
// once at startup and never mutated afterwards.
type ModuleConfig struct {
	ID          string                `mapstructure:"id" json:"id"`
	Name        string                `mapstructure:"name" json:"name"`
	DependsOn   []string              `mapstructure:"depends_on" json:"depends_on"`
	Permissions []string              `mapstructure:"permissions" json:"permissions"`
	RoutePrefix string                `mapstructure:"route_prefix" json:"route_prefix"`
	Resources   []models.ResourceKind `mapstructure:"resources" json:"resources"`
}

// Catalog is the immutable set of licensable modules and their dependency
// graph. Safe for concurrent readers.
type Catalog struct {
	modules map[string]ModuleConfig
	order   []string // declaration order, for deterministic listings
}

type catalogFile struct {
	Modules []ModuleConfig `mapstructure:"modules"`
}

// Load reads the module catalog from a YAML file and validates it. Any
// violation (duplicate id, unknown dependency, cycle) is a ConfigurationError
// and must abort startup.
func Load(configPath string) (*Catalog, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("modules")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("error reading module catalog: %v", err))
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("error unmarshaling module catalog: %v", err))
	}

	return New(file.Modules)
}

// New builds a catalog from module declarations, validating the dependency
// graph is well formed and acyclic.
func New(modules []ModuleConfig) (*Catalog, error) {
	c := &Catalog{
		modules: make(map[string]ModuleConfig, len(modules)),
		order:   make([]string, 0, len(modules)),
	}

	var result *multierror.Error
	for _, m := range modules {
		if m.ID == "" {
			result = multierror.Append(result, fmt.Errorf("module with empty id"))
			continue
		}
		if _, exists := c.modules[m.ID]; exists {
			result = multierror.Append(result, fmt.Errorf("duplicate module id: %s", m.ID))
			continue
		}
		c.modules[m.ID] = m
		c.order = append(c.order, m.ID)
	}

	for _, m := range modules {
		for _, dep := range m.DependsOn {
			if _, ok := c.modules[dep]; !ok {
				result = multierror.Append(result, fmt.Errorf("module %s depends on unknown module %s", m.ID, dep))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("invalid module catalog: %v", err))
	}

	// Full cycle check up front so a bad catalog never reaches serving
	for _, id := range c.order {
		if _, err := c.Resolve(id); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Get returns the configuration for a module id
func (c *Catalog) Get(moduleID string) (ModuleConfig, error) {
	m, ok := c.modules[moduleID]
	if !ok {
		return ModuleConfig{}, apperrors.NewUnknownModuleError(moduleID)
	}
	return m, nil
}

// Has reports whether the module exists in the catalog
func (c *Catalog) Has(moduleID string) bool {
	_, ok := c.modules[moduleID]
	return ok
}

// Modules returns all module configurations in declaration order
func (c *Catalog) Modules() []ModuleConfig {
	out := make([]ModuleConfig, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.modules[id])
	}
	return out
}

// ModuleIDs returns all module ids sorted alphabetically
func (c *Catalog) ModuleIDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	sort.Strings(ids)
	return ids
}

// Resolve returns the dependency closure of a module: every transitive
// dependency in dependency-first order, the requested module last. Unknown
// ids fail with UnknownModuleError; a cycle fails with ConfigurationError
// instead of looping.
func (c *Catalog) Resolve(moduleID string) ([]string, error) {
	if _, ok := c.modules[moduleID]; !ok {
		return nil, apperrors.NewUnknownModuleError(moduleID)
	}

	var closure []string
	visited := make(map[string]bool)
	inStack := make(map[string]bool)

	var visit func(id string) error
	visit = func(id string) error {
		if inStack[id] {
			return apperrors.NewConfigurationError(fmt.Sprintf("module catalog contains a cycle through %s", id))
		}
		if visited[id] {
			return nil
		}
		m, ok := c.modules[id]
		if !ok {
			return apperrors.NewUnknownModuleError(id)
		}
		inStack[id] = true
		for _, dep := range m.DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		inStack[id] = false
		visited[id] = true
		closure = append(closure, id)
		return nil
	}

	if err := visit(moduleID); err != nil {
		return nil, err
	}
	return closure, nil
}
