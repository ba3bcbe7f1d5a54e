package catalog

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "hr-platform-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testModules() []ModuleConfig {
	return []ModuleConfig{
		{ID: "hr-core", Name: "HR Core", RoutePrefix: "/hr"},
		{ID: "payroll", Name: "Payroll", DependsOn: []string{"hr-core"}, RoutePrefix: "/payroll"},
		{ID: "reports", Name: "Reports", DependsOn: []string{"hr-core", "payroll"}, RoutePrefix: "/reports"},
		{ID: "attendance", Name: "Attendance", DependsOn: []string{"hr-core"}, RoutePrefix: "/attendance"},
		{ID: "leave", Name: "Leave", DependsOn: []string{"attendance"}, RoutePrefix: "/leave"},
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		c, err := New(testModules())
		require.NoError(t, err)
		assert.True(t, c.Has("payroll"))
		assert.False(t, c.Has("timesheets"))
		assert.Len(t, c.Modules(), 5)
	})

	t.Run("duplicate module id", func(t *testing.T) {
		mods := append(testModules(), ModuleConfig{ID: "hr-core", Name: "Duplicate"})
		_, err := New(mods)
		require.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
		assert.Contains(t, err.Error(), "duplicate module id")
	})

	t.Run("unknown dependency", func(t *testing.T) {
		mods := append(testModules(), ModuleConfig{ID: "surveys", DependsOn: []string{"missing"}})
		_, err := New(mods)
		require.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
		assert.Contains(t, err.Error(), "unknown module missing")
	})

	t.Run("cycle is rejected at load", func(t *testing.T) {
		mods := []ModuleConfig{
			{ID: "a", DependsOn: []string{"b"}},
			{ID: "b", DependsOn: []string{"c"}},
			{ID: "c", DependsOn: []string{"a"}},
		}
		_, err := New(mods)
		require.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("self dependency is a cycle", func(t *testing.T) {
		_, err := New([]ModuleConfig{{ID: "a", DependsOn: []string{"a"}}})
		require.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("multiple problems are aggregated", func(t *testing.T) {
		mods := []ModuleConfig{
			{ID: "a"},
			{ID: "a"},
			{ID: "b", DependsOn: []string{"ghost"}},
		}
		_, err := New(mods)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate module id")
		assert.Contains(t, err.Error(), "ghost")
	})
}

func TestResolve(t *testing.T) {
	c, err := New(testModules())
	require.NoError(t, err)

	t.Run("module with no dependencies", func(t *testing.T) {
		closure, err := c.Resolve("hr-core")
		require.NoError(t, err)
		assert.Equal(t, []string{"hr-core"}, closure)
	})

	t.Run("direct dependency comes first", func(t *testing.T) {
		closure, err := c.Resolve("payroll")
		require.NoError(t, err)
		assert.Equal(t, []string{"hr-core", "payroll"}, closure)
	})

	t.Run("transitive closure is deduplicated and dependency-first", func(t *testing.T) {
		closure, err := c.Resolve("reports")
		require.NoError(t, err)
		assert.Equal(t, []string{"hr-core", "payroll", "reports"}, closure)
	})

	t.Run("deep chain", func(t *testing.T) {
		closure, err := c.Resolve("leave")
		require.NoError(t, err)
		assert.Equal(t, []string{"hr-core", "attendance", "leave"}, closure)
	})

	t.Run("unknown module", func(t *testing.T) {
		_, err := c.Resolve("timesheets")
		require.Error(t, err)
		assert.True(t, apperrors.IsUnknownModule(err))
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads catalog from yaml file", func(t *testing.T) {
		doc := map[string]interface{}{
			"modules": []map[string]interface{}{
				{"id": "hr-core", "name": "HR Core", "route_prefix": "/hr", "permissions": []string{"employee.read"}, "resources": []string{"users"}},
				{"id": "payroll", "name": "Payroll", "route_prefix": "/payroll", "depends_on": []string{"hr-core"}},
			},
		}
		data, err := yaml.Marshal(doc)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "modules.yaml")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		assert.True(t, c.Has("payroll"))

		m, err := c.Get("hr-core")
		require.NoError(t, err)
		assert.Equal(t, "HR Core", m.Name)
		assert.Equal(t, "/hr", m.RoutePrefix)
		assert.Equal(t, []string{"employee.read"}, m.Permissions)
	})

	t.Run("missing file is a configuration error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, apperrors.IsConfiguration(err))
	})
}
