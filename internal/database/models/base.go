package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// ResourceMap maps a resource kind to a numeric value. Used both for tenant
// limits (ceilings) and usage (current consumption), stored as jsonb.
type ResourceMap map[ResourceKind]int64

// Value implements driver.Valuer so GORM can persist the map as jsonb
func (m ResourceMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for reading the jsonb column back
func (m *ResourceMap) Scan(value interface{}) error {
	if value == nil {
		*m = ResourceMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for ResourceMap: %T", value)
	}
	return json.Unmarshal(data, m)
}

// Clone returns a copy safe to mutate without touching the original
func (m ResourceMap) Clone() ResourceMap {
	out := make(ResourceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
