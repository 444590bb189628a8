// Package filters turns declarative criterion maps, as produced by the
// transport layer, into typed per-entity filters that apply themselves to a
// GORM query as predicates and ordering. Unknown criteria and malformed
// values are rejected at parse time, before any query runs.
package filters

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
)

type Entity string

const (
	EntityCustomer Entity = "customer"
	EntityProduct  Entity = "product"
	EntityOrder    Entity = "order"
)

// Filter is a parsed, validated filter specification. Apply composes the
// filter's predicates and ordering onto q; criteria always combine with AND.
type Filter interface {
	Apply(q *gorm.DB) *gorm.DB
}

// Parse validates the criterion map against the entity's enumerated criteria
// and returns the typed filter. An empty map yields a filter that returns the
// full collection ordered by id.
func Parse(entity Entity, criteria map[string]string) (Filter, error) {
	switch entity {
	case EntityCustomer:
		return parseCustomerFilter(criteria)
	case EntityProduct:
		return parseProductFilter(criteria)
	case EntityOrder:
		return parseOrderFilter(criteria)
	default:
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}
}

func unknownKey(key string) error {
	return &domain.InvalidFilterError{Key: key}
}

func badValue(key, reason string) error {
	return &domain.InvalidFilterError{Key: key, Reason: reason}
}
