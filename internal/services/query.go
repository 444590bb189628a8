package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/filters"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// ListResult carries one page of entities in the resolved order. NextCursor
// is empty on the final page.
type ListResult struct {
	Items      interface{} `json:"items"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

type QueryService interface {
	List(ctx context.Context, entity filters.Entity, criteria map[string]string, page *filters.PageRequest) (*ListResult, error)
}

type queryService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQueryService(db *gorm.DB, log *logger.Logger) QueryService {
	return &queryService{db: db, log: log.With("service", "QueryService")}
}

// List parses the criteria before any query runs, so a bad filter aborts the
// call with no partial result.
func (s *queryService) List(ctx context.Context, entity filters.Entity, criteria map[string]string, page *filters.PageRequest) (*ListResult, error) {
	filter, err := filters.Parse(entity, criteria)
	if err != nil {
		return nil, err
	}
	offset, err := page.Offset()
	if err != nil {
		return nil, err
	}
	limit := page.EffectiveLimit()

	q := s.db.WithContext(ctx)
	switch entity {
	case filters.EntityCustomer:
		var rows []*domain.Customer
		// Fetch one extra row to learn whether another page exists.
		if err := filter.Apply(q.Model(&domain.Customer{})).
			Offset(offset).Limit(limit + 1).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		rows, next := trim(rows, offset, limit)
		return &ListResult{Items: rows, NextCursor: next}, nil
	case filters.EntityProduct:
		var rows []*domain.Product
		if err := filter.Apply(q.Model(&domain.Product{})).
			Offset(offset).Limit(limit + 1).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		rows, next := trim(rows, offset, limit)
		return &ListResult{Items: rows, NextCursor: next}, nil
	case filters.EntityOrder:
		var rows []*domain.Order
		if err := filter.Apply(q.Model(&domain.Order{})).
			Preload("Customer").Preload("Products").
			Offset(offset).Limit(limit + 1).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		rows, next := trim(rows, offset, limit)
		return &ListResult{Items: rows, NextCursor: next}, nil
	default:
		return nil, &domain.InvalidFilterError{Key: string(entity), Reason: "unknown entity type"}
	}
}

func trim[T any](rows []T, offset, limit int) ([]T, string) {
	if len(rows) <= limit {
		return rows, ""
	}
	return rows[:limit], filters.EncodeCursor(offset + limit)
}
