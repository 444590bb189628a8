package filters

import (
	"time"

	"gorm.io/gorm"
)

// CustomerFilter is the closed set of customer criteria.
type CustomerFilter struct {
	Name            *string
	Email           *string
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
	PhoneStartsWith *string
	OrderBy         []OrderField
}

var customerOrderColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

func parseCustomerFilter(criteria map[string]string) (*CustomerFilter, error) {
	f := &CustomerFilter{}
	for key, value := range criteria {
		switch key {
		case "name":
			v := value
			f.Name = &v
		case "email":
			v := value
			f.Email = &v
		case "createdAfter":
			t, err := parseBound(key, value, false)
			if err != nil {
				return nil, err
			}
			f.CreatedAfter = &t
		case "createdBefore":
			t, err := parseBound(key, value, true)
			if err != nil {
				return nil, err
			}
			f.CreatedBefore = &t
		case "phoneStartsWith":
			v := value
			f.PhoneStartsWith = &v
		case "orderBy":
			fields, err := parseOrderBy(value, customerOrderColumns)
			if err != nil {
				return nil, err
			}
			f.OrderBy = fields
		default:
			return nil, unknownKey(key)
		}
	}
	return f, nil
}

func (f *CustomerFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Name != nil {
		q = q.Where("LOWER(name) LIKE ?", contains(*f.Name))
	}
	if f.Email != nil {
		q = q.Where("LOWER(email) LIKE ?", contains(*f.Email))
	}
	if f.CreatedAfter != nil {
		q = q.Where("created_at >= ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		q = q.Where("created_at <= ?", *f.CreatedBefore)
	}
	if f.PhoneStartsWith != nil {
		q = q.Where("LOWER(phone) LIKE ?", prefix(*f.PhoneStartsWith))
	}
	return applyOrder(q, f.OrderBy, "id")
}
