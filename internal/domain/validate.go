package domain

import (
	"regexp"

	"github.com/google/uuid"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Accepted phone formats: international ("+" followed by 1-15 digits)
	// or dashed local ("123-456-7890").
	phoneIntlPattern   = regexp.MustCompile(`^\+\d{1,15}$`)
	phoneDashedPattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidPhone(phone string) bool {
	return phoneIntlPattern.MatchString(phone) || phoneDashedPattern.MatchString(phone)
}

// ValidateCustomer returns the list of violated invariants, empty when valid.
// It is pure and never touches storage; email uniqueness is enforced
// separately by the store's unique index.
func ValidateCustomer(c *Customer) []string {
	var violations []string
	if c.Name == "" {
		violations = append(violations, "name is required")
	}
	if c.Email == "" {
		violations = append(violations, "email is required")
	} else if !ValidEmail(c.Email) {
		violations = append(violations, "email format is invalid")
	}
	if c.Phone != "" && !ValidPhone(c.Phone) {
		violations = append(violations, "invalid phone number format, use '+1234567890' or '123-456-7890'")
	}
	return violations
}

func ValidateProduct(p *Product) []string {
	var violations []string
	if p.Name == "" {
		violations = append(violations, "name is required")
	}
	if !p.Price.IsPositive() {
		violations = append(violations, "price must be a positive number")
	}
	if p.Stock < 0 {
		violations = append(violations, "stock cannot be a negative number")
	}
	return violations
}

func ValidateOrder(o *Order) []string {
	var violations []string
	if o.CustomerID == uuid.Nil {
		violations = append(violations, "customer is required")
	}
	if len(o.Products) == 0 {
		violations = append(violations, "order must contain at least one product")
	}
	return violations
}
