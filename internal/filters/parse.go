package filters

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateOnlyLayout = "2006-01-02"

// parseBound parses an RFC3339 timestamp or a bare date. A bare date used as
// an upper bound is widened to the end of that day so date bounds stay
// inclusive on both sides.
func parseBound(key, value string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, badValue(key, "expected RFC3339 timestamp or YYYY-MM-DD date")
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func parseDecimal(key, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, badValue(key, "expected a decimal number")
	}
	return d, nil
}

func parseInt(key, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, badValue(key, "expected an integer")
	}
	return i, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, badValue(key, "expected a boolean")
	}
	return b, nil
}

func parseUUID(key, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, badValue(key, "expected a UUID")
	}
	return id, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains builds a case-insensitive substring LIKE argument.
func contains(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}

// prefix builds a case-insensitive prefix LIKE argument.
func prefix(value string) string {
	return likeEscaper.Replace(strings.ToLower(value)) + "%"
}
