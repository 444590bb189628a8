package filters

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/yungbote/crm-backend/internal/domain"
)

const (
	cursorPrefix = "o:"

	DefaultPageSize = 50
	MaxPageSize     = 200
)

// PageRequest asks for a slice of the resolved result order. The cursor is
// opaque to callers and monotonic over the ordering the filter produced.
type PageRequest struct {
	Cursor string
	Limit  int
}

func (p *PageRequest) EffectiveLimit() int {
	if p == nil || p.Limit <= 0 {
		return DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		return MaxPageSize
	}
	return p.Limit
}

// Offset decodes the request cursor; an empty cursor means the start.
func (p *PageRequest) Offset() (int, error) {
	if p == nil || p.Cursor == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(p.Cursor)
	if err != nil {
		return 0, &domain.InvalidFilterError{Key: "cursor", Reason: "malformed cursor"}
	}
	s := string(raw)
	if !strings.HasPrefix(s, cursorPrefix) {
		return 0, &domain.InvalidFilterError{Key: "cursor", Reason: "malformed cursor"}
	}
	n, err := strconv.Atoi(s[len(cursorPrefix):])
	if err != nil || n < 0 {
		return 0, &domain.InvalidFilterError{Key: "cursor", Reason: "malformed cursor"}
	}
	return n, nil
}

func EncodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("%s%d", cursorPrefix, offset)))
}
