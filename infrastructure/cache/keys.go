package cache

import (
	"strconv"
	"strings"
)

// Cache key namespaces. Every cached query handler owns exactly one
// namespace; mutations target these with RemoveByPattern, so the set
// below is an operational contract, not an implementation detail.
const (
	NamespaceClubs           = "clubs"
	NamespaceClubConnections = "club-connections"
	NamespaceGraphData       = "graph-data"
	NamespaceDashboardStats  = "dashboard-stats"
)

// PatternFor returns the eviction pattern covering every key in a
// namespace, including the bare namespace key used by token-less queries.
func PatternFor(namespace string) string {
	return "^" + namespace + "(:.*)?$"
}

// KeyBuilder derives deterministic cache keys of the form
// {namespace}:{field}={value}:... Fields are appended in the fixed order
// the calling handler defines; absent fields contribute no token, and
// case-insensitive fields are lowercased, so two equivalent requests
// always derive the same key and distinct requests never collide.
type KeyBuilder struct {
	parts []string
}

// NewKey starts a key in the given namespace
func NewKey(namespace string) *KeyBuilder {
	return &KeyBuilder{parts: []string{namespace}}
}

// Str appends a case-sensitive string field; empty values are skipped
func (b *KeyBuilder) Str(field, value string) *KeyBuilder {
	if value != "" {
		b.parts = append(b.parts, field+"="+value)
	}
	return b
}

// StrFold appends a case-insensitive string field, lowercased to keep
// casing differences from fragmenting the cache
func (b *KeyBuilder) StrFold(field, value string) *KeyBuilder {
	if value != "" {
		b.parts = append(b.parts, field+"="+strings.ToLower(value))
	}
	return b
}

// Int appends an integer field unconditionally
func (b *KeyBuilder) Int(field string, value int) *KeyBuilder {
	b.parts = append(b.parts, field+"="+strconv.Itoa(value))
	return b
}

// IntIf appends an integer field only when present (non-zero)
func (b *KeyBuilder) IntIf(field string, value int) *KeyBuilder {
	if value != 0 {
		return b.Int(field, value)
	}
	return b
}

// Bool appends a tri-state boolean field; nil (unset) is skipped
func (b *KeyBuilder) Bool(field string, value *bool) *KeyBuilder {
	if value != nil {
		b.parts = append(b.parts, field+"="+strconv.FormatBool(*value))
	}
	return b
}

// Flag appends a boolean field unconditionally
func (b *KeyBuilder) Flag(field string, value bool) *KeyBuilder {
	b.parts = append(b.parts, field+"="+strconv.FormatBool(value))
	return b
}

// Build assembles the final key
func (b *KeyBuilder) Build() string {
	return strings.Join(b.parts, ":")
}
