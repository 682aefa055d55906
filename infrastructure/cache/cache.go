// Package cache provides the process-wide key/value cache used by every
// query handler: TTL expiration, existence checks, and regex-based bulk
// removal over a tracked key set.
package cache

import (
	"context"
	"encoding/json"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	pkgerrors "clubgraph/pkg/errors"

	"go.uber.org/zap"
)

// UseDefaultTTL tells Set to apply the service-wide default expiration.
const UseDefaultTTL time.Duration = -1

// payloadKind tags how a value is stored. Callers declare it up front so
// no runtime type inspection is needed on the read path.
type payloadKind int

const (
	kindPrimitive payloadKind = iota
	kindJSON
)

type entry struct {
	value     interface{} // primitive entries only
	raw       []byte      // serialized entries only
	kind      payloadKind
	expiresAt time.Time
	createdAt time.Time
	onEvict   func(key string)
}

func (e *entry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// Stats exposes cache counters for observability.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Items     int
}

// Service is the process-wide cache. Entries live in a concurrent map;
// the key registry has its own mutex and exists solely so RemoveByPattern
// can enumerate live keys, which the map itself cannot do atomically.
type Service struct {
	items      sync.Map // string -> *entry
	defaultTTL time.Duration
	logger     *zap.Logger

	registryMu sync.Mutex
	registry   map[string]struct{}

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64

	stopOnce sync.Once
	stop     chan struct{}
}

// NewService creates a cache with the given default TTL and starts the
// expiration janitor. Callers must Stop the service at shutdown.
func NewService(defaultTTL time.Duration, logger *zap.Logger) *Service {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	s := &Service{
		defaultTTL: defaultTTL,
		logger:     logger,
		registry:   make(map[string]struct{}),
		stop:       make(chan struct{}),
	}

	go s.janitor()

	return s
}

// SetValue stores a primitive-storable value (string, number, boolean,
// time) without serialization. ttl = UseDefaultTTL applies the default.
func (s *Service) SetValue(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.store(key, &entry{value: value, kind: kindPrimitive}, ttl)
	return nil
}

// SetJSON serializes value to JSON and stores it. A serialization failure
// is logged and returned; the cache is left untouched so a later Get
// cannot observe a half-written entry.
func (s *Service) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("cache set failed to serialize value",
			zap.String("key", key),
			zap.Error(err),
		)
		return pkgerrors.NewCacheError("set", err)
	}
	s.store(key, &entry{raw: raw, kind: kindJSON}, ttl)
	return nil
}

// GetValue returns a primitive entry. Serialized entries and expired
// entries read as absent.
func (s *Service) GetValue(ctx context.Context, key string) (interface{}, bool) {
	e, ok := s.lookup(key)
	if !ok {
		return nil, false
	}
	if e.kind != kindPrimitive {
		s.logger.Warn("cache entry kind mismatch, treating as miss", zap.String("key", key))
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return e.value, true
}

// GetJSON deserializes a serialized entry into dest. Any deserialization
// error degrades to a miss so a corrupt entry can never fail a request.
func (s *Service) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	e, ok := s.lookup(key)
	if !ok {
		return false
	}
	if e.kind != kindJSON {
		s.logger.Warn("cache entry kind mismatch, treating as miss", zap.String("key", key))
		s.misses.Add(1)
		return false
	}
	if err := json.Unmarshal(e.raw, dest); err != nil {
		s.logger.Error("cache get failed to deserialize value",
			zap.String("key", key),
			zap.Error(err),
		)
		s.misses.Add(1)
		s.evict(key)
		return false
	}
	s.hits.Add(1)
	return true
}

// Exists reports whether a non-expired entry is present for key. The
// payload is never deserialized and the hit/miss counters are left
// alone: an existence probe is not a read.
func (s *Service) Exists(ctx context.Context, key string) bool {
	_, ok := s.peek(key)
	return ok
}

// Remove deletes a single entry. Removing an absent key is not an error.
func (s *Service) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.evict(key)
	return nil
}

// RemoveByPattern compiles pattern as a case-insensitive regular
// expression and removes every matching entry. It operates on a snapshot
// of the key registry: keys inserted mid-scan are not guaranteed to be
// evaluated and keys already removed are skipped silently. Returns the
// number of entries removed.
func (s *Service) RemoveByPattern(ctx context.Context, pattern string) (int, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		s.logger.Error("cache invalid eviction pattern",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
		return 0, pkgerrors.NewCacheError("remove-by-pattern", err)
	}

	s.registryMu.Lock()
	snapshot := make([]string, 0, len(s.registry))
	for key := range s.registry {
		snapshot = append(snapshot, key)
	}
	s.registryMu.Unlock()

	removed := 0
	for _, key := range snapshot {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if re.MatchString(key) {
			if s.evict(key) {
				removed++
			}
		}
	}

	s.logger.Debug("cache pattern eviction",
		zap.String("pattern", pattern),
		zap.Int("removed", removed),
	)
	return removed, nil
}

// Stats returns a snapshot of the cache counters.
func (s *Service) Stats() Stats {
	s.registryMu.Lock()
	items := len(s.registry)
	s.registryMu.Unlock()

	return Stats{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
		Items:     items,
	}
}

// Stop terminates the expiration janitor. Idempotent.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Service) store(key string, e *entry, ttl time.Duration) {
	if ttl == UseDefaultTTL {
		ttl = s.defaultTTL
	}
	now := time.Now()
	e.createdAt = now
	e.expiresAt = now.Add(ttl)
	e.onEvict = s.deregister
	s.items.Store(key, e)

	s.registryMu.Lock()
	s.registry[key] = struct{}{}
	s.registryMu.Unlock()
}

func (s *Service) lookup(key string) (*entry, bool) {
	e, ok := s.peek(key)
	if !ok {
		s.misses.Add(1)
	}
	return e, ok
}

// peek is lookup without the miss accounting. Expired entries are
// still evicted on sight.
func (s *Service) peek(key string) (*entry, bool) {
	v, ok := s.items.Load(key)
	if !ok {
		return nil, false
	}
	e := v.(*entry)
	if e.expired(time.Now()) {
		s.evict(key)
		return nil, false
	}
	return e, true
}

// evict removes an entry and fires its eviction callback. Reports whether
// an entry was actually present.
func (s *Service) evict(key string) bool {
	v, loaded := s.items.LoadAndDelete(key)
	if !loaded {
		// Keep the registry consistent even if the entry raced away.
		s.deregister(key)
		return false
	}
	s.evictions.Add(1)
	if e := v.(*entry); e.onEvict != nil {
		e.onEvict(key)
	}
	return true
}

func (s *Service) deregister(key string) {
	s.registryMu.Lock()
	delete(s.registry, key)
	s.registryMu.Unlock()
}

// janitor drops expired entries so the registry does not accumulate dead
// keys between reads.
func (s *Service) janitor() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.items.Range(func(k, v interface{}) bool {
				if v.(*entry).expired(now) {
					s.evict(k.(string))
				}
				return true
			})
		}
	}
}
