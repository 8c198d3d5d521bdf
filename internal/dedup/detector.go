// Package dedup detects identity numbers that were already verified in
// another entry so they are not sent to a paid provider again. Stored values
// are encrypted under random IVs, so comparisons happen on decrypted
// plaintext and verdicts are cached by (type, plaintext).
package dedup

import (
	"context"
	"idverify/internal/config"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"idverify/pkg/matcher"
	"idverify/pkg/metrics"

	"go.uber.org/zap"
)

// Item is one identity of a batch duplicate check.
type Item struct {
	EntryID domain.EntryID
	Type    domain.IdentityType
	Value   domain.IdentityValue
}

// NewCacheOptions builds cache options from the application config.
func NewCacheOptions(cfg *config.Config) CacheOptions {
	return CacheOptions{
		MaxSize:       cfg.Dedup.MaxSize,
		TTL:           cfg.Dedup.TTL,
		SweepInterval: cfg.Dedup.SweepInterval,
	}
}

type detector struct {
	cache     *Cache
	decryptor Decryptor
	store     RecordStore
}

// New creates a Detector over the given cache, decryptor and record store.
// The cache lifecycle (Start/Stop) stays with the caller.
func New(cache *Cache, decryptor Decryptor, store RecordStore) Detector {
	return &detector{
		cache:     cache,
		decryptor: decryptor,
		store:     store,
	}
}

// reveal returns the canonical plaintext of value, the form Submit stores
// plaintext identities in. ok is false when the value cannot take part in a
// comparison.
func (d *detector) reveal(ctx context.Context, t domain.IdentityType, value domain.IdentityValue) (string, bool) {
	plain := value.Plain
	if d.decryptor.IsEncrypted(value) {
		var err error
		plain, err = d.decryptor.Decrypt(value.Encrypted.Encrypted, value.Encrypted.IV)
		if err != nil {
			logger.Warn(ctx, "could not decrypt identity for duplicate check",
				zap.String("type", string(t)), zap.Error(err))

			return "", false
		}
	}

	plain = matcher.NormalizeIdentityNumber(plain)

	return plain, plain != ""
}

func (d *detector) lookup(k Key) (domain.DuplicateVerdict, bool) {
	v, ok := d.cache.Get(k)
	if ok {
		metrics.DedupLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.DedupLookups.WithLabelValues("miss").Inc()
	}

	return v, ok
}

// verdicts answers every key from the cache, scanning the record store once
// for the misses. A failed scan resolves the misses to non-duplicates and
// leaves them uncached.
func (d *detector) verdicts(ctx context.Context, keys []Key) map[Key]domain.DuplicateVerdict {
	out := make(map[Key]domain.DuplicateVerdict, len(keys))
	var misses []Key
	for _, k := range keys {
		if _, done := out[k]; done {
			continue
		}
		if v, ok := d.lookup(k); ok {
			out[k] = v

			continue
		}
		out[k] = domain.NotDuplicate()
		misses = append(misses, k)
	}
	if len(misses) == 0 {
		return out
	}

	index, err := d.buildVerifiedIndex(ctx)
	if err != nil {
		logger.Error(ctx, "could not scan verified entries, treating as non-duplicate",
			zap.Int("unresolved", len(misses)), zap.Error(err))
		metrics.DedupFailOpen.WithLabelValues("store").Add(float64(len(misses)))

		return out
	}

	for _, k := range misses {
		v := index.resolve(k)
		d.cache.Set(k, v)
		out[k] = v
	}

	return out
}

func (d *detector) CheckDuplicate(ctx context.Context,
	t domain.IdentityType,
	value domain.IdentityValue) domain.DuplicateVerdict {
	plain, ok := d.reveal(ctx, t, value)
	if !ok {
		metrics.DedupFailOpen.WithLabelValues("decrypt").Inc()

		return domain.NotDuplicate()
	}

	k := Key{Type: t, Value: plain}

	return d.verdicts(ctx, []Key{k})[k]
}

func (d *detector) BatchCheckDuplicates(ctx context.Context,
	items []Item) map[domain.EntryID]domain.DuplicateVerdict {
	results := make(map[domain.EntryID]domain.DuplicateVerdict, len(items))
	keys := make(map[domain.EntryID]Key, len(items))
	all := make([]Key, 0, len(items))

	for _, item := range items {
		plain, ok := d.reveal(ctx, item.Type, item.Value)
		if !ok {
			metrics.DedupFailOpen.WithLabelValues("decrypt").Inc()
			results[item.EntryID] = domain.NotDuplicate()

			continue
		}

		k := Key{Type: item.Type, Value: plain}
		keys[item.EntryID] = k
		all = append(all, k)
	}

	found := d.verdicts(ctx, all)
	for id, k := range keys {
		results[id] = found[k]
	}

	return results
}

func (d *detector) CheckEntries(ctx context.Context,
	entries []domain.IdentityEntry) map[domain.EntryID]domain.DuplicateVerdict {
	perEntry := make(map[domain.EntryID][]Key, len(entries))
	var all []Key

	for _, e := range entries {
		for _, t := range domain.IdentityTypes {
			value, ok := e.Identity(t)
			if !ok {
				continue
			}
			plain, ok := d.reveal(ctx, t, value)
			if !ok {
				metrics.DedupFailOpen.WithLabelValues("decrypt").Inc()

				continue
			}

			k := Key{Type: t, Value: plain}
			perEntry[e.ID] = append(perEntry[e.ID], k)
			all = append(all, k)
		}
	}

	found := d.verdicts(ctx, all)
	results := make(map[domain.EntryID]domain.DuplicateVerdict, len(entries))
	for _, e := range entries {
		results[e.ID] = domain.NotDuplicate()
		for _, k := range perEntry[e.ID] {
			if v := found[k]; v.IsDuplicate {
				results[e.ID] = v

				break
			}
		}
	}

	return results
}

func (d *detector) ClearCache() { d.cache.Clear() }

func (d *detector) CacheStats() Stats { return d.cache.Stats() }

// verifiedIndex maps (type, plaintext) to the first verified entry carrying it.
type verifiedIndex map[Key]domain.IdentityEntry

func (idx verifiedIndex) resolve(k Key) domain.DuplicateVerdict {
	e, ok := idx[k]
	if !ok {
		return domain.NotDuplicate()
	}

	return domain.VerdictFrom(e)
}

// buildVerifiedIndex scans the verified entries once and indexes every
// identity they carry. Values that fail to decrypt are skipped.
func (d *detector) buildVerifiedIndex(ctx context.Context) (verifiedIndex, error) {
	entries, err := d.store.QueryVerified(ctx)
	if err != nil {
		return nil, err
	}
	metrics.DedupScans.Inc()

	index := make(verifiedIndex)
	for _, e := range entries {
		for _, t := range domain.IdentityTypes {
			value, ok := candidate(e, t)
			if !ok {
				continue
			}

			plain, ok := d.reveal(ctx, t, value)
			if !ok {
				logger.Debug(ctx, "skipping undecryptable verified identity",
					zap.String("entryId", e.ID.String()), zap.String("type", string(t)))

				continue
			}

			k := Key{Type: t, Value: plain}
			if _, seen := index[k]; !seen {
				index[k] = e
			}
		}
	}

	return index, nil
}

// candidate returns the identity of type t stored on e, falling back to the
// submitted data when the entry keeps it there.
func candidate(e domain.IdentityEntry, t domain.IdentityType) (domain.IdentityValue, bool) {
	if v, ok := e.Identity(t); ok {
		return v, true
	}
	if s := e.Data[t.Field()]; s != "" {
		return domain.PlainValue(s), true
	}

	return domain.IdentityValue{}, false
}
