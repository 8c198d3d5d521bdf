package dedup_test

import (
	"context"
	"encoding/json"
	"errors"
	"idverify/internal/dedup"
	mockdedup "idverify/internal/dedup/mock"
	"idverify/pkg/domain"
	"idverify/pkg/encryption"
	"idverify/pkg/logger"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

type detectorFixture struct {
	detector dedup.Detector
	cache    *dedup.Cache
	store    *mockdedup.MockRecordStore
	cipher   *encryption.Cipher
}

func newDetector(t *testing.T) detectorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cipher, err := encryption.New(testKey)
	require.NoError(t, err)
	cache := dedup.NewCache(dedup.CacheOptions{})
	store := mockdedup.NewMockRecordStore(ctrl)

	return detectorFixture{
		detector: dedup.New(cache, cipher, store),
		cache:    cache,
		store:    store,
		cipher:   cipher,
	}
}

func (f detectorFixture) seal(t *testing.T, plain string) domain.IdentityValue {
	t.Helper()
	v, err := f.cipher.Seal(domain.PlainValue(plain))
	require.NoError(t, err)

	return v
}

func verifiedEntry(ids map[domain.IdentityType]domain.IdentityValue) domain.IdentityEntry {
	return domain.IdentityEntry{
		ID:                 domain.EntryID(uuid.New()),
		ListID:             domain.ListID(uuid.New()),
		Status:             domain.EntryStatusVerified,
		Identities:         ids,
		VerifiedAt:         time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
		VerifiedBy:         "broker-1",
		VerificationResult: json.RawMessage(`{"firstName":"JOHN"}`),
	}
}

func TestCheckDuplicate_foundThenCached(t *testing.T) {
	f := newDetector(t)
	ctx := context.Background()

	original := verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeNIN: f.seal(t, "12345678901"),
	})
	f.store.EXPECT().QueryVerified(gomock.Any()).Return([]domain.IdentityEntry{original}, nil).Times(1)

	submitted := f.seal(t, "12345678901")
	v := f.detector.CheckDuplicate(ctx, domain.IdentityTypeNIN, submitted)
	require.True(t, v.IsDuplicate)
	require.Equal(t, original.ID, *v.OriginalEntryID)
	require.Equal(t, original.ListID, *v.OriginalListID)
	require.Equal(t, "broker-1", v.OriginalBroker)
	require.JSONEq(t, `{"firstName":"JOHN"}`, string(v.OriginalResult))

	again := f.detector.CheckDuplicate(ctx, domain.IdentityTypeNIN, f.seal(t, "12345678901"))
	require.Equal(t, v, again, "second call is served from the cache")

	s := f.detector.CacheStats()
	require.Equal(t, 1, s.TotalEntries)
	require.Equal(t, 1, s.ValidEntries)
}

func TestCheckDuplicate_notFoundIsCached(t *testing.T) {
	f := newDetector(t)
	ctx := context.Background()

	f.store.EXPECT().QueryVerified(gomock.Any()).Return([]domain.IdentityEntry{
		verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
			domain.IdentityTypeBVN: domain.PlainValue("12345678901"),
		}),
	}, nil).Times(1)

	for range 3 {
		v := f.detector.CheckDuplicate(ctx, domain.IdentityTypeNIN, domain.PlainValue("12345678901"))
		require.Equal(t, domain.NotDuplicate(), v, "a BVN does not match a NIN")
	}
}

func TestCheckDuplicate_firstEntryWins(t *testing.T) {
	f := newDetector(t)

	first := verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeCAC: f.seal(t, "RC123456"),
	})
	second := verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeCAC: domain.PlainValue("RC123456"),
	})
	f.store.EXPECT().QueryVerified(gomock.Any()).Return([]domain.IdentityEntry{first, second}, nil)

	v := f.detector.CheckDuplicate(context.Background(), domain.IdentityTypeCAC, domain.PlainValue("RC123456"))
	require.True(t, v.IsDuplicate)
	require.Equal(t, first.ID, *v.OriginalEntryID)
}

func TestCheckDuplicate_dataFallbackAndUndecryptable(t *testing.T) {
	f := newDetector(t)

	broken := verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeNIN: domain.EncryptedIdentity(domain.EncryptedValue{Encrypted: "AAAA", IV: "AAAA"}),
	})
	legacy := verifiedEntry(nil)
	legacy.Data = map[string]string{"nin": "12345678901"}
	f.store.EXPECT().QueryVerified(gomock.Any()).Return([]domain.IdentityEntry{broken, legacy}, nil)

	v := f.detector.CheckDuplicate(context.Background(), domain.IdentityTypeNIN, domain.PlainValue("12345678901"))
	require.True(t, v.IsDuplicate)
	require.Equal(t, legacy.ID, *v.OriginalEntryID)
}

func TestCheckDuplicate_decryptFailureFailsOpen(t *testing.T) {
	f := newDetector(t)
	// no store call expected

	v := f.detector.CheckDuplicate(context.Background(), domain.IdentityTypeNIN,
		domain.EncryptedIdentity(domain.EncryptedValue{Encrypted: "bm9wZQ==", IV: "bm9wZQ=="}))
	require.Equal(t, domain.NotDuplicate(), v)
	require.Zero(t, f.cache.Len())
}

func TestCheckDuplicate_storeFailureFailsOpen(t *testing.T) {
	f := newDetector(t)
	f.store.EXPECT().QueryVerified(gomock.Any()).Return(nil, errors.New("connection refused")).Times(2)

	for range 2 {
		v := f.detector.CheckDuplicate(context.Background(), domain.IdentityTypeNIN, domain.PlainValue("12345678901"))
		require.Equal(t, domain.NotDuplicate(), v)
	}
	require.Zero(t, f.cache.Len(), "failures are not cached")
}

func TestCheckDuplicate_usesDecryptor(t *testing.T) {
	ctrl := gomock.NewController(t)
	decryptor := mockdedup.NewMockDecryptor(ctrl)
	store := mockdedup.NewMockRecordStore(ctrl)
	d := dedup.New(dedup.NewCache(dedup.CacheOptions{}), decryptor, store)

	value := domain.EncryptedIdentity(domain.EncryptedValue{Encrypted: "c2VhbGVk", IV: "aXY="})
	decryptor.EXPECT().IsEncrypted(value).Return(true)
	decryptor.EXPECT().Decrypt("c2VhbGVk", "aXY=").Return("", errors.New("bad tag"))

	require.Equal(t, domain.NotDuplicate(), d.CheckDuplicate(context.Background(), domain.IdentityTypeBVN, value))
}

func TestBatchCheckDuplicates_singleScan(t *testing.T) {
	f := newDetector(t)
	ctx := context.Background()

	nin := verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeNIN: f.seal(t, "11111111111"),
	})
	cac := verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeCAC: f.seal(t, "42"),
	})
	f.store.EXPECT().QueryVerified(gomock.Any()).Return([]domain.IdentityEntry{nin, cac}, nil).Times(1)

	items := make([]dedup.Item, 0, 12)
	ids := make([]domain.EntryID, 0, 12)
	for i := range 10 {
		id := domain.EntryID(uuid.New())
		ids = append(ids, id)
		items = append(items, dedup.Item{
			EntryID: id,
			Type:    domain.IdentityTypeNIN,
			Value:   f.seal(t, "2222222222"+string(rune('0'+i))),
		})
	}
	dupNIN, dupCAC := domain.EntryID(uuid.New()), domain.EntryID(uuid.New())
	items = append(items,
		dedup.Item{EntryID: dupNIN, Type: domain.IdentityTypeNIN, Value: f.seal(t, "11111111111")},
		dedup.Item{EntryID: dupCAC, Type: domain.IdentityTypeCAC, Value: domain.PlainValue("RC-42")},
	)

	results := f.detector.BatchCheckDuplicates(ctx, items)
	require.Len(t, results, 12)
	for _, id := range ids {
		require.False(t, results[id].IsDuplicate)
	}
	require.Equal(t, nin.ID, *results[dupNIN].OriginalEntryID)
	require.Equal(t, cac.ID, *results[dupCAC].OriginalEntryID)
	require.Equal(t, 12, f.cache.Len())

	// everything cached: no further scan
	results = f.detector.BatchCheckDuplicates(ctx, items)
	require.True(t, results[dupNIN].IsDuplicate)
}

func TestBatchCheckDuplicates_partialDecryptFailure(t *testing.T) {
	f := newDetector(t)
	f.store.EXPECT().QueryVerified(gomock.Any()).Return([]domain.IdentityEntry{
		verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
			domain.IdentityTypeNIN: domain.PlainValue("12345678901"),
		}),
	}, nil).Times(1)

	bad, good := domain.EntryID(uuid.New()), domain.EntryID(uuid.New())
	results := f.detector.BatchCheckDuplicates(context.Background(), []dedup.Item{
		{EntryID: bad, Type: domain.IdentityTypeNIN, Value: domain.EncryptedIdentity(domain.EncryptedValue{
			Encrypted: "bm9wZQ==", IV: "bm9wZQ==",
		})},
		{EntryID: good, Type: domain.IdentityTypeNIN, Value: f.seal(t, "12345678901")},
	})
	require.False(t, results[bad].IsDuplicate)
	require.True(t, results[good].IsDuplicate)
}

func TestBatchCheckDuplicates_storeFailureFailsOpen(t *testing.T) {
	f := newDetector(t)
	ctx := context.Background()

	cachedKey := domain.EntryID(uuid.New())
	f.cache.Set(dedup.Key{Type: domain.IdentityTypeNIN, Value: "99999999999"}, duplicateOf(uuid.New()))
	f.store.EXPECT().QueryVerified(gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	a, b := domain.EntryID(uuid.New()), domain.EntryID(uuid.New())
	results := f.detector.BatchCheckDuplicates(ctx, []dedup.Item{
		{EntryID: cachedKey, Type: domain.IdentityTypeNIN, Value: domain.PlainValue("99999999999")},
		{EntryID: a, Type: domain.IdentityTypeNIN, Value: domain.PlainValue("12345678901")},
		{EntryID: b, Type: domain.IdentityTypeCAC, Value: domain.PlainValue("RC1")},
	})
	require.Len(t, results, 3)
	require.True(t, results[cachedKey].IsDuplicate, "cache hits survive a failed scan")
	require.Equal(t, domain.NotDuplicate(), results[a])
	require.Equal(t, domain.NotDuplicate(), results[b])
	require.Equal(t, 1, f.cache.Len())
}

func TestBatchCheckDuplicates_empty(t *testing.T) {
	f := newDetector(t)
	require.Empty(t, f.detector.BatchCheckDuplicates(context.Background(), nil))
}

func TestClearCache(t *testing.T) {
	f := newDetector(t)
	f.store.EXPECT().QueryVerified(gomock.Any()).Return(nil, nil).Times(2)

	f.detector.CheckDuplicate(context.Background(), domain.IdentityTypeNIN, domain.PlainValue("12345678901"))
	f.detector.ClearCache()
	require.Zero(t, f.detector.CacheStats().TotalEntries)
	f.detector.CheckDuplicate(context.Background(), domain.IdentityTypeNIN, domain.PlainValue("12345678901"))
}

func TestCheckDuplicate_comparesCanonicalNumbers(t *testing.T) {
	f := newDetector(t)
	ctx := context.Background()

	// a client-encrypted value is stored exactly as submitted
	clientSealed := verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeCAC: f.seal(t, "RC123456"),
	})
	f.store.EXPECT().QueryVerified(gomock.Any()).Return([]domain.IdentityEntry{clientSealed}, nil).Times(1)

	for _, value := range []domain.IdentityValue{
		domain.PlainValue("123456"),
		domain.PlainValue("RC-123456"),
		domain.PlainValue(" rc 123456 "),
		f.seal(t, "RC/123456"),
	} {
		v := f.detector.CheckDuplicate(ctx, domain.IdentityTypeCAC, value)
		require.True(t, v.IsDuplicate)
		require.Equal(t, clientSealed.ID, *v.OriginalEntryID)
	}
	require.Equal(t, 1, f.cache.Len())
}

func TestCheckEntries(t *testing.T) {
	f := newDetector(t)
	ctx := context.Background()

	original := verifiedEntry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeCAC: f.seal(t, "777"),
	})
	f.store.EXPECT().QueryVerified(gomock.Any()).Return([]domain.IdentityEntry{original}, nil).Times(1)

	entry := func(ids map[domain.IdentityType]domain.IdentityValue) domain.IdentityEntry {
		return domain.IdentityEntry{ID: domain.EntryID(uuid.New()), Identities: ids}
	}
	fresh := entry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeNIN: f.seal(t, "12345678901"),
	})
	// the NIN is new but the CAC was verified before
	mixed := entry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeNIN: f.seal(t, "10987654321"),
		domain.IdentityTypeCAC: f.seal(t, "777"),
	})
	broken := entry(map[domain.IdentityType]domain.IdentityValue{
		domain.IdentityTypeNIN: domain.EncryptedIdentity(domain.EncryptedValue{Encrypted: "bm9wZQ==", IV: "bm9wZQ=="}),
	})

	results := f.detector.CheckEntries(ctx, []domain.IdentityEntry{fresh, mixed, broken})
	require.Len(t, results, 3)
	require.False(t, results[fresh.ID].IsDuplicate)
	require.True(t, results[mixed.ID].IsDuplicate)
	require.Equal(t, original.ID, *results[mixed.ID].OriginalEntryID)
	require.False(t, results[broken.ID].IsDuplicate)

	// every decryptable identity is cached by the single scan
	require.Equal(t, 3, f.cache.Len())
	require.Empty(t, f.detector.CheckEntries(ctx, nil))
}
