// Package verifier orchestrates identity verification. Bulk submissions are
// stored with their identity numbers sealed and processed by background jobs
// that skip identities already verified elsewhere, call the provider for the
// identity type, compare the provider record with the submitted data and
// persist the outcome.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"idverify/internal/config"
	"idverify/internal/dedup"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"idverify/pkg/matcher"
	"idverify/pkg/serrors"
	"idverify/pkg/storage"
	"idverify/pkg/verification"
	"regexp"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// VerifiableTypes are the identity types a provider can verify, in the order
// an entry's primary identity is chosen.
var VerifiableTypes = []domain.IdentityType{domain.IdentityTypeNIN, domain.IdentityTypeCAC} //nolint: gochecknoglobals

var elevenDigits = regexp.MustCompile(`^\d{11}$`)

// Options configure job enqueueing and submission limits.
type Options struct {
	// MaxAttempts is the number of River attempts per verification job.
	MaxAttempts int
	// MaxBatchSize caps the number of entries accepted by one Submit call.
	MaxBatchSize int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Worker.MaxAttempts,
		MaxBatchSize: cfg.Worker.MaxBatchSize,
	}
}

// Submission is one entry of a bulk submission.
type Submission struct {
	Identities map[domain.IdentityType]domain.IdentityValue
	Data       map[string]string
}

type verifier struct {
	options   Options
	storage   storage.Storage
	detector  dedup.Detector
	sealer    Sealer
	providers map[domain.IdentityType]verification.Verifier
	now       func() time.Time
}

// New creates a Verifier. providers maps each verifiable identity type to its
// provider client; types without a provider are rejected by Verify.
func New(storage storage.Storage,
	detector dedup.Detector,
	sealer Sealer,
	providers map[domain.IdentityType]verification.Verifier,
	options Options) Verifier {
	return &verifier{
		options:   options,
		storage:   storage,
		detector:  detector,
		sealer:    sealer,
		providers: providers,
		now:       time.Now,
	}
}

// Submit validates and stores the submissions as PENDING entries of listID.
// All stored entries are checked for duplicates in one pass; duplicates are
// marked DUPLICATE right away and every other entry gets a verification job
// in the same transaction.
func (s *verifier) Submit(ctx context.Context,
	userID domain.UserID,
	listID domain.ListID,
	submissions []Submission) ([]domain.IdentityEntry, error) {
	if len(submissions) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no entries submitted")
	}
	if s.options.MaxBatchSize > 0 && len(submissions) > s.options.MaxBatchSize {
		return nil, serrors.With(serrors.ErrBadRequest,
			"too many entries: %d submitted, at most %d allowed", len(submissions), s.options.MaxBatchSize)
	}

	entries := make([]domain.IdentityEntry, 0, len(submissions))
	for i, sub := range submissions {
		entry, err := s.prepare(userID, listID, sub)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid entry %d", i)
		}
		entries = append(entries, entry)
	}

	var (
		stored     []domain.IdentityEntry
		duplicates int
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreEntries(ctx, entries...)
		if err != nil {
			return fmt.Errorf("could not store entries: %w", err)
		}

		verdicts := s.detector.CheckEntries(ctx, stored)
		jobs := make([]river.InsertManyParams, 0, len(stored))
		for i, e := range stored {
			if verdict := verdicts[e.ID]; verdict.IsDuplicate {
				dup, err := tx.UpdateEntryByID(ctx, e.ID, storage.EntryUpdates{
					Status:    domain.EntryStatusDuplicate,
					Duplicate: &verdict,
				})
				if err != nil {
					return fmt.Errorf("could not mark duplicate entry: %w", err)
				}
				if dup != nil {
					stored[i] = *dup
				}
				duplicates++

				continue
			}
			jobs = append(jobs, river.InsertManyParams{Args: NewJobArgs(e.ID, s.options.MaxAttempts)})
		}
		if len(jobs) == 0 {
			return nil
		}

		added, err := tx.AddJobs(ctx, jobs)
		if err != nil {
			return fmt.Errorf("could not add jobs: %w", err)
		}
		if added != len(jobs) {
			logger.Warn(ctx, "some verification jobs already existed",
				zap.Int("entries", len(jobs)), zap.Int("added", added))
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit entries: %w", err)
	}

	logger.Info(ctx, "entries submitted", zap.String("listID", listID.String()),
		zap.Int("count", len(stored)), zap.Int("duplicates", duplicates))

	return stored, nil
}

func (s *verifier) prepare(userID domain.UserID, listID domain.ListID, sub Submission) (domain.IdentityEntry, error) {
	entry := domain.IdentityEntry{
		ListID:      listID,
		SubmittedBy: userID,
		Status:      domain.EntryStatusPending,
		Identities:  make(map[domain.IdentityType]domain.IdentityValue, len(sub.Identities)),
		Data:        sub.Data,
	}

	for t, v := range sub.Identities {
		if !t.Valid() {
			return entry, fmt.Errorf("unsupported identity type %q", t)
		}
		if v.IsZero() {
			continue
		}
		if v.Encrypted == nil {
			plain, err := normalizeIdentity(t, v.Plain)
			if err != nil {
				return entry, err
			}
			v = domain.PlainValue(plain)
		}

		sealed, err := s.sealer.Seal(v)
		if err != nil {
			return entry, fmt.Errorf("could not seal %s: %w", t, err)
		}
		entry.Identities[t] = sealed
	}

	if _, _, ok := primaryIdentity(&entry); !ok {
		return entry, errors.New("a NIN or CAC number is required")
	}

	return entry, nil
}

func normalizeIdentity(t domain.IdentityType, value string) (string, error) {
	v := matcher.NormalizeIdentityNumber(value)
	switch t {
	case domain.IdentityTypeNIN, domain.IdentityTypeBVN:
		if !elevenDigits.MatchString(v) {
			return "", fmt.Errorf("%s must be 11 digits", t)
		}
	case domain.IdentityTypeCAC:
		if v == "" {
			return "", errors.New("CAC number is empty")
		}
	}

	return v, nil
}

func primaryIdentity(e *domain.IdentityEntry) (domain.IdentityType, domain.IdentityValue, bool) {
	for _, t := range VerifiableTypes {
		if v, ok := e.Identity(t); ok {
			return t, v, true
		}
	}

	return "", domain.IdentityValue{}, false
}

// Process verifies a PENDING entry. Entries in any other state are returned
// untouched. Transient provider failures are returned so the job is retried;
// terminal failures are persisted as FAILED and are not returned.
func (s *verifier) Process(ctx context.Context, entryID domain.EntryID) (*domain.IdentityEntry, error) {
	ctx = logger.WithFields(ctx, zap.String("entryID", entryID.String()))

	entry, err := s.Entry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.EntryStatusPending {
		logger.Info(ctx, "entry already processed", zap.String("status", string(entry.Status)))

		return entry, nil
	}

	// usually answered by the cache warmed in Submit
	if verdict := s.detector.CheckEntries(ctx, []domain.IdentityEntry{*entry})[entry.ID]; verdict.IsDuplicate {
		logger.Info(ctx, "identity already verified")

		return s.update(ctx, entryID, storage.EntryUpdates{
			Status:    domain.EntryStatusDuplicate,
			Duplicate: &verdict,
		})
	}

	t, value, ok := primaryIdentity(entry)
	if !ok {
		return s.fail(ctx, entryID, serrors.With(serrors.ErrBadRequest, "entry has no verifiable identity"), nil)
	}
	identity, err := s.sealer.Reveal(value)
	if err != nil {
		return s.fail(ctx, entryID, fmt.Errorf("could not reveal identity: %w", err), nil)
	}

	out, err := s.Verify(ctx, t, identity, entry.Data)
	if err != nil {
		if Transient(err) {
			msg := err.Error()
			if _, uerr := s.update(ctx, entryID, storage.EntryUpdates{LastError: &msg}); uerr != nil {
				logger.Error(ctx, "could not record last error", zap.Error(uerr))
			}

			return nil, err
		}

		return s.fail(ctx, entryID, err, nil)
	}
	if out.Mismatch != nil {
		return s.fail(ctx, entryID, out.Mismatch, out.Match)
	}

	at := s.now().UTC()
	noError := ""

	return s.update(ctx, entryID, storage.EntryUpdates{
		Status:             domain.EntryStatusVerified,
		VerifiedAt:         &at,
		VerifiedBy:         out.Result.Provider,
		VerificationResult: newSuccessRecord(out).marshal(),
		LastError:          &noError,
	})
}

// Fail marks a PENDING entry FAILED with cause. It is used once the job has
// no attempts left.
func (s *verifier) Fail(ctx context.Context, entryID domain.EntryID, cause error) (*domain.IdentityEntry, error) {
	entry, err := s.Entry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.EntryStatusPending {
		return entry, nil
	}

	return s.fail(ctx, entryID, cause, nil)
}

func (s *verifier) fail(ctx context.Context,
	entryID domain.EntryID,
	cause error,
	match *matcher.Result) (*domain.IdentityEntry, error) {
	rec := newFailureRecord(cause, match)
	logger.Warn(ctx, "entry verification failed",
		zap.String("code", rec.ErrorCode), zap.String("details", rec.TechnicalDetails))

	return s.update(ctx, entryID, storage.EntryUpdates{
		Status:             domain.EntryStatusFailed,
		VerificationResult: rec.marshal(),
		LastError:          &rec.TechnicalDetails,
	})
}

func (s *verifier) update(ctx context.Context,
	entryID domain.EntryID,
	updates storage.EntryUpdates) (*domain.IdentityEntry, error) {
	updated, err := s.storage.UpdateEntryByID(ctx, entryID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update entry: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "entry not found")
	}

	return updated, nil
}

// Verify verifies one plaintext identity with the provider for identityType
// and, when submitted is not empty, compares the provider record with it. A
// failed comparison is reported through Outcome.Mismatch, not as an error.
func (s *verifier) Verify(ctx context.Context,
	identityType domain.IdentityType,
	identity string,
	submitted map[string]string) (*Outcome, error) {
	provider, ok := s.providers[identityType]
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "identity type %q cannot be verified", identityType)
	}

	res, err := provider.Verify(ctx, identity)
	s.recordUsage(ctx, provider.Name(), err)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := &Outcome{Result: res}
	if len(submitted) == 0 {
		return out, nil
	}

	var m matcher.Result
	switch {
	case res.Person != nil:
		m = matcher.MatchPerson(*res.Person, submitted)
	case res.Company != nil:
		m = matcher.MatchCompany(*res.Company, submitted)
	default:
		return out, nil
	}
	out.Match = &m
	if !m.Matched {
		out.Mismatch = provider.FieldMismatch(m.FailedFields)
	}

	return out, nil
}

// recordUsage counts calls that reached the provider. Usage failures are
// logged and never fail the verification.
func (s *verifier) recordUsage(ctx context.Context, provider string, err error) {
	if !billable(err) {
		return
	}
	if uerr := s.storage.RecordUsage(ctx, provider, s.now(), err == nil); uerr != nil {
		logger.Error(ctx, "could not record provider usage", zap.String("provider", provider), zap.Error(uerr))
	}
}

func billable(err error) bool {
	var verr *verification.Error
	if err == nil || !errors.As(err, &verr) {
		return err == nil
	}

	switch verr.Code {
	case verification.CodeInvalidInput, verification.CodeInvalidFormat,
		verification.CodeNotConfigured, verification.CodeRateLimitExceeded:
		return false
	default:
		return true
	}
}

// Transient reports whether err is worth retrying later: rate limiting,
// timeouts, exhausted transient attempts and failures outside the provider.
func Transient(err error) bool {
	var verr *verification.Error
	if !errors.As(err, &verr) {
		return !errors.Is(err, serrors.ErrBadRequest) && !errors.Is(err, serrors.ErrNotFound)
	}

	return verr.Retryable ||
		verr.Code == verification.CodeRateLimitExceeded ||
		verr.Code == verification.CodeMaxRetriesExceeded
}

// Entry returns a single entry or a not-found error.
func (s *verifier) Entry(ctx context.Context, entryID domain.EntryID) (*domain.IdentityEntry, error) {
	entry, err := s.storage.EntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("could not get entry: %w", err)
	}
	if entry == nil {
		return nil, serrors.With(serrors.ErrNotFound, "entry not found")
	}

	return entry, nil
}

// ListEntries returns a page of entries of listID filtered by status. It
// supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (s *verifier) ListEntries(ctx context.Context,
	listID domain.ListID,
	status domain.EntryStatus,
	cursor string,
	limit uint) ([]domain.IdentityEntry, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.ListEntries(ctx, listID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list entries: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Entries, next, nil
}

// Usage returns daily provider counters between from and to.
func (s *verifier) Usage(ctx context.Context, from, to time.Time) ([]domain.UsageRecord, error) {
	if to.Before(from) {
		return nil, serrors.With(serrors.ErrBadRequest, "from must not be after to")
	}

	rows, err := s.storage.Usage(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("could not get usage: %w", err)
	}

	return rows, nil
}
