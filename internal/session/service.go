package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/archimart/quote-api/internal/quote"
)

// DefaultTTL applies when the service is built without an explicit TTL.
const DefaultTTL = 4 * time.Hour

// Service owns the session lifecycle: creation, patching, reset, and quote
// computation. Clock and randomness are injectable for tests.
type Service struct {
	Store Store
	TTL   time.Duration
	Now   func() time.Time
	Intn  func(int) int
}

// NewService builds a session service over the given store.
func NewService(store Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{Store: store, TTL: ttl, Now: time.Now, Intn: rand.Intn}
}

// Create starts a fresh session with a default snapshot and a newly assigned
// quote number.
func (s *Service) Create(ctx context.Context) (Session, error) {
	now := s.Now().UTC()
	sess := Session{
		ID:          uuid.NewString(),
		QuoteNumber: NewQuoteNumber(now, s.Intn),
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.TTL),
		Snapshot:    quote.NewSnapshot(),
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Get returns a live session by id.
func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	return s.Store.Get(ctx, id)
}

// Patch applies a partial snapshot update and extends the session's lifetime.
// Switching to a different configuration clears colour, shape, and add-on
// quantities before the rest of the patch lands, so option fields in the same
// patch apply to the new configuration.
func (s *Service) Patch(ctx context.Context, id string, p SnapshotPatch) (Session, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	p.apply(&sess.Snapshot)
	sess.ExpiresAt = s.Now().UTC().Add(s.TTL)
	if err := s.Store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Reset restores the default snapshot. The quote number is kept: it identifies
// the session, not its contents.
func (s *Service) Reset(ctx context.Context, id string) (Session, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	sess.Snapshot = quote.NewSnapshot()
	sess.ExpiresAt = s.Now().UTC().Add(s.TTL)
	if err := s.Store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Delete removes a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

// Quote normalizes the session's snapshot and prices it.
func (s *Service) Quote(ctx context.Context, id string) (quote.Quote, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return quote.Quote{}, err
	}
	return quote.Compute(quote.Normalize(sess.Snapshot), sess.QuoteNumber)
}
