package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"server/internal/billing"
	"server/internal/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type fakeProfiles struct {
	mu       sync.Mutex
	byID     map[string]*domain.Profile
	updates  int
	tierSets []string
}

func newFakeProfiles(profiles ...*domain.Profile) *fakeProfiles {
	f := &fakeProfiles{byID: map[string]*domain.Profile{}}
	for _, p := range profiles {
		cp := *p
		f.byID[p.ID] = &cp
	}
	return f
}

func (f *fakeProfiles) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfiles) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfiles) Create(ctx context.Context, p *domain.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProfiles) Update(ctx context.Context, p *domain.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.byID[p.ID] = &cp
	f.updates++
	return nil
}

func (f *fakeProfiles) SetTier(ctx context.Context, id string, tier domain.Tier) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Tier = tier
	f.tierSets = append(f.tierSets, id+":"+string(tier))
	return nil
}

func (f *fakeProfiles) List(ctx context.Context) ([]domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Profile, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfiles) stored(id string) *domain.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

type fakeCheckouts struct {
	mu      sync.Mutex
	intents map[string]*domain.CheckoutIntent
	events  []domain.WebhookEvent
}

func newFakeCheckouts() *fakeCheckouts {
	return &fakeCheckouts{intents: map[string]*domain.CheckoutIntent{}}
}

func (f *fakeCheckouts) CreateIntent(ctx context.Context, intent *domain.CheckoutIntent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *intent
	cp.Status = domain.CheckoutPending
	f.intents[intent.SessionID] = &cp
	return nil
}

func (f *fakeCheckouts) GetIntent(ctx context.Context, sessionID string) (*domain.CheckoutIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	intent, ok := f.intents[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *intent
	return &cp, nil
}

func (f *fakeCheckouts) MarkIntent(ctx context.Context, sessionID string, status domain.CheckoutStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	intent, ok := f.intents[sessionID]
	if !ok {
		return domain.ErrNotFound
	}
	intent.Status = status
	return nil
}

func (f *fakeCheckouts) RecordEvent(ctx context.Context, ev *domain.WebhookEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, *ev)
	return nil
}

type fakeDrafts struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeDrafts() *fakeDrafts {
	return &fakeDrafts{store: map[string]string{}}
}

func (f *fakeDrafts) Get(ctx context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.store[userID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return content, nil
}

func (f *fakeDrafts) Put(ctx context.Context, userID, content string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[userID] = content
	return nil
}

func (f *fakeDrafts) Delete(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, userID)
	return nil
}

type fakeCheckoutCreator struct {
	sessionID string
	err       error
	lastReq   billing.CheckoutRequest
}

func (f *fakeCheckoutCreator) CreateSession(ctx context.Context, req billing.CheckoutRequest) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.sessionID, nil
}

type fakeWebhookVerifier struct {
	event billing.Event
	err   error
}

func (f *fakeWebhookVerifier) VerifyEvent(payload []byte, signature string) (billing.Event, error) {
	if f.err != nil {
		return billing.Event{}, f.err
	}
	return f.event, nil
}

type sentEmail struct {
	kind string
	to   string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentEmail
	done chan sentEmail
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{done: make(chan sentEmail, 8)}
}

func (f *fakeNotifier) record(kind, to string) {
	f.mu.Lock()
	f.sent = append(f.sent, sentEmail{kind: kind, to: to})
	f.mu.Unlock()
	f.done <- sentEmail{kind: kind, to: to}
}

func (f *fakeNotifier) SendSummary(ctx context.Context, toEmail, userName, summary string) error {
	f.record("summary", toEmail)
	return nil
}

func (f *fakeNotifier) NotifyAdmin(ctx context.Context, userEmail, userName, summary string) error {
	f.record("admin", userEmail)
	return nil
}

func (f *fakeNotifier) SendDigest(ctx context.Context, signups, summaries, upgrades int) error {
	f.record("digest", "")
	return nil
}

// fakeSQL answers every QueryRow with a fixed scan func.
type fakeSQL struct {
	row SimpleRow
}

func (f *fakeSQL) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeSQL) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return f.row
}

func (f *fakeSQL) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("query not supported")
}
