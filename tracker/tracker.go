// ABOUTME: Application container composing the entity store, reporting and persistence
// ABOUTME: Serializes commands, applies reporting policy, and autosaves after each mutation
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/persist"
	"github.com/harperreed/commtrack/reporting"
	"github.com/harperreed/commtrack/store"
	"github.com/harperreed/commtrack/views"
	"go.uber.org/zap"
)

// Tracker is the single entry point for commands from the CLI, MCP server and TUI.
// Commands run one at a time and readers get copies.
type Tracker struct {
	mu        sync.Mutex
	store     *store.Store
	reporting *reporting.Aggregator
	persister *persist.Persister
	logger    *zap.Logger
	now       func() time.Time
}

type Option func(*Tracker)

// WithClock overrides the reference time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger. The default discards.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

// New builds a tracker. A nil persister keeps everything in memory.
func New(st *store.Store, agg *reporting.Aggregator, p *persist.Persister, opts ...Option) *Tracker {
	t := &Tracker{
		store:     st,
		reporting: agg,
		persister: p,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewInMemory is a tracker with fresh state and no persistence.
func NewInMemory(opts ...Option) *Tracker {
	return New(store.New(), reporting.New(), nil, opts...)
}

// Now is the reference time used for every date comparison.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Load resets to defaults and then merges the persisted snapshot, if any.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.store.Reset()
	t.reporting.Reset()
	if t.persister == nil {
		return nil
	}

	snap, ok, err := t.persister.Load()
	if err != nil {
		return err
	}
	if !ok {
		t.logger.Debug("no persisted snapshot, starting empty")
		return nil
	}
	t.store.Replace(snap.App)
	t.reporting.Restore(snap.Reporting)
	t.logger.Debug("restored snapshot",
		zap.Int("companies", len(snap.App.Companies)),
		zap.Int("communications", len(snap.App.Communications)))
	return nil
}

// save must be called with mu held.
func (t *Tracker) save() error {
	if t.persister == nil {
		return nil
	}
	if err := t.persister.Save(t.store.State(), t.reporting.Metrics()); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

func (t *Tracker) CreateCompany(c models.Company) (store.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := t.store.CreateCompany(c)
	t.logger.Debug("company saved", zap.String("id", res.ID), zap.Bool("created", res.Created))
	return res, t.save()
}

func (t *Tracker) UpdateCompany(c models.Company) (store.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := t.store.UpdateCompany(c)
	if !res.Found {
		t.logger.Debug("update of unknown company ignored", zap.String("id", c.ID))
		return res, nil
	}
	t.logger.Debug("company updated", zap.String("id", res.ID))
	return res, t.save()
}

// DeleteCompany removes a company and cascades to its communications.
// Reporting counters are not rolled back.
func (t *Tracker) DeleteCompany(id string) (store.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := t.store.DeleteCompany(id)
	t.logger.Debug("company deleted",
		zap.String("id", id), zap.Bool("found", res.Found), zap.Int("communications", res.Removed))
	return res, t.save()
}

// CreateCommunication stores the communication. Only a new record is
// counted in the method frequency and trends; an upsert of an existing id is not.
func (t *Tracker) CreateCommunication(c models.Communication) (models.Communication, store.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	saved, res := t.store.CreateCommunication(c)
	if res.Created {
		t.reporting.RecordCommunication(saved, t.now())
	}
	t.logger.Debug("communication saved",
		zap.String("id", res.ID), zap.String("method", string(saved.MethodID)), zap.Bool("created", res.Created))
	return saved, res, t.save()
}

func (t *Tracker) UpdateCommunication(c models.Communication) (store.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := t.store.UpdateCommunication(c)
	if !res.Found {
		t.logger.Debug("update of unknown communication ignored", zap.String("id", c.ID))
		return res, nil
	}
	return res, t.save()
}

func (t *Tracker) DeleteCommunication(id string) (store.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := t.store.DeleteCommunication(id)
	if !res.Found {
		return res, nil
	}
	t.logger.Debug("communication deleted", zap.String("id", id))
	return res, t.save()
}

// CompleteCommunication marks one communication done. The first transition
// from pending counts as a successful engagement for its method.
func (t *Tracker) CompleteCommunication(id string) (store.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.completeLocked([]string{id})
	res := t.store.CompleteCommunication(id)
	if !res.Found {
		return res, nil
	}
	return res, t.save()
}

// BulkCompleteCommunications completes ids in order, skipping unknown ones.
func (t *Tracker) BulkCompleteCommunications(ids []string) (store.BulkResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.completeLocked(ids)
	res := t.store.BulkCompleteCommunications(ids)
	t.logger.Debug("bulk complete",
		zap.Int("completed", len(res.Completed)), zap.Strings("missing", res.Missing))
	if len(res.Completed) == 0 {
		return res, nil
	}
	return res, t.save()
}

// completeLocked credits effectiveness for every id about to move from
// pending to completed. Call before the store marks them.
func (t *Tracker) completeLocked(ids []string) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		c, ok := t.store.Communication(id)
		if !ok || c.Completed {
			continue
		}
		score := t.reporting.UpdateEngagementEffectiveness(c.MethodID, true)
		t.logger.Debug("engagement recorded", zap.String("method", string(c.MethodID)), zap.Int("score", score))
	}
}

// RecordEngagement moves a method's effectiveness score and returns the new value.
func (t *Tracker) RecordEngagement(method models.MethodID, successful bool) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	score := t.reporting.UpdateEngagementEffectiveness(method, successful)
	t.logger.Debug("engagement recorded",
		zap.String("method", string(method)), zap.Bool("successful", successful), zap.Int("score", score))
	return score, t.save()
}

// ResetAll clears every company, communication and counter.
func (t *Tracker) ResetAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.store.Reset()
	t.reporting.Reset()
	t.logger.Info("all data reset")
	return t.save()
}

// ResetReporting restores counters to their defaults and keeps entities.
func (t *Tracker) ResetReporting() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.reporting.Reset()
	return t.save()
}

func (t *Tracker) State() store.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.State()
}

func (t *Tracker) Companies() []models.Company {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Companies()
}

func (t *Tracker) Communications() []models.Communication {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Communications()
}

func (t *Tracker) Methods() []models.CommunicationMethod {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Methods()
}

func (t *Tracker) Company(id string) (models.Company, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Company(id)
}

func (t *Tracker) Communication(id string) (models.Communication, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Communication(id)
}

func (t *Tracker) Metrics() models.ReportingMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reporting.Metrics()
}

// Notifications computes overdue, due-today and upcoming against Now.
func (t *Tracker) Notifications() views.Notifications {
	st := t.State()
	return views.BuildNotifications(st.Companies, st.Communications, t.now())
}

// Overview builds dashboard rows for companies matching query.
func (t *Tracker) Overview(query, sortBy string) []views.CompanyRow {
	st := t.State()
	return views.CompanyOverview(st.Companies, st.Communications, query, sortBy, t.now())
}

// Calendar groups a month's communications by day in the clock's location.
func (t *Tracker) Calendar(year int, month time.Month) map[int][]views.CalendarEvent {
	st := t.State()
	return views.CalendarMonth(st.Companies, st.Communications, year, month, t.now().Location())
}
