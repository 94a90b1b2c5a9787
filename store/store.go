// ABOUTME: In-memory entity store for companies and communications
// ABOUTME: Upsert on create, no-op on missing ids, cascade delete of communications
package store

import (
	"github.com/google/uuid"
	"github.com/harperreed/commtrack/models"
)

// State is the plain object graph held by the store and persisted as-is.
type State struct {
	Companies            []models.Company             `json:"companies"`
	Communications       []models.Communication       `json:"communications"`
	CommunicationMethods []models.CommunicationMethod `json:"communicationMethods"`
}

// InitialState returns empty collections and the fixed method list.
func InitialState() State {
	return State{
		Companies:            []models.Company{},
		Communications:       []models.Communication{},
		CommunicationMethods: models.DefaultCommunicationMethods(),
	}
}

// Result reports what a mutation did. Misses are not errors.
type Result struct {
	ID      string
	Found   bool
	Created bool
	Removed int
}

// BulkResult reports the ids a bulk operation skipped.
type BulkResult struct {
	Completed []string
	Missing   []string
}

// Store owns company and communication lifetimes. It is not safe for
// concurrent use; the tracker serializes access.
type Store struct {
	state State
	newID func() string
}

func New() *Store {
	return &Store{
		state: InitialState(),
		newID: func() string { return uuid.New().String() },
	}
}

// CreateCompany inserts, or replaces a company with the same id.
func (s *Store) CreateCompany(c models.Company) Result {
	if c.ID == "" {
		c.ID = s.newID()
	}
	c = c.Clone()

	if i := s.companyIndex(c.ID); i >= 0 {
		s.state.Companies[i] = c
		return Result{ID: c.ID, Found: true}
	}
	s.state.Companies = append(s.state.Companies, c)
	return Result{ID: c.ID, Found: true, Created: true}
}

// UpdateCompany replaces an existing company. Unknown ids are ignored.
func (s *Store) UpdateCompany(c models.Company) Result {
	i := s.companyIndex(c.ID)
	if i < 0 {
		return Result{ID: c.ID}
	}
	s.state.Companies[i] = c.Clone()
	return Result{ID: c.ID, Found: true}
}

// DeleteCompany removes the company and every communication pointing at it.
// Communications are cascaded even when the company itself is already gone.
func (s *Store) DeleteCompany(id string) Result {
	res := Result{ID: id}

	companies := s.state.Companies[:0:0]
	for _, c := range s.state.Companies {
		if c.ID == id {
			res.Found = true
			continue
		}
		companies = append(companies, c)
	}

	comms := s.state.Communications[:0:0]
	for _, c := range s.state.Communications {
		if c.CompanyID == id {
			res.Removed++
			continue
		}
		comms = append(comms, c)
	}

	s.state.Companies = companies
	s.state.Communications = comms
	return res
}

// CreateCommunication inserts, or replaces a communication with the same id.
func (s *Store) CreateCommunication(c models.Communication) (models.Communication, Result) {
	if c.ID == "" {
		c.ID = s.newID()
	}

	if i := s.communicationIndex(c.ID); i >= 0 {
		s.state.Communications[i] = c
		return c, Result{ID: c.ID, Found: true}
	}
	s.state.Communications = append(s.state.Communications, c)
	return c, Result{ID: c.ID, Found: true, Created: true}
}

// UpdateCommunication replaces an existing communication. Unknown ids are ignored.
func (s *Store) UpdateCommunication(c models.Communication) Result {
	i := s.communicationIndex(c.ID)
	if i < 0 {
		return Result{ID: c.ID}
	}
	s.state.Communications[i] = c
	return Result{ID: c.ID, Found: true}
}

// DeleteCommunication removes one communication.
func (s *Store) DeleteCommunication(id string) Result {
	i := s.communicationIndex(id)
	if i < 0 {
		return Result{ID: id}
	}
	s.state.Communications = append(s.state.Communications[:i:i], s.state.Communications[i+1:]...)
	return Result{ID: id, Found: true, Removed: 1}
}

// CompleteCommunication marks a communication completed. Repeating it is harmless.
func (s *Store) CompleteCommunication(id string) Result {
	i := s.communicationIndex(id)
	if i < 0 {
		return Result{ID: id}
	}
	s.state.Communications[i].Completed = true
	return Result{ID: id, Found: true}
}

// BulkCompleteCommunications completes each id in order, skipping unknown ones.
func (s *Store) BulkCompleteCommunications(ids []string) BulkResult {
	var res BulkResult
	for _, id := range ids {
		if s.CompleteCommunication(id).Found {
			res.Completed = append(res.Completed, id)
		} else {
			res.Missing = append(res.Missing, id)
		}
	}
	return res
}

// Reset restores the initial state.
func (s *Store) Reset() {
	s.state = InitialState()
}

// Replace swaps in a whole state, e.g. after loading a snapshot.
// The method list always stays the fixed set.
func (s *Store) Replace(st State) {
	next := InitialState()
	for _, c := range st.Companies {
		next.Companies = append(next.Companies, c.Clone())
	}
	next.Communications = append(next.Communications, st.Communications...)
	s.state = next
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	out := State{
		Companies:            make([]models.Company, len(s.state.Companies)),
		Communications:       append([]models.Communication{}, s.state.Communications...),
		CommunicationMethods: append([]models.CommunicationMethod{}, s.state.CommunicationMethods...),
	}
	for i, c := range s.state.Companies {
		out.Companies[i] = c.Clone()
	}
	return out
}

func (s *Store) Companies() []models.Company {
	return s.State().Companies
}

func (s *Store) Communications() []models.Communication {
	return append([]models.Communication{}, s.state.Communications...)
}

func (s *Store) Methods() []models.CommunicationMethod {
	return append([]models.CommunicationMethod{}, s.state.CommunicationMethods...)
}

func (s *Store) Company(id string) (models.Company, bool) {
	if i := s.companyIndex(id); i >= 0 {
		return s.state.Companies[i].Clone(), true
	}
	return models.Company{}, false
}

func (s *Store) Communication(id string) (models.Communication, bool) {
	if i := s.communicationIndex(id); i >= 0 {
		return s.state.Communications[i], true
	}
	return models.Communication{}, false
}

func (s *Store) companyIndex(id string) int {
	for i, c := range s.state.Companies {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) communicationIndex(id string) int {
	for i, c := range s.state.Communications {
		if c.ID == id {
			return i
		}
	}
	return -1
}
