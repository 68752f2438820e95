// Package workspace holds the in-memory state of one logged-in session:
// prospects and projects, their budget items and schedules, the team roster
// and the assistant transcript. Nothing here is persisted.
package workspace

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gen-obras/internal/models"
)

var (
	ErrNotFound        = errors.New("prospect not found")
	ErrAlreadyApproved = errors.New("prospect already approved")
)

type record struct {
	prospect models.Prospect
	items    []models.LineItem
	schedule []models.Task
}

// Workspace is the single source of truth for a session. Prospects and
// projects live in one collection keyed by id; the two views are derived by
// filtering on status.
type Workspace struct {
	mu sync.Mutex

	order   []string
	records map[string]*record

	team       []models.TeamMember
	transcript []models.ChatMessage

	now func() time.Time
}

func New() *Workspace {
	return &Workspace{
		records: make(map[string]*record),
		now:     time.Now,
	}
}

//
// PROSPECTS / PROJECTS
//

// AddProspect stores a new prospect in status Negotiating together with its
// line items and returns the stored record. The id is derived from the client
// name and the current time; a same-second collision gets a numeric suffix.
func (w *Workspace) AddProspect(p models.Prospect, items []models.LineItem) models.Prospect {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	base := models.ProspectID(p.Client, now)
	id := base
	for n := 2; w.records[id] != nil; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}

	p.ID = id
	p.Status = models.StatusNegotiating
	p.Total = models.BudgetTotal(items)

	w.records[id] = &record{
		prospect: p,
		items:    append([]models.LineItem(nil), items...),
	}
	w.order = append(w.order, id)
	return p
}

func (w *Workspace) Items(id string) []models.LineItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec, ok := w.records[id]
	if !ok {
		return nil
	}
	return append([]models.LineItem(nil), rec.items...)
}

// SetSchedule attaches a generated schedule to an existing prospect.
func (w *Workspace) SetSchedule(id string, tasks []models.Task) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec, ok := w.records[id]
	if !ok {
		return ErrNotFound
	}
	rec.schedule = append([]models.Task(nil), tasks...)
	return nil
}

// Schedule reports false when no tasks were generated for id.
func (w *Workspace) Schedule(id string) ([]models.Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec, ok := w.records[id]
	if !ok || len(rec.schedule) == 0 {
		return nil, false
	}
	return append([]models.Task(nil), rec.schedule...), true
}

func (w *Workspace) Negotiating() []models.Prospect {
	return w.filter(models.StatusNegotiating)
}

func (w *Workspace) Active() []models.Prospect {
	return w.filter(models.StatusInProgress)
}

func (w *Workspace) filter(status models.ProjectStatus) []models.Prospect {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []models.Prospect
	for _, id := range w.order {
		if p := w.records[id].prospect; p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Approve moves a prospect from Negotiating to In Progress. Approving an
// active project changes nothing and returns ErrAlreadyApproved.
func (w *Workspace) Approve(id string) (models.Prospect, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec, ok := w.records[id]
	if !ok {
		return models.Prospect{}, ErrNotFound
	}
	if rec.prospect.IsActive() {
		return rec.prospect, ErrAlreadyApproved
	}
	rec.prospect.Status = models.StatusInProgress
	return rec.prospect, nil
}

//
// TEAM
//

func (w *Workspace) AddMember(m models.TeamMember) {
	w.mu.Lock()
	defer w.mu.Unlock()

	m.Active = true
	w.team = append(w.team, m)
}

func (w *Workspace) Team() []models.TeamMember {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]models.TeamMember(nil), w.team...)
}

//
// ASSISTANT
//

func (w *Workspace) AppendMessage(role models.ChatRole, content string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.transcript = append(w.transcript, models.ChatMessage{Role: role, Content: content})
}

func (w *Workspace) Transcript() []models.ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]models.ChatMessage(nil), w.transcript...)
}
