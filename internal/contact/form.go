package contact

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/pillar-dev/internal/apperr"
)

// Field limits
const (
	MaxNameLen    = 100
	MaxEmailLen   = 254
	MaxSubjectLen = 200
	MaxMessageLen = 5000
)

// ErrBusy is returned when Submit is called while a submission is in flight.
var ErrBusy = apperr.New("a submission is already in progress", apperr.CodeBusy, http.StatusConflict)

// Draft is the contact form as the visitor is filling it in.
type Draft struct {
	Name    string `json:"name" form:"name" binding:"required,max=100"`
	Email   string `json:"email" form:"email" binding:"required,email,max=254"`
	Subject string `json:"subject" form:"subject" binding:"required,max=200"`
	Message string `json:"message" form:"message" binding:"required,max=5000"`
}

// Trimmed returns the draft with surrounding whitespace removed from every field.
func (d Draft) Trimmed() Draft {
	return Draft{
		Name:    strings.TrimSpace(d.Name),
		Email:   strings.TrimSpace(d.Email),
		Subject: strings.TrimSpace(d.Subject),
		Message: strings.TrimSpace(d.Message),
	}
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d.Trimmed() == Draft{}
}

// Validate checks the required fields and the email address.
func (d Draft) Validate() error {
	t := d.Trimmed()
	fields := []struct {
		name  string
		value string
		limit int
	}{
		{"name", t.Name, MaxNameLen},
		{"email", t.Email, MaxEmailLen},
		{"subject", t.Subject, MaxSubjectLen},
		{"message", t.Message, MaxMessageLen},
	}
	for _, f := range fields {
		if f.value == "" {
			return apperr.NewValidation(f.name+" is required", f.name)
		}
		if len([]rune(f.value)) > f.limit {
			return apperr.NewValidation(f.name+" is too long", f.name)
		}
	}
	addr, err := mail.ParseAddress(t.Email)
	if err != nil || addr.Address != t.Email {
		return apperr.NewValidation("email is not a valid address", "email")
	}
	return nil
}

// Submission is a validated draft on its way to a Submitter.
type Submission struct {
	ID         string
	Draft      Draft
	SenderHash string
	CreatedAt  time.Time
}

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Form is the contact form state machine:
//
//	idle|submitted|failed -> submitting -> submitted (draft cleared)
//	                                   \-> failed    (draft kept)
type Form struct {
	mu        sync.Mutex
	draft     Draft
	state     State
	lastErr   error
	submitter Submitter
	sender    string
	now       func() time.Time
	observer  func(State)
}

type FormOption func(*Form)

// WithSender records an opaque sender identifier (a hashed IP) on submissions.
func WithSender(hash string) FormOption {
	return func(f *Form) {
		f.sender = hash
	}
}

func WithClock(now func() time.Time) FormOption {
	return func(f *Form) {
		f.now = now
	}
}

// WithObserver registers a callback invoked on every state change, outside the form lock.
func WithObserver(fn func(State)) FormOption {
	return func(f *Form) {
		f.observer = fn
	}
}

func NewForm(submitter Submitter, opts ...FormOption) *Form {
	f := &Form{
		submitter: submitter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set updates a single field by its input name.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "subject":
		f.draft.Subject = value
	case "message":
		f.draft.Message = value
	default:
		return apperr.NewValidation("unknown field "+field, field)
	}
	return nil
}

// Fill replaces the whole draft.
func (f *Form) Fill(d Draft) {
	f.mu.Lock()
	f.draft = d
	f.mu.Unlock()
}

func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the error of the last failed submission.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// SubmitDisabled reports whether the submit control is disabled.
func (f *Form) SubmitDisabled() bool {
	return f.State() == StateSubmitting
}

// DialogOpen reports whether the confirmation dialog is shown.
func (f *Form) DialogOpen() bool {
	return f.State() == StateSubmitted
}

// DismissDialog closes the confirmation dialog.
func (f *Form) DismissDialog() {
	f.mu.Lock()
	changed := f.state == StateSubmitted
	if changed {
		f.state = StateIdle
	}
	f.mu.Unlock()
	if changed {
		f.notify(StateIdle)
	}
}

// Submit validates the draft and hands it to the submitter. On success the
// draft is cleared; on failure it is kept so the visitor can retry.
func (f *Form) Submit(ctx context.Context) (Submission, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return Submission{}, ErrBusy
	}
	if err := f.draft.Validate(); err != nil {
		f.mu.Unlock()
		return Submission{}, err
	}
	sub := Submission{
		ID:         uuid.NewString(),
		Draft:      f.draft.Trimmed(),
		SenderHash: f.sender,
		CreatedAt:  f.now().UTC(),
	}
	f.state = StateSubmitting
	f.lastErr = nil
	f.mu.Unlock()
	f.notify(StateSubmitting)

	err := f.submitter.Submit(ctx, sub)

	f.mu.Lock()
	if err != nil {
		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			err = apperr.NewBackend("submitting contact message", err)
		}
		f.state = StateFailed
		f.lastErr = err
	} else {
		f.state = StateSubmitted
		f.draft = Draft{}
	}
	state := f.state
	f.mu.Unlock()
	f.notify(state)

	if err != nil {
		return Submission{}, err
	}
	return sub, nil
}

func (f *Form) notify(s State) {
	if f.observer != nil {
		f.observer(s)
	}
}
