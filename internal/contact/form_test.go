package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/pillar-dev/internal/apperr"
)

func validDraft() Draft {
	return Draft{
		Name:    "Ayu Lestari",
		Email:   "ayu@example.com",
		Subject: "Project inquiry",
		Message: "Let's build something.",
	}
}

type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) observe(s State) {
	r.mu.Lock()
	r.states = append(r.states, s)
	r.mu.Unlock()
}

func (r *recorder) all() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}

func TestFormSubmitTransitionsAndClearsDraft(t *testing.T) {
	rec := &recorder{}
	var received Submission
	var disabledDuringSubmit bool

	var f *Form
	f = NewForm(SubmitterFunc(func(ctx context.Context, sub Submission) error {
		received = sub
		disabledDuringSubmit = f.SubmitDisabled()
		return nil
	}), WithObserver(rec.observe), WithSender("abc123"))
	f.Fill(validDraft())

	assert.Equal(t, StateIdle, f.State())
	assert.False(t, f.SubmitDisabled())

	sub, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []State{StateSubmitting, StateSubmitted}, rec.all())
	assert.True(t, disabledDuringSubmit)
	assert.False(t, f.SubmitDisabled(), "control re-enabled")
	assert.True(t, f.DialogOpen())
	assert.Equal(t, Draft{}, f.Draft())

	assert.Equal(t, validDraft(), received.Draft)
	assert.Equal(t, sub.ID, received.ID)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "abc123", sub.SenderHash)

	f.DismissDialog()
	assert.Equal(t, StateIdle, f.State())
	assert.False(t, f.DialogOpen())
}

func TestFormSubmitWithSimulatedDelay(t *testing.T) {
	f := NewForm(Simulated{Delay: 20 * time.Millisecond})
	f.Fill(validDraft())

	start := time.Now()
	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, StateSubmitted, f.State())
	assert.Equal(t, Draft{}, f.Draft())
}

func TestFormRejectsInvalidDraftWithoutStateChange(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Draft)
		field string
	}{
		{"missing name", func(d *Draft) { d.Name = "" }, "name"},
		{"blank subject", func(d *Draft) { d.Subject = "   " }, "subject"},
		{"missing message", func(d *Draft) { d.Message = "" }, "message"},
		{"bad email", func(d *Draft) { d.Email = "not-an-email" }, "email"},
		{"display name email", func(d *Draft) { d.Email = "Ayu <ayu@example.com>" }, "email"},
		{"long subject", func(d *Draft) { d.Subject = string(make([]rune, MaxSubjectLen+1)) }, "subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			f := NewForm(SubmitterFunc(func(context.Context, Submission) error {
				called = true
				return nil
			}))
			d := validDraft()
			tt.edit(&d)
			f.Fill(d)

			_, err := f.Submit(context.Background())
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.CodeValidation))
			assert.Equal(t, tt.field, apperr.FieldOf(err))
			assert.False(t, called)
			assert.Equal(t, StateIdle, f.State())
			assert.Equal(t, d, f.Draft())
		})
	}
}

func TestFormFailureKeepsDraftAndAllowsRetry(t *testing.T) {
	attempts := 0
	f := NewForm(SubmitterFunc(func(context.Context, Submission) error {
		attempts++
		if attempts == 1 {
			return errors.New("smtp: connection refused")
		}
		return nil
	}))
	f.Fill(validDraft())

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeBackend))
	assert.Equal(t, StateFailed, f.State())
	assert.Equal(t, validDraft(), f.Draft())
	assert.False(t, f.SubmitDisabled())
	assert.Equal(t, err, f.Err())

	_, err = f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, f.State())
	assert.Nil(t, f.Err())
}

func TestFormSubmitWhileSubmittingIsBusy(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	f := NewForm(SubmitterFunc(func(context.Context, Submission) error {
		close(entered)
		<-release
		return nil
	}))
	f.Fill(validDraft())

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()

	<-entered
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
}

func TestFormSimulatedSubmitCancelled(t *testing.T) {
	f := NewForm(Simulated{Delay: time.Hour})
	f.Fill(validDraft())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Submit(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StateFailed, f.State())
	assert.Equal(t, validDraft(), f.Draft())
}

func TestFormSet(t *testing.T) {
	f := NewForm(Simulated{})
	require.NoError(t, f.Set("name", "Ayu"))
	require.NoError(t, f.Set("email", "ayu@example.com"))
	require.NoError(t, f.Set("subject", "Hi"))
	require.NoError(t, f.Set("message", "Hello"))
	assert.Equal(t, Draft{Name: "Ayu", Email: "ayu@example.com", Subject: "Hi", Message: "Hello"}, f.Draft())

	err := f.Set("phone", "123")
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestChainStopsAtFirstError(t *testing.T) {
	var calls []string
	step := func(name string, err error) Submitter {
		return SubmitterFunc(func(context.Context, Submission) error {
			calls = append(calls, name)
			return err
		})
	}
	boom := errors.New("boom")

	err := Chain{step("store", nil), step("mail", boom), step("never", nil)}.Submit(context.Background(), Submission{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"store", "mail"}, calls)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "submitted", StateSubmitted.String())
	assert.Equal(t, "failed", StateFailed.String())
}
