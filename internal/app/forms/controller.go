// Package forms holds the modal form controllers. Each controller owns
// one strongly typed draft, seeded on open, reset on close, validated
// client-side and submitted through its bound mutation.
package forms

import (
	"context"
	"errors"
	"sync"
)

// Form lifecycle errors
var (
	ErrFormClosed = errors.New("form is not open")
)

// Mode distinguishes create from edit forms
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Controller drives one create/edit modal. The draft mirrors the
// entity's editable fields; validation failures and mutation failures
// both leave the form open with the draft intact.
type Controller[D any] struct {
	mu       sync.Mutex
	defaults D
	draft    D
	targetID string
	mode     Mode
	open     bool
	validate func(D) error
	submit   func(ctx context.Context, targetID string, draft D) error
}

// NewController builds a controller around a defaults value, a
// validator and a submit function receiving the edit target's id
// (empty in create mode).
func NewController[D any](defaults D, validate func(D) error, submit func(ctx context.Context, targetID string, draft D) error) *Controller[D] {
	return &Controller[D]{
		defaults: defaults,
		draft:    defaults,
		validate: validate,
		submit:   submit,
	}
}

// OpenCreate opens the form with the seed defaults
func (f *Controller[D]) OpenCreate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = ModeCreate
	f.targetID = ""
	f.draft = f.defaults
	f.open = true
}

// OpenEdit opens the form seeded from the target entity
func (f *Controller[D]) OpenEdit(targetID string, seed D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = ModeEdit
	f.targetID = targetID
	f.draft = seed
	f.open = true
}

// Close discards the draft. The next open always starts from its own
// seed, never from an aborted edit.
func (f *Controller[D]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = f.defaults
	f.targetID = ""
	f.open = false
}

// Draft returns the current draft value
func (f *Controller[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the draft, as field edits do
func (f *Controller[D]) SetDraft(draft D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// IsOpen reports whether the modal is open
func (f *Controller[D]) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Mode returns the form's current mode
func (f *Controller[D]) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Submit validates the draft and runs the bound mutation. A validation
// failure never reaches the network. On success the form closes; on
// failure it stays open so the user can correct and resubmit.
func (f *Controller[D]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return ErrFormClosed
	}
	draft := f.draft
	targetID := f.targetID
	f.mu.Unlock()

	if err := f.validate(draft); err != nil {
		return err
	}

	if err := f.submit(ctx, targetID, draft); err != nil {
		return err
	}

	f.Close()
	return nil
}
