// Package cascade implements dependent selections: picking a parent
// entity loads and constrains the options of a child entity. The child
// selection never survives a parent change.
package cascade

import (
	"context"
	"sync"

	"github.com/thanhvu/engcenter-console/internal/pkg/apperrors"
)

// State is the cascade's observable phase
type State string

const (
	StateNoParentSelected State = "noParentSelected"
	StateLoadingChildren  State = "loadingChildren"
	StateChildrenReady    State = "childrenReady"
	StateChildrenEmpty    State = "childrenEmpty"
)

// Loader fetches the child options for one parent id. In practice this
// is a query-cache read, so parent re-selection within the freshness
// window costs nothing.
type Loader[C any] func(ctx context.Context, parentID string) ([]C, error)

// Cascade tracks one parent/child selection pair, e.g. course and class
type Cascade[C any] struct {
	mu       sync.Mutex
	load     Loader[C]
	childID  func(C) string
	state    State
	parentID string
	children []C
	selected string
}

// New creates a cascade with no parent selected. childID extracts the
// identifier used for child selection.
func New[C any](load Loader[C], childID func(C) string) *Cascade[C] {
	return &Cascade[C]{
		load:    load,
		childID: childID,
		state:   StateNoParentSelected,
	}
}

// SelectParent switches the cascade to a new parent. The child
// selection is cleared in the same critical section that records the
// parent change, so no stale child is ever observable under the new
// parent. Clearing the parent resets the cascade entirely.
func (c *Cascade[C]) SelectParent(ctx context.Context, parentID string) ([]C, error) {
	c.mu.Lock()
	// A re-select while the same parent is still loading falls through
	// to the load below, so the caller waits for real children instead
	// of mistaking an in-flight fetch for an empty result.
	if parentID == c.parentID && c.state != StateNoParentSelected && c.state != StateLoadingChildren {
		children := c.children
		c.mu.Unlock()
		return children, nil
	}

	c.parentID = parentID
	c.selected = ""
	c.children = nil

	if parentID == "" {
		c.state = StateNoParentSelected
		c.mu.Unlock()
		return nil, nil
	}

	c.state = StateLoadingChildren
	c.mu.Unlock()

	children, err := c.load(ctx, parentID)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A slower fetch for a parent that is no longer selected must not
	// overwrite the current state
	if c.parentID != parentID {
		return nil, nil
	}

	if err != nil {
		c.state = StateNoParentSelected
		return nil, err
	}

	c.children = children
	if len(children) == 0 {
		c.state = StateChildrenEmpty
	} else {
		c.state = StateChildrenReady
	}
	return children, nil
}

// SelectChild records a child selection. Only ids present in the loaded
// options are accepted.
func (c *Cascade[C]) SelectChild(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateNoParentSelected || c.state == StateLoadingChildren {
		return apperrors.ErrNoParentSelected
	}

	for _, child := range c.children {
		if c.childID(child) == id {
			c.selected = id
			return nil
		}
	}
	return apperrors.ErrUnknownChild
}

// State returns the cascade's current phase
func (c *Cascade[C]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ParentID returns the selected parent id, empty when none is selected
func (c *Cascade[C]) ParentID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.parentID
}

// ChildID returns the selected child id, empty when none is selected
func (c *Cascade[C]) ChildID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Children returns the loaded child options
func (c *Cascade[C]) Children() []C {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.children
}
