package cascade

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/pkg/apperrors"
)

func classLoader(byCourse map[string][]models.Class, calls *int32) Loader[models.Class] {
	return func(ctx context.Context, courseID string) ([]models.Class, error) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		return byCourse[courseID], nil
	}
}

func classID(c models.Class) string { return c.ID }

func TestCascade_StartsWithNoParent(t *testing.T) {
	c := New(classLoader(nil, nil), classID)

	if c.State() != StateNoParentSelected {
		t.Errorf("expected initial state, got %s", c.State())
	}
	if err := c.SelectChild("cl1"); !errors.Is(err, apperrors.ErrNoParentSelected) {
		t.Errorf("expected child selection to be rejected, got %v", err)
	}
}

func TestCascade_LoadsChildrenForParent(t *testing.T) {
	byCourse := map[string][]models.Class{
		"course-1": {{ID: "cl1", Name: "A1 Morning"}, {ID: "cl2", Name: "A1 Evening"}},
		"course-2": {},
	}
	c := New(classLoader(byCourse, nil), classID)

	children, err := c.SelectParent(context.Background(), "course-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(children) != 2 || c.State() != StateChildrenReady {
		t.Fatalf("expected two ready children, got %d in state %s", len(children), c.State())
	}

	if err := c.SelectChild("cl2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ChildID() != "cl2" {
		t.Errorf("expected cl2 selected, got %q", c.ChildID())
	}

	if err := c.SelectChild("other"); !errors.Is(err, apperrors.ErrUnknownChild) {
		t.Errorf("expected unknown child rejection, got %v", err)
	}
}

func TestCascade_EmptyChildList(t *testing.T) {
	byCourse := map[string][]models.Class{"course-2": {}}
	c := New(classLoader(byCourse, nil), classID)

	children, err := c.SelectParent(context.Background(), "course-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(children) != 0 || c.State() != StateChildrenEmpty {
		t.Errorf("expected empty state, got %d children in state %s", len(children), c.State())
	}
}

func TestCascade_ParentChangeResetsChild(t *testing.T) {
	byCourse := map[string][]models.Class{
		"course-1": {{ID: "cl1"}},
		"course-2": {{ID: "cl9"}},
	}
	c := New(classLoader(byCourse, nil), classID)

	if _, err := c.SelectParent(context.Background(), "course-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SelectChild("cl1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.SelectParent(context.Background(), "course-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.ChildID() != "" {
		t.Errorf("child selection from the old parent survived: %q", c.ChildID())
	}
	if err := c.SelectChild("cl1"); !errors.Is(err, apperrors.ErrUnknownChild) {
		t.Errorf("old parent's child must not be selectable under the new parent")
	}
}

func TestCascade_ChildClearedBeforeNewChildrenVisible(t *testing.T) {
	byCourse := map[string][]models.Class{"course-1": {{ID: "cl1"}}}

	loading := make(chan struct{})
	release := make(chan struct{})
	slow := func(ctx context.Context, courseID string) ([]models.Class, error) {
		if courseID == "course-2" {
			close(loading)
			<-release
			return []models.Class{{ID: "cl9"}}, nil
		}
		return byCourse[courseID], nil
	}

	c := New(slow, classID)
	if _, err := c.SelectParent(context.Background(), "course-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SelectChild("cl1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := c.SelectParent(context.Background(), "course-2"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}()

	// While the fetch for the new parent is still in flight, the stale
	// child selection must already be gone
	<-loading
	if c.ChildID() != "" {
		t.Errorf("stale child visible during load: %q", c.ChildID())
	}
	if c.State() != StateLoadingChildren {
		t.Errorf("expected loading state, got %s", c.State())
	}

	close(release)
	<-done

	if c.State() != StateChildrenReady {
		t.Errorf("expected ready state, got %s", c.State())
	}
}

func TestCascade_ReselectingLoadingParentWaitsForChildren(t *testing.T) {
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	loader := func(ctx context.Context, courseID string) ([]models.Class, error) {
		started <- struct{}{}
		<-release
		return []models.Class{{ID: "cl1"}, {ID: "cl2"}}, nil
	}
	c := New(loader, classID)

	first := make(chan struct{})
	go func() {
		defer close(first)
		if _, err := c.SelectParent(context.Background(), "course-1"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}()
	<-started

	// The same parent is selected again while its load is in flight; the
	// caller must get the loaded children, not an empty answer
	type outcome struct {
		children []models.Class
		err      error
	}
	second := make(chan outcome, 1)
	go func() {
		children, err := c.SelectParent(context.Background(), "course-1")
		second <- outcome{children, err}
	}()
	<-started

	close(release)
	got := <-second
	<-first

	if got.err != nil {
		t.Fatalf("unexpected error: %v", got.err)
	}
	if len(got.children) != 2 {
		t.Fatalf("re-select during load must return the loaded children, got %v", got.children)
	}
	if c.State() != StateChildrenReady {
		t.Errorf("expected ready state, got %s", c.State())
	}
}

func TestCascade_ClearingParentResetsEverything(t *testing.T) {
	byCourse := map[string][]models.Class{"course-1": {{ID: "cl1"}}}
	var calls int32
	c := New(classLoader(byCourse, &calls), classID)

	if _, err := c.SelectParent(context.Background(), "course-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SelectChild("cl1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	children, err := c.SelectParent(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if children != nil {
		t.Errorf("clearing the parent must not return children")
	}
	if c.State() != StateNoParentSelected || c.ChildID() != "" || c.ParentID() != "" {
		t.Errorf("expected full reset, got state %s parent %q child %q", c.State(), c.ParentID(), c.ChildID())
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("clearing the parent must not fetch, got %d calls", got)
	}
}

func TestCascade_ReselectingSameParentDoesNotRefetch(t *testing.T) {
	byCourse := map[string][]models.Class{"course-1": {{ID: "cl1"}}}
	var calls int32
	c := New(classLoader(byCourse, &calls), classID)

	if _, err := c.SelectParent(context.Background(), "course-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SelectChild("cl1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.SelectParent(context.Background(), "course-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("re-selecting the same parent must not refetch, got %d calls", got)
	}
	if c.ChildID() != "cl1" {
		t.Errorf("re-selecting the same parent must keep the child, got %q", c.ChildID())
	}
}
