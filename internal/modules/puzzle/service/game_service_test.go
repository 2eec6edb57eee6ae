package service_test

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wirematch/internal/modules/puzzle/domain"
	"wirematch/internal/modules/puzzle/service"
	"wirematch/internal/platform/clock"
	"wirematch/internal/platform/clock/clocktest"
	apperrors "wirematch/internal/platform/errors"
)

// gridLayout places left endpoints at x=2 and right endpoints at x=40, two
// rows apart.
type gridLayout struct{}

func anchorOf(ref domain.EndpointRef) domain.Point {
	x := 2.0
	if ref.Side == domain.SideRight {
		x = 40
	}
	return domain.Point{X: x, Y: float64(ref.Index * 2)}
}

func (gridLayout) HitTest(p domain.Point) (domain.EndpointRef, bool) {
	var side domain.Side
	switch {
	case math.Abs(p.X-2) <= 1:
		side = domain.SideLeft
	case math.Abs(p.X-40) <= 1:
		side = domain.SideRight
	default:
		return domain.EndpointRef{}, false
	}
	if p.Y < 0 || int(p.Y)%2 != 0 {
		return domain.EndpointRef{}, false
	}
	return domain.EndpointRef{Side: side, Index: int(p.Y) / 2}, true
}

func (gridLayout) Anchor(ref domain.EndpointRef) (domain.Point, bool) {
	return anchorOf(ref), true
}

type fakeScores struct {
	stored    int
	loadErr   error
	recordErr error
	records   []int
}

func (f *fakeScores) Load(context.Context) (int, error) {
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	if f.stored == 0 {
		return 1, nil
	}
	return f.stored, nil
}

func (f *fakeScores) Record(_ context.Context, level int) (int, error) {
	f.records = append(f.records, level)
	if f.recordErr != nil {
		return 0, f.recordErr
	}
	if level > f.stored {
		f.stored = level
	}
	return f.stored, nil
}

type recordingSink struct{ events []domain.Event }

func (r *recordingSink) Publish(_ context.Context, e domain.Event) { r.events = append(r.events, e) }

func (r *recordingSink) kinds() []domain.EventKind {
	out := make([]domain.EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

type fixedID struct{}

func (fixedID) New() string { return "game-1" }

type harness struct {
	svc    *service.GameService
	sched  *clocktest.ManualScheduler
	scores *fakeScores
	sink   *recordingSink
}

func newHarness(t *testing.T, scores *fakeScores) harness {
	t.Helper()
	sched := clocktest.NewManualScheduler()
	sink := &recordingSink{}
	svc := service.NewGameService(
		clock.SystemClock{},
		fixedID{},
		domain.NewGenerator(rand.New(rand.NewPCG(1, 2))),
		gridLayout{},
		scores,
		sched,
		sink,
		service.DefaultPacing(),
		nil,
	)
	return harness{svc: svc, sched: sched, scores: scores, sink: sink}
}

func connect(t *testing.T, svc *service.GameService, leftIdx, rightIdx int) domain.Step {
	t.Helper()
	ctx := context.Background()
	_, err := svc.DragStart(ctx, anchorOf(domain.EndpointRef{Side: domain.SideLeft, Index: leftIdx}))
	require.NoError(t, err)
	_, err = svc.DragMove(ctx, domain.Point{X: 20, Y: 3})
	require.NoError(t, err)
	step, err := svc.DragEnd(ctx, anchorOf(domain.EndpointRef{Side: domain.SideRight, Index: rightIdx}))
	require.NoError(t, err)
	return step
}

func matchIndex(state domain.State, leftIdx int) int {
	for _, ep := range state.Right {
		if ep.Identity == state.Left[leftIdx].Identity {
			return ep.Ref.Index
		}
	}
	return -1
}

func mismatchIndex(state domain.State, leftIdx int) int {
	for _, ep := range state.Right {
		if ep.Identity != state.Left[leftIdx].Identity {
			return ep.Ref.Index
		}
	}
	return -1
}

func solve(t *testing.T, svc *service.GameService) {
	t.Helper()
	state := svc.State()
	for i := range state.Left {
		step := connect(t, svc, i, matchIndex(state, i))
		require.Equal(t, domain.OutcomeCommitted, step.Outcome)
	}
}

func TestStartDefaultsHighScoreAndInstallsLevelOne(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	state := h.svc.Start(context.Background())

	require.Equal(t, 1, state.Level)
	require.Equal(t, 1, state.HighScore)
	require.Len(t, state.Left, 3)
	require.Len(t, state.Right, 3)
	require.Equal(t, "game-1", state.SessionID)
	require.False(t, state.Transitioning)
}

func TestStartFallsBackWhenScoreLoadFails(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{loadErr: errors.New("disk gone")})
	state := h.svc.Start(context.Background())
	require.Equal(t, 1, state.HighScore)
}

func TestOperationsBeforeStartFail(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	ctx := context.Background()
	_, err := h.svc.DragStart(ctx, domain.Point{})
	require.ErrorIs(t, err, apperrors.ErrNotStarted)
	_, err = h.svc.DragMove(ctx, domain.Point{})
	require.ErrorIs(t, err, apperrors.ErrNotStarted)
	_, err = h.svc.DragEnd(ctx, domain.Point{})
	require.ErrorIs(t, err, apperrors.ErrNotStarted)
	_, err = h.svc.CancelGesture(ctx)
	require.ErrorIs(t, err, apperrors.ErrNotStarted)
	_, err = h.svc.Reset(ctx)
	require.ErrorIs(t, err, apperrors.ErrNotStarted)
}

func TestMismatchedReleaseLeavesOriginDraggable(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	state := h.svc.Start(context.Background())

	step := connect(t, h.svc, 0, mismatchIndex(state, 0))
	require.Equal(t, domain.OutcomeRejected, step.Outcome)
	require.ErrorIs(t, step.Reason, apperrors.ErrMismatchedCommit)

	after := h.svc.State()
	require.Empty(t, after.Connections)
	require.Empty(t, after.Curves)
	for _, ep := range append(after.Left, after.Right...) {
		require.False(t, ep.Connected)
	}

	retry := connect(t, h.svc, 0, matchIndex(state, 0))
	require.Equal(t, domain.OutcomeCommitted, retry.Outcome)
}

func TestReleaseOverEmptySpaceAndCancelDiscardGesture(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	ctx := context.Background()
	h.svc.Start(ctx)

	_, err := h.svc.DragStart(ctx, anchorOf(domain.EndpointRef{Side: domain.SideLeft, Index: 1}))
	require.NoError(t, err)
	require.True(t, h.svc.State().Dragging)
	step, err := h.svc.DragEnd(ctx, domain.Point{X: 20, Y: 20})
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeRejected, step.Outcome)
	require.False(t, h.svc.State().Dragging)

	_, err = h.svc.DragStart(ctx, anchorOf(domain.EndpointRef{Side: domain.SideLeft, Index: 1}))
	require.NoError(t, err)
	step, err = h.svc.CancelGesture(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeCancelled, step.Outcome)
	require.Empty(t, h.svc.State().Connections)
}

func TestDragStartOnRightOrEmptyIsIgnored(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	ctx := context.Background()
	h.svc.Start(ctx)

	step, err := h.svc.DragStart(ctx, anchorOf(domain.EndpointRef{Side: domain.SideRight, Index: 0}))
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeIgnored, step.Outcome)
	step, err = h.svc.DragStart(ctx, domain.Point{X: 90, Y: 90})
	require.NoError(t, err)
	require.ErrorIs(t, step.Reason, apperrors.ErrInvalidGestureTarget)
	require.False(t, h.svc.State().Dragging)
}

func TestWinFiresOnlyOnLastConnection(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	state := h.svc.Start(context.Background())

	for i := 0; i < len(state.Left)-1; i++ {
		connect(t, h.svc, i, matchIndex(state, i))
		require.False(t, h.svc.State().Transitioning, "win fired after %d connections", i+1)
	}
	require.Equal(t, 0, h.sched.Pending())

	last := len(state.Left) - 1
	connect(t, h.svc, last, matchIndex(state, last))
	got := h.svc.State()
	require.True(t, got.Transitioning)
	require.True(t, got.Solved())
	require.Equal(t, 1, h.sched.Pending())
}

func TestSolvedLevelPacingAndAdvance(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	ctx := context.Background()
	h.svc.Start(ctx)
	solve(t, h.svc)

	// input is blocked before the overlay appears
	step, err := h.svc.DragStart(ctx, anchorOf(domain.EndpointRef{Side: domain.SideLeft, Index: 0}))
	require.NoError(t, err)
	require.ErrorIs(t, step.Reason, apperrors.ErrTransitioning)

	h.sched.Advance(299 * time.Millisecond)
	require.False(t, h.svc.State().Overlay)
	h.sched.Advance(time.Millisecond)
	require.True(t, h.svc.State().Overlay)
	require.Equal(t, 1, h.svc.State().Level)

	h.sched.Advance(1499 * time.Millisecond)
	require.Equal(t, 1, h.svc.State().Level)
	h.sched.Advance(time.Millisecond)

	state := h.svc.State()
	require.Equal(t, 2, state.Level)
	require.Len(t, state.Left, 4)
	require.False(t, state.Transitioning)
	require.False(t, state.Overlay)
	require.Empty(t, state.Connections)
	require.Equal(t, 2, state.HighScore)
	require.Equal(t, []int{2}, h.scores.records)

	require.Equal(t, []domain.EventKind{
		domain.EventLevelSolved,
		domain.EventGestureIgnored,
		domain.EventOverlayShown,
		domain.EventHighScore,
		domain.EventLevelStarted,
		domain.EventLevelAdvanced,
	}, h.sink.kinds()[len(h.sink.kinds())-6:])
}

func TestAdvanceDoesNotLowerStoredScore(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{stored: 10})
	h.svc.Start(context.Background())
	require.Equal(t, 10, h.svc.State().HighScore)

	solve(t, h.svc)
	h.sched.Advance(2 * time.Second)

	require.Equal(t, 2, h.svc.State().Level)
	require.Equal(t, 10, h.svc.State().HighScore)
	require.Empty(t, h.scores.records)
}

func TestAdvanceSurvivesPersistenceFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{recordErr: errors.New("read-only")})
	h.svc.Start(context.Background())
	solve(t, h.svc)
	h.sched.Advance(2 * time.Second)

	state := h.svc.State()
	require.Equal(t, 2, state.Level)
	require.Equal(t, 2, state.HighScore)
}

func TestResetFromLevelFiveKeepsHighScore(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	ctx := context.Background()
	h.svc.Start(ctx)
	for h.svc.State().Level < 5 {
		solve(t, h.svc)
		h.sched.Advance(2 * time.Second)
	}
	require.Equal(t, 5, h.scores.stored)
	recorded := len(h.scores.records)

	state, err := h.svc.Reset(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, state.Level)
	require.Len(t, state.Left, 3)
	require.Equal(t, 5, state.HighScore)
	require.Equal(t, 5, h.scores.stored)
	require.Len(t, h.scores.records, recorded)
}

func TestResetDuringTransitionDropsPendingAdvance(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	ctx := context.Background()
	h.svc.Start(ctx)
	solve(t, h.svc)
	h.sched.Advance(500 * time.Millisecond)
	require.True(t, h.svc.State().Overlay)

	_, err := h.svc.Reset(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, h.sched.Pending())
	h.sched.Advance(5 * time.Second)

	state := h.svc.State()
	require.Equal(t, 1, state.Level)
	require.False(t, state.Overlay)
	require.False(t, state.Transitioning)
	require.Empty(t, h.scores.records)
}

func TestEndpointCountCapsAtCatalogSize(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeScores{})
	h.svc.Start(context.Background())
	for h.svc.State().Level < 12 {
		solve(t, h.svc)
		h.sched.Advance(2 * time.Second)
	}
	require.Len(t, h.svc.State().Left, domain.CatalogSize)
	require.Equal(t, 12, h.svc.State().HighScore)
}
