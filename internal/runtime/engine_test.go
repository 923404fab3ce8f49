package runtime_test

import (
	"testing"

	"github.com/aretw0/parley/internal/runtime"
	"github.com/aretw0/parley/internal/testutils"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardTree builds A (line) -> B (choice: Yes -> C, No -> D), C and D terminal.
func guardTree(id string) *domain.Tree {
	a := domain.NewLine("A", "Guard", "Hello")
	b := domain.NewChoice("B", "Guard", "May I pass?")
	c := domain.NewLine("C", "Guard", "Go on.")
	d := domain.NewLine("D", "Guard", "Begone.")
	a.Next = b
	b.Options = []domain.Option{{Label: "Yes", Target: c}, {Label: "No", Target: d}}
	return &domain.Tree{ID: id, Root: a, Nodes: []*domain.Node{a, b, c, d}}
}

type fixture struct {
	reg       *registry.Registry
	presenter *testutils.FakePresenter
	host      *testutils.FakeHost
	engine    *runtime.Engine
}

func newFixture(t *testing.T, slots int, opts ...runtime.Option) *fixture {
	t.Helper()
	f := &fixture{
		reg:       registry.NewRegistry(),
		presenter: testutils.NewFakePresenter(slots),
		host:      &testutils.FakeHost{},
	}
	f.reg.Register("guard", guardTree("guard"))
	opts = append([]runtime.Option{runtime.WithPresenter(f.presenter), runtime.WithHost(f.host)}, opts...)
	f.engine = runtime.NewEngine(f.reg, opts...)
	return f
}

func TestEngine_EndToEnd(t *testing.T) {
	f := newFixture(t, 4)
	e := f.engine

	require.NoError(t, e.Start("guard"))
	assert.True(t, e.Active())
	assert.Equal(t, "A", e.Current().ID)
	assert.Equal(t, "Guard", f.presenter.Speaker)
	assert.Equal(t, "Hello", f.presenter.Line)
	assert.Empty(t, f.presenter.ActiveLabels())
	assert.True(t, f.host.Locked())

	require.NoError(t, e.Advance())
	assert.Equal(t, "B", e.Current().ID)
	assert.Equal(t, []string{"Yes", "No"}, f.presenter.ActiveLabels())

	require.NoError(t, e.SelectOption(1))
	assert.True(t, e.Active(), "D is shown, the session is not over yet")
	assert.Equal(t, "D", e.Current().ID)
	assert.Equal(t, "Begone.", f.presenter.Line)
	assert.Empty(t, f.presenter.ActiveLabels())

	require.NoError(t, e.Advance())
	assert.False(t, e.Active())
	assert.Nil(t, e.Current())
	assert.Empty(t, f.presenter.Speaker)
	assert.Empty(t, f.presenter.Line)
	assert.Empty(t, f.presenter.ActiveLabels())
	assert.Equal(t, 1, f.host.Locks)
	assert.Equal(t, 1, f.host.Unlocks)
}

func TestEngine_AdvanceOnUnansweredChoiceIsNoop(t *testing.T) {
	f := newFixture(t, 4)
	require.NoError(t, f.engine.Start("guard"))
	require.NoError(t, f.engine.Advance())

	calls := f.presenter.Calls
	require.NoError(t, f.engine.Advance())
	require.NoError(t, f.engine.Advance())

	assert.Equal(t, "B", f.engine.Current().ID)
	assert.Equal(t, calls, f.presenter.Calls, "no presentation call is emitted")
}

func TestEngine_SlotSelection(t *testing.T) {
	f := newFixture(t, 4)
	require.NoError(t, f.engine.Start("guard"))
	require.NoError(t, f.engine.Advance())

	stale := f.presenter.Items[1]
	f.presenter.Items[0].Press()
	assert.Equal(t, "C", f.engine.Current().ID)

	// The "No" callback was bound to B, which is no longer active.
	stale.Press()
	assert.Equal(t, "C", f.engine.Current().ID)
}

func TestEngine_Errors(t *testing.T) {
	f := newFixture(t, 4)
	e := f.engine

	assert.ErrorIs(t, e.Advance(), domain.ErrNoActiveSession)
	assert.ErrorIs(t, e.SelectOption(0), domain.ErrNoActiveSession)

	var nf *domain.NotFoundError
	require.ErrorAs(t, e.Start("missing"), &nf)
	assert.Equal(t, "missing", nf.Name)
	assert.False(t, e.Active())
	assert.Zero(t, f.host.Locks)

	require.NoError(t, e.Start("guard"))
	assert.ErrorIs(t, e.SelectOption(0), domain.ErrNotChoice)
	assert.Equal(t, "A", e.Current().ID)

	require.NoError(t, e.Advance())
	var oor *domain.IndexOutOfRangeError
	require.ErrorAs(t, e.SelectOption(2), &oor)
	assert.Equal(t, 2, oor.Len)
	assert.ErrorAs(t, e.SelectOption(-1), &oor)
	assert.Equal(t, "B", e.Current().ID)
	assert.Equal(t, domain.NoChoice, e.Current().Chosen(), "selection is unchanged")
}

func TestEngine_TooManyOptions(t *testing.T) {
	f := newFixture(t, 1)

	require.NoError(t, f.engine.Start("guard"))
	var tm *domain.TooManyOptionsError
	require.ErrorAs(t, f.engine.Advance(), &tm)
	assert.Equal(t, "B", tm.NodeID)
	assert.Equal(t, 2, tm.Options)
	assert.Equal(t, 1, tm.Slots)
	assert.Equal(t, "A", f.engine.Current().ID, "cursor did not move")
	assert.Equal(t, "Hello", f.presenter.Line)

	root := domain.NewChoice("Q", "", "Pick")
	root.Options = []domain.Option{{Label: "x", Target: root}, {Label: "y", Target: root}}
	f.reg.Register("quiz", &domain.Tree{ID: "quiz", Root: root, Nodes: []*domain.Node{root}})

	require.ErrorAs(t, f.engine.Start("quiz"), &tm)
	assert.Equal(t, "A", f.engine.Current().ID, "running session is kept")
}

func TestEngine_HeadlessHasNoSlotLimit(t *testing.T) {
	reg := registry.NewRegistry()
	root := domain.NewChoice("Q", "", "Pick")
	for i := 0; i < 10; i++ {
		root.Options = append(root.Options, domain.Option{Label: "o", Target: root})
	}
	reg.Register("quiz", &domain.Tree{ID: "quiz", Root: root, Nodes: []*domain.Node{root}})

	e := runtime.NewEngine(reg)
	require.NoError(t, e.Start("quiz"))
	require.NoError(t, e.SelectOption(9))
	assert.Equal(t, "Q", e.Current().ID)
	assert.Equal(t, domain.NoChoice, e.Current().Chosen(), "re-entering a choice clears its selection")
}

func TestEngine_ReRegisterKeepsInFlightCursor(t *testing.T) {
	f := newFixture(t, 4)
	require.NoError(t, f.engine.Start("guard"))
	old := f.engine.Current()

	replacement := guardTree("guard")
	replacement.Root.Text = "Halt!"
	f.reg.Register("guard", replacement)

	assert.Same(t, old, f.engine.Current())
	require.NoError(t, f.engine.Advance())
	assert.Same(t, old.Next, f.engine.Current(), "session follows the tree it started on")

	require.NoError(t, f.engine.Start("guard"))
	assert.Same(t, replacement.Root, f.engine.Current())
	assert.Equal(t, "Halt!", f.presenter.Line)
}

func TestEngine_RestartDiscardsSession(t *testing.T) {
	var discarded []*domain.SessionEvent
	var started []*domain.SessionEvent
	f := newFixture(t, 4, runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnSessionStart:   func(e *domain.SessionEvent) { started = append(started, e) },
		OnSessionDiscard: func(e *domain.SessionEvent) { discarded = append(discarded, e) },
	}))

	require.NoError(t, f.engine.Start("guard"))
	first := f.engine.SessionID()
	require.NoError(t, f.engine.Advance())
	b := f.engine.Current()

	require.NoError(t, f.engine.Start("guard"))
	assert.Equal(t, "A", f.engine.Current().ID)
	assert.NotEqual(t, first, f.engine.SessionID())
	assert.Equal(t, domain.NoChoice, b.Chosen())

	require.Len(t, discarded, 1)
	assert.Equal(t, first, discarded[0].SessionID)
	assert.Len(t, started, 2)
	assert.Equal(t, 1, f.host.Locks, "host is not locked twice")
	assert.Zero(t, f.host.Unlocks, "host is not released on discard")
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var entered, left []string
	var selected []*domain.OptionEvent
	var ended []*domain.SessionEvent
	sessions := map[string]bool{}

	hooks := domain.LifecycleHooks{
		OnSessionStart: func(e *domain.SessionEvent) { sessions[e.SessionID] = true },
		OnSessionEnd:   func(e *domain.SessionEvent) { ended = append(ended, e) },
		OnNodeEnter: func(e *domain.NodeEvent) {
			sessions[e.SessionID] = true
			entered = append(entered, e.NodeID)
		},
		OnNodeLeave:      func(e *domain.NodeEvent) { left = append(left, e.NodeID) },
		OnOptionSelected: func(e *domain.OptionEvent) { selected = append(selected, e) },
	}

	f := newFixture(t, 4, runtime.WithLifecycleHooks(hooks))
	require.NoError(t, f.engine.Start("guard"))
	require.NoError(t, f.engine.Advance())
	require.NoError(t, f.engine.SelectOption(1))
	require.NoError(t, f.engine.Advance())

	assert.Equal(t, []string{"A", "B", "D"}, entered)
	assert.Equal(t, []string{"A", "B", "D"}, left)
	require.Len(t, selected, 1)
	assert.Equal(t, "No", selected[0].Label)
	assert.Equal(t, "B", selected[0].NodeID)
	require.Len(t, ended, 1)
	assert.Equal(t, "guard", ended[0].TreeID)
	assert.Len(t, sessions, 1, "every event carries the same session id")
	assert.True(t, sessions[ended[0].SessionID])
}

func TestEngine_Bind(t *testing.T) {
	f := newFixture(t, 4)
	input := &testutils.FakeInput{}
	f.engine.Bind(input)

	input.Fire()
	assert.False(t, f.engine.Active())

	require.NoError(t, f.engine.Start("guard"))
	input.Fire()
	assert.Equal(t, "B", f.engine.Current().ID)
	input.Fire()
	assert.Equal(t, "B", f.engine.Current().ID)
}
