package screen

import (
	"context"
	"errors"

	loopfsm "github.com/looplab/fsm"
)

const (
	panelEditing   = "editing"
	panelGenerated = "generated"

	eventGenerate = "generate"
	eventReset    = "reset"
)

var panelEvents = loopfsm.Events{
	{Name: eventGenerate, Src: []string{panelEditing, panelGenerated}, Dst: panelGenerated},
	{Name: eventReset, Src: []string{panelEditing, panelGenerated}, Dst: panelEditing},
}

// resultPanel tracks whether the result card is shown.
type resultPanel struct {
	machine *loopfsm.FSM
}

func newResultPanel(shown bool) *resultPanel {
	initial := panelEditing
	if shown {
		initial = panelGenerated
	}
	return &resultPanel{machine: loopfsm.NewFSM(initial, panelEvents, nil)}
}

func (p *resultPanel) fire(ctx context.Context, event string) error {
	err := p.machine.Event(ctx, event)
	// Re-generating or re-resetting leaves the state unchanged.
	var noTransition loopfsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return err
	}
	return nil
}

func (p *resultPanel) shown() bool {
	return p.machine.Current() == panelGenerated
}
