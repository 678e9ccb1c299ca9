package game

import "snake-planner/game/types"

// Snapshot is a read-only copy of the board after a tick, shaped for
// renderers and the websocket stream.
type Snapshot struct {
	Session        string        `json:"session,omitempty"`
	Run            int           `json:"run,omitempty"`
	Tick           int           `json:"tick"`
	Event          string        `json:"event"`
	State          string        `json:"state"`
	Reason         string        `json:"reason,omitempty"`
	Heading        string        `json:"heading"`
	Body           []types.Point `json:"body"`
	Hazards        []types.Point `json:"hazards"`
	Foods          []types.Point `json:"foods"`
	Route          []types.Point `json:"route"`
	FoodsCollected int           `json:"foodsCollected"`
	Moves          int           `json:"moves"`
}

func (g *Game) Snapshot(event TickEvent) Snapshot {
	s := Snapshot{
		Tick:           g.Ticks,
		Event:          event.String(),
		State:          g.state.String(),
		Heading:        g.Heading().String(),
		Body:           g.Body(),
		Hazards:        g.Hazards(),
		Foods:          g.Foods(),
		Route:          g.CurrentRoute(),
		FoodsCollected: g.FoodsCollected,
		Moves:          g.Moves,
	}
	if g.reason != ReasonNone {
		s.Reason = g.reason.String()
	}
	return s
}
