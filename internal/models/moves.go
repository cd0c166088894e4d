package models

import "fmt"

// MoveKind identifies the move variant
type MoveKind string

const (
	KindBrew  MoveKind = "BREW"
	KindCast  MoveKind = "CAST"
	KindLearn MoveKind = "LEARN"
	KindRest  MoveKind = "REST"
	KindWait  MoveKind = "WAIT"
)

// Move is one of Brew, Cast, Learn, Rest or Wait.
// The set is closed: only this package implements it.
type Move interface {
	Kind() MoveKind
	Description() string
	isMove()
}

// Brew fulfills an order
type Brew struct {
	OrderID int
}

// Cast applies an owned spell Times times in a row
type Cast struct {
	SpellID int
	Times   int
}

// Learn acquires a tome entry
type Learn struct {
	TomeSpellID int
}

// Rest reactivates every exhausted spell
type Rest struct{}

// Wait passes the turn
type Wait struct{}

func (Brew) Kind() MoveKind  { return KindBrew }
func (Cast) Kind() MoveKind  { return KindCast }
func (Learn) Kind() MoveKind { return KindLearn }
func (Rest) Kind() MoveKind  { return KindRest }
func (Wait) Kind() MoveKind  { return KindWait }

func (m Brew) Description() string  { return fmt.Sprintf("brew order %d", m.OrderID) }
func (m Learn) Description() string { return fmt.Sprintf("learn tome spell %d", m.TomeSpellID) }
func (Rest) Description() string    { return "rest" }
func (Wait) Description() string    { return "wait" }

func (m Cast) Description() string {
	if m.Times > 1 {
		return fmt.Sprintf("cast spell %d x%d", m.SpellID, m.Times)
	}
	return fmt.Sprintf("cast spell %d", m.SpellID)
}

func (Brew) isMove()  {}
func (Cast) isMove()  {}
func (Learn) isMove() {}
func (Rest) isMove()  {}
func (Wait) isMove()  {}
