package models

// Player slots in GameState.Players
const (
	Me       = 0
	Opponent = 1
)

// GameState is the world snapshot for one turn. The planner never mutates
// a GameState it did not just clone.
type GameState struct {
	Players [2]Player
	Market  Market
	Tome    Tome
	Turn    int
}

// NewGameState creates an empty state at turn 0
func NewGameState() *GameState {
	return &GameState{}
}

// Me returns the planner's own player
func (s *GameState) Me() *Player {
	return &s.Players[Me]
}

// Opponent returns the other player
func (s *GameState) Opponent() *Player {
	return &s.Players[Opponent]
}

// Clone creates a deep copy of the state
func (s *GameState) Clone() *GameState {
	return &GameState{
		Players: [2]Player{s.Players[Me].Clone(), s.Players[Opponent].Clone()},
		Market:  s.Market.Clone(),
		Tome:    s.Tome.Clone(),
		Turn:    s.Turn,
	}
}
