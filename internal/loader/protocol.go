package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/napolitain/solver-brew/internal/models"
)

// ErrMalformedInput reports a turn feed line that cannot be parsed
var ErrMalformedInput = errors.New("malformed input")

// Entity types announced in the turn feed
const (
	EntityBrew         = "BREW"
	EntityCast         = "CAST"
	EntityOpponentCast = "OPPONENT_CAST"
	EntityLearn        = "LEARN"
)

const (
	entityFields    = 11
	inventoryFields = 5
)

// TurnReader reads one GameState per turn from the game feed
type TurnReader struct {
	scanner *bufio.Scanner
	line    int
	turn    int
}

// NewTurnReader creates a reader over the game feed
func NewTurnReader(r io.Reader) *TurnReader {
	return &TurnReader{scanner: bufio.NewScanner(r)}
}

// ReadTurn parses the next turn. It returns io.EOF when the feed ends
// before a new turn starts.
func (tr *TurnReader) ReadTurn() (*models.GameState, error) {
	countLine, err := tr.next()
	if err != nil {
		return nil, err
	}

	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || count < 0 {
		return nil, tr.malformed("entity count %q", countLine)
	}

	state := models.NewGameState()
	state.Turn = tr.turn

	for i := 0; i < count; i++ {
		line, err := tr.next()
		if err != nil {
			return nil, tr.truncated(err)
		}
		if err := tr.parseEntity(state, line); err != nil {
			return nil, err
		}
	}

	for i := range state.Players {
		line, err := tr.next()
		if err != nil {
			return nil, tr.truncated(err)
		}
		values, err := tr.ints(line, inventoryFields)
		if err != nil {
			return nil, err
		}
		state.Players[i].Inventory = models.NewInventory(values[0], values[1], values[2], values[3])
		state.Players[i].Rupees = values[4]
	}

	tr.turn++
	return state, nil
}

func (tr *TurnReader) parseEntity(state *models.GameState, line string) error {
	fields := strings.Fields(line)
	if len(fields) != entityFields {
		return tr.malformed("expected %d fields, got %d", entityFields, len(fields))
	}

	kind := fields[1]
	values := make([]int, 0, entityFields-1)
	for i, f := range fields {
		if i == 1 {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return tr.malformed("field %d %q is not an integer", i, f)
		}
		values = append(values, v)
	}

	// values: id d0 d1 d2 d3 price tomeIndex taxCount castable repeatable
	id := values[0]
	delta := models.NewIngredients(values[1], values[2], values[3], values[4])
	price, tomeIndex, taxCount := values[5], values[6], values[7]
	castable, repeatable := values[8] != 0, values[9] != 0

	switch kind {
	case EntityBrew:
		state.Market.Orders = append(state.Market.Orders, models.Order{
			ID:     id,
			Delta:  delta,
			Reward: price,
			Bonus:  tomeIndex,
		})
	case EntityCast:
		state.Me().Spells = append(state.Me().Spells, models.NewSpell(id, delta, castable, repeatable))
	case EntityOpponentCast:
		state.Opponent().Spells = append(state.Opponent().Spells, models.NewSpell(id, delta, castable, repeatable))
	case EntityLearn:
		state.Tome.Spells = append(state.Tome.Spells, models.TomeSpell{
			ID:         id,
			Delta:      delta,
			Index:      tomeIndex,
			Tax:        taxCount,
			Repeatable: repeatable,
		})
	}
	return nil
}

func (tr *TurnReader) ints(line string, want int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, tr.malformed("expected %d fields, got %d", want, len(fields))
	}
	values := make([]int, want)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, tr.malformed("field %d %q is not an integer", i, f)
		}
		values[i] = v
	}
	return values, nil
}

func (tr *TurnReader) next() (string, error) {
	if !tr.scanner.Scan() {
		if err := tr.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read turn feed: %w", err)
		}
		return "", io.EOF
	}
	tr.line++
	return tr.scanner.Text(), nil
}

func (tr *TurnReader) truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return tr.malformed("feed ended mid-turn")
	}
	return err
}

func (tr *TurnReader) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", tr.line, fmt.Sprintf(format, args...), ErrMalformedInput)
}
