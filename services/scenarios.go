package services

import (
	"fmt"
	"math/rand/v2"

	"chesscoach/models"
)

// RandomCategory selects a uniformly random category when passed as the type
const RandomCategory = "random"

// Category is one named group of scenarios
type Category struct {
	Key       string
	Scenarios []models.Scenario
}

// ScenarioTable is an immutable, ordered mapping of category keys to scenarios
type ScenarioTable struct {
	keys       []string
	categories map[string][]models.Scenario
}

// NewScenarioTable validates and freezes the given categories
func NewScenarioTable(categories ...Category) (*ScenarioTable, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("scenario table needs at least one category")
	}
	t := &ScenarioTable{categories: make(map[string][]models.Scenario, len(categories))}
	for _, c := range categories {
		if c.Key == "" || c.Key == RandomCategory {
			return nil, fmt.Errorf("invalid category key %q", c.Key)
		}
		if len(c.Scenarios) == 0 {
			return nil, fmt.Errorf("category %q has no scenarios", c.Key)
		}
		if _, dup := t.categories[c.Key]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.Key)
		}
		t.keys = append(t.keys, c.Key)
		t.categories[c.Key] = append([]models.Scenario(nil), c.Scenarios...)
	}
	return t, nil
}

// Keys returns the category keys in declaration order
func (t *ScenarioTable) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Lookup returns the scenarios of a known category
func (t *ScenarioTable) Lookup(key string) ([]models.Scenario, bool) {
	list, ok := t.categories[key]
	return list, ok
}

// DefaultScenarios is the built-in endgame training table
var DefaultScenarios = mustScenarioTable(
	Category{Key: "king-pawn", Scenarios: []models.Scenario{
		{FEN: "8/8/8/8/4k3/8/4P3/4K3 w - - 0 1", Title: "King in Front", Idea: "Place your King IN FRONT of the pawn to control key squares (d4, e4, f4)."},
		{FEN: "8/8/8/5k2/8/5P2/5K2/8 w - - 0 1", Title: "The Opposition", Idea: "Move your King to face the enemy King. This forces them to step aside."},
		{FEN: "8/8/8/8/3k4/8/4P3/3K4 w - - 0 1", Title: "Key Squares", Idea: "Reach the 6th rank ahead of the pawn to force a win."},
		{FEN: "8/8/8/8/8/2k5/1P6/1K6 w - - 0 1", Title: "Pawn Breakthrough", Idea: "Sacrifice or maneuver to get the pawn to the 8th rank."},
		{FEN: "8/5k2/8/5P2/5K2/8/8/8 w - - 0 1", Title: "Cutting Off", Idea: "Use your King to shoulder-barge the enemy King away."},
	}},
	Category{Key: "king-rook", Scenarios: []models.Scenario{
		{FEN: "1R6/8/3P4/8/8/4k3/8/4K3 w - - 0 1", Title: "Lucena Position", Idea: "The Bridge! Use your Rook to shield your King from checks."},
		{FEN: "2r5/8/8/8/4k3/8/3R4/3K4 w - - 0 1", Title: "Philidor Position", Idea: "Keep your Rook on the 6th rank to stop the King. Draw technique."},
	}},
	Category{Key: "king-queen", Scenarios: []models.Scenario{
		{FEN: "4k3/8/8/4k3/3Q4/8/8/8 w - - 0 1", Title: "Queen Mate", Idea: "Box the enemy King into a corner. Be careful of Stalemate!"},
		{FEN: "8/1P6/8/8/2k5/8/5q2/3K4 w - - 0 1", Title: "Queen vs Pawn", Idea: "Bring the King closer while checking."},
	}},
)

func mustScenarioTable(categories ...Category) *ScenarioTable {
	t, err := NewScenarioTable(categories...)
	if err != nil {
		panic(err)
	}
	return t
}

// IntSource yields a uniform integer in [0, n)
type IntSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Pick is the result of one scenario selection
type Pick struct {
	Scenario models.Scenario
	Type     string
	Index    int
}

// ScenarioPicker selects scenarios from a table without repeating the
// previous index of the same category when an alternative exists.
type ScenarioPicker struct {
	table *ScenarioTable
	rng   IntSource
}

// NewScenarioPicker uses the process-wide random source when rng is nil
func NewScenarioPicker(table *ScenarioTable, rng IntSource) *ScenarioPicker {
	if rng == nil {
		rng = globalSource{}
	}
	return &ScenarioPicker{table: table, rng: rng}
}

// Pick resolves category (unknown and "random" pick a random category) and
// returns a random scenario from it. prevIndex < 0 means no previous pick.
func (p *ScenarioPicker) Pick(category string, prevIndex int) Pick {
	list, ok := p.table.Lookup(category)
	if category == RandomCategory || !ok {
		category = p.table.keys[p.rng.IntN(len(p.table.keys))]
		list = p.table.categories[category]
	}

	idx := p.rng.IntN(len(list))
	if len(list) > 1 && idx == prevIndex {
		idx = (idx + 1) % len(list)
	}

	return Pick{Scenario: list[idx], Type: category, Index: idx}
}
