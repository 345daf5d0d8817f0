package meals

import "fmt"

type Difficulty string

const (
	DifficultyLow  Difficulty = "LOW"
	DifficultyMed  Difficulty = "MED"
	DifficultyHigh Difficulty = "HIGH"
)

type InvalidDifficultyError struct {
	Value string
}

func (e *InvalidDifficultyError) Error() string {
	return fmt.Sprintf("Invalid difficulty level: %s. Must be 'LOW', 'MED', or 'HIGH'.", e.Value)
}

type InvalidPriceError struct {
	Price float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("Invalid price: %v. Price must be a positive number.", e.Price)
}

// ParseDifficulty validates a raw difficulty string against the known tiers.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch Difficulty(raw) {
	case DifficultyLow, DifficultyMed, DifficultyHigh:
		return Difficulty(raw), nil
	default:
		return "", &InvalidDifficultyError{Value: raw}
	}
}

// BattleModifier is the fixed subtractive constant applied to a meal's
// battle score. Harder meals give up less.
func (d Difficulty) BattleModifier() float64 {
	switch d {
	case DifficultyHigh:
		return 1
	case DifficultyMed:
		return 2
	default:
		return 3
	}
}

// Meal is a persisted meal as handed out by the repository. It is read-only
// once loaded; the battle core never mutates it. Soft-deleted rows are
// filtered out on the repository side and never reach this type.
type Meal struct {
	ID         int64      `json:"id"`
	Name       string     `json:"meal"`
	Cuisine    string     `json:"cuisine"`
	Price      float64    `json:"price"`
	Difficulty Difficulty `json:"difficulty"`
}

// ValidatePrice rejects non-positive prices before a meal is created.
func ValidatePrice(price float64) error {
	if price <= 0 {
		return &InvalidPriceError{Price: price}
	}
	return nil
}
