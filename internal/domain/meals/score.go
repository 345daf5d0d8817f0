package meals

// Score computes the deterministic battle strength of a meal: price scaled
// by the length of the cuisine name, minus the difficulty modifier. It is a
// pure function of the meal's attributes, independent of arena state.
func Score(meal Meal) float64 {
	return meal.Price*float64(len(meal.Cuisine)) - meal.Difficulty.BattleModifier()
}
