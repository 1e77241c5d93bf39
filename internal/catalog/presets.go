// Package catalog holds the built-in program presets. Presets are
// templates: they carry no ids, and the engine assigns fresh ids every
// time one is built, so loading the catalog twice never collides.
package catalog

import "github.com/hammamikhairi/simmer/internal/domain"

// Defaults returns the preset programs used to seed an empty board or
// restore it after a full reset. The set is ordered and fits within the
// program ceiling.
func Defaults() []domain.ProgramSpec {
	return []domain.ProgramSpec{
		coconutAlmond(),
		fiveReds(),
		fiveBlacks(),
		blackcurrantMulberry(),
		snowPearPlum(),
		roseLongan(),
		osmanthusPear(),
	}
}

func coconutAlmond() domain.ProgramSpec {
	return domain.ProgramSpec{
		Name: "Coconut Almond Soup",
		Phases: []domain.PhaseSpec{
			{
				Name:            "Simmer the base (advance early if ready)",
				DurationSeconds: 7200,
				Ingredients: []domain.Ingredient{
					{Name: "water", Amount: 800, Unit: "ml"},
					{Name: "fish maw", Amount: 30, Unit: "g"},
					{Name: "poria", Amount: 10, Unit: "g"},
					{Name: "lotus seeds", Amount: 8, Unit: "g"},
				},
			},
			{
				Name:            "Add the yam",
				DurationSeconds: 1800,
				Ingredients: []domain.Ingredient{
					{Name: "chinese yam", Amount: 8, Unit: "g"},
				},
			},
			{
				Name:            "Add lily bulb and almonds",
				DurationSeconds: 1500,
				Ingredients: []domain.Ingredient{
					{Name: "lily bulb", Amount: 10, Unit: "g"},
					{Name: "sweet almonds", Amount: 6, Unit: "g"},
				},
			},
			{
				Name:            "Sweeten and finish",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "rock sugar", Amount: 10, Unit: "g"},
					{Name: "coconut powder", Amount: 15, Unit: "g"},
				},
			},
		},
	}
}

func fiveReds() domain.ProgramSpec {
	return domain.ProgramSpec{
		Name: "Five Reds Soup",
		Phases: []domain.PhaseSpec{
			{
				Name:            "Simmer the base (advance early if ready)",
				DurationSeconds: 7200,
				Ingredients: []domain.Ingredient{
					{Name: "water", Amount: 800, Unit: "ml"},
					{Name: "fish maw", Amount: 30, Unit: "g"},
					{Name: "red beans", Amount: 20, Unit: "g"},
					{Name: "red-skin peanuts", Amount: 20, Unit: "g"},
				},
			},
			{
				Name:            "Add the red dates",
				DurationSeconds: 3300,
				Ingredients: []domain.Ingredient{
					{Name: "red dates", Amount: 15, Unit: "g"},
				},
			},
			{
				Name:            "Sweeten and finish",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "brown sugar", Amount: 0.5, Unit: "lump"},
					{Name: "goji berries", Amount: 10, Unit: "g"},
				},
			},
		},
	}
}

func fiveBlacks() domain.ProgramSpec {
	return domain.ProgramSpec{
		Name: "Black Sesame Walnut Soup",
		Phases: []domain.PhaseSpec{
			{
				Name:            "Simmer the base (advance early if ready)",
				DurationSeconds: 9900,
				Ingredients: []domain.Ingredient{
					{Name: "water", Amount: 800, Unit: "ml"},
					{Name: "fish maw", Amount: 30, Unit: "g"},
					{Name: "black beans", Amount: 20, Unit: "g"},
					{Name: "black rice", Amount: 20, Unit: "g"},
				},
			},
			{
				Name:            "Add toasted sesame, walnuts and sugar",
				DurationSeconds: 900,
				Ingredients: []domain.Ingredient{
					{Name: "black sesame", Amount: 20, Unit: "g"},
					{Name: "walnuts", Amount: 16, Unit: "g"},
					{Name: "rock sugar", Amount: 10, Unit: "g"},
				},
			},
			{
				Name:            "Cool to 60C, then blend in the berries",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "mulberries", Amount: 10, Unit: "g"},
					{Name: "black goji berries", Amount: 5, Unit: "g"},
				},
			},
		},
	}
}

func blackcurrantMulberry() domain.ProgramSpec {
	return domain.ProgramSpec{
		Name: "Blackcurrant Mulberry Soup",
		Phases: []domain.PhaseSpec{
			{
				Name:            "Simmer the base (advance early if ready)",
				DurationSeconds: 10800,
				Ingredients: []domain.Ingredient{
					{Name: "water", Amount: 800, Unit: "ml"},
					{Name: "fish maw", Amount: 30, Unit: "g"},
				},
			},
			{
				Name:            "Cool down, then blend in the fruit",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "rock sugar", Amount: 10, Unit: "g"},
					{Name: "blackcurrants", Amount: 15, Unit: "g"},
					{Name: "mulberries", Amount: 10, Unit: "g"},
					{Name: "black goji berries", Amount: 6, Unit: "g"},
					{Name: "roselle", Amount: 6, Unit: "g"},
					{Name: "cranberries", Amount: 10, Unit: "g"},
					{Name: "blueberries", Amount: 8, Unit: "g"},
				},
			},
		},
	}
}

func snowPearPlum() domain.ProgramSpec {
	return domain.ProgramSpec{
		Name: "Snow Pear Plum Soup",
		Phases: []domain.PhaseSpec{
			{
				Name:            "Simmer the base (advance early if ready)",
				DurationSeconds: 7200,
				Ingredients: []domain.Ingredient{
					{Name: "water", Amount: 800, Unit: "ml"},
					{Name: "fish maw", Amount: 30, Unit: "g"},
				},
			},
			{
				Name:            "Add pear, snow fungus, dates and lily bulb",
				DurationSeconds: 3000,
				Ingredients: []domain.Ingredient{
					{Name: "snow pear", Amount: 10, Unit: "g"},
					{Name: "snow fungus", Amount: 3, Unit: "g"},
					{Name: "red dates", Amount: 5, Unit: "g"},
					{Name: "lily bulb", Amount: 5, Unit: "g"},
				},
			},
			{
				Name:            "Add tangerine peel and preserved plum",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "tangerine peel", Amount: 10, Unit: "g"},
					{Name: "preserved plum", Amount: 10, Unit: "g"},
				},
			},
			{
				Name:            "Sweeten",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "rock sugar", Amount: 10, Unit: "g"},
					{Name: "goji berries", Amount: 5, Unit: "g"},
				},
			},
			{
				Name:            "Fish out the tangerine peel and pear",
				DurationSeconds: 300,
			},
		},
	}
}

func roseLongan() domain.ProgramSpec {
	return domain.ProgramSpec{
		Name: "Rose Mulberry Longan Soup",
		Phases: []domain.PhaseSpec{
			{
				Name:            "Simmer the base (advance early if ready)",
				DurationSeconds: 7200,
				Ingredients: []domain.Ingredient{
					{Name: "water", Amount: 800, Unit: "ml"},
					{Name: "fish maw", Amount: 30, Unit: "g"},
				},
			},
			{
				Name:            "Add longan and red dates",
				DurationSeconds: 3300,
				Ingredients: []domain.Ingredient{
					{Name: "longan", Amount: 15, Unit: "g"},
					{Name: "red dates", Amount: 10, Unit: "g"},
				},
			},
			{
				Name:            "Add the goji berries",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "goji berries", Amount: 10, Unit: "g"},
				},
			},
			{
				Name:            "Steep at 80C (rose petals only, no cores)",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "rose petals", Amount: 5, Unit: "g"},
					{Name: "mulberries", Amount: 15, Unit: "g"},
				},
			},
		},
	}
}

func osmanthusPear() domain.ProgramSpec {
	return domain.ProgramSpec{
		Name: "Osmanthus Pear Soup",
		Phases: []domain.PhaseSpec{
			{
				Name:            "Simmer the base (advance early if ready)",
				DurationSeconds: 7200,
				Ingredients: []domain.Ingredient{
					{Name: "water", Amount: 800, Unit: "ml"},
					{Name: "fish maw", Amount: 30, Unit: "g"},
				},
			},
			{
				Name:            "Add pear, snow fungus and red dates",
				DurationSeconds: 3300,
				Ingredients: []domain.Ingredient{
					{Name: "snow pear", Amount: 16, Unit: "g"},
					{Name: "snow fungus", Amount: 5, Unit: "g"},
					{Name: "red dates", Amount: 5, Unit: "g"},
				},
			},
			{
				Name:            "Add sugar, goji and osmanthus",
				DurationSeconds: 300,
				Ingredients: []domain.Ingredient{
					{Name: "rock sugar", Amount: 10, Unit: "g"},
					{Name: "goji berries", Amount: 5, Unit: "g"},
					{Name: "osmanthus", Amount: 3, Unit: "g"},
				},
			},
			{
				Name:            "Fish out the pear",
				DurationSeconds: 300,
			},
		},
	}
}
