package config

import "sort"

// PatternRandom fills cells at random with bricks.fill_chance.
const PatternRandom = "random"

// Built-in brick patterns selectable with bricks.pattern.
// Characters:
//
//	'#' = brick at max health
//	'.' = empty
//	'1'-'9' = brick with that starting health (capped at max)
var brickPatterns = map[string][]string{
	"classic": {
		"####################",
		"####################",
		"####################",
		"####################",
	},
	"pyramid": {
		"......########......",
		"....############....",
		"..################..",
		"####################",
	},
	"checker": {
		"#.#.#.#.#.#.#.#.#.#.",
		".#.#.#.#.#.#.#.#.#.#",
		"#.#.#.#.#.#.#.#.#.#.",
		".#.#.#.#.#.#.#.#.#.#",
	},
	"striped": {
		"####################",
		"....................",
		"####################",
		"11111111111111111111",
	},
	"fortress": {
		"#..................#",
		"#.2222222222222222.#",
		"#.1111111111111111.#",
		"####################",
	},
}

// BrickPattern returns the rows of a built-in pattern.
func BrickPattern(name string) ([]string, bool) {
	rows, ok := brickPatterns[name]
	return rows, ok
}

// BrickPatternNames returns the built-in pattern names in sorted order.
// PatternRandom is not included.
func BrickPatternNames() []string {
	names := make([]string, 0, len(brickPatterns))
	for name := range brickPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validPattern reports whether name selects random fill or a built-in pattern.
func validPattern(name string) bool {
	if name == "" || name == PatternRandom {
		return true
	}
	_, ok := brickPatterns[name]
	return ok
}
