package planner

import (
	"sort"
	"strings"
)

// DefaultGI is assumed for dishes the table does not list.
const DefaultGI = 55

// HighGIThreshold marks a dish as worth a substitution warning.
const HighGIThreshold = 55

// glycemicIndex maps dish and ingredient names to a glycemic index
// value. Read-only, process-wide.
var glycemicIndex = map[string]int{
	"white rice":        73,
	"brown rice":        68,
	"white bread":       75,
	"whole wheat bread": 74,
	"bagel":             72,
	"cornflakes":        81,
	"oatmeal":           55,
	"muesli":            57,
	"pasta":             49,
	"quinoa":            53,
	"couscous":          65,
	"potato":            78,
	"sweet potato":      63,
	"french fries":      75,
	"pancake":           67,
	"waffle":            76,
	"banana":            51,
	"apple":             36,
	"orange":            43,
	"mango":             51,
	"watermelon":        76,
	"pineapple":         59,
	"honey":             61,
	"ice cream":         51,
	"doughnut":          76,
	"pizza":             60,
	"lentils":           32,
	"chickpeas":         28,
	"hummus":            6,
	"kidney beans":      24,
	"milk":              39,
	"yogurt":            41,
	"chocolate":         40,
	"popcorn":           65,
	"crackers":          87,
	"rice cakes":        82,
	"granola bar":       61,
	"smoothie":          44,
}

// giKeys holds the table keys sorted longest-first so a dish name that
// matches several entries ("sweet potato fries" matches both "sweet
// potato" and "potato") resolves to the most specific one, and so lookup
// order is deterministic.
var giKeys = func() []string {
	keys := make([]string, 0, len(glycemicIndex))
	for k := range glycemicIndex {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// GlycemicIndexOf returns the GI for a dish name, matching table entries
// as case-insensitive substrings, or DefaultGI when nothing matches.
func GlycemicIndexOf(name string) int {
	lower := strings.ToLower(name)
	if gi, ok := glycemicIndex[lower]; ok {
		return gi
	}
	for _, key := range giKeys {
		if strings.Contains(lower, key) {
			return glycemicIndex[key]
		}
	}
	return DefaultGI
}
