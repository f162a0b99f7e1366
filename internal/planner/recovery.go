package planner

// SleepHours recommends nightly sleep from age and the day's workout
// burn. The burn thresholds are mutually exclusive; the highest one met
// wins.
func SleepHours(age int, burned float64) float64 {
	var hours float64
	switch {
	case age < 26:
		hours = 8.0
	case age < 65:
		hours = 7.5
	default:
		hours = 7.0
	}
	switch {
	case burned >= 500:
		hours += 0.5
	case burned >= 300:
		hours += 0.25
	}
	return round2(hours)
}

// WaterLitres recommends daily water intake from age, weight, and the
// day's workout burn.
func WaterLitres(age int, weightKg, burned float64) float64 {
	var mlPerKg float64
	switch {
	case age < 26:
		mlPerKg = 40
	case age < 65:
		mlPerKg = 35
	default:
		mlPerKg = 30
	}
	litres := mlPerKg * weightKg / 1000
	switch {
	case burned >= 500:
		litres += 0.75
	case burned >= 300:
		litres += 0.5
	}
	return round2(litres)
}
