// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// MoveToward сдвигает значение к цели не более чем на step за вызов.
// Используется вьюером для твининга скалярных параметров к целевым
// значениям резолвера.
func MoveToward(current, target, step float64) float64 {
	if step < 0 {
		step = -step
	}
	diff := target - current
	if diff > step {
		return current + step
	}
	if diff < -step {
		return current - step
	}
	return target
}

// Clamp ограничивает значение диапазоном [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
