// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach сдвигает current к target не больше чем на step
func Approach(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}

// Sign возвращает -1, 0 или 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// DecayFactor пересчитывает покадровый коэффициент затухания (заданный для 60 FPS)
// на произвольный шаг времени.
func DecayFactor(perFrame, deltaTime float64) float64 {
	return math.Pow(perFrame, deltaTime*60)
}
