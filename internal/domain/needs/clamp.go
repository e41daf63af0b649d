package needs

import "math"

// Clamp redondea al entero más cercano (0.5 hacia arriba) y acota a [MinNeed, MaxNeed].
// Es el único camino autorizado para escribir un valor de necesidad.
// NaN se trata como MinNeed.
func Clamp(v float64) int {
	if math.IsNaN(v) {
		return MinNeed
	}
	r := math.Floor(v + 0.5)
	if r < MinNeed {
		return MinNeed
	}
	if r > MaxNeed {
		return MaxNeed
	}
	return int(r)
}
