package needs

import "math"

const msPerHour = 3_600_000

// DecayRates son puntos perdidos cada 24 horas, por necesidad.
type DecayRates struct {
	Hunger      float64
	Happiness   float64
	Cleanliness float64
	Affection   float64
}

// DefaultDecayRates son los rates usados si no hay configuración.
func DefaultDecayRates() DecayRates {
	return DecayRates{
		Hunger:      48,
		Happiness:   36,
		Cleanliness: 30,
		Affection:   24,
	}
}

// Sanitize reemplaza rates negativos o NaN por 0.
func (r DecayRates) Sanitize() DecayRates {
	return DecayRates{
		Hunger:      nonNegative(r.Hunger),
		Happiness:   nonNegative(r.Happiness),
		Cleanliness: nonNegative(r.Cleanliness),
		Affection:   nonNegative(r.Affection),
	}
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// DecayResult es la salida de ApplyDecay.
type DecayResult struct {
	Needs               Needs
	Spirit              int
	LastNeedsUpdateTime int64
}

// HoursElapsed devuelve las horas entre last y now (ms), nunca negativas.
// La resta va en float64 para que timestamps muy lejanos no desborden.
func HoursElapsed(last, now int64) float64 {
	h := (float64(now) - float64(last)) / msPerHour
	if h < 0 {
		return 0
	}
	return h
}

// ApplyDecay aplica el decay lineal acumulado entre last y now en un solo paso.
// Si el reloj parece ir hacia atrás no hay decay, y el timestamp resultante
// nunca es menor que last.
func ApplyDecay(n Needs, last, now int64, rates DecayRates) DecayResult {
	ts := now
	if ts < last {
		ts = last
	}

	hours := HoursElapsed(last, now)
	if hours == 0 {
		n = n.Apply(Delta{})
		return DecayResult{Needs: n, Spirit: n.Spirit(), LastNeedsUpdateTime: ts}
	}

	rates = rates.Sanitize()
	out := n.Apply(Delta{
		Hunger:      -rates.Hunger / 24 * hours,
		Happiness:   -rates.Happiness / 24 * hours,
		Cleanliness: -rates.Cleanliness / 24 * hours,
		Affection:   -rates.Affection / 24 * hours,
	})

	return DecayResult{Needs: out, Spirit: out.Spirit(), LastNeedsUpdateTime: ts}
}

// Decay aplica ApplyDecay sobre el registro completo.
func (p Pet) Decay(now int64, rates DecayRates) Pet {
	res := ApplyDecay(p.Needs(), p.LastNeedsUpdateTime, now, rates)
	p = p.WithNeeds(res.Needs)
	p.LastNeedsUpdateTime = res.LastNeedsUpdateTime
	return p
}
