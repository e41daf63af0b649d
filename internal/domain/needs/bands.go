package needs

import (
	"encoding/json"
	"math"
)

// UnknownLabel se devuelve cuando el valor no se puede clasificar.
const UnknownLabel = "Unknown"

// Band es un rango etiquetado: aplica a valores <= Max.
type Band struct {
	Max   float64
	Label string
}

// Las tablas cubren valores negativos a propósito: Describe es total
// incluso con valores previos a Clamp.
var bandTables = map[Need][]Band{
	Hunger: {
		{-100, "Wasting away"},
		{-60, "Famished"},
		{-30, "Starving"},
		{-1, "Ravenous"},
		{10, "Very hungry"},
		{25, "Hungry"},
		{40, "Peckish"},
		{55, "Could eat"},
		{70, "Satisfied"},
		{85, "Well fed"},
		{100, "Full"},
		{120, "Stuffed"},
	},
	Happiness: {
		{-100, "Inconsolable"},
		{-60, "Miserable"},
		{-30, "Depressed"},
		{-1, "Gloomy"},
		{10, "Sad"},
		{25, "Unhappy"},
		{40, "Meh"},
		{55, "Okay"},
		{70, "Cheerful"},
		{85, "Happy"},
		{100, "Joyful"},
		{120, "Ecstatic"},
	},
	Cleanliness: {
		{-100, "Biohazard"},
		{-60, "Revolting"},
		{-30, "Filthy"},
		{-1, "Grimy"},
		{10, "Very dirty"},
		{25, "Dirty"},
		{40, "Scruffy"},
		{55, "Passable"},
		{70, "Clean"},
		{85, "Fresh"},
		{100, "Spotless"},
		{120, "Sparkling"},
	},
	Affection: {
		{-100, "Hostile"},
		{-60, "Estranged"},
		{-30, "Distant"},
		{-1, "Aloof"},
		{10, "Lonely"},
		{25, "Wary"},
		{40, "Neutral"},
		{55, "Friendly"},
		{70, "Fond"},
		{85, "Affectionate"},
		{100, "Devoted"},
		{120, "Adoring"},
	},
}

// Bands devuelve una copia de la tabla de una necesidad (nil si no existe).
func Bands(need Need) []Band {
	t, ok := bandTables[need]
	if !ok {
		return nil
	}
	out := make([]Band, len(t))
	copy(out, t)
	return out
}

// Describe devuelve la etiqueta de la primera banda cuyo Max >= v.
// Nombre desconocido, NaN o un valor por encima de todas las bandas => UnknownLabel.
func Describe(need Need, v float64) string {
	if math.IsNaN(v) {
		return UnknownLabel
	}
	for _, b := range bandTables[need] {
		if v <= b.Max {
			return b.Label
		}
	}
	return UnknownLabel
}

// DescribeValue acepta cualquier valor (p.ej. un campo leído del store).
// Si no es numérico devuelve UnknownLabel.
func DescribeValue(need Need, v any) string {
	f, ok := toNumber(v)
	if !ok {
		return UnknownLabel
	}
	return Describe(need, f)
}

// Labels describe las cuatro necesidades de un registro.
func (p Pet) Labels() map[Need]string {
	n := p.Needs()
	out := make(map[Need]string, 4)
	for _, need := range All() {
		out[need] = Describe(need, float64(n.Get(need)))
	}
	return out
}

// toNumber acepta los tipos numéricos que puede producir un decoder JSON
// o un mapa construido a mano. Strings y bools no son números.
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
