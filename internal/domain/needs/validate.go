package needs

import (
	"math"
	"strings"
	"time"
)

// Campos que Repair puede reportar como reparados.
const (
	FieldHunger                = "hunger"
	FieldHappiness             = "happiness"
	FieldCleanliness           = "cleanliness"
	FieldAffection             = "affection"
	FieldLastNeedsUpdateTime   = "lastNeedsUpdateTime"
	FieldAffectionGainedToday  = "affectionGainedToday"
	FieldLastAffectionGainDate = "lastAffectionGainDate"
)

// Validate reconstruye un Pet válido a partir de cualquier candidato.
// Es la frontera de entrada: ningún registro externo se usa sin pasar por aquí.
func Validate(candidate any, now time.Time) Pet {
	p, _ := Repair(candidate, now)
	return p
}

// Repair es como Validate pero además devuelve los campos que tuvo que
// reemplazar o corregir. Un candidato que no es un mapa se trata como vacío.
// spirit nunca se reporta: el valor guardado se ignora y se recalcula
// siempre a partir de las cuatro necesidades.
func Repair(candidate any, now time.Time) (Pet, []string) {
	raw, _ := candidate.(map[string]any)
	def := NewDefaultPet("", now)
	var repaired []string

	num := func(field string, fallback int) int {
		f, ok := finite(raw[field])
		if !ok {
			repaired = append(repaired, field)
			return fallback
		}
		v := Clamp(f)
		if float64(v) != f {
			repaired = append(repaired, field)
		}
		return v
	}

	n := Needs{
		Hunger:      num(FieldHunger, def.Hunger),
		Happiness:   num(FieldHappiness, def.Happiness),
		Cleanliness: num(FieldCleanliness, def.Cleanliness),
		Affection:   num(FieldAffection, def.Affection),
	}

	p := Pet{
		ID:    str(raw, "id", def.ID),
		Name:  str(raw, "name", def.Name),
		Type:  str(raw, "type", def.Type),
		Image: str(raw, "image", def.Image),
	}
	p = p.WithNeeds(n)

	if ts, ok := finite(raw[FieldLastNeedsUpdateTime]); ok && ts > 0 && ts < math.MaxInt64 {
		p.LastNeedsUpdateTime = int64(ts)
	} else {
		p.LastNeedsUpdateTime = now.UnixMilli()
		repaired = append(repaired, FieldLastNeedsUpdateTime)
	}

	if g, ok := finite(raw[FieldAffectionGainedToday]); ok {
		p.AffectionGainedToday = int(math.Max(0, math.Min(math.Round(g), math.MaxInt32)))
	} else {
		p.AffectionGainedToday = 0
		repaired = append(repaired, FieldAffectionGainedToday)
	}

	if d, ok := raw[FieldLastAffectionGainDate].(string); ok && strings.TrimSpace(d) != "" {
		p.LastAffectionGainDate = strings.TrimSpace(d)
	} else {
		p.LastAffectionGainDate = DateKey(now)
		repaired = append(repaired, FieldLastAffectionGainDate)
	}

	return p, repaired
}

func finite(v any) (float64, bool) {
	f, ok := toNumber(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func str(raw map[string]any, key, fallback string) string {
	if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}
