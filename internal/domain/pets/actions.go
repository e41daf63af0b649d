package pets

import (
	"strings"

	"virtual-pet/internal/domain/needs"
)

type Action string

const (
	ActionFeed  Action = "feed"
	ActionGroom Action = "groom"
	ActionPlay  Action = "play"
	ActionPet   Action = "pet"
)

// petAffectionGain es lo que gana "pet" antes de aplicar el tope diario.
const petAffectionGain = 10

var actionEffects = map[Action]needs.Delta{
	ActionFeed:  {Hunger: 30},
	ActionGroom: {Cleanliness: 35},
	ActionPlay:  {Happiness: 25, Hunger: -5, Cleanliness: -5},
	ActionPet:   {Affection: petAffectionGain},
}

func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := actionEffects[a]; !ok {
		return "", ErrUnknownAction
	}
	return a, nil
}

// applyAction aplica el efecto de la acción. El afecto está acotado por
// dailyCap; el contador se reinicia cuando cambia la clave del día.
// Devuelve el afecto efectivamente ganado.
func applyAction(p needs.Pet, a Action, today string, dailyCap int) (needs.Pet, int) {
	d := actionEffects[a]

	if d.Affection > 0 {
		if p.LastAffectionGainDate != today {
			p.AffectionGainedToday = 0
			p.LastAffectionGainDate = today
		}
		left := dailyCap - p.AffectionGainedToday
		if left < 0 {
			left = 0
		}
		if d.Affection > float64(left) {
			d.Affection = float64(left)
		}
	}

	before := p.Affection
	p = p.Adjust(d)

	gained := p.Affection - before
	if gained > 0 {
		p.AffectionGainedToday += gained
	}
	return p, gained
}
