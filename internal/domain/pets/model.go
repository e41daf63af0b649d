package pets

import (
	"time"

	"virtual-pet/internal/domain/needs"
)

// StoredRecord es lo que guarda el store compartido: la key (PetID),
// el dueño y el registro sin tipar. Data no es confiable hasta pasar
// por needs.Repair.
type StoredRecord struct {
	PetID       string
	OwnerUserID string
	Data        map[string]any
	UpdatedAt   time.Time
}

// Config son los knobs de gameplay del servicio.
type Config struct {
	Rates needs.DecayRates

	// AffectionDailyCap es el máximo de afecto que se puede ganar por día.
	AffectionDailyCap int
}

func DefaultConfig() Config {
	return Config{
		Rates:             needs.DefaultDecayRates(),
		AffectionDailyCap: 50,
	}
}
