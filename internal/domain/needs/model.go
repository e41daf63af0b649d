// Package needs contiene el motor de necesidades de la mascota:
// decay por tiempo, spirit derivado, etiquetas por banda y reparación
// de registros que llegan del store compartido.
//
// Todas las funciones son puras y totales: no hacen I/O, no guardan
// estado y nunca devuelven error.
package needs

import "time"

const (
	MinNeed = 0
	MaxNeed = 120

	// DefaultNeed es el valor inicial de cada necesidad primaria.
	DefaultNeed = 100

	DefaultName  = "Pet"
	DefaultType  = "cat"
	DefaultImage = "/images/pets/cat.png"

	// DateKeyLayout es el formato de la clave diaria de afecto.
	DateKeyLayout = "2006-01-02"
)

// Need identifica una de las cuatro necesidades primarias.
type Need string

const (
	Hunger      Need = "hunger"
	Happiness   Need = "happiness"
	Cleanliness Need = "cleanliness"
	Affection   Need = "affection"
)

// All devuelve las necesidades primarias en orden estable.
func All() []Need {
	return []Need{Hunger, Happiness, Cleanliness, Affection}
}

// Needs agrupa los cuatro valores primarios.
type Needs struct {
	Hunger      int
	Happiness   int
	Cleanliness int
	Affection   int
}

// Get devuelve el valor de una necesidad (0 si el nombre no existe).
func (n Needs) Get(need Need) int {
	switch need {
	case Hunger:
		return n.Hunger
	case Happiness:
		return n.Happiness
	case Cleanliness:
		return n.Cleanliness
	case Affection:
		return n.Affection
	default:
		return 0
	}
}

// Delta es un cambio (posiblemente fraccional) sobre las necesidades.
type Delta struct {
	Hunger      float64
	Happiness   float64
	Cleanliness float64
	Affection   float64
}

// Apply suma el delta pasando cada resultado por Clamp.
func (n Needs) Apply(d Delta) Needs {
	return Needs{
		Hunger:      Clamp(float64(n.Hunger) + d.Hunger),
		Happiness:   Clamp(float64(n.Happiness) + d.Happiness),
		Cleanliness: Clamp(float64(n.Cleanliness) + d.Cleanliness),
		Affection:   Clamp(float64(n.Affection) + d.Affection),
	}
}

// Spirit recalcula el agregado a partir de los cuatro valores.
func (n Needs) Spirit() int {
	return ComputeSpirit(n.Hunger, n.Happiness, n.Cleanliness, n.Affection)
}

// Pet es el registro compartido de la mascota.
// ID, Name, Type e Image son datos de identidad que el motor no toca.
type Pet struct {
	ID    string
	Name  string
	Type  string
	Image string

	Hunger      int
	Happiness   int
	Cleanliness int
	Affection   int

	// Spirit siempre se recalcula; nunca es autoritativo.
	Spirit int

	// LastNeedsUpdateTime en milisegundos desde epoch.
	LastNeedsUpdateTime int64

	AffectionGainedToday  int
	LastAffectionGainDate string
}

// NewDefaultPet crea el registro por defecto cuando no hay nada persistido.
func NewDefaultPet(id string, now time.Time) Pet {
	p := Pet{
		ID:                    id,
		Name:                  DefaultName,
		Type:                  DefaultType,
		Image:                 DefaultImage,
		Hunger:                DefaultNeed,
		Happiness:             DefaultNeed,
		Cleanliness:           DefaultNeed,
		Affection:             DefaultNeed,
		LastNeedsUpdateTime:   now.UnixMilli(),
		AffectionGainedToday:  0,
		LastAffectionGainDate: DateKey(now),
	}
	p.Spirit = p.Needs().Spirit()
	return p
}

// DateKey devuelve la clave diaria (YYYY-MM-DD) en la zona de t.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// Needs extrae los cuatro valores primarios.
func (p Pet) Needs() Needs {
	return Needs{
		Hunger:      p.Hunger,
		Happiness:   p.Happiness,
		Cleanliness: p.Cleanliness,
		Affection:   p.Affection,
	}
}

// WithNeeds reemplaza los valores primarios y recalcula spirit.
// Los valores entrantes también pasan por Clamp.
func (p Pet) WithNeeds(n Needs) Pet {
	p.Hunger = Clamp(float64(n.Hunger))
	p.Happiness = Clamp(float64(n.Happiness))
	p.Cleanliness = Clamp(float64(n.Cleanliness))
	p.Affection = Clamp(float64(n.Affection))
	p.Spirit = p.Needs().Spirit()
	return p
}

// Adjust aplica un delta de gameplay (comer, jugar, etc.) y recalcula spirit.
func (p Pet) Adjust(d Delta) Pet {
	return p.WithNeeds(p.Needs().Apply(d))
}

// Record convierte el registro al mapa sin tipar que viaja al store.
func (p Pet) Record() map[string]any {
	return map[string]any{
		"id":                    p.ID,
		"name":                  p.Name,
		"type":                  p.Type,
		"image":                 p.Image,
		"hunger":                p.Hunger,
		"happiness":             p.Happiness,
		"cleanliness":           p.Cleanliness,
		"affection":             p.Affection,
		"spirit":                p.Spirit,
		"lastNeedsUpdateTime":   p.LastNeedsUpdateTime,
		"affectionGainedToday":  p.AffectionGainedToday,
		"lastAffectionGainDate": p.LastAffectionGainDate,
	}
}
