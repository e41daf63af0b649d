package needs

// ComputeSpirit es la media redondeada y acotada de las cuatro necesidades.
// Cualquier spirit guardado previamente se descarta.
func ComputeSpirit(hunger, happiness, cleanliness, affection int) int {
	sum := float64(hunger) + float64(happiness) + float64(cleanliness) + float64(affection)
	return Clamp(sum / 4)
}
