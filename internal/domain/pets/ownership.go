package pets

import (
	"context"
	"errors"
	"fmt"
)

// OwnerOf expone el ownerUserID de una mascota.
// Se usa desde events para no importar el store directamente.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	rec, err := s.repo.Get(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("owner of pet: %w", err)
	}
	return rec.OwnerUserID, nil
}
