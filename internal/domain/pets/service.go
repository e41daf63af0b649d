package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"virtual-pet/internal/domain/needs"
	"virtual-pet/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("pet not found")
	ErrForbidden     = errors.New("forbidden")
	ErrUnknownAction = errors.New("unknown action")
)

// Tipos de cuidado que el servicio manda al CareRecorder.
const (
	CareCreated  = "CREATED"
	CareRepaired = "REPAIRED"
	CareReset    = "RESET"
)

type Service struct {
	repo Repository
	care CareRecorder
	log  logger.Logger
	cfg  Config
	now  func() time.Time
}

// NewService arma el servicio. care y log pueden ser nil.
func NewService(repo Repository, care CareRecorder, log logger.Logger, cfg Config) *Service {
	if log == nil {
		log = logger.Discard()
	}
	cfg.Rates = cfg.Rates.Sanitize()
	if cfg.AffectionDailyCap < 0 {
		cfg.AffectionDailyCap = 0
	}
	return &Service{
		repo: repo,
		care: care,
		log:  log.With(map[string]any{"component": "pets"}),
		cfg:  cfg,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name  string
	Type  string
	Image string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (needs.Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return needs.Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return needs.Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := needs.NewDefaultPet(uuid.NewString(), now)
	p.Name = strings.TrimSpace(in.Name)
	if v := strings.TrimSpace(in.Type); v != "" {
		p.Type = v
	}
	if v := strings.TrimSpace(in.Image); v != "" {
		p.Image = v
	}

	if err := s.put(ctx, ownerUserID, p, now); err != nil {
		return needs.Pet{}, err
	}
	s.record(ctx, p.ID, ownerUserID, CareCreated, "", p.Spirit, p.Spirit)
	return p, nil
}

// Get devuelve la mascota con el decay pendiente aplicado. El decay no se
// persiste: el registro guardado conserva su baseline y cada lectura calcula
// desde ahí en un solo paso. Solo se escribe si hubo que reparar campos.
func (s *Service) Get(ctx context.Context, petID, userID string) (needs.Pet, error) {
	rec, p, repaired, err := s.load(ctx, petID, userID)
	if err != nil {
		return needs.Pet{}, err
	}

	now := s.now()
	if repaired {
		if err := s.put(ctx, rec.OwnerUserID, p, now); err != nil {
			return needs.Pet{}, err
		}
	}
	return s.decayed(p, now), nil
}

// ListByOwner devuelve vistas reparadas y con decay, sin persistir.
func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]needs.Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}

	recs, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	now := s.now()
	out := make([]needs.Pet, 0, len(recs))
	for _, rec := range recs {
		p := needs.Validate(rec.Data, now)
		p.ID = rec.PetID
		out = append(out, s.decayed(p, now))
	}
	return out, nil
}

// Act aplica una acción de gameplay sobre el estado ya puesto al día.
func (s *Service) Act(ctx context.Context, petID, userID string, action Action) (needs.Pet, error) {
	if _, ok := actionEffects[action]; !ok {
		return needs.Pet{}, ErrUnknownAction
	}

	rec, p, _, err := s.load(ctx, petID, userID)
	if err != nil {
		return needs.Pet{}, err
	}

	now := s.now()
	p = s.decayed(p, now)
	before := p.Spirit

	p, gained := applyAction(p, action, needs.DateKey(now), s.cfg.AffectionDailyCap)

	if err := s.put(ctx, rec.OwnerUserID, p, now); err != nil {
		return needs.Pet{}, err
	}

	notes := ""
	if action == ActionPet {
		notes = fmt.Sprintf("affection +%d (today %d/%d)", gained, p.AffectionGainedToday, s.cfg.AffectionDailyCap)
	}
	s.record(ctx, p.ID, userID, strings.ToUpper(string(action)), notes, before, p.Spirit)
	return p, nil
}

// Reset vuelve las necesidades a los defaults; la identidad se conserva.
func (s *Service) Reset(ctx context.Context, petID, userID string) (needs.Pet, error) {
	rec, p, _, err := s.load(ctx, petID, userID)
	if err != nil {
		return needs.Pet{}, err
	}

	now := s.now()
	fresh := needs.NewDefaultPet(p.ID, now)
	fresh.Name = p.Name
	fresh.Type = p.Type
	fresh.Image = p.Image

	if err := s.put(ctx, rec.OwnerUserID, fresh, now); err != nil {
		return needs.Pet{}, err
	}
	s.record(ctx, p.ID, userID, CareReset, "", p.Spirit, fresh.Spirit)
	return fresh, nil
}

// load trae el registro, verifica que userID sea el dueño y lo pasa por Repair.
func (s *Service) load(ctx context.Context, petID, userID string) (StoredRecord, needs.Pet, bool, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" || strings.TrimSpace(userID) == "" {
		return StoredRecord{}, needs.Pet{}, false, ErrInvalidInput
	}

	rec, err := s.repo.Get(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return StoredRecord{}, needs.Pet{}, false, ErrNotFound
		}
		return StoredRecord{}, needs.Pet{}, false, fmt.Errorf("get pet: %w", err)
	}
	if rec.OwnerUserID != userID {
		return StoredRecord{}, needs.Pet{}, false, ErrForbidden
	}

	now := s.now()
	p, fields := needs.Repair(rec.Data, now)
	p.ID = rec.PetID

	if len(fields) > 0 {
		s.log.Warn("pet record repaired", map[string]any{
			"pet_id": p.ID,
			"fields": strings.Join(fields, ","),
		})
		s.record(ctx, p.ID, userID, CareRepaired, strings.Join(fields, ","), p.Spirit, p.Spirit)
	}
	return rec, p, len(fields) > 0, nil
}

// decayed aplica el decay acumulado desde el timestamp guardado.
func (s *Service) decayed(p needs.Pet, now time.Time) needs.Pet {
	next := p.Decay(now.UnixMilli(), s.cfg.Rates)

	s.log.Debug("needs catch-up", map[string]any{
		"pet_id": p.ID,
		"hours":  needs.HoursElapsed(p.LastNeedsUpdateTime, now.UnixMilli()),
		"spirit": next.Spirit,
	})
	return next
}

func (s *Service) put(ctx context.Context, ownerUserID string, p needs.Pet, now time.Time) error {
	err := s.repo.Put(ctx, StoredRecord{
		PetID:       p.ID,
		OwnerUserID: ownerUserID,
		Data:        p.Record(),
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("put pet: %w", err)
	}
	return nil
}

// record es best-effort: un fallo del historial no rompe la acción.
func (s *Service) record(ctx context.Context, petID, actorID, kind, notes string, before, after int) {
	if s.care == nil {
		return
	}
	err := s.care.RecordCare(ctx, Care{
		PetID:        petID,
		ActorID:      actorID,
		Kind:         kind,
		Notes:        notes,
		SpiritBefore: before,
		SpiritAfter:  after,
	})
	if err != nil {
		s.log.Error("record care event failed", map[string]any{
			"pet_id": petID,
			"kind":   kind,
			"error":  err.Error(),
		})
	}
}
