package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"virtual-pet/internal/domain/pets"
	"virtual-pet/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/pets/{petID}/events", listEventsHandler(svc, petsSvc))
}

// eventResponse representa una entrada del historial de cuidados.
type eventResponse struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	Type         EventType `json:"type"`
	OccurredAt   time.Time `json:"occurred_at"`
	ActorID      string    `json:"actor_id"`
	Notes        string    `json:"notes"`
	SpiritBefore int       `json:"spirit_before"`
	SpiritAfter  int       `json:"spirit_after"`
}

// listEventsHandler godoc
// @Summary Listar historial de cuidados
// @Description Lista las acciones, reparaciones y resets de una mascota, más reciente primero. Solo el dueño.
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param limit query int false "Máximo de eventos a devolver (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos (ej: FEED,PET)"
// @Param from query string false "Fecha/hora mínima occurred_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima occurred_at (RFC3339)"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/events [get]
func listEventsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		owner, err := petsSvc.OwnerOf(r.Context(), petID)
		if err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if owner != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// parseListFilter lee limit, types (FEED,PET), from y to (RFC3339).
// Un limit fuera de rango cae al default.
func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	filter := ListFilter{Limit: DefaultListLimit}

	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 && n <= MaxListLimit {
		filter.Limit = n
	}

	for _, raw := range strings.Split(q.Get("types"), ",") {
		t := EventType(strings.ToUpper(strings.TrimSpace(raw)))
		if t == "" {
			continue
		}
		if _, ok := knownTypes[t]; !ok {
			return ListFilter{}, errors.New("unknown event type: " + string(t))
		}
		filter.Types = append(filter.Types, t)
	}

	var err error
	if filter.From, err = timeParam(q.Get("from"), "from"); err != nil {
		return ListFilter{}, err
	}
	if filter.To, err = timeParam(q.Get("to"), "to"); err != nil {
		return ListFilter{}, err
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return ListFilter{}, errors.New("from must not be after to")
	}
	return filter, nil
}

func timeParam(v, name string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errors.New(name + " must be RFC3339")
	}
	return &t, nil
}

func toEventResponse(e CareEvent) eventResponse {
	return eventResponse{
		ID:           e.ID,
		PetID:        e.PetID,
		Type:         e.Type,
		OccurredAt:   e.OccurredAt,
		ActorID:      e.ActorID,
		Notes:        e.Notes,
		SpiritBefore: e.SpiritBefore,
		SpiritAfter:  e.SpiritAfter,
	}
}

// writeJSON está duplicado en handlers de distintos módulos (pets/events)
// hasta que haga falta un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
