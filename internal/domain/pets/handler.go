package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"virtual-pet/internal/domain/needs"
	"virtual-pet/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		// Lectura con catch-up del decay
		pr.Get("/{petID}", getPetHandler(svc))

		pr.Post("/{petID}/actions/{action}", actPetHandler(svc))
		pr.Post("/{petID}/reset", resetPetHandler(svc))
	})
}

// createPetRequest es el cuerpo para adoptar una mascota nueva.
type createPetRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`  // opcional, default "cat"
	Image string `json:"image"` // opcional
}

// petResponse es el registro de la mascota más las etiquetas de cada necesidad.
type petResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Image string `json:"image"`

	Hunger      int `json:"hunger"`
	Happiness   int `json:"happiness"`
	Cleanliness int `json:"cleanliness"`
	Affection   int `json:"affection"`
	Spirit      int `json:"spirit"`

	LastNeedsUpdateTime   int64  `json:"last_needs_update_time"`
	AffectionGainedToday  int    `json:"affection_gained_today"`
	LastAffectionGainDate string `json:"last_affection_gain_date"`

	Labels map[string]string `json:"labels"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota con las necesidades por defecto. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), userID, CreateInput{
			Name:  req.Name,
			Type:  req.Type,
			Image: req.Image,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Ver mascota
// @Description Devuelve el estado de la mascota con el decay aplicado hasta ahora.
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		p, err := svc.Get(r.Context(), chi.URLParam(r, "petID"), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// actPetHandler godoc
// @Summary Acción de gameplay
// @Description Aplica feed, groom, play o pet. El afecto ganado con pet tiene tope diario.
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param action path string true "feed | groom | play | pet"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "unknown action"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/actions/{action} [post]
func actPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		action, err := ParseAction(chi.URLParam(r, "action"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		p, err := svc.Act(r.Context(), chi.URLParam(r, "petID"), userID, action)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// resetPetHandler godoc
// @Summary Reiniciar necesidades
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/reset [post]
func resetPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		p, err := svc.Reset(r.Context(), chi.URLParam(r, "petID"), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return claims.UserID, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p needs.Pet) petResponse {
	labels := make(map[string]string, 4)
	for need, label := range p.Labels() {
		labels[string(need)] = label
	}

	return petResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Type:                  p.Type,
		Image:                 p.Image,
		Hunger:                p.Hunger,
		Happiness:             p.Happiness,
		Cleanliness:           p.Cleanliness,
		Affection:             p.Affection,
		Spirit:                p.Spirit,
		LastNeedsUpdateTime:   p.LastNeedsUpdateTime,
		AffectionGainedToday:  p.AffectionGainedToday,
		LastAffectionGainDate: p.LastAffectionGainDate,
		Labels:                labels,
	}
}

// writeJSON está duplicado en handlers de distintos módulos (pets/events)
// hasta que haga falta un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
