package router

import (
	"database/sql"
	"net/http"

	_ "virtual-pet/docs"
	mem "virtual-pet/internal/adapters/storage/memory"
	pg "virtual-pet/internal/adapters/storage/postgres"
	"virtual-pet/internal/domain/events"
	"virtual-pet/internal/domain/pets"
	"virtual-pet/internal/middleware"
	"virtual-pet/internal/platform/logger"
	"virtual-pet/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres (ya migrado). Si no, in-memory.
	DB *sql.DB

	// Opcionales: nil => logger mudo, cero => pets.DefaultConfig().
	Logger logger.Logger
	Pets   *pets.Config
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo   pets.Repository
		eventRepo events.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		eventRepo = mem.NewEventRepo()
	}

	cfg := pets.DefaultConfig()
	if opts.Pets != nil {
		cfg = *opts.Pets
	}

	eventsSvc := events.NewService(eventRepo)
	petsSvc := pets.NewService(petRepo, eventsSvc, log, cfg)

	pets.RegisterRoutes(r, petsSvc)
	events.RegisterRoutes(r, eventsSvc, petsSvc)

	return r
}
