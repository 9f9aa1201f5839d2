package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawhaven/petadoption-backend/api/controllers"
	"github.com/pawhaven/petadoption-backend/api/middleware"
	adoptionsvc "github.com/pawhaven/petadoption-backend/internal/adoptions"
	pendingpetsvc "github.com/pawhaven/petadoption-backend/internal/pendingpets"
	petsvc "github.com/pawhaven/petadoption-backend/internal/pets"
	"github.com/pawhaven/petadoption-backend/pkg/config"
	"github.com/pawhaven/petadoption-backend/pkg/db"
	"github.com/pawhaven/petadoption-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	registry *prometheus.Registry,
	petService petsvc.Service,
	pendingPetService pendingpetsvc.Service,
	adoptionService adoptionsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/pets", func(r chi.Router) {
		r.Get("/", controllers.ListPets(petService, logg))
		r.Get("/{id}", controllers.GetPet(petService, logg))
	})

	r.Post("/adoptions/{id}", controllers.SubmitAdoption(adoptionService, logg))

	r.Route("/api", func(r chi.Router) {
		r.Post("/pets/submit", controllers.SubmitPendingPet(pendingPetService, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Route("/pets", func(r chi.Router) {
				r.Get("/pending", controllers.AdminListPendingPets(pendingPetService, logg))
				r.Post("/approve/{id}", controllers.AdminApprovePet(pendingPetService, logg))
				r.Post("/reject/{id}", controllers.AdminRejectPet(pendingPetService, logg))
				r.Delete("/delete/{id}", controllers.AdminDeletePendingPet(pendingPetService, logg))
			})

			r.Route("/adoptions", func(r chi.Router) {
				r.Get("/pending", controllers.AdminListPendingAdoptions(adoptionService, logg))
				r.Get("/approved", controllers.AdminListApprovedAdoptions(adoptionService, logg))
				r.Get("/all", controllers.AdminListAllAdoptions(adoptionService, logg))
				r.Get("/stats", controllers.AdminAdoptionStats(adoptionService, logg))
				r.Put("/{id}/approve", controllers.AdminApproveAdoption(adoptionService, logg))
				r.Put("/{id}/reject", controllers.AdminRejectAdoption(adoptionService, logg))
				r.Delete("/{id}", controllers.AdminDeleteAdoption(adoptionService, logg))
			})
		})
	})

	r.Handle("/images/pending/*", http.StripPrefix("/images/pending/", http.FileServer(http.Dir(cfg.Images.PendingDir))))
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.Images.ApprovedDir))))

	return r
}
