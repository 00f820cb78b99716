package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	projectsvc "github.com/msdharani1/portfolio-api/internal/projects/service"
	settingssvc "github.com/msdharani1/portfolio-api/internal/settings/service"
)

// Scheduler runs the nightly maintenance jobs: re-warm the project snapshot
// cache and probe the configured CV link. Jobs never mutate content, only
// caches.
type Scheduler struct {
	projects *projectsvc.ProjectService
	cv       *settingssvc.CVService
}

func NewScheduler(projects *projectsvc.ProjectService, cv *settingssvc.CVService) *Scheduler {
	return &Scheduler{projects: projects, cv: cv}
}

// Start initializes cron tasks (nightly at 12:00AM).
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.runNightlyJobs()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (running nightly at 12:00AM)")
	c.Start()
}

func (s *Scheduler) runNightlyJobs() {
	log.Println("Nightly job started (cache warm + cv probe)...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.projects.Refresh(ctx); err != nil {
		log.Printf("[warn] operation=nightly_cache_warm error=%v", err)
	}

	if err := s.cv.Probe(ctx); err != nil {
		log.Printf("[warn] operation=nightly_cv_probe error=%v", err)
	}

	log.Println("Nightly job finished")
}
