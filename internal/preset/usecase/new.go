package usecase

import (
	"sync"

	"time-calculator/internal/preset"
	"time-calculator/internal/preset/repository"
	pkgLog "time-calculator/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	// mu serialises read-modify-write cycles on the collection.
	mu sync.Mutex
}

// New creates a new preset UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) preset.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
