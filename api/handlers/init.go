package handlers

import (
	"github.com/customeros/unsublink/internal/repository"
	"github.com/customeros/unsublink/services"
)

type APIHandlers struct {
	Extractions *ExtractionsHandler
}

func InitHandlers(s *services.Services, r *repository.Repositories) *APIHandlers {
	return &APIHandlers{
		Extractions: NewExtractionsHandler(s, r),
	}
}
