package usecase

import (
	"github.com/traviq/traviq-backend/services/tourist"
)

// TouristUC implements the tourist service usecases
type TouristUC struct {
	touristRepo tourist.TouristRepo
}

// NewTouristUC creates a new tourist usecase instance
func NewTouristUC(touristRepo tourist.TouristRepo) *TouristUC {
	return &TouristUC{
		touristRepo: touristRepo,
	}
}
