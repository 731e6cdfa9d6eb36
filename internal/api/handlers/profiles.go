package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-payback/internal/api/models"
	"solar-payback/internal/model"
)

// ProfilesHandler exposes read-only views on the loaded reference data.
type ProfilesHandler struct {
	ref    *model.ReferenceData
	prices model.GridPrices
}

// NewProfilesHandler creates a new profiles handler
func NewProfilesHandler(ref *model.ReferenceData, prices model.GridPrices) *ProfilesHandler {
	return &ProfilesHandler{ref: ref, prices: prices}
}

// ListProfiles handles GET /api/v1/profiles
func (h *ProfilesHandler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profiles": []models.ProfileInfo{
			profileInfo("production", h.ref.Production),
			profileInfo("consumption", h.ref.Consumption),
			profileInfo("wholesale_price", h.ref.Wholesale),
		},
	})
}

// GetPrices handles GET /api/v1/prices
func (h *ProfilesHandler) GetPrices(c *gin.Context) {
	c.JSON(http.StatusOK, h.prices)
}

func profileInfo(name string, s model.Series) models.ProfileInfo {
	start, end := s.Window()
	return models.ProfileInfo{
		Name:    name,
		Area:    s.Area,
		Samples: s.Len(),
		Start:   start,
		End:     end,
		Sum:     s.Sum(),
	}
}
