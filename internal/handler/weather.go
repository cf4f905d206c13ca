package handler

import (
	"net/http"

	"github.com/krishiquest/KrishiQuest_Go/internal/weather"
)

// HandleGetWeather returns the current cosmetic weather
// @Summary Current weather
// @Tags weather
// @Produce json
// @Success 200 {object} domain.WeatherState
// @Router /api/v1/weather [get]
func HandleGetWeather(svc weather.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Current(r.Context()))
	}
}
