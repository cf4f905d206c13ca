package handler

import (
	"net/http"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
	"github.com/krishiquest/KrishiQuest_Go/internal/market"
)

func marketQuery(r *http.Request) domain.MarketQuery {
	return domain.MarketQuery{
		Search:   GetOptionalQueryParam(r, QueryParamSearch, ""),
		Category: GetOptionalQueryParam(r, QueryParamCategory, domain.FilterAll),
		Demand:   GetOptionalQueryParam(r, QueryParamDemand, domain.FilterAll),
	}
}

// HandleMarketPrices returns the filtered price board
// @Summary Market prices
// @Tags market
// @Produce json
// @Param search query string false "Crop name search"
// @Param category query string false "Category or All"
// @Param demand query string false "High, Medium, Low or All"
// @Success 200 {array} domain.MarketPrice
// @Router /api/v1/market/prices [get]
func HandleMarketPrices(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := marketQuery(r)
		prices := svc.FilterPrices(r.Context(), q)
		logger.FromContext(r.Context()).Debug(LogMsgMarketQueryServe, "view", "prices", "search", q.Search, "count", len(prices))
		respondJSON(w, http.StatusOK, prices)
	}
}

// HandleMarketListings returns the filtered crop listings
// @Summary Crop listings
// @Tags market
// @Produce json
// @Param search query string false "Listing name search"
// @Param category query string false "Category or All"
// @Param demand query string false "High, Medium, Low or All"
// @Success 200 {array} domain.CropListing
// @Router /api/v1/market/listings [get]
func HandleMarketListings(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := marketQuery(r)
		listings := svc.FilterListings(r.Context(), q)
		logger.FromContext(r.Context()).Debug(LogMsgMarketQueryServe, "view", "listings", "search", q.Search, "count", len(listings))
		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleMarketCategories returns "All" followed by every price category
// @Summary Market categories
// @Tags market
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/market/categories [get]
func HandleMarketCategories(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Categories(r.Context()))
	}
}

// HandleMarketStats returns demand counts over the price board
// @Summary Demand overview
// @Tags market
// @Produce json
// @Success 200 {object} domain.DemandStats
// @Router /api/v1/market/stats [get]
func HandleMarketStats(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.DemandStats(r.Context()))
	}
}

// HandleMarketTrends returns weekly category trends
// @Summary Market trends
// @Tags market
// @Produce json
// @Success 200 {array} domain.MarketTrend
// @Router /api/v1/market/trends [get]
func HandleMarketTrends(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Trends(r.Context()))
	}
}
