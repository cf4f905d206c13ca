package handler

import (
	"net/http"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/farm"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// ScanFieldRequest is what the field scanner reports
type ScanFieldRequest struct {
	PlayerID      string `json:"player_id" validate:"required,max=100"`
	Width         int    `json:"width" validate:"min=1,max=32"`
	Height        int    `json:"height" validate:"min=1,max=32"`
	MoistureLevel int    `json:"moisture_level" validate:"min=0,max=100"`
	SoilCondition string `json:"soil_condition" validate:"max=100"`
}

// SelectToolRequest arms a tool
type SelectToolRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=100"`
	Tool     string `json:"tool" validate:"required,tool"`
}

// ClickTileRequest applies the armed tool to a tile
type ClickTileRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=100"`
	TileID   string `json:"tile_id" validate:"required,max=100"`
}

// FarmHandler serves the farm grid endpoints
type FarmHandler struct {
	svc farm.Service
}

// NewFarmHandler creates a farm handler
func NewFarmHandler(svc farm.Service) *FarmHandler {
	return &FarmHandler{svc: svc}
}

// HandleScanField creates a fresh field for the player
// @Summary Scan a field
// @Description Replace the player's field with a new all-empty grid
// @Tags farm
// @Accept json
// @Produce json
// @Param request body ScanFieldRequest true "Scan result"
// @Success 201 {object} domain.Field
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/field/scan [post]
func (h *FarmHandler) HandleScanField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScanFieldRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Scan field"); err != nil {
			return
		}

		field, err := h.svc.ScanField(r.Context(), domain.ScanRequest{
			PlayerID:      req.PlayerID,
			Width:         req.Width,
			Height:        req.Height,
			MoistureLevel: req.MoistureLevel,
			SoilCondition: req.SoilCondition,
		})
		if err != nil {
			respondServiceError(w, r, "Scan field", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgFieldScanned, "playerID", req.PlayerID, "tiles", len(field.Tiles))
		respondJSON(w, http.StatusCreated, field)
	}
}

// HandleGetField returns the player's field
// @Summary Get field
// @Tags farm
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.Field
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/field [get]
func (h *FarmHandler) HandleGetField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, QueryParamPlayerID)
		if !ok {
			return
		}

		field, err := h.svc.GetField(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get field", err)
			return
		}
		respondJSON(w, http.StatusOK, field)
	}
}

// HandleGetProgress returns cumulative stage counts for the field
// @Summary Field progress
// @Tags farm
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.FieldProgress
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/field/progress [get]
func (h *FarmHandler) HandleGetProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, QueryParamPlayerID)
		if !ok {
			return
		}

		progress, err := h.svc.Progress(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get progress", err)
			return
		}
		respondJSON(w, http.StatusOK, progress)
	}
}

// HandleSelectTool arms a tool for the player
// @Summary Select tool
// @Tags farm
// @Accept json
// @Produce json
// @Param request body SelectToolRequest true "Tool selection"
// @Success 200 {object} domain.Selection
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/tool [post]
func (h *FarmHandler) HandleSelectTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectToolRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Select tool"); err != nil {
			return
		}

		sel, err := h.svc.SelectTool(r.Context(), req.PlayerID, domain.Tool(req.Tool))
		if err != nil {
			respondServiceError(w, r, "Select tool", err)
			return
		}
		respondJSON(w, http.StatusOK, sel)
	}
}

// HandleGetSelection returns the armed tool and highlighted tile
// @Summary Get selection
// @Tags farm
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.Selection
// @Router /api/v1/farm/selection [get]
func (h *FarmHandler) HandleGetSelection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, QueryParamPlayerID)
		if !ok {
			return
		}

		sel, err := h.svc.GetSelection(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get selection", err)
			return
		}
		respondJSON(w, http.StatusOK, sel)
	}
}

// HandleClickTile applies the armed tool. Invalid pairs answer 200 with changed=false.
// @Summary Click tile
// @Tags farm
// @Accept json
// @Produce json
// @Param request body ClickTileRequest true "Tile click"
// @Success 200 {object} domain.ClickResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/farm/click [post]
func (h *FarmHandler) HandleClickTile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClickTileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Click tile"); err != nil {
			return
		}

		result, err := h.svc.ClickTile(r.Context(), req.PlayerID, req.TileID)
		if err != nil {
			respondServiceError(w, r, "Click tile", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgTileClicked,
			"playerID", req.PlayerID,
			"tileID", req.TileID,
			"changed", result.Changed)
		respondJSON(w, http.StatusOK, result)
	}
}
