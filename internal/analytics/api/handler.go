package analytics_api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant-insights/internal/analytics"
	"restaurant-insights/internal/logger"
	"restaurant-insights/internal/utils"
)

// Handler handles the analytics HTTP endpoints.
type Handler struct {
	Service *analytics.Service
	Logger  *logger.Logger
	Cache   *analytics.Cache
}

// NewHandler creates a new analytics handler.
func NewHandler(service *analytics.Service, logger *logger.Logger) *Handler {
	return &Handler{Service: service, Logger: logger}
}

// NewHandlerWithCache creates an analytics handler with a Redis-backed
// response cache.
func NewHandlerWithCache(service *analytics.Service, logger *logger.Logger, cache *analytics.Cache) *Handler {
	return &Handler{Service: service, Logger: logger, Cache: cache}
}

// RegisterRoutes registers the analytics routes on a chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/restaurants/{restaurantId}/trends", h.GetRestaurantTrends)
	r.Get("/top-restaurants", h.GetTopRestaurants)
}

// criteriaFromRequest maps query parameters onto raw filter criteria. All
// interpretation happens in BuildFilterSpec.
func criteriaFromRequest(r *http.Request) analytics.FilterCriteria {
	q := r.URL.Query()
	return analytics.FilterCriteria{
		From:      q.Get("from"),
		To:        q.Get("to"),
		Search:    q.Get("search"),
		Cuisine:   q.Get("cuisine"),
		Location:  q.Get("location"),
		MinAmount: q.Get("min_amount"),
		MaxAmount: q.Get("max_amount"),
		StartHour: q.Get("start_hour"),
		EndHour:   q.Get("end_hour"),
	}
}

// writeError maps engine errors onto HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validationErr *analytics.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorBody(validationErr.Error()))
		return
	}

	var notFoundErr *analytics.NotFoundError
	if errors.As(err, &notFoundErr) {
		utils.WriteJSON(w, http.StatusNotFound, utils.ErrorBody(notFoundErr.Error()))
		return
	}

	h.Logger.Error("ANALYTICS", err.Error())
	utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorBody("Failed to compute analytics"))
}

// GetRestaurantTrends handles the per-restaurant trends request.
func (h *Handler) GetRestaurantTrends(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantId")
	if restaurantID == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorBody("restaurant id is required"))
		return
	}

	criteria := criteriaFromRequest(r)
	spec, err := analytics.BuildFilterSpec(criteria)
	if err != nil {
		h.writeError(w, err)
		return
	}

	cacheKey := analytics.CacheKey("trends", restaurantID, criteria)
	if h.Cache != nil {
		if payload, ok := h.Cache.Get(r.Context(), cacheKey); ok {
			utils.WriteRawJSON(w, http.StatusOK, payload)
			return
		}
	}

	trends, err := h.Service.ComputeTrends(r.Context(), spec, restaurantID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	payload, err := json.Marshal(trends)
	if err != nil {
		h.Logger.Error("ANALYTICS", "Failed to encode trends response: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorBody("Failed to encode response"))
		return
	}
	if h.Cache != nil {
		h.Cache.Set(r.Context(), cacheKey, payload)
	}
	utils.WriteRawJSON(w, http.StatusOK, payload)
}

// GetTopRestaurants handles the revenue leaderboard request.
func (h *Handler) GetTopRestaurants(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromRequest(r)
	spec, err := analytics.BuildFilterSpec(criteria)
	if err != nil {
		h.writeError(w, err)
		return
	}

	cacheKey := analytics.CacheKey("top-restaurants", "", criteria)
	if h.Cache != nil {
		if payload, ok := h.Cache.Get(r.Context(), cacheKey); ok {
			utils.WriteRawJSON(w, http.StatusOK, payload)
			return
		}
	}

	top, err := h.Service.ComputeTopRestaurants(r.Context(), spec)
	if err != nil {
		h.writeError(w, err)
		return
	}

	payload, err := json.Marshal(top)
	if err != nil {
		h.Logger.Error("ANALYTICS", "Failed to encode ranking response: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorBody("Failed to encode response"))
		return
	}
	if h.Cache != nil {
		h.Cache.Set(r.Context(), cacheKey, payload)
	}
	utils.WriteRawJSON(w, http.StatusOK, payload)
}
