package restaurants_api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-insights/internal/logger"
	"restaurant-insights/internal/restaurants"
	"restaurant-insights/internal/utils"
)

// Handler handles the restaurant listing HTTP endpoints.
type Handler struct {
	Service *restaurants.Service
	Logger  *logger.Logger
}

// NewHandler creates a new restaurants handler.
func NewHandler(service *restaurants.Service, logger *logger.Logger) *Handler {
	return &Handler{Service: service, Logger: logger}
}

// RegisterRoutes registers the restaurant routes on a chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/restaurants", h.ListRestaurants)
	r.Get("/restaurants/{restaurantId}", h.GetRestaurant)
}

// ListRestaurants handles listing with search, filters, sorting and
// pagination.
func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	options := restaurants.ListOptions{
		Search:   q.Get("search"),
		Cuisine:  q.Get("cuisine"),
		Location: q.Get("location"),
		SortBy:   q.Get("sort_by"),
		SortDesc: q.Get("sort_order") == "desc",
	}

	if perPage := q.Get("per_page"); perPage != "" {
		if n, err := strconv.Atoi(perPage); err == nil && n > 0 {
			options.Limit = n
		}
	}
	if offset := q.Get("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil && n >= 0 {
			options.Offset = n
		}
	}

	result, err := h.Service.List(r.Context(), options)
	if err != nil {
		h.Logger.Error("RESTAURANTS", "Error listing restaurants: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorBody("Failed to list restaurants"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// GetRestaurant handles fetching a single restaurant by id.
func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantId")
	if restaurantID == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorBody("restaurant id is required"))
		return
	}

	restaurant, err := h.Service.Get(r.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.WriteJSON(w, http.StatusNotFound, utils.ErrorBody("restaurant not found"))
			return
		}
		h.Logger.Error("RESTAURANTS", "Error fetching restaurant: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorBody("Failed to fetch restaurant"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, restaurant)
}
