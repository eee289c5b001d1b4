package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
	"github.com/raghunathreddymustur/bike-mechanic-discovery/internal/services"
)

// MechanicHandlers handles directory HTTP requests
type MechanicHandlers struct {
	mechSvc *services.MechanicService
}

// NewMechanicHandlers creates new mechanic handlers
func NewMechanicHandlers(mechSvc *services.MechanicService) *MechanicHandlers {
	return &MechanicHandlers{mechSvc: mechSvc}
}

// CreateMechanicRequest represents a profile registration request
type CreateMechanicRequest struct {
	ShopName    string   `json:"shopName"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Area        string   `json:"area"`
	City        string   `json:"city"`
	Pincode     string   `json:"pincode"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Services    []string `json:"services"`
	Brands      []string `json:"brands"`
	Experience  int      `json:"experience"`
}

// Search handles directory listing and search. Query params brand,
// location, lat, lng and sort=distance feed the search engine.
func (h *MechanicHandlers) Search(c *gin.Context) {
	query := domain.SearchQuery{
		BrandQuery:     c.Query("brand"),
		LocationQuery:  c.Query("location"),
		SortByDistance: c.Query("sort") == "distance",
	}

	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			fail(c, http.StatusBadRequest, "lat and lng must be numbers")
			return
		}
		query.RefLocation = &domain.Coordinates{Lat: lat, Lng: lng}
		if !query.RefLocation.Valid() {
			fail(c, http.StatusBadRequest, "lat and lng are out of range")
			return
		}
	}

	results, err := h.mechSvc.Search(c.Request.Context(), query)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load mechanics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "mechanics": results})
}

// Get handles a single profile lookup
func (h *MechanicHandlers) Get(c *gin.Context) {
	profile, err := h.mechSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mechanicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "mechanic": profile})
}

// Create handles profile registration for the authenticated account
func (h *MechanicHandlers) Create(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.mechSvc.CreateProfile(c.Request.Context(), userID.(string), services.CreateProfileInput{
		ShopName:    req.ShopName,
		ContactName: req.Name,
		Description: req.Description,
		Address:     req.Address,
		Area:        req.Area,
		City:        req.City,
		Pincode:     req.Pincode,
		Coords:      domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
		Services:    req.Services,
		Brands:      req.Brands,
		Experience:  req.Experience,
	})
	if err != nil {
		mechanicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "profile": profile})
}

// MarkVerified handles the admin verification toggle
func (h *MechanicHandlers) MarkVerified(c *gin.Context) {
	if err := h.mechSvc.MarkVerified(c.Request.Context(), c.Param("id")); err != nil {
		mechanicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Mechanic verified"})
}

func mechanicError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		fail(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, domain.ErrMechanicNotFound):
		fail(c, http.StatusNotFound, "Mechanic not found")
	case errors.Is(err, domain.ErrUserNotFound):
		fail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrProfileAlreadyExists):
		fail(c, http.StatusConflict, "A profile already exists for this account")
	default:
		fail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
