package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/config"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/metrics"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/models"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/mortgage"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/ratelimit"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/store"
)

// dataCaveats are the standing disclosures about the cleaning heuristics,
// surfaced to the dashboard alongside the statistics.
var dataCaveats = []string{
	"Prices at or below 10M MNT are treated as price per m² and multiplied by the listing area.",
	"Listings with a parsed price strictly between 10M and 20M MNT are excluded as ambiguous.",
	"Coordinates are synthesized around district centers, not geocoded addresses.",
}

// APIHandler serves the listing and calculator endpoints.
type APIHandler struct {
	store   *store.Store
	config  *config.Config
	limiter *ratelimit.RateLimiter
	logger  *slog.Logger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(st *store.Store, cfg *config.Config, limiter *ratelimit.RateLimiter, logger *slog.Logger) *APIHandler {
	return &APIHandler{
		store:   st,
		config:  cfg,
		limiter: limiter,
		logger:  logger,
	}
}

// Health reports service liveness and whether any data is loaded.
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"time":     time.Now(),
		"listings": h.store.Count(),
	})
}

// ListListings returns the filtered, paginated listing set.
func (h *APIHandler) ListListings(c *gin.Context) {
	params := parseFilterParams(c)

	filtered := h.store.Filter(params)
	metrics.FilterRequests.Inc()

	perPage := h.config.Data.PerPage
	if perPageStr := c.Query("per_page"); perPageStr != "" {
		if v, err := strconv.Atoi(perPageStr); err == nil && v > 0 && v <= 100 {
			perPage = v
		}
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
			page = v
		}
	}

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/perPage + 1
	}
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"listings":    filtered[start:end],
		"total":       total,
		"page":        page,
		"per_page":    perPage,
		"total_pages": totalPages,
		"summary":     store.Summarize(filtered),
	})
}

// GetListing returns one listing by id.
func (h *APIHandler) GetListing(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	listing, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// GetFacets returns the filter-control options and bounds for the dataset.
func (h *APIHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"facets": h.store.Facets()})
}

// GetStats returns dataset-wide statistics and the standing data caveats.
func (h *APIHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"summary":   store.Summarize(h.store.Listings()),
		"loaded_at": h.store.LoadedAt(),
		"caveats":   dataCaveats,
	})
}

// mortgageRequest is the calculator input.
type mortgageRequest struct {
	Price         float64 `json:"price" binding:"required"`
	DownPercent   float64 `json:"down_percent"`
	RatePercent   float64 `json:"rate_percent"`
	MonthlyBudget float64 `json:"monthly_budget"`
}

// Mortgage runs the affordability calculator. Inputs the calculation
// cannot proceed from come back as informational messages, not errors.
func (h *APIHandler) Mortgage(c *gin.Context) {
	var req mortgageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := mortgage.Calculate(req.Price, req.DownPercent, req.RatePercent, req.MonthlyBudget)
	if err != nil {
		metrics.MortgageQuotes.WithLabelValues(mortgageOutcome(err)).Inc()
		c.JSON(http.StatusOK, gin.H{"message": err.Error()})
		return
	}

	outcome := "quote"
	if quote.Approximate {
		outcome = "approximate"
	}
	metrics.MortgageQuotes.WithLabelValues(outcome).Inc()

	resp := gin.H{"quote": quote}
	if quote.Approximate {
		resp["message"] = "monthly budget is below the interest-only payment; the estimate ignores interest and is approximate"
	}
	c.JSON(http.StatusOK, resp)
}

func mortgageOutcome(err error) string {
	switch {
	case errors.Is(err, mortgage.ErrLoanZero):
		return "loan_zero"
	case errors.Is(err, mortgage.ErrRateZero):
		return "rate_zero"
	case errors.Is(err, mortgage.ErrBudgetZero):
		return "budget_zero"
	default:
		return "error"
	}
}

// Reload rebuilds the dataset from the source file.
func (h *APIHandler) Reload(c *gin.Context) {
	if !h.limiter.AllowRequest() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "reload rate limit exceeded"})
		return
	}

	if err := h.store.Reload(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("dataset reloaded via admin endpoint", "listings", h.store.Count())
	c.JSON(http.StatusOK, gin.H{
		"listings":  h.store.Count(),
		"loaded_at": h.store.LoadedAt(),
	})
}

// RateLimitStats exposes the reload limiter state.
func (h *APIHandler) RateLimitStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.limiter.GetStats())
}

// parseFilterParams builds FilterParams from query parameters. Unparseable
// values leave the corresponding constraint inactive.
func parseFilterParams(c *gin.Context) store.FilterParams {
	params := store.FilterParams{
		Door:      c.Query("door"),
		FloorType: c.Query("floor_type"),
		Elevator:  triState(c.Query("elevator")),
		Garage:    triState(c.Query("garage")),
	}

	if districtsStr := c.Query("districts"); districtsStr != "" {
		for _, d := range strings.Split(districtsStr, ",") {
			if d = strings.TrimSpace(d); d != "" {
				params.Districts = append(params.Districts, models.District(d))
			}
		}
	}

	if v := c.Query("min_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			params.MinPrice = &n
		}
	}
	if v := c.Query("max_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			params.MaxPrice = &n
		}
	}

	if v := c.Query("min_area"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MinArea = &f
		}
	}
	if v := c.Query("max_area"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxArea = &f
		}
	}

	params.MinYear = intQuery(c, "min_year")
	params.MaxYear = intQuery(c, "max_year")
	params.MinRooms = intQuery(c, "min_rooms")
	params.MaxRooms = intQuery(c, "max_rooms")
	params.MinBalconies = intQuery(c, "min_balconies")
	params.MaxBalconies = intQuery(c, "max_balconies")
	params.MinWindows = intQuery(c, "min_windows")
	params.MaxWindows = intQuery(c, "max_windows")

	return params
}

func intQuery(c *gin.Context, name string) *int {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func triState(v string) store.TriState {
	switch v {
	case "yes":
		return store.TriYes
	case "no":
		return store.TriNo
	default:
		return store.TriAny
	}
}
