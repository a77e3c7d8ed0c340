package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karthik/printdesk/internal/app/models/dto"
	"github.com/karthik/printdesk/internal/app/services"
	"github.com/karthik/printdesk/internal/middleware"
)

// StatsController serves the operator dashboard reports
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetStats returns ledger-wide counters
// @Summary Global order statistics
// @Description Counts by status and payment method plus total completed earnings
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.OrderStats}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GlobalStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// GetDailyPayments returns one calendar day's payment breakdown
// @Summary Daily payment summary
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param date query string false "Calendar date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.APIResponse{data=dto.DailyPaymentsResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed date"
// @Router /payments/daily [get]
func (c *StatsController) GetDailyPayments(ctx *gin.Context) {
	summary, err := c.statsService.DailyPayments(ctx, ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}

// GetRangedPayments returns the payment breakdown for a sliding window
// @Summary Ranged payment summary
// @Description Sums payments from the start of today, this week or this month through now
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param filter query string false "today, week or month" default(today)
// @Success 200 {object} dto.APIResponse{data=dto.RangedPaymentsResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown filter"
// @Router /payments/range [get]
func (c *StatsController) GetRangedPayments(ctx *gin.Context) {
	summary, err := c.statsService.RangedPayments(ctx, ctx.DefaultQuery("filter", services.RangeToday))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
