package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"solar-payback/internal/api/models"
	"solar-payback/internal/observability/metrics"
	"solar-payback/internal/payback"
	"solar-payback/internal/report"
)

// PaybackHandler serves the two calculation endpoints and the report export.
type PaybackHandler struct {
	engine *payback.Engine
}

// NewPaybackHandler creates a new payback handler
func NewPaybackHandler(engine *payback.Engine) *PaybackHandler {
	return &PaybackHandler{engine: engine}
}

// CalculatePaybackTime handles POST /api/v1/payback
func (h *PaybackHandler) CalculatePaybackTime(c *gin.Context) {
	var req models.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	start := time.Now()
	years, err := h.engine.PaybackTime(req.AnnualEnergyConsumption, req.InstallationCost, req.WpOfInstallation)
	if err != nil {
		metrics.ObserveCalculation("payback", resultLabel(err), time.Since(start))
		respondEngineError(c, "payback time", err)
		return
	}
	metrics.ObserveCalculation("payback", metrics.ResultOK, time.Since(start))

	log.Printf("calculated payback time: %.2f years (consumption=%.0f cost=%.0f wp=%d)",
		years, req.AnnualEnergyConsumption, req.InstallationCost, req.WpOfInstallation)
	c.JSON(http.StatusCreated, models.CalculationResponse{
		Message: "Payback time calculated successfully",
		Data:    models.PaybackData{PaybackTime: years},
	})
}

// CalculateOptimalWp handles POST /api/v1/optimal-wp
func (h *PaybackHandler) CalculateOptimalWp(c *gin.Context) {
	var req models.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	start := time.Now()
	wp, err := h.engine.OptimalWp(req.AnnualEnergyConsumption, req.InstallationCost, req.WpOfInstallation)
	if err != nil {
		metrics.ObserveCalculation("optimal_wp", resultLabel(err), time.Since(start))
		respondEngineError(c, "optimal capacity", err)
		return
	}
	metrics.ObserveCalculation("optimal_wp", metrics.ResultOK, time.Since(start))

	log.Printf("calculated optimal capacity: %d Wp (consumption=%.0f cost=%.0f hint=%d)",
		wp, req.AnnualEnergyConsumption, req.InstallationCost, req.WpOfInstallation)
	c.JSON(http.StatusOK, models.CalculationResponse{
		Message: "Optimal Wp calculated successfully",
		Data:    models.OptimalWpData{OptimalWp: wp},
	})
}

// ExportReport handles POST /api/v1/payback/report?format=xlsx|pdf
func (h *PaybackHandler) ExportReport(c *gin.Context) {
	var req models.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	rep := report.PaybackReport{
		AnnualConsumptionKWh: req.AnnualEnergyConsumption,
		InstallationCostEUR:  req.InstallationCost,
		CapacityWp:           req.WpOfInstallation,
		Prices:               h.engine.GridPrices(),
		Breakdown:            h.engine.CostBreakdown(req.AnnualEnergyConsumption, req.WpOfInstallation),
	}
	years, err := h.engine.PaybackTime(req.AnnualEnergyConsumption, req.InstallationCost, req.WpOfInstallation)
	switch {
	case err == nil:
		rep.Payable = true
		rep.PaybackYears = years
	case errors.Is(err, payback.ErrNeverPaysBack):
		// Still worth a report; the document states that it never pays back.
	default:
		respondEngineError(c, "payback report", err)
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	var (
		body        []byte
		contentType string
	)
	switch format {
	case "xlsx":
		body, err = report.BuildXLSX(rep)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		body, err = report.BuildPDF(rep)
		contentType = "application/pdf"
	default:
		respondInvalidRequest(c, fmt.Errorf("unsupported format %q (want xlsx or pdf)", format))
		return
	}
	if err != nil {
		respondEngineError(c, "payback report", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=payback-report."+format)
	c.Data(http.StatusOK, contentType, body)
}

func respondInvalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// respondEngineError maps engine errors onto the boundary's error taxonomy:
// bad arguments and degenerate results are the client's problem, anything else
// is logged with context and reported generically.
func respondEngineError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, payback.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: err.Error(),
			},
		})
	case errors.Is(err, payback.ErrNeverPaysBack):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_PROFITABLE",
				Message: err.Error(),
			},
		})
	default:
		log.Printf("error calculating %s: %v", operation, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CALCULATION_ERROR",
				Message: fmt.Sprintf("Error occurred while calculating %s", operation),
			},
		})
	}
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, payback.ErrInvalidInput):
		return metrics.ResultInvalid
	case errors.Is(err, payback.ErrNeverPaysBack):
		return metrics.ResultNotProfitable
	default:
		return metrics.ResultError
	}
}
