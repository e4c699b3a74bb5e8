package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/andresuchdata/invsim/internal/config"
	"github.com/andresuchdata/invsim/internal/domain"
	"github.com/andresuchdata/invsim/internal/service"
	"github.com/gin-gonic/gin"
)

type SimulationHandler struct {
	service  *service.SimulationService
	defaults config.SimulationConfig
}

func NewSimulationHandler(service *service.SimulationService, defaults config.SimulationConfig) *SimulationHandler {
	return &SimulationHandler{service: service, defaults: defaults}
}

// simulateRequest accepts loosely typed numeric fields so that clients
// sending "1,000"-style strings still get a well-formed run. Unparseable
// values fall back to the configured defaults instead of erroring.
type simulateRequest struct {
	Stock    any       `json:"stock"`
	LeadTime any       `json:"lead_time"`
	Days     any       `json:"days"`
	Scenario any       `json:"scenario"`
	Demand   any       `json:"demand"`
	Seed     any       `json:"seed"`
	Forecast []float64 `json:"forecast"`
}

func (h *SimulationHandler) parseInput(c *gin.Context) (service.SimulationInput, bool) {
	// An empty body means "use all defaults", matching the sandbox
	// what-if behavior of the dashboard.
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return service.SimulationInput{}, false
	}

	scenario := string(domain.ScenarioNormal)
	if req.Scenario != nil {
		s, ok := req.Scenario.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scenario must be a string"})
			return service.SimulationInput{}, false
		}
		scenario = s
	}

	return service.SimulationInput{
		Qty:      domain.CoerceInt(req.Stock, h.defaults.DefaultQty),
		LeadTime: domain.CoerceInt(req.LeadTime, h.defaults.DefaultLeadTime),
		Days:     domain.CoerceInt(req.Days, h.defaults.DefaultDays),
		Scenario: scenario,
		Demand:   domain.CoerceFloat(req.Demand, h.defaults.DefaultDemand),
		Seed:     domain.CoerceInt64Ptr(req.Seed),
		Forecast: req.Forecast,
	}, true
}

func (h *SimulationHandler) Simulate(c *gin.Context) {
	input, ok := h.parseInput(c)
	if !ok {
		return
	}

	result, err := h.service.Run(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run simulation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SimulationHandler) CompareScenarios(c *gin.Context) {
	input, ok := h.parseInput(c)
	if !ok {
		return
	}

	summaries, err := h.service.Compare(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compare scenarios", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": summaries})
}

// GetScenarios returns the scenario catalog with demand multipliers.
func (h *SimulationHandler) GetScenarios(c *gin.Context) {
	scenarios := domain.Scenarios()
	out := make([]gin.H, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, gin.H{
			"scenario":   s,
			"label":      s.Label(),
			"multiplier": s.Multiplier(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}
