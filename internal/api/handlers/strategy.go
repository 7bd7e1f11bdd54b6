package handlers

import (
	"net/http"

	"btc-backtest/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles strategy-related requests
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "crossover",
			Description: "Golden/death cross strategy. Buys when the short SMA crosses above the long SMA, sells when it crosses below. Ties and warmup days hold.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "window_short",
					Type:        "int",
					Description: "Short moving-average window in days (set under indicators)",
					Default:     7,
				},
				{
					Name:        "window_long",
					Type:        "int",
					Description: "Long moving-average window in days (set under indicators)",
					Default:     30,
				},
			},
		},
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
