package handlers

import (
	"errors"
	"math"
	"net/http"

	"btc-backtest/internal/analysis"
	"btc-backtest/internal/api/models"
	"btc-backtest/internal/backtest"
	"btc-backtest/internal/config"
	"btc-backtest/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BacktestHandler handles backtest-related requests
type BacktestHandler struct {
	log zerolog.Logger
}

// NewBacktestHandler creates a new backtest handler
func NewBacktestHandler(log zerolog.Logger) *BacktestHandler {
	return &BacktestHandler{log: log}
}

// RunBacktest handles POST /api/v1/backtest
func (h *BacktestHandler) RunBacktest(c *gin.Context) {
	var req models.BacktestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := buildConfig(req)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := backtest.RunPipeline(cfg)
	if err != nil {
		status := http.StatusBadRequest
		code := "BACKTEST_ERROR"
		if errors.Is(err, backtest.ErrPrecondition) {
			status = http.StatusInternalServerError
			code = "INTERNAL_ERROR"
		}
		h.log.Error().Err(err).Msg("backtest failed")
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	response := models.BacktestResponse{
		Status:  "completed",
		Summary: buildSummary(result),
	}
	if req.Options.IncludeLedger {
		response.Ledger = convertLedger(result.Ledger)
	}
	c.JSON(http.StatusOK, response)
}

// RunSweep handles POST /api/v1/backtest/sweep
func (h *BacktestHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if len(req.Windows) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "windows must contain at least one short/long pair",
			},
		})
		return
	}

	cfg := buildConfig(models.BacktestRequest{
		Simulation: req.Simulation,
		Portfolio:  req.Portfolio,
	})
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	pairs := make([]analysis.WindowPair, 0, len(req.Windows))
	for _, w := range req.Windows {
		pairs = append(pairs, analysis.WindowPair{Short: w.Short, Long: w.Long})
	}

	ranked := analysis.RankWindows(cfg, pairs)
	rankings := make([]models.Ranking, 0, len(ranked))
	for i, r := range ranked {
		rankings = append(rankings, models.Ranking{
			Rank:        i + 1,
			ShortWindow: r.Short,
			LongWindow:  r.Long,
			ReturnPct:   r.ReturnPct,
			FinalValue:  r.FinalValue,
			Trades:      r.Trades,
		})
	}
	c.JSON(http.StatusOK, models.SweepResponse{Rankings: rankings})
}

// Helper methods

// buildConfig overlays the request onto the reference defaults.
func buildConfig(req models.BacktestRequest) *config.Config {
	cfg := &config.Config{
		Simulation: config.SimulationConfig{
			Days:         req.Simulation.Days,
			InitialPrice: req.Simulation.InitialPrice,
			Mu:           req.Simulation.Mu,
			Sigma:        req.Simulation.Sigma,
			Seed:         req.Simulation.Seed,
		},
		Indicators: config.IndicatorConfig{
			ShortWindow: req.Indicators.ShortWindow,
			LongWindow:  req.Indicators.LongWindow,
		},
		Strategy: config.StrategyConfig{
			Name:   req.Strategy.Name,
			Params: req.Strategy.Params,
		},
		Portfolio: config.PortfolioConfig{
			InitialCash: req.Portfolio.InitialCash,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func buildSummary(result *backtest.Result) models.BacktestSummary {
	trades := 0
	for _, r := range result.Ledger {
		if r.Action == model.ActionBuy || r.Action == model.ActionSell {
			trades++
		}
	}
	return models.BacktestSummary{
		InitialCash: result.Summary.InitialCash,
		FinalValue:  result.Summary.FinalValue,
		ReturnPct:   result.Summary.ReturnPct,
		TotalDays:   len(result.Ledger),
		Trades:      trades,
	}
}

func convertLedger(ledger []backtest.LedgerEntry) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		out[i] = models.LedgerRow{
			Day:            row.Day,
			Price:          row.Price,
			SMAShort:       avgOrNil(row.SMAShort),
			SMALong:        avgOrNil(row.SMALong),
			Action:         string(row.Action),
			Holdings:       row.Holdings,
			Cash:           row.Cash,
			PortfolioValue: row.PortfolioValue,
		}
	}
	return out
}

// avgOrNil maps NaN warmup values to null in JSON.
func avgOrNil(x float64) *float64 {
	if math.IsNaN(x) {
		return nil
	}
	return &x
}
