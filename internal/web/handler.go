package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/market-lens/market-lens/internal/entity"
	"github.com/market-lens/market-lens/internal/service/alert"
	"github.com/market-lens/market-lens/internal/service/market"
	"github.com/samber/lo"
)

type quoteResponse struct {
	Success          bool    `json:"success"`
	Symbol           string  `json:"symbol"`
	Price            float64 `json:"price"`
	Change           float64 `json:"change"`
	ChangePercent    string  `json:"change_percent"`
	Volume           string  `json:"volume"`
	LatestTradingDay string  `json:"latest_trading_day"`
}

func (s *Server) handleGetStock(w http.ResponseWriter, r *http.Request) {
	quote, err := s.marketSvc.GetQuote(r.Context(), r.PathValue("symbol"))
	if err != nil {
		if errors.Is(err, market.ErrSymbolNotFound) {
			writeError(w, http.StatusNotFound, "stock symbol not found or API limit reached")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, quoteResponse{
		Success:          true,
		Symbol:           quote.Symbol,
		Price:            quote.Price.InexactFloat64(),
		Change:           quote.Change.InexactFloat64(),
		ChangePercent:    quote.ChangePercent,
		Volume:           quote.Volume,
		LatestTradingDay: quote.LatestTradingDay,
	})
}

type companyResponse struct {
	Success       bool   `json:"success"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Sector        string `json:"sector"`
	Industry      string `json:"industry"`
	MarketCap     string `json:"market_cap"`
	PERatio       string `json:"pe_ratio"`
	DividendYield string `json:"dividend_yield"`
	Week52High    string `json:"week_52_high"`
	Week52Low     string `json:"week_52_low"`
	Address       string `json:"address"`
	Exchange      string `json:"exchange"`
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	info, err := s.marketSvc.GetCompanyInfo(r.Context(), r.PathValue("symbol"))
	if err != nil {
		if errors.Is(err, market.ErrSymbolNotFound) {
			writeError(w, http.StatusNotFound, "company information not found or API limit reached")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, companyResponse{
		Success:       true,
		Symbol:        info.Symbol,
		Name:          info.Name,
		Description:   info.Description,
		Sector:        info.Sector,
		Industry:      info.Industry,
		MarketCap:     info.MarketCap,
		PERatio:       info.PERatio,
		DividendYield: info.DividendYield,
		Week52High:    info.Week52High,
		Week52Low:     info.Week52Low,
		Address:       info.Address,
		Exchange:      info.Exchange,
	})
}

type alertItem struct {
	Id          int64   `json:"id"`
	Symbol      string  `json:"symbol"`
	Condition   string  `json:"condition"`
	TargetPrice float64 `json:"target_price"`
	CreatedAt   string  `json:"created_at"`
	Triggered   bool    `json:"triggered"`
}

type listAlertsResponse struct {
	Success bool        `json:"success"`
	Alerts  []alertItem `json:"alerts"`
}

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.alertSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	items := lo.Map(alerts, func(a entity.Alert, _ int) alertItem {
		return alertItem{
			Id:          a.Id,
			Symbol:      a.Symbol,
			Condition:   a.Condition,
			TargetPrice: a.TargetPrice,
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
			Triggered:   a.Triggered,
		}
	})
	writeJSON(w, http.StatusOK, listAlertsResponse{Success: true, Alerts: items})
}

type createAlertRequest struct {
	Symbol      string  `json:"symbol"`
	Condition   string  `json:"condition"`
	TargetPrice float64 `json:"target_price"`
}

type createAlertResponse struct {
	Success bool   `json:"success"`
	AlertId int64  `json:"alert_id"`
	Message string `json:"message"`
}

func (s *Server) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.alertSvc.Create(r.Context(), req.Symbol, req.Condition, req.TargetPrice)
	if err != nil {
		if errors.Is(err, alert.ErrInvalidAlert) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, createAlertResponse{
		Success: true,
		AlertId: id,
		Message: fmt.Sprintf("Alert created for %s", strings.ToUpper(strings.TrimSpace(req.Symbol))),
	})
}

type deleteAlertResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleDeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid alert id")
		return
	}

	if err = s.alertSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deleteAlertResponse{Success: true, Message: "Alert deleted"})
}

type checkAlertsResponse struct {
	Success         bool                   `json:"success"`
	TriggeredAlerts []alert.TriggeredAlert `json:"triggered_alerts"`
}

func (s *Server) handleCheckAlerts(w http.ResponseWriter, r *http.Request) {
	triggered, err := s.alertSvc.CheckAlerts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checkAlertsResponse{Success: true, TriggeredAlerts: triggered})
}
