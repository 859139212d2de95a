package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/vitos/crypto_scenario/internal/domain"
	"github.com/vitos/crypto_scenario/internal/usecase"
	"go.uber.org/zap"
)

type analyzeRequest struct {
	PriceAction  string `json:"priceAction" validate:"required,oneof=uptrend downtrend range breakout"`
	CVD          string `json:"cvd" validate:"required,oneof=increasing decreasing flat divergence"`
	OpenInterest string `json:"openInterest" validate:"required,oneof=increasing decreasing flat"`
	FundingRate  string `json:"fundingRate" validate:"omitempty,oneof=positive neutral negative"`
	Volume       string `json:"volume" validate:"omitempty,oneof=high normal low"`
	Lang         string `json:"lang" validate:"omitempty,oneof=en he"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	input := domain.IndicatorState{
		PriceAction:  domain.RawPriceAction(req.PriceAction),
		CVD:          domain.RawCVD(req.CVD),
		OpenInterest: domain.RawOpenInterest(req.OpenInterest),
		FundingRate:  domain.FundingRate(req.FundingRate),
		Volume:       domain.Volume(req.Volume),
	}

	result, err := s.service.Analyze(r.Context(), input, domain.Locale(req.Lang))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := s.service.Catalogue(domain.Locale(r.URL.Query().Get("lang")))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, scenarios)
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "scenario number must be an integer")
		return
	}

	sc, err := s.service.Scenario(number, domain.Locale(r.URL.Query().Get("lang")))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	analyses, err := s.service.History(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, analyses)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.service.GetAnalysis(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, a)
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrIncompleteInput),
		errors.Is(err, usecase.ErrUnknownIndicator),
		errors.Is(err, usecase.ErrUnsupportedLocale),
		errors.Is(err, usecase.ErrInvalidFunding),
		errors.Is(err, usecase.ErrInvalidVolume):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrScenarioNotFound):
		s.writeError(w, http.StatusNotFound, usecase.ErrScenarioNotFound.Error())
	case errors.Is(err, domain.ErrAnalysisNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("Request failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return usecase.ErrIncompleteInput.Error()
		}
		return "invalid value for " + fe.Field()
	}
	return err.Error()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
