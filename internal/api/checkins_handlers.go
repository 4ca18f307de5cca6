package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/httputil"
	"github.com/limbo/accountability/pkg/logger"
)

type EmergencyRequest struct {
	Reason string `json:"reason"`
}

func (s *Server) GetCheckIns(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	id, ok := challengeIDParam(w, r, l)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	checkIns, err := s.checkInsService.GetChallengeCheckIns(ctx, id, UIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, l, "get check-ins", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, checkIns)
}

func (s *Server) GetTodayCheckIn(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	id, ok := challengeIDParam(w, r, l)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	checkIn, err := s.checkInsService.GetTodayCheckIn(ctx, id, UIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, l, "get today check-in", err)
		return
	}
	if checkIn == nil {
		httputil.WriteNoContent(w)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, checkIn)
}

func (s *Server) UpdateTodayCheckIn(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	id, ok := challengeIDParam(w, r, l)
	if !ok {
		return
	}
	var req service.UpdateCheckInRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		l.Error("update check-in error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	checkIn, err := s.checkInsService.UpdateCheckIn(ctx, id, UIDFromContext(r.Context()), &req)
	if err != nil {
		writeServiceError(w, l, "update check-in", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, checkIn)
	l.Info("check-in saved", slog.String("date", checkIn.CheckInDate), slog.Bool("complete", checkIn.IsComplete))
}

// UseEmergencyProtocol answers 409 with the same result body when the day can't be covered
func (s *Server) UseEmergencyProtocol(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	id, ok := challengeIDParam(w, r, l)
	if !ok {
		return
	}
	var req EmergencyRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		l.Error("emergency error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	result, err := s.checkInsService.UseEmergencyProtocol(ctx, id, UIDFromContext(r.Context()), req.Reason)
	if err != nil {
		writeServiceError(w, l, "emergency", err)
		return
	}
	if !result.Success {
		l.Error("emergency rejected", slog.String("reason", result.Error))
		httputil.WriteJSONResponse(w, http.StatusConflict, result)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	l.Info("emergency protocol used", slog.Int("remaining", result.Remaining))
}
