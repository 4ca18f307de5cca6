package api

import (
	"context"
	"net/http"

	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/httputil"
	"github.com/limbo/accountability/pkg/logger"
)

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	var req service.CreateChallengeRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		l.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	created, err := s.challengesService.CreateChallenge(ctx, UIDFromContext(r.Context()), &req)
	if err != nil {
		writeServiceError(w, l, "create challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	l.Info("challenge created", "challenge_id", created.Challenge.ID.String())
}

func (s *Server) GetActiveChallenge(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	ch, err := s.challengesService.GetActiveChallenge(ctx, UIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, l, "get active challenge", err)
		return
	}
	if ch == nil {
		httputil.WriteNoContent(w)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ch)
}

func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	id, ok := challengeIDParam(w, r, l)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	ch, err := s.challengesService.GetChallenge(ctx, id, UIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, l, "get challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ch)
}

func (s *Server) GetPresolutions(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	id, ok := challengeIDParam(w, r, l)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	presolutions, err := s.challengesService.GetPresolutions(ctx, id, UIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, l, "get presolutions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, presolutions)
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	l := logger.FromContext(r.Context())
	id, ok := challengeIDParam(w, r, l)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	progress, err := s.challengesService.GetProgress(ctx, id, UIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, l, "get progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}
