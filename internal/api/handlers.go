package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/httputil"
	"github.com/limbo/habitlog/pkg/period"
	"github.com/limbo/habitlog/pkg/progress"
)

const requestTimeout = 10 * time.Second

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type RatingDescriptionsRequest struct {
	Good *string `json:"good"`
	Okay *string `json:"okay"`
	Bad  *string `json:"bad"`
}

// HabitRequest is the body of both create and update. On update, omitted
// fields are kept and an empty startDate clears it.
type HabitRequest struct {
	Name               *string                   `json:"name"`
	Description        *string                   `json:"description"`
	RatingDescriptions RatingDescriptionsRequest `json:"ratingDescriptions"`
	Frequency          *string                   `json:"frequency"`
	StartDate          *string                   `json:"startDate"`
}

type LogRequest struct {
	PeriodStart *string `json:"periodStart"`
	Rating      *string `json:"rating"`
	Comment     *string `json:"comment"`
}

type ProgressResponse struct {
	HabitID  uuid.UUID          `json:"habitId"`
	Category *progress.Category `json:"category"`
}

type PeriodResponse struct {
	service.PeriodInfo
	LocalStart string `json:"localStart"`
	Timezone   string `json:"timezone"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// writeServiceError maps the error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		logger.Error(op + " error: unexist habit")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrLogNotFound):
		logger.Error(op + " error: unexist log")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit log doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrStorageUnavailable):
		logger.Error(op+" error: storage unavailable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable, try again later", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func pathUUID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		logger.Error("invalid " + name + " in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+name+" in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.authService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAuthNotConfigured):
			logger.Error("login error: authentication disabled")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "authentication is disabled", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req HabitRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, service.CreateHabitRequest{
		Name:        deref(req.Name),
		Description: deref(req.Description),
		RatingGood:  deref(req.RatingDescriptions.Good),
		RatingOkay:  deref(req.RatingDescriptions.Okay),
		RatingBad:   deref(req.RatingDescriptions.Bad),
		Frequency:   deref(req.Frequency),
		StartDate:   req.StartDate,
	})
	if err != nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) ListHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.habitsService.ListHabits(ctx)
	if err != nil {
		writeServiceError(w, logger, "list habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "id")
	if !ok {
		return
	}
	var req HabitRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitsService.UpdateHabit(ctx, id, service.UpdateHabitRequest{
		Name:        req.Name,
		Description: req.Description,
		RatingGood:  req.RatingDescriptions.Good,
		RatingOkay:  req.RatingDescriptions.Okay,
		RatingBad:   req.RatingDescriptions.Bad,
		Frequency:   req.Frequency,
		StartDate:   req.StartDate,
	})
	if err != nil {
		writeServiceError(w, logger, "update habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit updated", slog.String("habit_id", id.String()))
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err := s.habitsService.DeleteHabit(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "habit deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"id": id.String()})
	logger.Info("habit deleted", slog.String("habit_id", id.String()))
}

func (s *Server) ListLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	logs, err := s.logsService.List(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "list logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs)
}

func (s *Server) UpsertLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "id")
	if !ok {
		return
	}
	var req LogRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("log habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.logsService.Upsert(ctx, id, service.UpsertLogRequest{
		PeriodStart: deref(req.PeriodStart),
		Rating:      deref(req.Rating),
		Comment:     req.Comment,
	})
	if err != nil {
		writeServiceError(w, logger, "log habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, log)
	logger.Info("habit logged",
		slog.String("habit_id", id.String()),
		slog.String("period_start", log.PeriodStart.Key()),
	)
}

func (s *Server) UpdateLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "id")
	if !ok {
		return
	}
	logID, ok := pathUUID(w, r, logger, "logId")
	if !ok {
		return
	}
	var req LogRequest
	err := httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("update log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	log, err := s.logsService.Update(ctx, id, logID, service.UpdateLogRequest{
		PeriodStart: req.PeriodStart,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		writeServiceError(w, logger, "update log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, log)
}

func (s *Server) DeleteLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "id")
	if !ok {
		return
	}
	logID, ok := pathUUID(w, r, logger, "logId")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.logsService.Delete(ctx, id, logID); err != nil {
		writeServiceError(w, logger, "delete log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"id": logID.String()})
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathUUID(w, r, logger, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	category, err := s.insightsService.Progress(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "habit progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProgressResponse{HabitID: id, Category: category})
}

func (s *Server) GetInsights(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), 2*requestTimeout)
	defer cancel()
	insights, err := s.insightsService.Insights(ctx)
	if err != nil {
		writeServiceError(w, logger, "insights", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, insights)
}

func (s *Server) GetPeriod(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	query := r.URL.Query()
	info, err := service.DescribePeriod(query.Get("frequency"), query.Get("at"), time.Now())
	if err != nil {
		writeServiceError(w, logger, "describe period", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, PeriodResponse{
		PeriodInfo: *info,
		LocalStart: period.StartLocal(info.Start, s.displayLocation).Format(time.RFC3339),
		Timezone:   s.displayLocation.String(),
	})
}
