package workouts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/rfatracker/internal/instrumentation"
	"github.com/2beens/rfatracker/internal/telemetry/tracing"
	"github.com/2beens/rfatracker/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	LogWorkout(ctx context.Context, inputs []RepInput) (*Workout, error)
	History(ctx context.Context) ([]Workout, error)
}

type LogWorkoutRequest struct {
	Reps []RepInput `json:"reps"`
}

type WorkoutsListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	service workoutsService
	instr   *instrumentation.Instrumentation
}

func NewHandler(service workoutsService, instr *instrumentation.Instrumentation) *Handler {
	return &Handler{
		service: service,
		instr:   instr,
	}
}

func (handler *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.log")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req LogWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log workout, unmarshal json params: %s", err)
		http.Error(w, "log workout failed", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.LogWorkout(ctx, req.Reps)
	if err != nil {
		log.Errorf("failed to log workout: %s", err)
		http.Error(w, "log workout failed", http.StatusInternalServerError)
		return
	}

	handler.instr.CounterWorkoutsLogged.Inc()
	handler.instr.CounterRepsRecorded.Add(float64(workout.TotalReps()))

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "log workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	history, err := handler.service.History(ctx)
	if err != nil {
		log.Errorf("failed to list workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(WorkoutsListResponse{Workouts: history, Total: len(history)})
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
