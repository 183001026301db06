package skills

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/rfatracker/internal/instrumentation"
	"github.com/2beens/rfatracker/internal/telemetry/tracing"
	"github.com/2beens/rfatracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=skills_test

type catalogRepo interface {
	ListAll(ctx context.Context) ([]Skill, error)
	Get(ctx context.Context, name string) (*Skill, error)
	IncrementReps(ctx context.Context, name string, delta int) error
	SetReps(ctx context.Context, name string, totalReps int) error
}

type progressAnalyzer interface {
	Progress(ctx context.Context) ([]SkillProgress, error)
	Total(ctx context.Context) (*TotalProgress, error)
}

type SkillsListResponse struct {
	Skills []Skill `json:"skills"`
	Total  int     `json:"total"`
}

type SetRepsRequest struct {
	Reps int `json:"reps"`
}

type IncrementRepsRequest struct {
	Reps int `json:"reps"`
}

type RepsUpdatedResponse struct {
	Name          string `json:"name"`
	CompletedReps int    `json:"completedReps"`
}

type Handler struct {
	repo     catalogRepo
	analyzer progressAnalyzer
	instr    *instrumentation.Instrumentation
}

func NewHandler(
	repo catalogRepo,
	analyzer progressAnalyzer,
	instr *instrumentation.Instrumentation,
) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: analyzer,
		instr:    instr,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skills.list")
	defer span.End()

	all, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("failed to list skills: %s", err)
		http.Error(w, "failed to list skills", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SkillsListResponse{Skills: all, Total: len(all)})
	if err != nil {
		log.Errorf("failed to marshal skills: %s", err)
		http.Error(w, "failed to list skills", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skills.get")
	defer span.End()

	vars := mux.Vars(r)
	name := vars["name"]
	if name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	skill, err := handler.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			http.Error(w, "skill not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get skill %s: %s", name, err)
		http.Error(w, "failed to get skill", http.StatusInternalServerError)
		return
	}

	skillJson, err := json.Marshal(skill)
	if err != nil {
		log.Errorf("failed to marshal skill: %s", err)
		http.Error(w, "failed to get skill", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, skillJson, http.StatusOK)
}

// HandleSetReps overwrites the total completed reps of a skill, used when
// syncing the tracker with the in-game counters.
func (handler *Handler) HandleSetReps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skills.setReps")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	name := vars["name"]
	if name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	var req SetRepsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set reps, unmarshal json params: %s", err)
		http.Error(w, "set reps failed", http.StatusBadRequest)
		return
	}
	if req.Reps < 0 {
		http.Error(w, "error, reps negative", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetReps(ctx, name, req.Reps); err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			http.Error(w, "skill not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to set reps for %s: %s", name, err)
		http.Error(w, "set reps failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("reps for %s set to %d", name, req.Reps)
	handler.instr.CounterRepsRecorded.Add(float64(req.Reps))

	respJson, err := json.Marshal(RepsUpdatedResponse{Name: name, CompletedReps: req.Reps})
	if err != nil {
		log.Errorf("failed to marshal set reps response: %s", err)
		http.Error(w, "set reps failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleIncrementReps adds reps on top of the current counter, for logging a
// quick set outside of a full workout session.
func (handler *Handler) HandleIncrementReps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skills.incrementReps")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	name := vars["name"]
	if name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	var req IncrementRepsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("increment reps, unmarshal json params: %s", err)
		http.Error(w, "increment reps failed", http.StatusBadRequest)
		return
	}
	if req.Reps < 0 {
		http.Error(w, "error, reps negative", http.StatusBadRequest)
		return
	}

	// the repo treats an unknown name as a no-op on increment, so check
	// the skill exists first to give the caller a proper 404
	skill, err := handler.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			http.Error(w, "skill not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get skill %s: %s", name, err)
		http.Error(w, "increment reps failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.IncrementReps(ctx, name, req.Reps); err != nil {
		log.Errorf("failed to increment reps for %s: %s", name, err)
		http.Error(w, "increment reps failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("reps for %s incremented by %d", name, req.Reps)
	handler.instr.CounterRepsRecorded.Add(float64(req.Reps))

	respJson, err := json.Marshal(RepsUpdatedResponse{
		Name:          name,
		CompletedReps: skill.CompletedReps + req.Reps,
	})
	if err != nil {
		log.Errorf("failed to marshal increment reps response: %s", err)
		http.Error(w, "increment reps failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skills.progress")
	defer span.End()

	progress, err := handler.analyzer.Progress(ctx)
	if err != nil {
		log.Errorf("failed to get skills progress: %s", err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(progress)
	if err != nil {
		log.Errorf("failed to marshal skills progress: %s", err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleTotalProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skills.totalProgress")
	defer span.End()

	total, err := handler.analyzer.Total(ctx)
	if err != nil {
		log.Errorf("failed to get total progress: %s", err)
		http.Error(w, "failed to get total progress", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(total)
	if err != nil {
		log.Errorf("failed to marshal total progress: %s", err)
		http.Error(w, "failed to get total progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
