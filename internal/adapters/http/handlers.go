// Package httpadapter exposes the engine as a JSON API. The interactive
// grid UI is a separate client; this API is the boundary it calls.
package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid/v5"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/solver"
	"svw.info/gridlock/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.handleGenerate)
		r.Post("/solve", h.handleSolve)
		r.Post("/validate", h.handleValidate)
		r.Post("/place", h.handlePlace)
		r.Post("/hint", h.handleHint)
		r.Post("/unique", h.handleUnique)
		r.Post("/puzzles", h.handleSave)
		r.Get("/puzzles", h.handleList)
		r.Get("/puzzles/{id}", h.handleLoad)
	})
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, map[string]string{"error": err.Error()})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board"`
	Seed       int64        `json:"seed"`
	Difficulty string       `json:"difficulty"`
	DurationMs int64        `json:"durationMs"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, generateResp{
		Board:      p.Board,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}

type solveResp struct {
	Solved     bool        `json:"solved"`
	Board      [9][9]uint8 `json:"board,omitempty"`
	Revisions  int         `json:"revisions"`
	Nodes      int         `json:"nodes"`
	DurationMs int64       `json:"durationMs"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	out, st, err := h.UC.Solve(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		// Unsolvable is a negative answer, not a server fault.
		if errors.Is(err, solver.ErrUnsolvable) {
			render.JSON(w, r, solveResp{
				Solved:     false,
				Revisions:  st.Revisions,
				Nodes:      st.Nodes,
				DurationMs: st.Duration.Milliseconds(),
			})
			return
		}
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, solveResp{
		Solved:     true,
		Board:      out.Values,
		Revisions:  st.Revisions,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Place (live input validation) ----

type placeReq struct {
	Board [9][9]uint8 `json:"board"`
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Value uint8       `json:"value"`
}

type placeResp struct {
	OK bool `json:"ok"`
}

func (h *Handler) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if req.Row < 0 || req.Row > 8 || req.Col < 0 || req.Col > 8 {
		badRequest(w, r, "row and col must be in 0..8")
		return
	}
	if req.Value < 1 || req.Value > 9 {
		badRequest(w, r, "value must be in 1..9")
		return
	}
	b := &domain.Board{Values: req.Board}
	render.JSON(w, r, placeResp{OK: h.UC.CheckPlacement(b, req.Row, req.Col, req.Value)})
}

// ---- Hint ----

type hintReq struct {
	Board   [9][9]uint8 `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch s {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	case "xwing":
		return domain.StrategyXWing
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), &domain.Board{Values: req.Board}, parseTier(req.MaxTier))
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, hintResp{Found: ok, Hint: hh})
}

// ---- Unique ----

type uniqueReq struct {
	Board [9][9]uint8 `json:"board"`
}

type uniqueResp struct {
	Unique bool `json:"unique"`
	Nodes  int  `json:"nodes"`
}

func (h *Handler) handleUnique(w http.ResponseWriter, r *http.Request) {
	var req uniqueReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	ok, st, err := h.UC.Unique(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, uniqueResp{Unique: ok, Nodes: st.Nodes})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := render.DecodeJSON(r.Body, &p); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV4()).String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, saveResp{ID: p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		badRequest(w, r, "missing id")
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"error": "puzzle not found"})
			return
		}
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, p)
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, listResp{Puzzles: ps})
}
