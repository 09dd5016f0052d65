package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokuweb/internal/domain"
	"svw.info/sudokuweb/internal/usecase"
)

type Handler struct {
	UC  *usecase.Service
	Log *logrus.Logger
}

func New(uc *usecase.Service, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{UC: uc, Log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new-game", h.handleNewGame)
	mux.HandleFunc("/api/hints", h.handleHints)
	mux.HandleFunc("/api/check", h.handleCheck)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
}

// parseBoard converts a row-slice payload into a Board, rejecting wrong
// dimensions before the core sees the input. Digit range is checked
// later by the validator.
func parseBoard(rows [][]int) (*domain.Board, error) {
	if len(rows) != 9 {
		return nil, fmt.Errorf("board has %d rows, want 9", len(rows))
	}
	var b domain.Board
	for r, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("board row %d has %d cells, want 9", r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("cell (%d,%d) holds %d, not a digit", r, c, v)
			}
			b.Values[r][c] = uint8(v)
		}
	}
	return &b, nil
}

func parseRemovals(rows [][][]int) ([9][9][]uint8, error) {
	var out [9][9][]uint8
	if rows == nil {
		return out, nil
	}
	if len(rows) != 9 {
		return out, fmt.Errorf("manual_removals has %d rows, want 9", len(rows))
	}
	for r, row := range rows {
		if len(row) != 9 {
			return out, fmt.Errorf("manual_removals row %d has %d cells, want 9", r, len(row))
		}
		for c, cell := range row {
			for _, v := range cell {
				if v >= 1 && v <= 9 {
					out[r][c] = append(out[r][c], uint8(v))
				}
			}
		}
	}
	return out, nil
}

// ---- New game ----

type newGameResp struct {
	ID            string      `json:"id,omitempty"`
	Board         [9][9]uint8 `json:"board"`
	OriginalBoard [9][9]uint8 `json:"original_board"`
	Solution      [9][9]uint8 `json:"solution"`
	Difficulty    string      `json:"difficulty,omitempty"`
	Seed          int64       `json:"seed,omitempty"`
	DurationMs    int64       `json:"durationMs,omitempty"`
	Nodes         int         `json:"nodes,omitempty"`
	Error         string      `json:"error,omitempty"`
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	raw := r.URL.Query().Get("difficulty")
	diff := domain.ParseDifficulty(raw)
	if raw != "" && !strings.EqualFold(strings.TrimSpace(raw), diff.String()) {
		h.Log.WithField("difficulty", raw).Debug("unrecognized difficulty, defaulting to medium")
	}
	seed := time.Now().UnixNano()
	p, st, err := h.UC.NewGame(r.Context(), seed, diff)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(newGameResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(newGameResp{
		ID:            p.ID,
		Board:         p.Original.Values, // == original at creation time
		OriginalBoard: p.Original.Values,
		Solution:      p.Solution.Values,
		Difficulty:    diff.String(),
		Seed:          seed,
		DurationMs:    st.Duration.Milliseconds(),
		Nodes:         st.Nodes,
	})
}

// ---- Hints ----

type hintsReq struct {
	Board          [][]int   `json:"board"`
	ManualRemovals [][][]int `json:"manual_removals,omitempty"`
}
type hintsResp struct {
	Hints [9][9][]int `json:"hints,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintsResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := parseBoard(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintsResp{Error: err.Error()})
		return
	}
	removals, err := parseRemovals(req.ManualRemovals)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintsResp{Error: err.Error()})
		return
	}
	marks, err := h.UC.Hints(r.Context(), b, removals)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintsResp{Error: err.Error()})
		return
	}
	var out [9][9][]int
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			digits := marks[row][col].Digits()
			cell := make([]int, 0, len(digits))
			for _, d := range digits {
				cell = append(cell, int(d))
			}
			out[row][col] = cell
		}
	}
	_ = json.NewEncoder(w).Encode(hintsResp{Hints: out})
}

// ---- Check ----

type checkReq struct {
	ID    string  `json:"id,omitempty"`
	Board [][]int `json:"board"`
}
type checkResp struct {
	Solved bool   `json:"solved"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := parseBoard(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: err.Error()})
		return
	}
	solved, err := h.UC.Check(r.Context(), req.ID, b)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, usecase.ErrGameNotFound) {
			code = http.StatusNotFound
		}
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(checkResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(checkResp{Solved: solved})
}

// ---- Solve ----

type solveReq struct {
	Board [][]int `json:"board"`
}
type solveResp struct {
	Board      [9][9]uint8 `json:"board,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in, err := parseBoard(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{Board: out.Values, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateReq struct {
	Board [][]int `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := parseBoard(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}
