package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/matzehuels/gridboard/pkg/buildinfo"
	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/render"
	"github.com/matzehuels/gridboard/pkg/store"
)

type boardSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Boxes     int    `json:"boxes"`
	UpdatedAt string `json:"updated_at"`
}

// createBoardRequest accepts either a full snapshot (with a "board" object)
// or a bare board config.
type createBoardRequest struct {
	board.BoardConfig
	Board          *board.BoardConfig      `json:"board,omitempty"`
	Boxes          []board.BoxSnapshot     `json:"boxes,omitempty"`
	Palletes       []board.PalleteSnapshot `json:"palletes,omitempty"`
	DefaultPallete string                  `json:"default_pallete,omitempty"`
}

type palleteRequest struct {
	ID string `json:"id"`
	board.PalleteConfig
}

type boxRequest struct {
	ID string `json:"id,omitempty"`
	board.BoxConfig
}

type placementResponse struct {
	Box        string    `json:"box"`
	Dimensions grid.Rect `json:"dimensions"`
}

type validateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type transferRequest struct {
	Pallete string `json:"pallete"`
}

type linkRequest struct {
	Partner string `json:"partner"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	entries, err := s.ws.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := lo.Map(entries, func(e store.Entry, _ int) boardSummary {
		return boardSummary{ID: e.ID, Name: e.Name, Boxes: e.Boxes, UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339)}
	})
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	var snap board.Snapshot
	if req.Board != nil {
		snap = board.Snapshot{
			Board:          *req.Board,
			Boxes:          req.Boxes,
			Palletes:       req.Palletes,
			DefaultPallete: req.DefaultPallete,
		}
	} else if len(req.Boxes) > 0 || len(req.Palletes) > 0 || req.DefaultPallete != "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidArgument,
			"boxes, palletes and default_pallete require a \"board\" object"))
		return
	} else {
		b, err := board.New(req.BoardConfig)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		snap = b.Snapshot()
	}

	out, err := s.ws.Create(r.Context(), snap)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.ws.Get(r.Context(), chi.URLParam(r, "board"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := s.ws.Delete(r.Context(), chi.URLParam(r, "board")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	snap, err := s.ws.Get(r.Context(), chi.URLParam(r, "board"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	opts := []render.SVGOption{render.WithLinks()}
	if q.Get("grid") != "" {
		opts = append(opts, render.WithGrid())
	}
	if q.Get("palletes") == "false" {
		opts = append(opts, render.WithoutPalletes())
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(render.SVG(snap, opts...))
}

func (s *Server) handleAddPallete(w http.ResponseWriter, r *http.Request) {
	var req palleteRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "board")
	if err := s.ws.AddPallete(r.Context(), id, req.ID, req.PalleteConfig); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": req.ID})
}

func (s *Server) handleAddBox(w http.ResponseWriter, r *http.Request) {
	var req boxRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	bs, err := s.ws.AddBox(r.Context(), chi.URLParam(r, "board"), req.ID, req.BoxConfig)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, bs)
}

func (s *Server) handleRemoveBox(w http.ResponseWriter, r *http.Request) {
	if err := s.ws.RemoveBox(r.Context(), chi.URLParam(r, "board"), chi.URLParam(r, "box")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleValidate checks a grid rectangle for the box without changing
// anything. A rejection is a 200 with valid=false.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var rect grid.Rect
	if err := decode(w, r, &rect); err != nil {
		s.writeError(w, r, err)
		return
	}
	ok, err := s.ws.Validate(r.Context(), chi.URLParam(r, "board"), chi.URLParam(r, "box"), rect)
	if err != nil && !errors.Is(err, errors.ErrCodeRejectedPlacement) {
		s.writeError(w, r, err)
		return
	}
	resp := validateResponse{Valid: ok}
	if err != nil {
		resp.Reason = errors.UserMessage(err)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var px grid.PixelRect
	if err := decode(w, r, &px); err != nil {
		s.writeError(w, r, err)
		return
	}
	boxID := chi.URLParam(r, "box")
	rect, err := s.ws.Resize(r.Context(), chi.URLParam(r, "board"), boxID, px)
	s.respondPlacement(w, r, boxID, rect, err)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var pt grid.PixelPoint
	if err := decode(w, r, &pt); err != nil {
		s.writeError(w, r, err)
		return
	}
	boxID := chi.URLParam(r, "box")
	rect, err := s.ws.Move(r.Context(), chi.URLParam(r, "board"), boxID, pt)
	s.respondPlacement(w, r, boxID, rect, err)
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var px grid.PixelRect
	if err := decode(w, r, &px); err != nil {
		s.writeError(w, r, err)
		return
	}
	boxID := chi.URLParam(r, "box")
	rect, err := s.ws.Place(r.Context(), chi.URLParam(r, "board"), boxID, px)
	s.respondPlacement(w, r, boxID, rect, err)
}

func (s *Server) respondPlacement(w http.ResponseWriter, r *http.Request, boxID string, rect grid.Rect, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, placementResponse{Box: boxID, Dimensions: rect})
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := s.ws.Transfer(r.Context(), chi.URLParam(r, "board"), chi.URLParam(r, "box"), req.Pallete)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, transferRequest{Pallete: id})
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.ws.Link(r.Context(), chi.URLParam(r, "board"), chi.URLParam(r, "box"), req.Partner); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
