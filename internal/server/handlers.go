package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/chainviz/pkg/array"
	"github.com/matzehuels/chainviz/pkg/buildinfo"
	"github.com/matzehuels/chainviz/pkg/errors"
	pkgio "github.com/matzehuels/chainviz/pkg/io"
	"github.com/matzehuels/chainviz/pkg/pipeline"
	"github.com/matzehuels/chainviz/pkg/signal"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
	pipeline.FormatPDF: "application/pdf",
	pipeline.FormatDOT: "text/vnd.graphviz; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": buildinfo.Get().Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	engine := q.Get("engine")
	if engine == "" {
		engine = s.cfg.Render.Engine
	}
	scale := s.cfg.Render.Scale
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "scale %q is not a number", v))
			return
		}
		scale = f
	}

	chain, err := pkgio.ReadChain(r.Body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Chain:       chain,
		Formats:     []string{format},
		Engine:      engine,
		Scale:       scale,
		Transparent: q.Get("transparent") == "true",
		Logger:      s.logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheState := "miss"
	if res.CacheHit {
		cacheState = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheState)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

type smoothRequest struct {
	Signal    []float64 `json:"signal"`
	WindowLen *int      `json:"window_len,omitempty"`
	Window    string    `json:"window,omitempty"`
}

type smoothResponse struct {
	Signal  []float64       `json:"signal"`
	Summary *signal.Summary `json:"summary,omitempty"`
}

func (s *Server) handleSmooth(w http.ResponseWriter, r *http.Request) {
	var req smoothRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Signal == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "signal is required"))
		return
	}

	windowLen := s.cfg.Smooth.WindowLen
	if req.WindowLen != nil {
		windowLen = *req.WindowLen
	}
	window := req.Window
	if window == "" {
		window = s.cfg.Smooth.Window
	}

	y, hit, err := s.runner.Smooth(r.Context(), req.Signal, windowLen, window)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := smoothResponse{Signal: y}
	if sum, err := signal.Summarize(y); err == nil {
		resp.Summary = &sum
	}
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	writeJSON(w, http.StatusOK, resp)
}

type cropRequest struct {
	Arrays []*array.Dense `json:"arrays"`
	Axis   *int           `json:"axis,omitempty"`
}

type cropResponse struct {
	Arrays []*array.Dense `json:"arrays"`
}

func (s *Server) handleCrop(w http.ResponseWriter, r *http.Request) {
	var req cropRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	axis := array.DefaultAxis
	if req.Axis != nil {
		axis = *req.Axis
	}
	for i, a := range req.Arrays {
		if a == nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "array %d is null", i))
			return
		}
	}

	out, err := array.CropToMinSize(req.Arrays, axis)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cropResponse{Arrays: out})
}

// =============================================================================
// Encoding Helpers
// =============================================================================

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := http.StatusInternalServerError
	if errors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", RequestIDFrom(r.Context()))
	}
	writeJSON(w, status, errorBody{Code: code, Message: errors.UserMessage(err)})
}
