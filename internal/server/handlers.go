package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/mosaic/pkg/buildinfo"
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

const (
	headerID   = "X-Mosaic-ID"
	headerSeed = "X-Mosaic-Seed"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type mosaicResponse struct {
	ID        string            `json:"id"`
	Seed      uint64            `json:"seed"`
	Rows      int               `json:"rows"`
	Columns   int               `json:"columns"`
	Small     int               `json:"small"`
	Tall      int               `json:"tall"`
	Wide      int               `json:"wide"`
	Attempts  int               `json:"attempts,omitempty"`
	Cached    bool              `json:"cached"`
	Artifacts map[string]string `json:"artifacts"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

// handleGet renders a single format chosen by ?format= (default json).
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	opts, err := s.optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(headerID, result.ID.String())
	w.Header().Set(headerSeed, strconv.FormatUint(result.Seed, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// handlePost accepts pipeline.Options as JSON and returns every requested
// artifact in one envelope.
func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "decode request body: %v", err))
		return
	}
	opts := s.overlayDefaults(req)

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := mosaicResponse{
		ID:        result.ID.String(),
		Seed:      result.Seed,
		Rows:      result.Layout.Rows,
		Columns:   result.Layout.Columns,
		Small:     result.Layout.Small,
		Tall:      result.Layout.Tall,
		Wide:      result.Layout.Wide,
		Attempts:  result.Stats.Attempts,
		Cached:    result.CacheHit,
		Artifacts: make(map[string]string, len(result.Artifacts)),
	}
	for format, data := range result.Artifacts {
		resp.Artifacts[format] = string(data)
	}
	w.Header().Set(headerID, resp.ID)
	writeJSON(w, http.StatusOK, resp)
}

// overlayDefaults fills the fields a request body left unset from the server
// defaults. The body is decoded into its own Options so that decoding never
// writes through the defaults' pointers.
func (s *Server) overlayDefaults(req pipeline.Options) pipeline.Options {
	d := s.defaults
	if req.TallRate == nil {
		req.TallRate = d.TallRate
	}
	if req.WideRate == nil {
		req.WideRate = d.WideRate
	}
	if req.MaxFillRetries == 0 {
		req.MaxFillRetries = d.MaxFillRetries
	}
	if req.CellSize == 0 {
		req.CellSize = d.CellSize
	}
	if req.Gap == nil {
		req.Gap = d.Gap
	}
	if len(req.Formats) == 0 {
		req.Formats = []string{pipeline.FormatJSON}
	}
	req.Labels = req.Labels || d.Labels
	if req.Title == "" {
		req.Title = d.Title
	}
	req.Logger = d.Logger
	return req
}

// optionsFromQuery overlays query parameters on the server defaults.
func (s *Server) optionsFromQuery(q url.Values) (pipeline.Options, error) {
	opts := s.defaults
	var err error

	if opts.Tiles, err = intParam(q, "tiles", 0); err != nil {
		return opts, err
	}
	if opts.Columns, err = intParam(q, "columns", 0); err != nil {
		return opts, err
	}
	if opts.MaxFillRetries, err = intParam(q, "retries", opts.MaxFillRetries); err != nil {
		return opts, err
	}
	if opts.TallRate, err = rateParam(q, "tall_rate", opts.TallRate); err != nil {
		return opts, err
	}
	if opts.WideRate, err = rateParam(q, "wide_rate", opts.WideRate); err != nil {
		return opts, err
	}
	if v := q.Get("seed"); v != "" {
		if opts.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidArgument, err, "parse seed %q", v)
		}
	}
	opts.Labels = opts.Labels || q.Has("labels")
	if v := q.Get("title"); v != "" {
		opts.Title = v
	}

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, err
	}
	opts.Formats = []string{format}
	return opts, nil
}

func intParam(q url.Values, name string, fallback int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidArgument, err, "parse %s %q", name, v)
	}
	return n, nil
}

func rateParam(q url.Values, name string, fallback *float64) (*float64, error) {
	v := q.Get(name)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "parse %s %q", name, v)
	}
	return pipeline.Float(f), nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeRetriesExhausted):
		return http.StatusUnprocessableEntity
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case stderrors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" && (stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled)) {
		code = errors.ErrCodeCanceled
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
