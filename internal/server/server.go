package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/yearfrac/internal/config"
	"github.com/iwvelando/yearfrac/internal/yearfrac"
	"github.com/iwvelando/yearfrac/pkg/constants"
	"github.com/iwvelando/yearfrac/pkg/datetime"
	"github.com/iwvelando/yearfrac/pkg/daycount"
	"github.com/iwvelando/yearfrac/pkg/output"
	"github.com/iwvelando/yearfrac/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the year fraction API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondErrorWithOp(w, http.StatusMethodNotAllowed,
			fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path), "server.methodNotAllowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/conventions", h.handleConventions)
		r.Post("/yearfrac", h.handleYearFraction)
		r.Post("/batch", h.handleBatch)
	})

	return r
}

func (h *handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request served",
			zap.String("op", "server.request"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestID", middleware.GetReqID(r.Context())),
		)
	})
}

type conventionInfo struct {
	Code    int      `json:"code"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

type yearFractionRequest struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Convention string `json:"convention"`
	Signed     bool   `json:"signed"`
	ISDA       bool   `json:"isda"`
}

type batchResponse struct {
	Results  []yearfrac.Result `json:"results"`
	CSV      string            `json:"csv"`
	Warnings []string          `json:"warnings,omitempty"`
	Duration string            `json:"duration"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleConventions(w http.ResponseWriter, r *http.Request) {
	conventions := daycount.Conventions()
	infos := make([]conventionInfo, 0, len(conventions))
	for _, c := range conventions {
		infos = append(infos, conventionInfo{Code: c.Code(), Name: c.String(), Aliases: c.Aliases()})
	}
	h.writeJSON(w, http.StatusOK, infos)
}

func (h *handler) handleYearFraction(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleYearFraction"
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var req yearFractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBodyError(w, err, "failed to decode request", op)
		return
	}

	calc := config.Calculation{
		Name:       "request",
		StartDate:  req.Start,
		EndDate:    req.End,
		Convention: req.Convention,
		Signed:     req.Signed,
		ISDA:       req.ISDA,
	}
	if err := calc.Parse(config.Defaults{Convention: constants.DefaultConvention}); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	result := yearfrac.Evaluate(calc)
	result.StartDate = datetime.FormatDate(calc.Start)
	result.EndDate = datetime.FormatDate(calc.End)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBatch"
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	configBytes, err := h.readBatch(r)
	if err != nil {
		h.respondBodyError(w, err, "failed to read configuration", op)
		return
	}

	conf, err := config.LoadConfigurationFromBytes(configBytes)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := conf.ValidateConfiguration()
	results, err := yearfrac.GetYearFractions(h.logger, *conf)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to compute year fractions: %v", err), op)
		return
	}

	precision := conf.Output.Precision
	if validation.ValidatePrecision(precision) != nil {
		precision = constants.DefaultPrecision
	}
	var csvBuf bytes.Buffer
	if err := output.CsvFormat(&csvBuf, results, precision); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render CSV: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, batchResponse{
		Results:  results,
		CSV:      csvBuf.String(),
		Warnings: warnings,
		Duration: time.Since(start).String(),
	})
}

// readBatch accepts either a multipart upload in the "file" field or the raw
// YAML document as the request body.
func (h *handler) readBatch(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("missing configuration file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.readBatch"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *handler) respondBodyError(w http.ResponseWriter, err error, msg string, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", msg, err), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("year fraction request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
