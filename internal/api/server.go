// Package api serves brick lookups over HTTP for external catalog
// tooling that does not link the tiling library directly.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/banshee-data/skybricks/internal/brick"
)

// ANSI escape codes for cyan and reset
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

type Server struct {
	tiling *brick.Tiling
}

func NewServer(tiling *brick.Tiling) *Server {
	return &Server{tiling: tiling}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// LoggingMiddleware logs method, path, query, status, and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/brick", s.showBrick)
	mux.HandleFunc("/api/bricks", s.showBricks)
	mux.HandleFunc("/api/tiling", s.showTiling)
	return mux
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// lookupStatus maps coordinate-contract violations to 400 and anything
// else to 500; lookups on a built tiling are otherwise total.
func lookupStatus(err error) int {
	var oor *brick.OutOfRangeError
	if errors.As(err, &oor) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// BrickAPI is the JSON shape of one brick lookup.
type BrickAPI struct {
	Name     string         `json:"brickname"`
	ID       int            `json:"brickid"`
	Q        int            `json:"brickq"`
	Row      int            `json:"brickrow"`
	Col      int            `json:"brickcol"`
	RA       float64        `json:"ra"`
	Dec      float64        `json:"dec"`
	Vertices brick.Vertices `json:"vertices"`
	Area     float64        `json:"area"`
}

func (s *Server) lookup(ra, dec float64) (BrickAPI, error) {
	row, col, err := s.tiling.Locate(ra, dec)
	if err != nil {
		return BrickAPI{}, err
	}
	name, err := s.tiling.Name(ra, dec)
	if err != nil {
		return BrickAPI{}, err
	}
	id, err := s.tiling.ID(ra, dec)
	if err != nil {
		return BrickAPI{}, err
	}
	q, err := s.tiling.Quadrant(ra, dec)
	if err != nil {
		return BrickAPI{}, err
	}
	verts, err := s.tiling.BrickVertices(ra, dec)
	if err != nil {
		return BrickAPI{}, err
	}
	area, err := s.tiling.Area(ra, dec)
	if err != nil {
		return BrickAPI{}, err
	}
	raC, decC, err := s.tiling.Center(ra, dec)
	if err != nil {
		return BrickAPI{}, err
	}
	return BrickAPI{
		Name: name, ID: id, Q: q, Row: row, Col: col,
		RA: raC, Dec: decC, Vertices: verts, Area: area,
	}, nil
}

func (s *Server) showBrick(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	ra, err := strconv.ParseFloat(r.URL.Query().Get("ra"), 64)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid 'ra' parameter")
		return
	}
	dec, err := strconv.ParseFloat(r.URL.Query().Get("dec"), 64)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid 'dec' parameter")
		return
	}

	result, err := s.lookup(ra, dec)
	if err != nil {
		s.writeJSONError(w, lookupStatus(err), err.Error())
		return
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write brick")
		return
	}
}

type batchRequest struct {
	RA  []float64 `json:"ra"`
	Dec []float64 `json:"dec"`
}

func (s *Server) showBricks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.RA) != len(req.Dec) {
		s.writeJSONError(w, http.StatusBadRequest,
			fmt.Sprintf("coordinate length mismatch: %d ra vs %d dec", len(req.RA), len(req.Dec)))
		return
	}

	results := make([]BrickAPI, len(req.RA))
	for i := range req.RA {
		result, err := s.lookup(req.RA[i], req.Dec[i])
		if err != nil {
			s.writeJSONError(w, lookupStatus(err), err.Error())
			return
		}
		results[i] = result
	}

	if err := json.NewEncoder(w).Encode(results); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write bricks")
		return
	}
}

func (s *Server) showTiling(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	meta := map[string]interface{}{
		"bricksize":    s.tiling.Bricksize(),
		"rows":         s.tiling.Rows(),
		"total_bricks": s.tiling.TotalBricks(),
	}

	if err := json.NewEncoder(w).Encode(meta); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write tiling")
		return
	}
}
