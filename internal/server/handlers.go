package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shortlist-hq/shortlist/internal/models"
	"github.com/shortlist-hq/shortlist/internal/pipeline"
	"go.uber.org/zap"
)

// handleProcess accepts a multipart submission with N resumes ("resumes"),
// one job description file ("jobDescription"), and a comma-separated list of
// required terms ("mandatoryFields"). It responds with the ranked JSON array.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	maxBytes := s.config.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	jdFiles := r.MultipartForm.File["jobDescription"]
	if len(jdFiles) == 0 {
		s.respondError(w, http.StatusBadRequest, "jobDescription file is required")
		return
	}
	jdText, err := s.extractUpload(jdFiles[0])
	if err != nil {
		s.logger.Error("job description extraction failed", zap.String("run_id", runID), zap.Error(err))
		s.respondError(w, http.StatusBadRequest, "could not read job description")
		return
	}

	resumeFiles := r.MultipartForm.File["resumes"]
	candidates := make([]models.Candidate, 0, len(resumeFiles))
	for _, fh := range resumeFiles {
		text, err := s.extractUpload(fh)
		if err != nil {
			// One unreadable resume does not fail the run; the candidate is
			// dropped by the pipeline (empty text).
			s.logger.Warn("resume extraction failed",
				zap.String("run_id", runID),
				zap.String("filename", fh.Filename),
				zap.Error(err))
			text = ""
		}
		candidates = append(candidates, models.Candidate{Name: fh.Filename, Text: text})
	}

	spec := models.ParseTerms(r.FormValue("mandatoryFields"))
	s.logger.Debug("scoring run",
		zap.String("run_id", runID),
		zap.Int("resumes", len(candidates)),
		zap.Int("terms", len(spec.Terms)))

	records, err := s.pipeline.Run(r.Context(), models.Reference{Text: jdText}, candidates, spec)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyReference) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("scoring run failed", zap.String("run_id", runID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, records)
}

// extractUpload reads one uploaded file and extracts its plain text based on
// the filename extension.
func (s *Server) extractUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	return s.extractor.ExtractBytes(content, ext)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
