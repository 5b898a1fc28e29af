package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

// handleScreen runs the scoring pipeline over a multipart batch of resumes.
// Form fields: "jobDescription" (text) and "resumes" (one or more files).
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New()

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
		return
	}

	req := types.ScreenRequest{JobDescription: r.FormValue("jobDescription")}
	if req.JobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "Job description is required")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description must be at most 1000 characters")
		return
	}

	fileHeaders := r.MultipartForm.File["resumes"]
	if len(fileHeaders) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No resumes uploaded")
		return
	}

	files := make([]screening.File, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Failed to open uploaded file %s: %v", header.Filename, err))
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Failed to read uploaded file %s: %v", header.Filename, err))
			return
		}
		files = append(files, screening.File{Name: header.Filename, Data: data})
	}

	log.Printf("[screen] request %s: %d file(s)", requestID, len(files))

	candidates, err := s.screener.Screen(r.Context(), req.JobDescription, files)
	if err != nil {
		if errors.Is(err, screening.ErrNoReadableResumes) {
			s.errorResponse(w, http.StatusBadRequest, "No readable resumes found")
			return
		}
		log.Printf("[screen] request %s failed: %v", requestID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Screening failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ScreenResponse{
		RequestID:  requestID.String(),
		Candidates: candidates,
	})
}

// handleSkills extracts known skill terms from free text for live UI hinting.
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	var req types.SkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Text is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.SkillsResponse{Skills: parsing.ExtractSkills(req.Text)})
}
