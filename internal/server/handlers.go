package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	sse "github.com/r3labs/sse/v2"
	"github.com/spf13/viper"

	"github.com/lumeaddon/lume/internal/models"
	"github.com/lumeaddon/lume/internal/modes"
	"github.com/lumeaddon/lume/internal/profile"
	"github.com/lumeaddon/lume/internal/publish"
)

// Error is the structured failure body handed back to the form UI.
type Error struct {
	Status int    `json:"status"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	p, err := s.store.Latest()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "", err.Error())
		return
	}
	if p == nil {
		s.writeError(w, http.StatusNotFound, "", "no profile saved yet")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "", "request body is not a valid profile")
		return
	}

	if err := profile.Validate(p); err != nil {
		s.writeFailure(w, err)
		return
	}

	id, err := s.store.Save(p)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"revision": id})
}

func (s *Server) handleRevisions(w http.ResponseWriter, _ *http.Request) {
	revisions, err := s.store.Revisions()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, revisions)
}

// handleApply runs the whole validate, assemble, persist sequence for
// the latest saved profile. One submission, one synchronous pipeline;
// racing tabs are last-write-wins.
func (s *Server) handleApply(w http.ResponseWriter, _ *http.Request) {
	p, err := s.store.Latest()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "", err.Error())
		return
	}
	if p == nil {
		s.writeError(w, http.StatusBadRequest, "", "save a profile before applying")
		return
	}

	s.progress("assembling")
	doc, err := s.assembler.Assemble(*p)
	if err != nil {
		s.progress("error")
		s.writeFailure(w, err)
		return
	}

	s.progress("checking destination")
	if err := s.publisher.EnsurePackagesEnabled(); err != nil {
		s.progress("error")
		s.writeError(w, http.StatusBadRequest, "", err.Error())
		return
	}

	relPath := p.PackagePath
	if relPath == "" {
		relPath = viper.GetString("packagePath")
	}

	s.progress("writing")
	path, err := s.publisher.Write(relPath, doc)
	if err != nil {
		s.progress("error")
		s.writeFailure(w, err)
		return
	}

	s.progress("done")
	writeJSON(w, http.StatusOK, map[string]string{
		"path":    path,
		"message": fmt.Sprintf("Wrote %s. Reload automations (and helpers if needed), or restart Home Assistant on first use of packages.", path),
	})
}

type previewRequest struct {
	Profile     *models.Profile       `json:"profile"`
	InitialMode models.Mode           `json:"initialMode"`
	Timeline    []modes.TimedSnapshot `json:"timeline"`
}

// handlePreview replays a signal timeline through the pure mode
// machine so the UI can show which modes would commit and when,
// without touching Home Assistant.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "", "request body is not a valid preview request")
		return
	}

	p := req.Profile
	if p == nil {
		latest, err := s.store.Latest()
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, "", err.Error())
			return
		}
		if latest == nil {
			s.writeError(w, http.StatusBadRequest, "", "no profile to preview")
			return
		}
		p = latest
	}

	if err := profile.Validate(*p); err != nil {
		s.writeFailure(w, err)
		return
	}

	initial := req.InitialMode
	if initial == "" {
		initial = models.ModeAway
	}

	machine := modes.NewMachine(*p)
	writeJSON(w, http.StatusOK, machine.Simulate(initial, req.Timeline))
}

func (s *Server) progress(stage string) {
	payload, _ := json.Marshal(map[string]string{"stage": stage})
	s.events.Publish(applyStream, &sse.Event{Data: payload})
}

// writeFailure maps typed core errors onto HTTP statuses.
func (s *Server) writeFailure(w http.ResponseWriter, err error) {
	var validation *profile.ValidationError
	if errors.As(err, &validation) {
		s.writeError(w, http.StatusBadRequest, validation.Field, validation.Reason)
		return
	}

	var persistence *publish.PersistenceError
	if errors.As(err, &persistence) {
		s.writeError(w, http.StatusInternalServerError, "", persistence.Error())
		return
	}

	s.writeError(w, http.StatusInternalServerError, "", err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, field, reason string) {
	if status >= http.StatusInternalServerError {
		s.logger.Error(reason)
	}
	writeJSON(w, status, Error{Status: status, Field: field, Reason: reason})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}
