package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	sse "github.com/r3labs/sse/v2"

	"github.com/lumeaddon/lume/internal/models"
	"github.com/lumeaddon/lume/internal/profile"
)

const applyStream = "apply"

type profileStore interface {
	Save(p models.Profile) (string, error)
	Latest() (*models.Profile, error)
	Revisions() ([]profile.Revision, error)
}

type documentAssembler interface {
	Assemble(p models.Profile) ([]byte, error)
}

type packagePublisher interface {
	EnsurePackagesEnabled() error
	Write(relPath string, doc []byte) (string, error)
}

// Server is the add-on HTTP API: the form collaborator saves profiles,
// applies them, previews mode timelines and follows apply progress
// over SSE.
type Server struct {
	logger    *log.Logger
	store     profileStore
	assembler documentAssembler
	publisher packagePublisher
	events    *sse.Server
}

func NewServer(logger *log.Logger, store profileStore, assembler documentAssembler, publisher packagePublisher) *Server {
	events := sse.New()
	events.AutoReplay = false
	events.CreateStream(applyStream)

	return &Server{
		logger:    logger,
		store:     store,
		assembler: assembler,
		publisher: publisher,
		events:    events,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/profile", s.handleGetProfile)
	r.Put("/api/profile", s.handleSaveProfile)
	r.Get("/api/revisions", s.handleRevisions)
	r.Post("/api/apply", s.handleApply)
	r.Post("/api/preview", s.handlePreview)
	r.Get("/api/events", s.events.ServeHTTP)

	return r
}
