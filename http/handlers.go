// http/handlers.go
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ViniZap4/nurse-notes/store"
)

const (
	ServiceName = "Nurse Notes Sample App"
	APIPrefix   = "/api/v1"

	// NotFoundDetail is the body detail for a lookup miss on a single note.
	NotFoundDetail = "Note not found"
)

type Server struct {
	store *store.Store
	log   zerolog.Logger
	app   *fiber.App
}

// ErrorResponse is the body of every error the service writes.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type rootResponse struct {
	Service string `json:"service"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

func NewServer(st *store.Store, log zerolog.Logger) *Server {
	s := &Server{store: st, log: log}

	s.app = fiber.New(fiber.Config{
		AppName:               ServiceName,
		DisableStartupMessage: true,
		UnescapePath:          true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	s.app.Use(requestLogger(log))
	s.app.Use(recover.New())
	s.app.Use(corsMiddleware)

	s.app.Get(APIPrefix+"/notes", s.HandleNotes)
	s.app.Get(APIPrefix+"/notes/:note_id", s.HandleGetNote)
	s.app.Get("/health", s.HandleHealth)
	s.app.Get("/", s.HandleRoot)
	s.app.Get("/openapi.json", s.HandleOpenAPI)
	s.app.Get("/docs", s.HandleDocs)

	return s
}

// App exposes the underlying fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Mount serves a net/http handler under path for every method.
func (s *Server) Mount(path string, h http.Handler) {
	s.app.All(path, adaptor.HTTPHandler(h))
}

// Listen blocks serving on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// HandleNotes handles GET /api/v1/notes
func (s *Server) HandleNotes(c *fiber.Ctx) error {
	return c.JSON(s.store.List())
}

// HandleGetNote handles GET /api/v1/notes/:note_id
func (s *Server) HandleGetNote(c *fiber.Ctx) error {
	note, ok := s.store.Get(c.Params("note_id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Detail: NotFoundDetail})
	}
	return c.JSON(note)
}

func (s *Server) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(rootResponse{
		Service: ServiceName,
		Docs:    "/docs",
		Health:  "/health",
	})
}

// handleError renders routing faults and unexpected errors as a detail body.
// Fiber errors keep their status; anything else is a 500.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		s.log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
	}

	return c.Status(code).JSON(ErrorResponse{Detail: utils.StatusMessage(code)})
}
