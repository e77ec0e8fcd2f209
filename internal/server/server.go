// Package server hosts a local OpenAI-compatible chat completions endpoint
// backed by any provider.Provider. It lets the pipeline run end to end
// without a live network.
package server

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/gptpipe/gptpipe/internal/provider"
)

// Reply forces the endpoint to answer with a fixed status and body.
type Reply struct {
	Status int
	Body   string
}

type Server struct {
	engine  *gin.Engine
	backend provider.Provider

	mu       sync.Mutex
	reply    *Reply
	requests []Recorded
	hold     chan struct{}
}

// Recorded is a request as seen by the endpoint.
type Recorded struct {
	Authorization string
	RequestID     string
	ContentType   string
	Request       provider.ChatRequest
}

func New(backend provider.Provider) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	srv := &Server{engine: r, backend: backend}
	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/v1")
	api.POST("/chat/completions", s.chatCompletion)
}

// Handler exposes the endpoint for httptest.NewServer.
func (s *Server) Handler() http.Handler { return s.engine }

// Script makes every following call return r instead of asking the backend.
func (s *Server) Script(r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply = &r
}

// Hold blocks every following call until the returned func is invoked.
func (s *Server) Hold() (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.hold = ch
	s.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

func (s *Server) chatCompletion(c *gin.Context) {
	var req provider.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Recorded{
		Authorization: c.GetHeader("Authorization"),
		RequestID:     c.GetHeader("X-Request-Id"),
		ContentType:   c.GetHeader("Content-Type"),
		Request:       req,
	})
	reply, hold := s.reply, s.hold
	s.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-c.Request.Context().Done():
			return
		}
	}

	if !strings.HasPrefix(c.GetHeader("Authorization"), "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "No auth credentials found", "code": 401}})
		return
	}

	if reply != nil {
		c.Data(reply.Status, "application/json", []byte(reply.Body))
		return
	}

	raw, err := s.backend.Send(c.Request.Context(), &req, strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(raw.StatusCode, "application/json", raw.Body)
}
