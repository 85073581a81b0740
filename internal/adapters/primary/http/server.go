// Package http is the preview server. It serves the generated site from
// the output directory and pushes live-reload events to connected
// browsers when sources change.
package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/fredcamaral/decksite/internal/domain/entities"
	"github.com/fredcamaral/decksite/internal/domain/ports"
)

// HTTPLogger provides structured logging for the HTTP server
type HTTPLogger struct {
	component string
	level     entities.LogLevel
}

// NewHTTPLogger creates a new HTTP logger instance
func NewHTTPLogger(component string, level entities.LogLevel) *HTTPLogger {
	return &HTTPLogger{component: component, level: level}
}

// shouldLog checks if the message should be logged based on level
func (l *HTTPLogger) shouldLog(msgLevel entities.LogLevel) bool {
	levelMap := map[entities.LogLevel]int{
		entities.LogLevelDebug: 0,
		entities.LogLevelInfo:  1,
		entities.LogLevelWarn:  2,
		entities.LogLevelError: 3,
	}
	return levelMap[msgLevel] >= levelMap[l.level]
}

// Debug logs debug messages (only if debug level is enabled)
func (l *HTTPLogger) Debug(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelDebug) {
		log.Printf("[DEBUG] [%s] "+msg, append([]interface{}{l.component}, args...)...)
	}
}

// Info logs informational messages
func (l *HTTPLogger) Info(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelInfo) {
		log.Printf("[INFO] [%s] "+msg, append([]interface{}{l.component}, args...)...)
	}
}

// Warn logs warning messages
func (l *HTTPLogger) Warn(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelWarn) {
		log.Printf("[WARN] [%s] "+msg, append([]interface{}{l.component}, args...)...)
	}
}

// Error logs error messages
func (l *HTTPLogger) Error(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelError) {
		log.Printf("[ERROR] [%s] "+msg, append([]interface{}{l.component}, args...)...)
	}
}

// Server serves the generated site with live reload.
type Server struct {
	server  *http.Server
	hub     *reloadHub
	siteDir string
	config  *entities.ServerConfig
	logger  *HTTPLogger
	mu      sync.RWMutex
	running bool
}

// NewServer creates a preview server for the given output directory.
// config must not be nil - use config.GetDefaultConfig().Server if needed
func NewServer(siteDir string, config *entities.ServerConfig, logging *entities.LoggingConfig) *Server {
	if config == nil {
		panic("server config cannot be nil - provide a valid ServerConfig")
	}

	level := entities.LogLevelInfo
	if logging != nil {
		level = logging.GetLevel()
	}

	return &Server{
		hub:     newReloadHub(),
		siteDir: siteDir,
		config:  config,
		logger:  NewHTTPLogger("server", level),
	}
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context, port int, host string) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}

	go s.hub.Run(ctx)

	router := s.setupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.config.GetCORSOrigins(),
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	})
	handler := c.Handler(router)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  s.config.GetReadTimeout(),
		WriteTimeout: s.config.GetWriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		s.logger.Info("serving %s on http://%s:%d", s.siteDir, host, port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return errors.New("server not running")
	}

	s.hub.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.GetShutdownTimeout())
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.running = false
	return nil
}

// NotifyClients sends an update event to all connected clients
func (s *Server) NotifyClients(event ports.UpdateEvent) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.running {
		return errors.New("server not running")
	}

	s.hub.Broadcast(event)
	return nil
}

// IsRunning returns whether the server is currently running
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ws", s.handleWebSocket)
	router.PathPrefix("/").Handler(s.secureFileServer(s.siteDir))

	handler := securityHeadersMiddleware(router)
	handler = createLoggingMiddleware(handler, s.logger)
	handler = createRecoveryMiddleware(handler, s.logger)

	return handler
}

// secureFileServer serves the generated site and prevents path traversal.
func (s *Server) secureFileServer(root string) http.Handler {
	fs := http.FileServer(http.Dir(root))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cleanPath := filepath.Clean(r.URL.Path)
		if strings.Contains(cleanPath, "..") {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		absRoot, err := filepath.Abs(root)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		absPath, err := filepath.Abs(filepath.Join(root, cleanPath))
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if !strings.HasPrefix(absPath, absRoot) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		// Directory requests fall through to the index.html the generator
		// wrote there; missing files get a plain 404.
		info, err := os.Stat(absPath)
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		if err == nil && !info.IsDir() {
			w.Header().Set("X-Content-Type-Options", "nosniff")
		}

		fs.ServeHTTP(w, r)
	})
}

// Ensure Server implements ports.PreviewServer
var _ ports.PreviewServer = (*Server)(nil)
