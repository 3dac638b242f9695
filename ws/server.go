// Package ws is the websocket gateway of the coordination core: it upgrades
// connections, decodes inbound frames, and exposes the small REST surface
// for health and alert triage.
package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ramyaaaa4/sign-language-recognition/auth"
	"github.com/ramyaaaa4/sign-language-recognition/internal"
	"github.com/ramyaaaa4/sign-language-recognition/repositories"
	"github.com/ramyaaaa4/sign-language-recognition/services"
	"github.com/ramyaaaa4/sign-language-recognition/sink"
)

type Server struct {
	log     *slog.Logger
	service services.ICareService
	alerts  repositories.IAlertRepository
	cfg     internal.Config

	upgrader websocket.Upgrader
}

func NewServer(log *slog.Logger, service services.ICareService,
	alerts repositories.IAlertRepository, cfg internal.Config) *Server {
	return &Server{
		log:     log,
		service: service,
		alerts:  alerts,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin filtering is handled by the CORS layer; the upgrade
			// itself accepts any origin, as the original gateway did.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router registers all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{s.cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: s.cfg.AllowedOrigin != "*",
	}
	r.Use(cors.New(corsConfig))

	r.GET("/ws", s.handleWS)
	r.GET("/api/health", s.handleHealth)

	protected := r.Group("/api")
	protected.Use(s.tokenAuthMiddleware())
	{
		protected.GET("/alerts/doctor", s.handleDoctorAlerts)
		protected.GET("/alerts/patient/:patientId", s.handlePatientAlerts)
		protected.PUT("/alerts/:alertId/handle", s.handleAlertHandled)
	}

	return r
}

// handleWS upgrades the connection, mints the connection id, attaches the
// delivery sink, and runs the two pumps until the peer goes away. A token
// in the query string, when present, pins the connection's identity.
func (s *Server) handleWS(c *gin.Context) {
	var claims *auth.Claims
	if token := c.Query("token"); token != "" {
		parsed, err := auth.ValidateToken(token, []byte(s.cfg.JWTSecret))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}
		claims = parsed
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	connID := uuid.NewString()
	wsSink := sink.NewWsSink(s.log, s.cfg.ConnectionBufferSize, s.cfg.SinkTimeout)
	s.service.Attach(connID, wsSink)
	s.log.Info("connection attached", "conn_id", connID)

	cl := &client{
		id:      connID,
		conn:    conn,
		sink:    wsSink,
		service: s.service,
		claims:  claims,
		log:     s.log,
	}
	// The request context dies when this handler returns; the pumps live
	// until the transport closes.
	go cl.writePump()
	go cl.readPump(context.Background())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": nowISO(),
	})
}
