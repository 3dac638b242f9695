package ws

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ramyaaaa4/sign-language-recognition/auth"
	"github.com/ramyaaaa4/sign-language-recognition/domain"
	"github.com/ramyaaaa4/sign-language-recognition/repositories"
)

const claimsKey = "claims"

// tokenAuthMiddleware guards the REST surface. The websocket path has its
// own token handling at upgrade time.
func (s *Server) tokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}
		claims, err := auth.ValidateToken(token, []byte(s.cfg.JWTSecret))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

type alertResponse struct {
	ID         uuid.UUID        `json:"id"`
	PatientID  string           `json:"patientId"`
	Type       domain.AlertKind `json:"type"`
	Emotion    string           `json:"emotion,omitempty"`
	Confidence float64          `json:"confidence,omitempty"`
	Message    string           `json:"message,omitempty"`
	Severity   domain.Severity  `json:"severity"`
	Timestamp  time.Time        `json:"timestamp"`
	Handled    bool             `json:"handled"`
}

// handleDoctorAlerts lists the most recent unhandled alerts for the triage
// panel. Doctors only.
func (s *Server) handleDoctorAlerts(c *gin.Context) {
	claims := c.MustGet(claimsKey).(*auth.Claims)
	if claims.Role != domain.RoleDoctor {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}

	alerts, err := s.alerts.ListUnhandled(s.cfg.AlertListLimit)
	if err != nil {
		s.log.Error("alert listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, lo.Map(alerts, func(item repositories.StoredAlert, _ int) alertResponse {
		return alertResponse{
			ID:         item.ID,
			PatientID:  item.PatientID,
			Type:       item.Kind,
			Emotion:    item.Emotion,
			Confidence: item.Confidence,
			Message:    item.Message,
			Severity:   item.Severity,
			Timestamp:  item.At,
			Handled:    item.Handled,
		}
	}))
}

// patientHistoryLimit caps the per-patient alert history response.
const patientHistoryLimit = 20

// handlePatientAlerts lists a patient's alert history, handled ones included.
// Any authenticated caller may read it.
func (s *Server) handlePatientAlerts(c *gin.Context) {
	alerts, err := s.alerts.ListByPatient(c.Param("patientId"), patientHistoryLimit)
	if err != nil {
		s.log.Error("patient alert listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, lo.Map(alerts, func(item repositories.StoredAlert, _ int) alertResponse {
		return alertResponse{
			ID:         item.ID,
			PatientID:  item.PatientID,
			Type:       item.Kind,
			Emotion:    item.Emotion,
			Confidence: item.Confidence,
			Message:    item.Message,
			Severity:   item.Severity,
			Timestamp:  item.At,
			Handled:    item.Handled,
		}
	}))
}

type handleAlertRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// handleAlertHandled marks an alert as taken care of by the calling doctor.
func (s *Server) handleAlertHandled(c *gin.Context) {
	claims := c.MustGet(claimsKey).(*auth.Claims)
	if claims.Role != domain.RoleDoctor {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}

	alertID, err := uuid.Parse(c.Param("alertId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid alert id"})
		return
	}

	var body handleAlertRequest
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	stored, err := s.alerts.MarkHandled(alertID, claims.UserID, body.Notes, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, stored)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
