package recommend

import (
	"net/http"
	"time"

	core "plant-advisor/internal/core/recommend"
	"plant-advisor/internal/core/report"
	"plant-advisor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecommendationResponse is the body returned by the recommendation API.
type RecommendationResponse struct {
	RequestID       string                     `json:"request_id"`
	Recommendations []core.PlantRecommendation `json:"recommendations"`
	Environment     interface{}                `json:"environment"`
	QualitySummary  map[string]string          `json:"quality_summary"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}

// SummaryRequest wraps recommendation records for the report endpoint.
type SummaryRequest struct {
	Recommendations []core.PlantRecommendation `json:"recommendations" binding:"required"`
}

func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

func validateRequest(req *core.Request) (string, bool) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return common.ErrInvalidCoordinates.Error(), false
	}
	if !req.Goal.Valid() {
		return common.ErrInvalidGoal.Error(), false
	}
	return "", true
}

// HandleRecommendations runs the full pipeline for POST /recommendations.
func HandleRecommendations(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := ensureRequestID(c)

		var req core.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogError("Invalid request format",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if msg, ok := validateRequest(&req); !ok {
			common.LogWarn("Request validation failed",
				zap.String("reason", msg),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		common.LogInfo("Processing recommendation request",
			zap.String("request_id", requestID),
			zap.Float64("latitude", req.Latitude),
			zap.Float64("longitude", req.Longitude),
			zap.String("goal", string(req.Goal)),
			zap.String("client_ip", c.ClientIP()),
		)

		start := time.Now()
		records, profile := svc.Recommend(c.Request.Context(), &req)

		common.LogInfo("Recommendation request completed",
			zap.String("request_id", requestID),
			zap.Int("count", len(records)),
			zap.Duration("duration", time.Since(start)),
		)

		c.JSON(http.StatusOK, RecommendationResponse{
			RequestID:       requestID,
			Recommendations: records,
			Environment:     profile,
			QualitySummary:  profile.QualitySummary(),
			GeneratedAt:     time.Now(),
		})
	}
}

// HandleEnvironmentPreview builds the environmental profile without
// calling the model, for POST /environment/preview.
func HandleEnvironmentPreview(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := ensureRequestID(c)

		var req core.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogError("Invalid request format",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if msg, ok := validateRequest(&req); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		profile := svc.BuildProfile(c.Request.Context(), &req)

		c.JSON(http.StatusOK, gin.H{
			"request_id":      requestID,
			"environment":     profile,
			"quality_summary": profile.QualitySummary(),
		})
	}
}

// HandleReportSummary aggregates recommendation records into the numeric
// roll-up, for POST /report/summary.
func HandleReportSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := ensureRequestID(c)

		var req SummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogError("Invalid request format",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		summary := report.Summarize(req.Recommendations)

		c.JSON(http.StatusOK, gin.H{
			"request_id": requestID,
			"summary":    summary,
		})
	}
}
