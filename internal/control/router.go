package control

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/huanfachen/james-go/pkg/james/search"
)

// SetupRouter builds the gin engine exposing s's status/control surface:
// CORS via an ALLOWED_ORIGINS allowlist, grouped under /api/v1.
func SetupRouter(s *search.Search, hub *Hub) *gin.Engine {
	r := gin.Default()

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowedOrigins == "" || allowedOrigins == "*" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowed := range strings.Split(allowedOrigins, ",") {
				if strings.TrimSpace(allowed) == origin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept-Encoding, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", handleHealth)
		v1.GET("/status", handleStatus(s))
		v1.POST("/stop", handleStop(s))
		v1.GET("/stream", func(c *gin.Context) { hub.Subscribe(c.Writer, c.Request) })
	}

	return r
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "operational"})
}

// handleStatus reports lifecycle state and progress metrics for s.
func handleStatus(s *search.Search) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics := s.GetMetrics()
		body := gin.H{
			"searchId": s.ID().String(),
			"name":     s.Name(),
			"status":   s.Status().String(),
			"metrics": gin.H{
				"steps":                    metrics.Steps,
				"accepted":                 metrics.Accepted,
				"rejected":                 metrics.Rejected,
				"runtimeMs":                metrics.Runtime.Milliseconds(),
				"timeSinceLastImprovement": metrics.TimeSinceLastImprovement.Milliseconds(),
			},
		}
		if best := s.BestEvaluation(); best != nil {
			body["bestValue"] = best.Value()
		}
		c.JSON(http.StatusOK, body)
	}
}

// handleStop requests termination of s. Idempotent: Stop() is a no-op if
// the search is not running.
func handleStop(s *search.Search) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Stop()
		c.JSON(http.StatusAccepted, gin.H{"status": "stop_requested"})
	}
}
