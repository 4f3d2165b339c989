package main

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// panicRecovery is the outermost net: it logs the stack, counts the panic and
// answers 500 instead of dropping the connection.
func panicRecovery(metrics *metricsManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("http: panic serving %s: %v\n%s", c.Request.URL.Path, r, debug.Stack())
				if metrics != nil {
					metrics.CounterHandlerPanics.Inc()
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()

		c.Next()
	}
}

// requestLogger logs each request and records its latency.
func requestLogger(metrics *metricsManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"latency": elapsed,
		}).Debug("request served")

		if metrics != nil {
			metrics.HistogramRequestDuration.
				WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).
				Observe(elapsed.Seconds())
		}
	}
}
