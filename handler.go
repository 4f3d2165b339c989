package main

import (
	"errors"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"lg/health-tracker/internal/calorielog"
)

// Handler holds shared dependencies for all route handlers. The calorie log
// is owned here and nowhere else.
type Handler struct {
	calories *calorielog.Log
	metrics  *metricsManager
}

func newHandler(calories *calorielog.Log, metrics *metricsManager) *Handler {
	return &Handler{calories: calories, metrics: metrics}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// reportFault logs an unexpected calorie log failure with its full detail.
// Callers show calorielog.FailureMessage to the user.
func (h *Handler) reportFault(c *gin.Context, err error, fields log.Fields) {
	h.metrics.CounterViewFaults.Inc()

	entry := log.WithError(err).WithField("path", c.Request.URL.Path)
	var fe *calorielog.FaultError
	if errors.As(err, &fe) {
		entry = entry.WithFields(log.Fields{"op": fe.Op, "stack": string(fe.Stack)})
	}
	entry.WithFields(fields).Error("calorie log fault")
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newRouter builds the gin engine with middleware, templates and all routes.
func newRouter(h *Handler, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.SetTrustedProxies(nil)
	router.Use(requestLogger(h.metrics), panicRecovery(h.metrics))
	router.SetHTMLTemplate(template.Must(
		template.New("").Funcs(pageFuncs).ParseFS(templatesFS, "templates/*.html"),
	))

	h.registerRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return router
}

// registerRoutes registers the form page and JSON API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// HTML form page
	router.GET("/", h.showPage)
	router.POST("/bmi", h.submitBMI)
	router.POST("/metabolic-rate", h.submitMetabolicRate)
	router.POST("/calorie-log", h.submitCalorieEntry)

	api := router.Group("/api")
	api.POST("/bmi", h.evaluateBMI)
	api.POST("/metabolic-rate", h.evaluateMetabolicRate)
	api.GET("/activity-tiers", h.getActivityTiers)
	api.GET("/calorie-log/entries", h.getCalorieEntries)
	api.POST("/calorie-log/entries", h.createCalorieEntry)
	api.GET("/calorie-log/week", h.getWeekSeries)
	api.GET("/calorie-log/today", h.getTodayHistory)
}
