package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"lg/health-tracker/internal/calorielog"
)

// entryOutcome is the result of one add-entry action, shared by the JSON
// and form handlers. Message is what the user sees when Added is false.
type entryOutcome struct {
	Added    bool
	Entry    calorielog.Entry
	Snapshot calorielog.Snapshot
	Message  string
	Failed   bool
}

// addEntry runs AddEntry and sorts the result into success, rejected input,
// or an unexpected fault that gets logged and replaced by a generic message.
func (h *Handler) addEntry(c *gin.Context, food string, calories float64) entryOutcome {
	entry, snap, err := h.calories.AddEntry(food, calories)
	if err == nil {
		h.metrics.CounterCalorieEntries.Inc()
		h.metrics.GaugeLogEntries.Set(float64(h.calories.Len()))
		log.WithFields(log.Fields{"id": entry.ID, "food": entry.Food, "calories": entry.Calories}).
			Info("calorie entry added")
		return entryOutcome{Added: true, Entry: entry, Snapshot: snap}
	}

	if ve, ok := calorielog.IsValidation(err); ok {
		h.metrics.observeEvaluation("calorie_entry", false)
		return entryOutcome{Snapshot: snap, Message: ve.Message}
	}

	h.reportFault(c, err, log.Fields{"food": food, "calories": calories})
	return entryOutcome{Snapshot: snap, Message: calorielog.FailureMessage, Failed: true}
}

// createCalorieEntry handles POST /api/calorie-log/entries.
// 201 with the new entry and views; 200 with a message for rejected input;
// 500 with a generic message when the log could not be updated.
func (h *Handler) createCalorieEntry(c *gin.Context) {
	var body createEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	out := h.addEntry(c, body.Food, body.Calories)
	switch {
	case out.Failed:
		apiError(c, http.StatusInternalServerError, out.Message)
	case !out.Added:
		c.JSON(http.StatusOK, createEntryResponse{
			Message: out.Message,
			Series:  out.Snapshot.Series,
			History: out.Snapshot.History,
		})
	default:
		c.JSON(http.StatusCreated, createEntryResponse{
			Entry:   &out.Entry,
			Series:  out.Snapshot.Series,
			History: out.Snapshot.History,
		})
	}
}

// getCalorieEntries handles GET /api/calorie-log/entries.
func (h *Handler) getCalorieEntries(c *gin.Context) {
	// Entries always returns a non-nil slice, so JSON shows [] rather than null.
	c.JSON(http.StatusOK, h.calories.Entries())
}

// getWeekSeries handles GET /api/calorie-log/week.
func (h *Handler) getWeekSeries(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snap.Series)
}

// getTodayHistory handles GET /api/calorie-log/today.
func (h *Handler) getTodayHistory(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snap.History)
}

// snapshot rebuilds both views, answering 500 itself on a fault.
func (h *Handler) snapshot(c *gin.Context) (calorielog.Snapshot, bool) {
	snap, err := h.calories.Snapshot()
	if err != nil {
		h.reportFault(c, err, nil)
		apiError(c, http.StatusInternalServerError, calorielog.FailureMessage)
		return calorielog.Snapshot{}, false
	}
	return snap, true
}
