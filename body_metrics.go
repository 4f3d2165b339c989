package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/health-tracker/internal/bodycalc"
)

// evaluateBMI handles POST /api/bmi. Rejected measurements still answer 200
// with {"message": ...}; only an unreadable body is a 400.
func (h *Handler) evaluateBMI(c *gin.Context) {
	var body bmiRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res := bodycalc.EvaluateBMI(body.WeightKG, body.HeightCM)
	h.metrics.observeEvaluation("bmi", res.OK())
	c.JSON(http.StatusOK, res)
}

// evaluateMetabolicRate handles POST /api/metabolic-rate.
// An unknown sex or activity level is a 400; non-positive measurements are a
// 200 with {"message": ...}.
func (h *Handler) evaluateMetabolicRate(c *gin.Context) {
	var body metabolicRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	in, msg := body.toInput()
	if msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	res, err := bodycalc.EvaluateMetabolicRate(in)
	if err != nil {
		// toInput already parsed both enums; an error here is a programming bug.
		panic(err)
	}
	h.metrics.observeEvaluation("metabolic_rate", res.OK())
	c.JSON(http.StatusOK, res)
}

// getActivityTiers handles GET /api/activity-tiers.
func (h *Handler) getActivityTiers(c *gin.Context) {
	c.JSON(http.StatusOK, bodycalc.ActivityTiers())
}

// toInput parses the enumerated fields. The returned message is non-empty
// when one of them is not recognised.
func (r metabolicRequest) toInput() (bodycalc.MetabolicInput, string) {
	sex, err := bodycalc.ParseSex(r.Sex)
	if err != nil {
		return bodycalc.MetabolicInput{}, "sex must be one of: male, female"
	}
	tier, err := bodycalc.ParseActivityTier(r.ActivityLevel)
	if err != nil {
		return bodycalc.MetabolicInput{}, "activity_level must be one of: sedentary, light, moderate, active, very_active"
	}
	return bodycalc.MetabolicInput{
		WeightKG: r.WeightKG,
		HeightCM: r.HeightCM,
		AgeYears: r.Age,
		Sex:      sex,
		Activity: tier,
	}, ""
}
