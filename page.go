package main

import (
	"embed"
	"html/template"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"lg/health-tracker/internal/bodycalc"
	"lg/health-tracker/internal/calorielog"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageTemplate = "index.html"

var pageFuncs = template.FuncMap{
	"oneDecimal": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
}

// chartBar is one bar of the CSS chart. Percent is relative to the week's peak.
type chartBar struct {
	Label   string
	Text    string
	Percent float64
}

type chartView struct {
	Placeholder string
	Bars        []chartBar
}

// pageData is everything index.html renders. Nil results mean the panel has
// not been submitted yet.
type pageData struct {
	Tiers []bodycalc.TierInfo

	BMIForm       bmiRequest
	BMI           *bodycalc.BMIResult
	MetabolicForm metabolicRequest
	Metabolic     *bodycalc.MetabolicResult
	// MetabolicMessage holds a message that has no result to hang off, such as an unknown tier.
	MetabolicMessage string

	EntryForm    createEntryRequest
	EntryMessage string
	EntryAdded   bool

	Chart   chartView
	History calorielog.History
	LogDown bool
}

func defaultForms() (bmiRequest, metabolicRequest) {
	return bmiRequest{WeightKG: 70, HeightCM: 170},
		metabolicRequest{
			WeightKG:      70,
			HeightCM:      170,
			Age:           30,
			Sex:           string(bodycalc.Male),
			ActivityLevel: string(bodycalc.ModeratelyActive),
		}
}

// newPage fills in the defaults and the current calorie log views.
func (h *Handler) newPage(c *gin.Context) *pageData {
	bmiForm, metabolicForm := defaultForms()
	p := &pageData{
		Tiers:         bodycalc.ActivityTiers(),
		BMIForm:       bmiForm,
		MetabolicForm: metabolicForm,
	}

	snap, err := h.calories.Snapshot()
	if err != nil {
		h.reportFault(c, err, nil)
		p.LogDown = true
		p.EntryMessage = calorielog.FailureMessage
		return p
	}
	p.setViews(snap)
	return p
}

func (p *pageData) setViews(snap calorielog.Snapshot) {
	p.Chart = newChartView(snap.Series)
	p.History = snap.History
}

func newChartView(s calorielog.Series) chartView {
	if s.Empty {
		return chartView{Placeholder: s.Placeholder}
	}
	peak := s.Peak()
	bars := make([]chartBar, len(s.Days))
	for i, d := range s.Days {
		var pct float64
		if peak > 0 {
			pct = math.Round(d.Calories / peak * 100)
		}
		bars[i] = chartBar{Label: d.Label, Text: d.Text, Percent: pct}
	}
	return chartView{Bars: bars}
}

func (h *Handler) render(c *gin.Context, p *pageData) {
	c.HTML(http.StatusOK, pageTemplate, p)
}

// showPage handles GET /.
func (h *Handler) showPage(c *gin.Context) {
	h.render(c, h.newPage(c))
}

// submitBMI handles POST /bmi.
func (h *Handler) submitBMI(c *gin.Context) {
	p := h.newPage(c)

	var form bmiRequest
	if err := c.ShouldBind(&form); err != nil {
		log.WithError(err).Debug("bmi form rejected")
		p.BMI = &bodycalc.BMIResult{Message: bodycalc.InvalidInputMessage}
		h.metrics.observeEvaluation("bmi", false)
		h.render(c, p)
		return
	}

	res := bodycalc.EvaluateBMI(form.WeightKG, form.HeightCM)
	h.metrics.observeEvaluation("bmi", res.OK())
	p.BMIForm = form
	p.BMI = &res
	h.render(c, p)
}

// submitMetabolicRate handles POST /metabolic-rate.
func (h *Handler) submitMetabolicRate(c *gin.Context) {
	p := h.newPage(c)

	var form metabolicRequest
	if err := c.ShouldBind(&form); err != nil {
		log.WithError(err).Debug("metabolic rate form rejected")
		p.Metabolic = &bodycalc.MetabolicResult{Message: bodycalc.InvalidInputMessage}
		h.metrics.observeEvaluation("metabolic_rate", false)
		h.render(c, p)
		return
	}
	p.MetabolicForm = form

	in, msg := form.toInput()
	if msg != "" {
		p.MetabolicMessage = msg
		h.render(c, p)
		return
	}

	res, err := bodycalc.EvaluateMetabolicRate(in)
	if err != nil {
		panic(err)
	}
	h.metrics.observeEvaluation("metabolic_rate", res.OK())
	p.Metabolic = &res
	h.render(c, p)
}

// submitCalorieEntry handles POST /calorie-log.
func (h *Handler) submitCalorieEntry(c *gin.Context) {
	var form createEntryRequest
	if err := c.ShouldBind(&form); err != nil {
		// An unparsable calorie field is treated like a missing one, so the
		// food check still runs first.
		log.WithError(err).Debug("calorie form rejected")
		form.Calories = 0
	}

	out := h.addEntry(c, form.Food, form.Calories)

	bmiForm, metabolicForm := defaultForms()
	p := &pageData{
		Tiers:         bodycalc.ActivityTiers(),
		BMIForm:       bmiForm,
		MetabolicForm: metabolicForm,
		EntryAdded:    out.Added,
		EntryMessage:  out.Message,
		LogDown:       out.Failed,
	}
	if !out.Added {
		// Keep what the user typed so they can fix it.
		p.EntryForm = form
	}
	if !out.Failed {
		p.setViews(out.Snapshot)
	}
	h.render(c, p)
}
