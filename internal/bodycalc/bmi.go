// Package bodycalc holds the two body-metric evaluators: BMI and the
// Mifflin-St Jeor metabolic rate with activity-scaled calorie targets.
package bodycalc

import "math"

// InvalidInputMessage is returned in place of a result when a measurement
// is zero or negative.
const InvalidInputMessage = "Please enter valid positive numbers"

// BMICategory is the weight class a BMI value falls into.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

// categoryColors maps each category to the color token the page and CLI use.
var categoryColors = map[BMICategory]string{
	Underweight:  "#4162CF",
	NormalWeight: "#14B8A6",
	Overweight:   "#D1D42D",
	Obese:        "#94160D",
}

// Color returns the display color token for c, or "" for an unknown category.
func (c BMICategory) Color() string {
	return categoryColors[c]
}

// BMIResult is the outcome of EvaluateBMI. When Message is set the input was
// rejected and the numeric fields are zero.
type BMIResult struct {
	Value    float64     `json:"bmi,omitempty"`
	Category BMICategory `json:"category,omitempty"`
	Color    string      `json:"color,omitempty"`
	Message  string      `json:"message,omitempty"`
}

// OK reports whether the result carries a computed value.
func (r BMIResult) OK() bool {
	return r.Message == ""
}

// EvaluateBMI computes BMI from weight in kilograms and height in centimeters.
// Classification uses the unrounded value; Value is rounded to one decimal.
func EvaluateBMI(weightKG, heightCM float64) BMIResult {
	if !positive(weightKG) || !positive(heightCM) {
		return BMIResult{Message: InvalidInputMessage}
	}

	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)
	category := ClassifyBMI(bmi)

	return BMIResult{
		Value:    math.Round(bmi*10) / 10,
		Category: category,
		Color:    category.Color(),
	}
}

// positive rejects zero, negatives, NaN and +Inf.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// ClassifyBMI buckets a BMI value. Each range includes its lower bound.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}
