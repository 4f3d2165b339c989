package main

import "lg/health-tracker/internal/calorielog"

// bmiRequest is the body for POST /api/bmi and the BMI form.
type bmiRequest struct {
	WeightKG float64 `json:"weight_kg" form:"weight_kg"`
	HeightCM float64 `json:"height_cm" form:"height_cm"`
}

// metabolicRequest is the body for POST /api/metabolic-rate and the BMR/TDEE form.
// Sex and ActivityLevel accept either the key or the display label.
type metabolicRequest struct {
	WeightKG      float64 `json:"weight_kg"      form:"weight_kg"`
	HeightCM      float64 `json:"height_cm"      form:"height_cm"`
	Age           float64 `json:"age"            form:"age"`
	Sex           string  `json:"sex"            form:"sex"`
	ActivityLevel string  `json:"activity_level" form:"activity_level"`
}

// createEntryRequest is the body for POST /api/calorie-log/entries and the tracker form.
type createEntryRequest struct {
	Food     string  `json:"food"     form:"food"`
	Calories float64 `json:"calories" form:"calories"`
}

// createEntryResponse carries the refreshed views. Entry is nil and Message
// set when the input was rejected.
type createEntryResponse struct {
	Entry   *calorielog.Entry  `json:"entry,omitempty"`
	Message string             `json:"message,omitempty"`
	Series  calorielog.Series  `json:"series"`
	History calorielog.History `json:"history"`
}
