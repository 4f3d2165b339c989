package bodycalc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownActivityTier signals a caller passed a tier outside the table.
	ErrUnknownActivityTier = errors.New("unknown activity tier")
	// ErrUnknownSex signals a caller passed something other than male or female.
	ErrUnknownSex = errors.New("unknown sex")
)

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male"/"female" in any case.
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

// ActivityTier is one of the five lifestyle-intensity levels used to scale BMR.
type ActivityTier string

const (
	Sedentary        ActivityTier = "sedentary"
	LightlyActive    ActivityTier = "light"
	ModeratelyActive ActivityTier = "moderate"
	VeryActive       ActivityTier = "active"
	SuperActive      ActivityTier = "very_active"
)

// TierInfo describes one row of the activity table.
type TierInfo struct {
	Key        ActivityTier `json:"key"`
	Label      string       `json:"label"`
	Multiplier float64      `json:"multiplier"`
}

// activityTiers is the single source of truth for valid tiers, in display order.
var activityTiers = []TierInfo{
	{Sedentary, "Sedentary (little or no exercise)", 1.2},
	{LightlyActive, "Lightly active (exercise 1-3 days/week)", 1.375},
	{ModeratelyActive, "Moderately active (exercise 3-5 days/week)", 1.55},
	{VeryActive, "Very active (exercise 6-7 days/week)", 1.725},
	{SuperActive, "Super active (physical job or training twice/day)", 1.9},
}

// ActivityTiers returns a copy of the activity table in display order.
func ActivityTiers() []TierInfo {
	out := make([]TierInfo, len(activityTiers))
	copy(out, activityTiers)
	return out
}

// Multiplier returns the TDEE multiplier for t.
func (t ActivityTier) Multiplier() (float64, error) {
	for _, info := range activityTiers {
		if info.Key == t {
			return info.Multiplier, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownActivityTier, string(t))
}

// Label returns the human-readable description of t, or the key itself if unknown.
func (t ActivityTier) Label() string {
	for _, info := range activityTiers {
		if info.Key == t {
			return info.Label
		}
	}
	return string(t)
}

// ParseActivityTier accepts either a tier key ("moderate") or its full label.
func ParseActivityTier(s string) (ActivityTier, error) {
	s = strings.TrimSpace(s)
	for _, info := range activityTiers {
		if strings.EqualFold(s, string(info.Key)) || strings.EqualFold(s, info.Label) {
			return info.Key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownActivityTier, s)
}

// TargetOffset is the daily surplus/deficit used for the gain and loss
// targets, roughly 0.5 kg per week.
const TargetOffset = 500

// MetabolicInput is the body profile fed to EvaluateMetabolicRate.
type MetabolicInput struct {
	WeightKG float64
	HeightCM float64
	AgeYears float64
	Sex      Sex
	Activity ActivityTier
}

// MetabolicResult holds rounded whole-calorie figures. When Message is set the
// input was rejected and the numeric fields are zero.
type MetabolicResult struct {
	BMR         int          `json:"bmr,omitempty"`
	TDEE        int          `json:"tdee,omitempty"`
	WeightLoss  int          `json:"weight_loss,omitempty"`
	Maintenance int          `json:"maintenance,omitempty"`
	WeightGain  int          `json:"weight_gain,omitempty"`
	Activity    ActivityTier `json:"activity_level,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// OK reports whether the result carries computed values.
func (r MetabolicResult) OK() bool {
	return r.Message == ""
}

// EvaluateMetabolicRate computes BMR (Mifflin-St Jeor), TDEE and the loss,
// maintenance and gain targets. Non-positive measurements produce a Message
// result; an unknown sex or activity tier is a caller error.
func EvaluateMetabolicRate(in MetabolicInput) (MetabolicResult, error) {
	if !positive(in.WeightKG) || !positive(in.HeightCM) || !positive(in.AgeYears) {
		return MetabolicResult{Message: InvalidInputMessage}, nil
	}

	bmr, err := BMR(in.WeightKG, in.HeightCM, in.AgeYears, in.Sex)
	if err != nil {
		return MetabolicResult{}, err
	}

	mult, err := in.Activity.Multiplier()
	if err != nil {
		return MetabolicResult{}, err
	}
	tdee := bmr * mult

	return MetabolicResult{
		BMR:         int(math.Round(bmr)),
		TDEE:        int(math.Round(tdee)),
		WeightLoss:  int(math.Round(tdee - TargetOffset)),
		Maintenance: int(math.Round(tdee)),
		WeightGain:  int(math.Round(tdee + TargetOffset)),
		Activity:    in.Activity,
	}, nil
}

// BMR returns the unrounded Mifflin-St Jeor basal metabolic rate.
func BMR(weightKG, heightCM, ageYears float64, sex Sex) (float64, error) {
	bmr := 10*weightKG + 6.25*heightCM - 5*ageYears
	switch sex {
	case Male:
		return bmr + 5, nil
	case Female:
		return bmr - 161, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSex, string(sex))
}
