// CLI tool that prompts for body measurements and prints BMI and daily calorie targets.
// Usage: go run ./cmd/healthcalc
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lg/health-tracker/internal/bodycalc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94160D"))
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run prompts on in and writes the report to out.
func run(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	weight, err := promptNumber(reader, out, "Weight (kg): ")
	if err != nil {
		return err
	}
	height, err := promptNumber(reader, out, "Height (cm): ")
	if err != nil {
		return err
	}
	age, err := promptNumber(reader, out, "Age: ")
	if err != nil {
		return err
	}

	sex, err := bodycalc.ParseSex(prompt(reader, out, "Sex (male/female): "))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Activity levels:")
	for _, t := range bodycalc.ActivityTiers() {
		fmt.Fprintf(out, "  %-12s %s (x%g)\n", t.Key, t.Label, t.Multiplier)
	}
	tier, err := bodycalc.ParseActivityTier(prompt(reader, out, "Activity level: "))
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderBMI(bodycalc.EvaluateBMI(weight, height)))

	res, err := bodycalc.EvaluateMetabolicRate(bodycalc.MetabolicInput{
		WeightKG: weight,
		HeightCM: height,
		AgeYears: age,
		Sex:      sex,
		Activity: tier,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderMetabolic(res))
	return nil
}

func prompt(reader *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptNumber(reader *bufio.Reader, out io.Writer, label string) (float64, error) {
	raw := prompt(reader, out, label)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s%q is not a number", label, raw)
	}
	return v, nil
}

func renderBMI(r bodycalc.BMIResult) string {
	if !r.OK() {
		return messageStyle.Render(r.Message)
	}
	category := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(r.Color)).
		Render(string(r.Category))
	return titleStyle.Render("BMI") + "\n" +
		labelStyle.Render("Value") + strconv.FormatFloat(r.Value, 'f', 1, 64) + "\n" +
		labelStyle.Render("Category") + category
}

func renderMetabolic(r bodycalc.MetabolicResult) string {
	if !r.OK() {
		return messageStyle.Render(r.Message)
	}
	rows := []struct {
		label string
		value int
	}{
		{"BMR", r.BMR},
		{"TDEE", r.TDEE},
		{"Weight loss", r.WeightLoss},
		{"Maintenance", r.Maintenance},
		{"Weight gain", r.WeightGain},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Daily calories (" + r.Activity.Label() + ")"))
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%s%d calories/day", labelStyle.Render(row.label), row.value)
	}
	return b.String()
}
