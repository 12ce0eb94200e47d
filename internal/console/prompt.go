package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// YesNo - asks a yes/no question and re-prompts until the answer is one of
// yes/no/y/n, case-insensitive.
func (that *Console) YesNo(prompt string) (bool, error) {
	for {
		answer, err := that.ReadToken(prompt + " (yes/no): ")
		if err != nil {
			return false, err
		}

		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			that.Println("Please enter 'yes' or 'no'.")
		}
	}
}

// PromptInt - reads an integer, re-prompting on non-numeric input.
func (that *Console) PromptInt(prompt string) (int, error) {
	return that.promptInt(prompt, math.MinInt, math.MaxInt, "")
}

// PromptIntAtLeast - reads an integer no smaller than minValue, re-prompting
// with badValue (or a default message) on violation.
func (that *Console) PromptIntAtLeast(prompt string, minValue int, badValue string) (int, error) {
	return that.promptInt(prompt, minValue, math.MaxInt, badValue)
}

// PromptIntAtMost - reads an integer no larger than maxValue.
func (that *Console) PromptIntAtMost(prompt string, maxValue int, badValue string) (int, error) {
	return that.promptInt(prompt, math.MinInt, maxValue, badValue)
}

// PromptIntRange - reads an integer within [minValue, maxValue].
func (that *Console) PromptIntRange(prompt string, minValue, maxValue int, badValue string) (int, error) {
	return that.promptInt(prompt, minValue, maxValue, badValue)
}

func (that *Console) promptInt(prompt string, minValue, maxValue int, badValue string) (int, error) {
	for {
		answer, err := that.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(answer)
		if err != nil {
			that.Println("Please enter a valid number.")
			continue
		}

		if value < minValue {
			that.Println(orDefault(badValue, fmt.Sprintf("Value must be at least %d.", minValue)))
			continue
		}

		if value > maxValue {
			that.Println(orDefault(badValue, fmt.Sprintf("Value must be at most %d.", maxValue)))
			continue
		}

		return value, nil
	}
}

// PromptFloat - reads a floating point number, re-prompting on non-numeric
// input.
func (that *Console) PromptFloat(prompt string) (float64, error) {
	for {
		answer, err := that.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
		if err != nil {
			that.Println("Please enter a valid number.")
			continue
		}

		return value, nil
	}
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
