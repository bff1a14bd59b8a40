package executor

import (
	"strconv"
	"strings"

	"github.com/mohitkumar/playback/model"
)

// Compare evaluates the value based conditions. Numeric comparisons are false
// when either side is missing or not a number.
func Compare(condition model.Condition, value string, comparison string) bool {
	switch condition {
	case model.CONDITION_GREATER_THAN, model.CONDITION_LESS_THAN:
		if comparison == "" {
			return false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return false
		}
		c, err := strconv.ParseFloat(strings.TrimSpace(comparison), 64)
		if err != nil {
			return false
		}
		if condition == model.CONDITION_GREATER_THAN {
			return v > c
		}
		return v < c
	case model.CONDITION_EQUALS:
		if comparison == "" {
			return false
		}
		return value == comparison
	case model.CONDITION_IF:
		return truthy(value)
	case model.CONDITION_IF_NOT:
		return !truthy(value)
	}
	return false
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "none", "null":
		return false
	}
	return true
}
