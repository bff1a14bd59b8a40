package model

import (
	"fmt"

	"go.trai.ch/zerr"
)

type Function string

const FUNCTION_CLICK Function = "click"
const FUNCTION_CLICK_IMAGE Function = "click_image"
const FUNCTION_CLICK_IMAGE_REGION Function = "click_image_region"
const FUNCTION_MOVE_TO Function = "move_to"
const FUNCTION_MOVE_TO_IMAGE Function = "move_to_image"
const FUNCTION_KEY_PRESSED Function = "key_pressed"
const FUNCTION_CAPTURE_SCREEN_DATA Function = "capture_screen_data"

var VALID_FUNCTIONS = []Function{
	FUNCTION_CLICK,
	FUNCTION_CLICK_IMAGE,
	FUNCTION_CLICK_IMAGE_REGION,
	FUNCTION_MOVE_TO,
	FUNCTION_MOVE_TO_IMAGE,
	FUNCTION_KEY_PRESSED,
	FUNCTION_CAPTURE_SCREEN_DATA,
}

func (f Function) Valid() bool {
	for _, v := range VALID_FUNCTIONS {
		if v == f {
			return true
		}
	}
	return false
}

// IsImageSearch reports whether the function locates its target by template matching.
func (f Function) IsImageSearch() bool {
	return f == FUNCTION_CLICK_IMAGE || f == FUNCTION_CLICK_IMAGE_REGION || f == FUNCTION_MOVE_TO_IMAGE
}

type Condition string

const CONDITION_GREATER_THAN Condition = "greater_than"
const CONDITION_LESS_THAN Condition = "less_than"
const CONDITION_EQUALS Condition = "equals"
const CONDITION_IF Condition = "if"
const CONDITION_IF_NOT Condition = "if_not"
const CONDITION_IF_IMAGE_PRESENT Condition = "if_image_present"

var VALID_CONDITIONS = []Condition{
	CONDITION_GREATER_THAN,
	CONDITION_LESS_THAN,
	CONDITION_EQUALS,
	CONDITION_IF,
	CONDITION_IF_NOT,
	CONDITION_IF_IMAGE_PRESENT,
}

func (c Condition) Valid() bool {
	for _, v := range VALID_CONDITIONS {
		if v == c {
			return true
		}
	}
	return false
}

var ErrInvalidFunction = zerr.New("action has invalid function")
var ErrInvalidAction = zerr.New("invalid action")

// Conditional is one clause of an action's conditional. Variable is either a
// literal or a "$"-prefixed json path into the captured screen data; for
// if_image_present it names the needle image and defaults to the first image
// of the action.
type Conditional struct {
	Condition  Condition `json:"condition" yaml:"condition"`
	Variable   string    `json:"variable,omitempty" yaml:"variable,omitempty"`
	Comparison string    `json:"comparison,omitempty" yaml:"comparison,omitempty"`
}

type Action struct {
	Id            string        `json:"id" yaml:"id"`
	Function      Function      `json:"function" yaml:"function"`
	X1            *int          `json:"x1,omitempty" yaml:"x1,omitempty"`
	Y1            *int          `json:"y1,omitempty" yaml:"y1,omitempty"`
	X2            *int          `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2            *int          `json:"y2,omitempty" yaml:"y2,omitempty"`
	Images        []string      `json:"images,omitempty" yaml:"images,omitempty"`
	HaystackImage string        `json:"haystack_image,omitempty" yaml:"haystack_image,omitempty"`
	KeyPressed    string        `json:"key_pressed,omitempty" yaml:"key_pressed,omitempty"`
	TimeDelay     float64       `json:"time_delay" yaml:"time_delay"`
	SleepDuration float64       `json:"sleep_duration" yaml:"sleep_duration"`
	NumRepeats    int           `json:"num_repeats" yaml:"num_repeats"`
	RandomPath    bool          `json:"random_path" yaml:"random_path"`
	RandomRange   int           `json:"random_range" yaml:"random_range"`
	RandomDelay   float64       `json:"random_delay" yaml:"random_delay"`
	Conditionals  []Conditional `json:"conditionals,omitempty" yaml:"conditionals,omitempty"`
	TrueCase      Result        `json:"true_case,omitempty" yaml:"true_case,omitempty"`
	FalseCase     Result        `json:"false_case,omitempty" yaml:"false_case,omitempty"`
	ErrorCase     Result        `json:"error_case,omitempty" yaml:"error_case,omitempty"`
	SkipToId      string        `json:"skip_to_id,omitempty" yaml:"skip_to_id,omitempty"`
}

func (a Action) HasConditionals() bool {
	return len(a.Conditionals) > 0
}

// CaseFor returns the result selected by a conditional outcome. An unset case
// resolves to continue.
func (a Action) CaseFor(outcome bool) Result {
	res := a.FalseCase
	if outcome {
		res = a.TrueCase
	}
	if res == "" {
		return RESULT_CONTINUE
	}
	return res
}

func (a Action) Validate() error {
	if !a.Function.Valid() {
		return zerr.With(ErrInvalidFunction, "function", string(a.Function))
	}
	if a.TimeDelay < 0 {
		return zerr.Wrap(ErrInvalidAction, fmt.Sprintf("actionId=%s, time_delay %f is negative", a.Id, a.TimeDelay))
	}
	if a.SleepDuration < 0 {
		return zerr.Wrap(ErrInvalidAction, fmt.Sprintf("actionId=%s, sleep_duration %f is negative", a.Id, a.SleepDuration))
	}
	for _, c := range a.Conditionals {
		if !c.Condition.Valid() {
			return zerr.Wrap(ErrInvalidAction, fmt.Sprintf("actionId=%s, unknown condition %s", a.Id, c.Condition))
		}
	}
	for _, r := range []Result{a.TrueCase, a.FalseCase, a.ErrorCase} {
		if r != "" && !r.Valid() {
			return zerr.Wrap(ErrInvalidAction, fmt.Sprintf("actionId=%s, unknown result %s", a.Id, r))
		}
	}
	return nil
}
