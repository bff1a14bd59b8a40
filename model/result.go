package model

type Result string

const RESULT_CONTINUE Result = "continue"
const RESULT_SET_ACTION_ID Result = "set_action_id"
const RESULT_SKIP_TO_ID Result = "skip_to_id"
const RESULT_SLEEP_AND_REPEAT Result = "sleep_and_repeat"
const RESULT_SLEEP Result = "sleep"
const RESULT_SET_VARIABLE Result = "set_variable"
const RESULT_INCREMENT_VARIABLE Result = "increment_variable"
const RESULT_DECREMENT_VARIABLE Result = "decrement_variable"
const RESULT_SWITCH_TASK Result = "switch_task"
const RESULT_END_TASK Result = "end_task"
const RESULT_SPAWN_PROCESS Result = "spawn_process"
const RESULT_REPEAT Result = "repeat"

var VALID_RESULTS = []Result{
	RESULT_CONTINUE,
	RESULT_SET_ACTION_ID,
	RESULT_SKIP_TO_ID,
	RESULT_SLEEP_AND_REPEAT,
	RESULT_SLEEP,
	RESULT_SET_VARIABLE,
	RESULT_INCREMENT_VARIABLE,
	RESULT_DECREMENT_VARIABLE,
	RESULT_SWITCH_TASK,
	RESULT_END_TASK,
	RESULT_SPAWN_PROCESS,
	RESULT_REPEAT,
}

func (r Result) Valid() bool {
	for _, v := range VALID_RESULTS {
		if v == r {
			return true
		}
	}
	return false
}

// IsRepeat reports membership in the repeat set {repeat, sleep_and_repeat}.
func (r Result) IsRepeat() bool {
	return r == RESULT_REPEAT || r == RESULT_SLEEP_AND_REPEAT
}
