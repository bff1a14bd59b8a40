package model

const DEFAULT_JOB_CREATION_DELTA_TIME float64 = 0.5
const DEFAULT_MAX_NUM_JOBS int = 10

type Task struct {
	Id                   string   `json:"id" yaml:"id"`
	ActionIdList         []string `json:"action_id_list" yaml:"action_id_list"`
	JobCreationDeltaTime float64  `json:"job_creation_delta_time" yaml:"job_creation_delta_time"`
	MaxNumJobs           int      `json:"max_num_jobs" yaml:"max_num_jobs"`
	TaskConfig           `yaml:",inline"`
}

// TaskConfig holds what a task learns across runs. Every list has one slot per
// position of the action id list. FastestTimeline starts as the time_delay
// estimate; TimelineSamples counts the runs it was measured in.
type TaskConfig struct {
	Conditionals           []int     `json:"conditionals" yaml:"conditionals"`
	FastestTimeline        []float64 `json:"fastest_timeline" yaml:"fastest_timeline"`
	TimelineSamples        []int     `json:"timeline_samples" yaml:"timeline_samples"`
	EarlyResultAvailable   []bool    `json:"early_result_available" yaml:"early_result_available"`
	LastConditionalResults []bool    `json:"last_conditional_results" yaml:"last_conditional_results"`
}

// NewDefaultTaskConfig builds the configuration of a task that never ran or
// whose action list changed since it was learned.
func NewDefaultTaskConfig(actions []Action) TaskConfig {
	conf := TaskConfig{
		Conditionals:           make([]int, len(actions)),
		FastestTimeline:        make([]float64, len(actions)),
		TimelineSamples:        make([]int, len(actions)),
		EarlyResultAvailable:   make([]bool, len(actions)),
		LastConditionalResults: make([]bool, len(actions)),
	}
	for i, a := range actions {
		conf.Conditionals[i] = len(a.Conditionals)
		conf.FastestTimeline[i] = a.TimeDelay
	}
	return conf
}

// Observe records how long action i took. The first measurement replaces the
// time_delay estimate, later ones only lower it.
func (c *TaskConfig) Observe(i int, seconds float64) {
	if c.TimelineSamples[i] == 0 || seconds < c.FastestTimeline[i] {
		c.FastestTimeline[i] = seconds
	}
	c.TimelineSamples[i]++
}

// Matches reports whether a learned config still describes the given action list.
func (c TaskConfig) Matches(actions []Action) bool {
	n := len(actions)
	if len(c.Conditionals) != n || len(c.FastestTimeline) != n || len(c.TimelineSamples) != n ||
		len(c.EarlyResultAvailable) != n || len(c.LastConditionalResults) != n {
		return false
	}
	for i, a := range actions {
		if c.Conditionals[i] != len(a.Conditionals) {
			return false
		}
	}
	return true
}

func (t Task) GetJobCreationDeltaTime() float64 {
	if t.JobCreationDeltaTime <= 0 {
		return DEFAULT_JOB_CREATION_DELTA_TIME
	}
	return t.JobCreationDeltaTime
}

func (t Task) GetMaxNumJobs() int {
	if t.MaxNumJobs <= 0 {
		return DEFAULT_MAX_NUM_JOBS
	}
	return t.MaxNumJobs
}
