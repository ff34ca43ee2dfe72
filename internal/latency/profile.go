package latency

import "time"

// Profile holds the simulated delay of every service operation
type Profile struct {
	Project        time.Duration `yaml:"project"`
	Task           time.Duration `yaml:"task"`
	TaskList       time.Duration `yaml:"task_list"`
	Activity       time.Duration `yaml:"activity"`
	ThreadList     time.Duration `yaml:"thread_list"`
	ThreadMessages time.Duration `yaml:"thread_messages"`
	ThreadCreate   time.Duration `yaml:"thread_create"`
	Reply          time.Duration `yaml:"reply"`
}

// DefaultProfile returns the delays of the hosted API this dashboard mimics
func DefaultProfile() Profile {
	return Profile{
		Project:        300 * time.Millisecond,
		Task:           250 * time.Millisecond,
		TaskList:       300 * time.Millisecond,
		Activity:       200 * time.Millisecond,
		ThreadList:     300 * time.Millisecond,
		ThreadMessages: 200 * time.Millisecond,
		ThreadCreate:   400 * time.Millisecond,
		Reply:          300 * time.Millisecond,
	}
}

// Zero returns a profile with no delays
func Zero() Profile { return Profile{} }

// MergeFrom copies every non-zero delay of other into p
func (p *Profile) MergeFrom(other Profile) {
	merge := func(dst *time.Duration, src time.Duration) {
		if src != 0 {
			*dst = src
		}
	}
	merge(&p.Project, other.Project)
	merge(&p.Task, other.Task)
	merge(&p.TaskList, other.TaskList)
	merge(&p.Activity, other.Activity)
	merge(&p.ThreadList, other.ThreadList)
	merge(&p.ThreadMessages, other.ThreadMessages)
	merge(&p.ThreadCreate, other.ThreadCreate)
	merge(&p.Reply, other.Reply)
}
