package models

import (
	"fmt"
	"time"
)

// Mood captures how the user felt on a given attempt
type Mood string

const (
	MoodAwesome Mood = "awesome"
	MoodGood    Mood = "good"
	MoodOkay    Mood = "okay"
	MoodBad     Mood = "bad"
	MoodAwful   Mood = "awful"
)

// ParseMood validates a user-supplied mood value
func ParseMood(s string) (Mood, error) {
	switch Mood(s) {
	case MoodAwesome, MoodGood, MoodOkay, MoodBad, MoodAwful:
		return Mood(s), nil
	default:
		return "", fmt.Errorf("invalid mood: %q (awesome|good|okay|bad|awful)", s)
	}
}

// Attempt is one try at satisfying a single day's requirements. Timestamp
// is non-nil iff Completed is true and records when completion was
// achieved; it is cleared whenever Completed is forced back to false.
type Attempt struct {
	Number    int        `json:"number"`
	Timestamp *time.Time `json:"timestamp"`
	PhotoURI  string     `json:"photoUri,omitempty"`
	Mood      Mood       `json:"mood,omitempty"`
	Weight    *float64   `json:"weight,omitempty"`
	Tasks     []Task     `json:"tasks"`
	Completed bool       `json:"completed"`
}

// NewAttempt builds an attempt from a task template. The template is
// deep-copied with every task's Completed forced to false; mood, weight
// and photo start unset.
func NewAttempt(number int, template []Task) Attempt {
	return Attempt{
		Number: number,
		Tasks:  FreshTasks(template),
	}
}

// Clone returns a deep copy of the attempt, suitable as a candidate for
// the completion transition without aliasing the original's task slice.
func (a Attempt) Clone() Attempt {
	out := a
	out.Tasks = CloneTasks(a.Tasks)
	if a.Weight != nil {
		w := *a.Weight
		out.Weight = &w
	}
	if a.Timestamp != nil {
		ts := *a.Timestamp
		out.Timestamp = &ts
	}
	return out
}

// TaskByID returns the task with the given id, if present
func (a Attempt) TaskByID(id string) (Task, bool) {
	for _, t := range a.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
