package models

// Task is a single checklist item within an attempt. Identity is ID; Title
// is user-editable; Completed is attempt-scoped and reset whenever a new
// attempt or day is created.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Built-in default task IDs
const (
	TaskWater   = "water"
	TaskWorkout = "workout"
	TaskReading = "reading"
	TaskDiet    = "diet"
)

// NewTask creates a task with Completed false
func NewTask(id, title string) Task {
	return Task{ID: id, Title: title}
}

// DefaultTemplate returns the four built-in tasks every fresh challenge
// starts with. Callers get a fresh slice on every call.
func DefaultTemplate() []Task {
	return []Task{
		NewTask(TaskWater, "Drink a gallon of water"),
		NewTask(TaskWorkout, "Two 45-minute workouts"),
		NewTask(TaskReading, "Read 10 pages"),
		NewTask(TaskDiet, "Follow your diet"),
	}
}

// CloneTasks deep-copies a task slice
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// FreshTasks deep-copies a template with every task's Completed forced to
// false, as required at attempt-creation time.
func FreshTasks(template []Task) []Task {
	out := make([]Task, len(template))
	for i, t := range template {
		out[i] = Task{ID: t.ID, Title: t.Title}
	}
	return out
}
