package domain

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone, TaskBlocked:
		return true
	}
	return false
}

// Task is a unit of work inside a project, optionally nested under a parent task.
type Task struct {
	TaskID      string     `json:"taskID"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ProjectID   string     `json:"projectID"`
	ParentID    *string    `json:"parentID,omitempty"`
	AssigneeID  *string    `json:"assigneeID,omitempty"`
	ReporterID  string     `json:"reporterID"`
	Status      TaskStatus `json:"status"`
	AuditFields
	Lifecycle
}

// IsAssignee reports whether userID is assigned to the task.
func (t *Task) IsAssignee(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// TaskFilter narrows task listings. Empty fields are ignored.
type TaskFilter struct {
	ProjectID  string
	Status     TaskStatus
	AssigneeID string
	ParentID   string
	Keyword    string
}
