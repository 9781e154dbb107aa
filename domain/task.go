package domain

import "time"

// Task is a read-only record served by the task API. The client never
// mutates it in place; every change round-trips through the server.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	IsPublic    bool       `json:"is_public"`
	OwnerID     string     `json:"user_id"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Creator     *Creator   `json:"creator,omitempty"`
}

// Creator identifies the user a team-visible task belongs to.
type Creator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OwnedBy reports whether the task belongs to the given identity.
// This is a UI hint only; the server is the actual authority.
func (t *Task) OwnedBy(id *Identity) bool {
	return t != nil && id != nil && t.OwnerID == id.SubjectID
}

// TaskDraft carries the fields accepted when creating a task.
type TaskDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IsPublic    bool       `json:"is_public"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TaskPatch is a partial update. Nil fields are left untouched by the
// server, so toggles send exactly one field.
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	IsPublic    *bool      `json:"is_public,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// IsEmpty reports whether the patch would be a no-op request.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.IsPublic == nil && p.DueDate == nil
}
