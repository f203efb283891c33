package constants

const (
	// SessionCookieName is the cookie holding the session ID.
	SessionCookieName = "collab_todo_session"

	// ContextKeyUserID is the session and gin-context key for the
	// authenticated user's ID.
	ContextKeyUserID = "user_id"

	// ContextKeyTask is the gin-context key under which the task
	// middleware stores the resolved task.
	ContextKeyTask = "task"

	// DeadlineLayout is the only accepted form for task deadlines.
	DeadlineLayout = "2006-01-02"
)
