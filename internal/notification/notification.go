package notification

// EmailTask describes one welcome email to deliver. It is the unit handed to
// the task queue on successful login.
type EmailTask struct {
	Email string `json:"email"`
}

// Enqueuer accepts a task for asynchronous delivery. Enqueue must not block;
// a returned error means the task was dropped and the caller is expected to
// log and move on.
type Enqueuer interface {
	Enqueue(task EmailTask) error
}

// Mailer delivers a single message.
type Mailer interface {
	Send(to, subject, body string) error
}

const (
	welcomeSubject = "Thank You for Logging In!"
	welcomeBody    = "We appreciate your continued engagement with our platform!"
)
