package notification

import (
	"errors"
	"log"
	"sync"
)

// ErrQueueFull is returned when the in-process queue cannot accept more tasks.
var ErrQueueFull = errors.New("notification queue full")

// Service is the in-process task queue: a buffered channel drained by a small
// worker pool. Delivery failures are logged and never propagated.
type Service struct {
	mailer      Mailer
	from        string
	jobQueue    chan EmailTask
	workerWg    sync.WaitGroup
	workerCount int
	started     bool
	mu          sync.Mutex
}

func NewService(mailer Mailer, from string, workerCount int) *Service {
	if workerCount <= 0 {
		workerCount = 3
	}

	return &Service{
		mailer:      mailer,
		from:        from,
		jobQueue:    make(chan EmailTask, 500),
		workerCount: workerCount,
	}
}

// Start launches the delivery workers.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}

	for i := 0; i < s.workerCount; i++ {
		s.workerWg.Add(1)
		go s.worker(i)
	}
	s.started = true
	log.Printf("[Notification] Started %d workers", s.workerCount)
}

// Stop drains the queue and waits for all workers to finish.
func (s *Service) Stop() {
	close(s.jobQueue)
	s.workerWg.Wait()
	log.Println("[Notification] All workers stopped")
}

// Enqueue hands a task to the worker pool without blocking the caller.
func (s *Service) Enqueue(task EmailTask) error {
	select {
	case s.jobQueue <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

func (s *Service) worker(id int) {
	defer s.workerWg.Done()

	for task := range s.jobQueue {
		s.deliver(task)
	}

	log.Printf("[Notification] Worker %d stopped", id)
}

func (s *Service) deliver(task EmailTask) {
	if s.mailer == nil {
		return
	}

	if err := s.mailer.Send(task.Email, welcomeSubject, welcomeBody); err != nil {
		log.Printf("[Notification] Failed to send welcome email to %s: %v", task.Email, err)
		return
	}

	log.Printf("[Notification] Sent welcome email to %s", task.Email)
}

// LogMailer writes messages to the process log instead of an SMTP relay. It
// stands in for a real delivery backend in development and tests.
type LogMailer struct {
	From string
}

func (m *LogMailer) Send(to, subject, body string) error {
	log.Printf("[Mail] from=%s to=%s subject=%q body=%q", m.From, to, subject, body)
	return nil
}
