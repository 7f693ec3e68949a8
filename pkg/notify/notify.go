// Package notify delivers user-facing notices, the headless counterpart of
// the hosted application's toast popups.
package notify

import "github.com/sirupsen/logrus"

// Notifier surfaces one-line notices to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Log writes notices through the shared logger.
type Log struct {
	Logger *logrus.Logger
}

func NewLog(logger *logrus.Logger) *Log { return &Log{Logger: logger} }

func (l *Log) Success(msg string) {
	l.Logger.WithField("notice", "success").Info(msg)
}

func (l *Log) Error(msg string) {
	l.Logger.WithField("notice", "error").Warn(msg)
}

func (l *Log) Info(msg string) {
	l.Logger.WithField("notice", "info").Info(msg)
}

// Recorded is a single captured notice.
type Recorded struct {
	Level   string
	Message string
}

// Recorder captures notices for tests.
type Recorder struct {
	Notices []Recorded
}

func (r *Recorder) Success(msg string) { r.add("success", msg) }
func (r *Recorder) Error(msg string)   { r.add("error", msg) }
func (r *Recorder) Info(msg string)    { r.add("info", msg) }

func (r *Recorder) add(level, msg string) {
	r.Notices = append(r.Notices, Recorded{Level: level, Message: msg})
}

// Errors returns the captured error-level messages.
func (r *Recorder) Errors() []string {
	var out []string
	for _, n := range r.Notices {
		if n.Level == "error" {
			out = append(out, n.Message)
		}
	}
	return out
}
