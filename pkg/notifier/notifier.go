package notifier

import (
	"github.com/sirupsen/logrus"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
)

// INotifier is the sink for transient user-facing messages. The presentation
// layer supplies its own implementation (toast, status bar); the default one
// just logs.
type INotifier interface {
	Notify(level Level, message string)
}

type logNotifier struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) INotifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(level Level, message string) {
	entry := n.log.WithFields(logrus.Fields{
		"level": string(level),
	})

	switch level {
	case LevelWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}
