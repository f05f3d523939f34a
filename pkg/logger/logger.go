package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Option настраивает логгер
type Option func(*logrus.Logger)

// WithOutput перенаправляет вывод, например в io.Discard в тестах
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) { l.SetOutput(w) }
}

// WithAppName добавляет поле app ко всем записям
func WithAppName(name string) Option {
	return func(l *logrus.Logger) { l.AddHook(appHook{name: name}) }
}

// New создает JSON-логгер в stdout с уровнем logLevel
func New(logLevel string, opts ...Option) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	// Некорректный уровень - info
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	for _, opt := range opts {
		opt(log)
	}
	return log
}

type appHook struct {
	name string
}

func (appHook) Levels() []logrus.Level { return logrus.AllLevels }

// Fire не перезаписывает app, если оно уже задано в записи
func (h appHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["app"]; !ok {
		entry.Data["app"] = h.name
	}
	return nil
}
