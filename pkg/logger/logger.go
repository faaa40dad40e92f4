package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// AppName попадает в поле "app" каждой записи
const AppName = "outage_reporting_system"

// appHook добавляет постоянные поля во все записи логгера
type appHook struct {
	fields logrus.Fields
}

func (h appHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h appHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		// Поля вызова важнее постоянных
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}

// New создает JSON-логгер сервиса отключений, пишущий в stdout
func New(logLevel string) *logrus.Logger {
	return newLogger(logLevel, os.Stdout)
}

func newLogger(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	log.SetOutput(out)
	log.AddHook(appHook{fields: logrus.Fields{"app": AppName}})

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
