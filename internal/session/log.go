package session

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

var Log = logrus.New()

// LogToFile mirrors session lifecycle events as JSON lines into a rotated
// file at path.
func LogToFile(path string) error {
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Level:      logrus.InfoLevel,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return err
	}
	Log.AddHook(hook)
	return nil
}
