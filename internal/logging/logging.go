package logging

import (
	"github.com/sirupsen/logrus"
)

// Init sets up the text formatter with full timestamps and the log level.
// An unknown level falls back to info.
func Init(level string) {
	formatter := new(logrus.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// Endpoint returns a logger tagged with the endpoint that emits it,
// e.g. Endpoint("BANNERS_POST").
func Endpoint(tag string) *logrus.Entry {
	return logrus.WithField("endpoint", tag)
}
