package logger

var (
	NewFanoutHandler = newFanoutHandler
	SentryLevels     = sentryLevels
)
