package internal

import (
	"fmt"
	"log"
	"thepay/entity"
	"thepay/services"
	"time"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warning"
	levelError = "error"
)

// Logger writes to the standard logger and mirrors messages to the database log,
// when one is set. Debug messages are printed only in debug mode and never stored.
type Logger struct {
	category string
	debug    bool
	database services.Database
}

func NewLogger(category string, debug bool, database services.Database) *Logger {
	return &Logger{
		category: category,
		debug:    debug,
		database: database,
	}
}

func (l *Logger) Debug(text string) {
	if !l.debug {
		return
	}
	log.Printf("%s: %s: %s", l.category, levelDebug, text)
}

func (l *Logger) Info(text string) {
	l.write(levelInfo, text)
}

func (l *Logger) Warn(text string) {
	l.write(levelWarn, text)
}

func (l *Logger) Error(text string, err error) {
	l.write(levelError, fmt.Sprintf("%s: %v", text, err))
}

func (l *Logger) write(level, text string) {
	log.Printf("%s: %s: %s", l.category, level, text)
	if l.database == nil {
		return
	}
	message := &entity.LogMessage{
		Time:     time.Now(),
		Level:    level,
		Category: l.category,
		Text:     text,
	}
	if err := l.database.WriteLogMessage(message); err != nil {
		log.Println("write log message:", err)
	}
}
