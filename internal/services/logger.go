// File: internal/services/logger.go
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

// Logger defines the common logging interface for all services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// LogLevel represents different logging levels
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ProductionLogger is a structured logger for production use
type ProductionLogger struct {
	logger  *log.Logger
	level   LogLevel
	service string
}

// NewProductionLogger creates a production-ready logger
func NewProductionLogger(service string) *ProductionLogger {
	return &ProductionLogger{
		logger:  log.New(os.Stdout, "", 0),
		level:   LogLevelInfo,
		service: service,
	}
}

// SetLevel updates the logging level
func (p *ProductionLogger) SetLevel(level LogLevel) {
	p.level = level
}

func (p *ProductionLogger) Debug(msg string, keysAndValues ...interface{}) {
	p.write(LogLevelDebug, msg, keysAndValues...)
}

func (p *ProductionLogger) Info(msg string, keysAndValues ...interface{}) {
	p.write(LogLevelInfo, msg, keysAndValues...)
}

func (p *ProductionLogger) Warn(msg string, keysAndValues ...interface{}) {
	p.write(LogLevelWarn, msg, keysAndValues...)
}

func (p *ProductionLogger) Error(msg string, keysAndValues ...interface{}) {
	p.write(LogLevelError, msg, keysAndValues...)
}

func (p *ProductionLogger) write(level LogLevel, msg string, keysAndValues ...interface{}) {
	if level < p.level {
		return
	}

	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     level.String(),
		"service":   p.service,
		"message":   msg,
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		entry[key] = keysAndValues[i+1]
	}

	data, err := json.Marshal(entry)
	if err != nil {
		p.logger.Printf("[%s] %s %v", level, msg, keysAndValues)
		return
	}
	p.logger.Println(string(data))
}
