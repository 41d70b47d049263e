package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	warns []string
}

func (l *captureLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *captureLogger) Info(module, message string, details map[string]interface{})  {}
func (l *captureLogger) Warn(module, message string, details map[string]interface{}) {
	l.warns = append(l.warns, message)
}
func (l *captureLogger) Error(module, message string, details map[string]interface{}) {}
func (l *captureLogger) Sync() error                                                  { return nil }

func TestNotificationServiceStartWithoutSubscriber(t *testing.T) {
	log := &captureLogger{}
	svc := NewNotificationService(nil, nil, nil, log)

	// The event bus is optional at boot. Starting without a subscriber
	// must degrade to a warning, never crash the process.
	assert.NotPanics(t, func() { svc.Start() })
	assert.Len(t, log.warns, 1)
}
