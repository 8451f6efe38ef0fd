package dvid

import (
	"fmt"
	"testing"
)

type captureLogger struct {
	msgs []string
}

func (c *captureLogger) add(level, format string, args ...interface{}) {
	c.msgs = append(c.msgs, level+" "+fmt.Sprintf(format, args...))
}

func (c *captureLogger) Debugf(format string, args ...interface{}) { c.add("DEBUG", format, args...) }
func (c *captureLogger) Infof(format string, args ...interface{})  { c.add("INFO", format, args...) }
func (c *captureLogger) Warningf(format string, args ...interface{}) {
	c.add("WARNING", format, args...)
}
func (c *captureLogger) Errorf(format string, args ...interface{}) { c.add("ERROR", format, args...) }
func (c *captureLogger) Criticalf(format string, args ...interface{}) {
	c.add("CRITICAL", format, args...)
}
func (c *captureLogger) Shutdown() {}

func TestLogMode(t *testing.T) {
	capture := &captureLogger{}
	SetLoggerTo(capture)
	defer SetLoggerTo(nil)
	defer SetLogMode(InfoMode)

	SetLogMode(WarningMode)
	Debugf("skip %d", 1)
	Infof("skip %d", 2)
	Warningf("keep %d", 3)
	Errorf("keep %d", 4)
	if len(capture.msgs) != 2 || capture.msgs[0] != "WARNING keep 3" {
		t.Errorf("unexpected messages: %v", capture.msgs)
	}

	SetLogMode(DebugMode)
	tlog := NewTimeLog()
	tlog.Debugf("pass %d", 1)
	if len(capture.msgs) != 3 {
		t.Fatalf("expected time log message, got %v", capture.msgs)
	}
	SetLogMode(WarningMode)
	tlog.Infof("pass %d", 2)
	if len(capture.msgs) != 3 {
		t.Errorf("time log info should be gated by mode, got %v", capture.msgs)
	}
	SetLogMode(SilentMode)
	Criticalf("nothing")
	if len(capture.msgs) != 3 {
		t.Errorf("silent mode should log nothing, got %v", capture.msgs)
	}
}
