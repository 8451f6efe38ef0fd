package dvid

import (
	"fmt"
	"log"

	"github.com/natefinch/lumberjack"
)

// fileLogger writes to a rotating log file if one has been configured and to the
// standard logger otherwise.
type fileLogger struct {
	*lumberjack.Logger
}

var logger Logger = fileLogger{}

// LogConfig is the [logging] section of the TOML configuration.
type LogConfig struct {
	Logfile string
	MaxSize int `toml:"max_log_size"`
	MaxAge  int `toml:"max_log_age"`
}

// SetLogger creates a logger that saves to a rotating log file.  If no log file
// is given, messages go to stdout via the standard log package.
func (c *LogConfig) SetLogger() {
	if c == nil || c.Logfile == "" {
		Infof("Sending log messages to stdout since no log file specified.\n")
		return
	}
	fmt.Printf("Sending log messages to: %s\n", c.Logfile)
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
	logger = fileLogger{l}
}

// SetLoggerTo replaces the package logger, e.g., to capture messages in tests.
func SetLoggerTo(l Logger) {
	if l == nil {
		l = fileLogger{}
	}
	logger = l
}

func (flog fileLogger) write(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if flog.Logger != nil {
		log.New(flog.Logger, "", log.LstdFlags).Print(level + msg)
		return
	}
	log.Print(level + msg)
}

func (flog fileLogger) Debugf(format string, args ...interface{}) {
	flog.write(" DEBUG ", format, args...)
}

func (flog fileLogger) Infof(format string, args ...interface{}) {
	flog.write(" INFO ", format, args...)
}

func (flog fileLogger) Warningf(format string, args ...interface{}) {
	flog.write(" WARNING ", format, args...)
}

func (flog fileLogger) Errorf(format string, args ...interface{}) {
	flog.write(" ERROR ", format, args...)
}

func (flog fileLogger) Criticalf(format string, args ...interface{}) {
	flog.write(" CRITICAL ", format, args...)
}

func (flog fileLogger) Shutdown() {
	if flog.Logger != nil {
		log.Printf("Closing log file...\n")
		flog.Close()
	}
}
