package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is the diagnostic logger. It discards everything until the root
// command replaces it.
var logger = zap.NewNop()

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// recording answers to the results log

// A resultLog appends one CSV row per answer to a file, or to standard
// output if no file is configured or it can't be opened.
type resultLog struct {
	w    *csv.Writer
	file *os.File
}

func openResultLog(filename string, stdout io.Writer) *resultLog {
	if filename == "" {
		return &resultLog{w: csv.NewWriter(stdout)}
	}
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		logger.Warn("Could not open results log; sending results to standard output instead",
			zap.String("file", filename), zap.Error(err))
		return &resultLog{w: csv.NewWriter(stdout)}
	}
	return &resultLog{w: csv.NewWriter(f), file: f}
}

// Log writes a row for each part of r that has an answer.
func (l *resultLog) Log(r result) error {
	now := time.Now().Format("2006-01-02 15:04:05")
	for i, answer := range r.Answers.parts() {
		if answer == "" {
			continue
		}
		if err := l.w.Write(toStrings(now, r.Day, i+1, answer, r.Elapsed.Round(time.Microsecond))); err != nil {
			return err
		}
	}
	l.w.Flush()
	return l.w.Error()
}

func (l *resultLog) Close() error {
	l.w.Flush()
	if l.file != nil {
		return l.file.Close()
	}
	return l.w.Error()
}

// toStrings converts its arguments into a slice of strings.
func toStrings(a ...interface{}) []string {
	result := make([]string, len(a))
	for i, x := range a {
		result[i] = fmt.Sprint(x)
	}
	return result
}
