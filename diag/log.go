package diag

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/vk-validation/errors"
)

// LogSink writes reports to a zap logger. It never aborts.
type LogSink struct {
	log *zap.Logger
}

// NewLogSink creates a sink on l, or on the package logger when l is nil.
func NewLogSink(l *zap.Logger) *LogSink {
	if l == nil {
		l = Logger()
	}
	return &LogSink{log: l}
}

// Level maps a severity to the zap level a report is logged at.
func Level(s errors.Severity) zapcore.Level {
	switch {
	case s&errors.SeverityError != 0:
		return zapcore.ErrorLevel
	case s&(errors.SeverityWarning|errors.SeverityPerformance) != 0:
		return zapcore.WarnLevel
	case s&errors.SeverityInfo != 0:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// Report implements Sink.
func (s *LogSink) Report(r Report) bool {
	ce := s.log.Check(Level(r.Severity), r.Message)
	if ce == nil {
		return false
	}
	fields := []zap.Field{
		zap.String("code", string(r.Code)),
		zap.String("op", r.Op),
		zap.Stringer("severity", r.Severity),
	}
	if r.Object != 0 {
		fields = append(fields, zap.Uint64("object", r.Object), zap.Stringer("object_type", r.ObjectType))
	}
	if v := r.Violation; v != nil {
		if len(v.Path) > 0 {
			fields = append(fields, zap.String("path", v.PathString()))
		}
		if v.Value != nil {
			fields = append(fields, zap.Any("value", v.Value))
		}
		fields = append(fields, zap.String("category", string(v.Category)))
	}
	ce.Write(fields...)
	return false
}
