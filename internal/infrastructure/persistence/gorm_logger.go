package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"

	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration above which a query is logged as a warning
const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM's query log through the application Logger.
// Missing rows are expected results and are never logged.
type gormLogger struct {
	logger logger.Logger
	level  gormlogger.LogLevel
	slow   time.Duration
}

// NewGormLogger creates a GORM logger at warn level writing to log
func NewGormLogger(log logger.Logger) gormlogger.Interface {
	return &gormLogger{
		logger: log,
		level:  gormlogger.Warn,
		slow:   slowQueryThreshold,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace logs failed queries as errors, unique violations and slow queries as warnings, and the rest at debug level in info mode.
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && errors.Is(err, gormlogger.ErrRecordNotFound):
		return
	case err != nil && errors.Is(mapDBError(err), ErrDuplicate):
		if l.level >= gormlogger.Warn {
			sql, rows := fc()
			l.logger.Warn(fmt.Sprintf("Query rejected by unique constraint [%s] [rows:%d] %s", elapsed, rows, sql))
		}
	case err != nil:
		if l.level >= gormlogger.Error {
			sql, rows := fc()
			l.logger.Error(fmt.Sprintf("Query failed [%s] [rows:%d] %s: %v", elapsed, rows, sql, err))
		}
	case l.slow > 0 && elapsed > l.slow:
		if l.level >= gormlogger.Warn {
			sql, rows := fc()
			l.logger.Warn(fmt.Sprintf("Slow query [%s] [rows:%d] %s", elapsed, rows, sql))
		}
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.logger.Debug(fmt.Sprintf("Query [%s] [rows:%d] %s", elapsed, rows, sql))
	}
}
