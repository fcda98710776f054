package configs

import (
	"context"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestGormLoggerLogModeCopies(t *testing.T) {
	base := &GormLogger{SlowThreshold: time.Second, LogLevel: gormLogger.Warn}
	silent := base.LogMode(gormLogger.Silent).(*GormLogger)

	if silent == base {
		t.Fatal("LogMode must return a copy")
	}
	if silent.LogLevel != gormLogger.Silent || base.LogLevel != gormLogger.Warn {
		t.Fatalf("levels: copy=%v base=%v", silent.LogLevel, base.LogLevel)
	}
}

func TestGormLoggerTrace(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	sql := func() (string, int64) { return "SELECT 1", 1 }
	l := &GormLogger{SlowThreshold: time.Hour, LogLevel: gormLogger.Warn}

	// record not found bukan error untuk log
	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	if n := len(hook.AllEntries()); n != 0 {
		t.Fatalf("not-found logged %d entries", n)
	}

	l.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	last := hook.LastEntry()
	if last == nil || last.Level != log.ErrorLevel || last.Message != "SELECT 1" {
		t.Fatalf("want error entry for SELECT 1, got %+v", last)
	}

	hook.Reset()
	quiet := l.LogMode(gormLogger.Silent)
	quiet.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	if n := len(hook.AllEntries()); n != 0 {
		t.Fatalf("silent logged %d entries", n)
	}
}
