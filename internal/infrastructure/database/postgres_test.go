package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type printed struct {
	lines []string
}

func (p *printed) Printf(format string, args ...interface{}) {
	p.lines = append(p.lines, fmt.Sprintf(format, args...))
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	out := &printed{}
	l := NewGormLogger(out)
	query := func() (string, int64) { return `SELECT * FROM "kv_entries"`, 0 }

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, out.lines)

	l.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
	assert.Len(t, out.lines, 1)
}
