package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonLinesLogRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewJsonLinesLogRecorder(buf)
	log.now = func() time.Time {
		return time.Date(2006, 1, 2, 3, 4, 5, 6000, time.UTC)
	}

	session := log.NewSession()
	require.NoError(t, session.Record(&RunCommand{Command: []string{"ls", "-l"}}))
	require.NoError(t, session.Record(&CommandExit{Command: []string{"ls", "-l"}, ExitStatus: 2}))
	other := log.NewSession()
	require.NoError(t, other.Record(&InputError{Error: "input closed"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t,
		`{"timestamp_micros":1136171045000006,"session_id":"`+session.SessionID()+`","run_command":{"command":["ls","-l"]}}`,
		lines[0])

	var entries []*LogEntry
	require.NoError(t, ReadJSONLinesLog(buf, func(le *LogEntry) {
		entries = append(entries, le)
	}))

	require.Len(t, entries, 3)
	assert.Equal(t, &RunCommand{Command: []string{"ls", "-l"}}, entries[0].GetLogType())
	assert.Equal(t, &CommandExit{Command: []string{"ls", "-l"}, ExitStatus: 2}, entries[1].GetLogType())
	assert.Equal(t, &InputError{Error: "input closed"}, entries[2].GetLogType())

	assert.Equal(t, session.SessionID(), entries[0].GetSessionId())
	assert.Equal(t, other.SessionID(), entries[2].GetSessionId())
	assert.Equal(t, int64(1136171045000006), entries[2].TimestampMicros)
}

func TestRecordUnknownEvent(t *testing.T) {
	recorded := false
	log := &Logger{Record: func(*LogEntry) error {
		recorded = true
		return nil
	}}

	err := log.NewSession().Record(nil)

	assert.Error(t, err)
	assert.False(t, recorded)
}

func TestRecordError(t *testing.T) {
	failure := errors.New("disk full")
	log := &Logger{Record: func(*LogEntry) error {
		return failure
	}}

	err := log.NewSession().Record(&InputError{Error: "EOF"})

	assert.ErrorIs(t, err, failure)
}

func TestReadJSONLinesLogMalformed(t *testing.T) {
	err := ReadJSONLinesLog(strings.NewReader(`{"timestamp_micros": "yesterday"}`), func(*LogEntry) {
		t.Fatal("handler called for malformed entry")
	})

	assert.Error(t, err)
}
