package models

import (
	"fmt"
	"strings"
	"time"
)

// LogRecord is an entry from /logsocket, for example:
//
//	{"name":"Christmas Tree","msg":"setSysinfo: [led:off]","id":34,"time":"2022-11-05 16:25:52.729","type":"dev","level":"info"}
type LogRecord struct {
	Name  Text `json:"name"`
	Msg   Text `json:"msg"`
	ID    Text `json:"id"`
	Time  Text `json:"time"`
	Type  Text `json:"type"`
	Level Text `json:"level"`
}

var LogCSVHeader = []string{"localTime", "name", "msg", "id", "time", "type", "level"}

func (r *LogRecord) MatchesDevice(device string) bool {
	return strings.EqualFold(string(r.Type), "dev") && r.idOrName(device)
}

// MatchesApp accepts app names as well as ids; the log stream carries both.
func (r *LogRecord) MatchesApp(app string) bool {
	return strings.EqualFold(string(r.Type), "app") && r.idOrName(app)
}

func (r *LogRecord) idOrName(v string) bool {
	return string(r.ID) == v || string(r.Name) == v
}

func (r *LogRecord) LogLevel() string {
	return string(r.Level)
}

func (r *LogRecord) Format(_ time.Time) string {
	return fmt.Sprintf("%s  %-5s  %s %s %s  %s",
		EmptyIfNull(r.Time),
		EmptyIfNull(r.Level),
		EmptyIfNull(r.Type),
		EmptyIfNull(r.ID),
		EmptyIfNull(r.Name),
		EmptyIfNull(r.Msg),
	)
}

func (r *LogRecord) CSVRow(receivedAt time.Time) []string {
	return []string{
		LocalTime(receivedAt),
		EmptyIfNull(r.Name),
		EmptyIfNull(r.Msg),
		EmptyIfNull(r.ID),
		EmptyIfNull(r.Time),
		EmptyIfNull(r.Type),
		EmptyIfNull(r.Level),
	}
}

func (r *LogRecord) Fields() map[string]string {
	return map[string]string{
		"name":  EmptyIfNull(r.Name),
		"msg":   EmptyIfNull(r.Msg),
		"id":    EmptyIfNull(r.ID),
		"time":  EmptyIfNull(r.Time),
		"type":  EmptyIfNull(r.Type),
		"level": EmptyIfNull(r.Level),
	}
}
