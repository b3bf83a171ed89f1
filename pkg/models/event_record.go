package models

import (
	"fmt"
	"strings"
	"time"
)

// EventRecord is an entry from /eventsocket, for example:
//
//	{"source":"DEVICE","name":"switch","displayName":"Christmas Tree","value":"off","type":"digital","unit":"null","deviceId":34,"hubId":0,"installedAppId":0,"descriptionText":"null"}
type EventRecord struct {
	Source          Text `json:"source"`
	Name            Text `json:"name"`
	DisplayName     Text `json:"displayName"`
	Value           Text `json:"value"`
	Type            Text `json:"type"`
	Unit            Text `json:"unit"`
	DeviceID        Text `json:"deviceId"`
	HubID           Text `json:"hubId"`
	InstalledAppID  Text `json:"installedAppId"`
	DescriptionText Text `json:"descriptionText"`
}

var EventCSVHeader = []string{
	"localTime",
	"source",
	"name",
	"displayName",
	"value",
	"type",
	"unit",
	"deviceId",
	"hubId",
	"installedAppId",
	"descriptionText",
}

func (r *EventRecord) MatchesDevice(device string) bool {
	return strings.EqualFold(string(r.Source), "DEVICE") &&
		(string(r.DeviceID) == device || string(r.DisplayName) == device)
}

// MatchesApp compares against installedAppId only. Events don't carry app names.
func (r *EventRecord) MatchesApp(app string) bool {
	return strings.EqualFold(string(r.Source), "APP") && string(r.InstalledAppID) == app
}

func (r *EventRecord) EventName() string {
	return string(r.Name)
}

// Format renders "<localTime> <source> [deviceId] [appId] [displayName]: <name> [value] [unit] [description]".
func (r *EventRecord) Format(receivedAt time.Time) string {
	prefix := joinNonEmpty(
		LocalTime(receivedAt),
		fmt.Sprintf("%-6s", EmptyIfNull(r.Source)),
		EmptyIfNullOrZero(r.DeviceID),
		EmptyIfNullOrZero(r.InstalledAppID),
		EmptyIfNull(r.DisplayName),
	)
	suffix := joinNonEmpty(
		EmptyIfNull(r.Name),
		EmptyIfNull(r.Value),
		EmptyIfNull(r.Unit),
		EmptyIfNull(r.DescriptionText),
	)
	return prefix + ": " + suffix
}

func (r *EventRecord) CSVRow(receivedAt time.Time) []string {
	return []string{
		LocalTime(receivedAt),
		EmptyIfNull(r.Source),
		EmptyIfNull(r.Name),
		EmptyIfNull(r.DisplayName),
		EmptyIfNull(r.Value),
		EmptyIfNull(r.Type),
		EmptyIfNull(r.Unit),
		EmptyIfNull(r.DeviceID),
		EmptyIfNull(r.HubID),
		EmptyIfNull(r.InstalledAppID),
		EmptyIfNull(r.DescriptionText),
	}
}

func (r *EventRecord) Fields() map[string]string {
	return map[string]string{
		"source":          EmptyIfNull(r.Source),
		"name":            EmptyIfNull(r.Name),
		"displayName":     EmptyIfNull(r.DisplayName),
		"value":           EmptyIfNull(r.Value),
		"type":            EmptyIfNull(r.Type),
		"unit":            EmptyIfNull(r.Unit),
		"deviceId":        EmptyIfNull(r.DeviceID),
		"hubId":           EmptyIfNull(r.HubID),
		"installedAppId":  EmptyIfNull(r.InstalledAppID),
		"descriptionText": EmptyIfNull(r.DescriptionText),
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
