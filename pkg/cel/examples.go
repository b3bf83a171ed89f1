package cel

// FilterExpressionExamples are shown in the --where flag help.
var FilterExpressionExamples = map[string]string{
	"value_equals":      `record.value == "on"`,
	"name_prefix":       `record.name.startsWith("temp")`,
	"message_contains":  `record.msg.contains("error")`,
	"numeric_threshold": `record.name == "temperature" && double(record.value) > 25.0`,
	"any_of":            `record.level in ["warn", "error"]`,
	"stream_specific":   `stream == "events" && record.source == "APP"`,
	"has_description":   `record.descriptionText != ""`,
}
