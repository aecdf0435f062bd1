package output

// NoteSeverity defines the ordering priority for advisory notes
// Lower numbers have higher priority (sorted first)
var NoteSeverity = map[string]int{
	"warning": 1,
	"tip":     2,
	"info":    3,
}

// GetNoteSeverity returns the priority for a given note severity
// Unknown severities get the lowest priority (highest number)
func GetNoteSeverity(severity string) int {
	if priority, ok := NoteSeverity[severity]; ok {
		return priority
	}
	return NoteSeverity["info"]
}
