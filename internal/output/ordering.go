package output

import (
	"sort"
	"strings"
)

// SortMatches sorts matches by score DESC, name ASC
func SortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		// Primary: score DESC
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		// Secondary: name ASC
		return matches[i].Name < matches[j].Name
	})
}

// SortNotes sorts notes by severity priority, text ASC
func SortNotes(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		// Primary: severity priority
		iSev := GetNoteSeverity(notes[i].Severity)
		jSev := GetNoteSeverity(notes[j].Severity)
		if iSev != jSev {
			return iSev < jSev
		}
		// Secondary: text ASC
		return notes[i].Text < notes[j].Text
	})
}

// SortNames sorts a name list ascending, case-insensitively with a
// case-sensitive tiebreak so the order is total.
func SortNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
}
