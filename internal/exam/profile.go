// Package exam holds the per-contest study profiles: subject
// catalogs, weekly rotation patterns and final-week review pairs.
package exam

import "strings"

// TopicStrategy selects how a profile spreads its topic catalogs
// across the study days.
type TopicStrategy string

const (
	// StrategyChunked slices each catalog into consecutive chunks,
	// one chunk per scheduled day, without repetition.
	StrategyChunked TopicStrategy = "chunked"
	// StrategyCycled extends the catalog by repetition until every
	// scheduled day gets at least one topic.
	StrategyCycled TopicStrategy = "cycled"
	// StrategyWeighted builds a sequence where flagged topics appear
	// two or three times in a row, then serves one topic per day.
	StrategyWeighted TopicStrategy = "weighted"
)

// SubjectPair is the two study blocks of a scheduled day.
type SubjectPair struct {
	Subject1 string
	Subject2 string
}

// PatternPhase is a weekly rotation valid through a given week.
// ThroughWeek zero marks the open-ended final phase.
type PatternPhase struct {
	ThroughWeek int
	Days        map[int]SubjectPair
}

// Profile describes one supported contest.
type Profile struct {
	Code     string
	Name     string
	Strategy TopicStrategy

	// Topics maps subject name to its ordered topic catalog.
	Topics map[string][]string
	// RepeatedTopics flags topics served multiple times in a row,
	// used by StrategyWeighted only.
	RepeatedTopics map[string][]string

	Phases []PatternPhase

	// FinalWeek is the five-day intensive review rotation.
	FinalWeek [5]SubjectPair

	PrioritySubjects []string

	// MockDayDescription fills the activity slots of the weekly
	// mock day; MockDayInstruction is its guidance text.
	MockDayDescription string
	MockDayInstruction string
}

// WeekPattern returns the rotation in effect for the given week.
func (p *Profile) WeekPattern(week int) map[int]SubjectPair {
	for _, phase := range p.Phases {
		if phase.ThroughWeek == 0 || week <= phase.ThroughWeek {
			return phase.Days
		}
	}
	return p.Phases[len(p.Phases)-1].Days
}

// SubjectWeekFrequency counts how many of the first n weekdays
// schedule the subject, using the week-1 rotation as reference.
func (p *Profile) SubjectWeekFrequency(subject string, n int) int {
	pattern := p.WeekPattern(1)
	count := 0
	for day := 1; day <= n && day <= 7; day++ {
		pair, ok := pattern[day]
		if !ok {
			continue
		}
		if pair.Subject1 == subject || pair.Subject2 == subject {
			count++
		}
	}
	return count
}

var profiles = map[string]*Profile{
	"tj-ce":   tjCE,
	"tj-rj":   tjRJ,
	"mp-se":   mpSE,
	"cam-dep": camDep,
}

// Lookup resolves a contest identifier such as "TJ-CE" or "tj ce".
func Lookup(concurso string) (*Profile, bool) {
	key := strings.ToLower(strings.TrimSpace(concurso))
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.ReplaceAll(key, "_", "-")
	p, ok := profiles[key]
	return p, ok
}

// All returns every registered profile in a stable order.
func All() []*Profile {
	return []*Profile{tjCE, tjRJ, mpSE, camDep}
}
