package planner

import (
	"math"

	"ddplanner_backend/internal/exam"
)

// topicSource serves the topic block for each scheduled appearance of
// a subject, advancing internal counters as days are generated.
type topicSource struct {
	profile  *exam.Profile
	chunks   map[string][][]string
	seqs     map[string][]string
	counters map[string]int
}

func newTopicSource(p *exam.Profile, totalDays, studyDays int) *topicSource {
	src := &topicSource{
		profile:  p,
		chunks:   make(map[string][][]string),
		seqs:     make(map[string][]string),
		counters: make(map[string]int),
	}

	for subject, topics := range p.Topics {
		switch p.Strategy {
		case exam.StrategyChunked:
			src.chunks[subject] = chunkTopics(p, subject, topics, studyDays)
		case exam.StrategyCycled:
			src.chunks[subject] = cycleTopics(p, subject, topics, studyDays)
		case exam.StrategyWeighted:
			src.seqs[subject] = weightedSequence(topics, p.RepeatedTopics[subject], totalDays)
		}
	}

	return src
}

// Next returns the topics for the subject's next scheduled day.
func (s *topicSource) Next(subject string) []string {
	if s.profile.Strategy == exam.StrategyWeighted {
		seq := s.seqs[subject]
		if len(seq) == 0 {
			return nil
		}
		idx := s.counters[subject] % len(seq)
		s.counters[subject]++
		return []string{seq[idx]}
	}

	chunks := s.chunks[subject]
	if len(chunks) == 0 {
		return nil
	}
	idx := s.counters[subject] % len(chunks)
	s.counters[subject] = (idx + 1) % len(chunks)
	return chunks[idx]
}

// occurrences counts how many study days schedule the subject, using
// the first-week rotation as the frequency reference.
func occurrences(p *exam.Profile, subject string, studyDays int) int {
	return (studyDays/7)*p.SubjectWeekFrequency(subject, 7) +
		p.SubjectWeekFrequency(subject, studyDays%7)
}

// chunkTopics slices the catalog into consecutive chunks, one per
// scheduled day. Days past the end of the catalog get empty chunks.
func chunkTopics(p *exam.Profile, subject string, topics []string, studyDays int) [][]string {
	occ := occurrences(p, subject, studyDays)
	if occ == 0 || len(topics) == 0 {
		return nil
	}

	perDay := int(math.Ceil(float64(len(topics)) / float64(occ)))
	chunks := make([][]string, 0, occ)
	for i := 0; i < occ; i++ {
		start := i * perDay
		if start > len(topics) {
			start = len(topics)
		}
		end := start + perDay
		if end > len(topics) {
			end = len(topics)
		}
		chunks = append(chunks, topics[start:end])
	}
	return chunks
}

// cycleTopics extends the catalog by repetition so every scheduled
// day gets at least one topic; the last day absorbs the remainder.
func cycleTopics(p *exam.Profile, subject string, topics []string, studyDays int) [][]string {
	occ := occurrences(p, subject, studyDays)
	if occ == 0 || len(topics) == 0 {
		return nil
	}

	extended := append([]string(nil), topics...)
	for len(extended) < occ {
		extended = append(extended, topics...)
	}

	perDay := len(extended) / occ
	if perDay < 1 {
		perDay = 1
	}

	chunks := make([][]string, 0, occ)
	for i := 0; i < occ; i++ {
		start := i * perDay
		end := start + perDay
		if i == occ-1 {
			end = len(extended)
		}
		if start >= end {
			continue
		}
		chunks = append(chunks, extended[start:end])
	}
	return chunks
}

// weightedSequence builds the serving order for a catalog whose
// flagged topics repeat two or three times in a row. When the
// sequence is still shorter than the available slots, whole catalog
// cycles are appended.
func weightedSequence(topics, repeated []string, totalDays int) []string {
	if len(topics) == 0 {
		return nil
	}

	repeatedSet := make(map[string]bool, len(repeated))
	for _, t := range repeated {
		repeatedSet[t] = true
	}

	availableSlots := totalDays / 7
	if availableSlots < 1 {
		availableSlots = 1
	}

	repetitions := 2
	if float64(availableSlots) >= float64(len(repeated))*2.5*1.2 {
		repetitions = 3
	}

	seq := make([]string, 0, len(topics)+len(repeated)*repetitions)
	for _, t := range topics {
		if repeatedSet[t] {
			for i := 0; i < repetitions; i++ {
				seq = append(seq, t)
			}
		} else {
			seq = append(seq, t)
		}
	}

	if remaining := availableSlots - len(seq); remaining > 0 {
		cycles := int(math.Ceil(float64(remaining) / float64(len(topics))))
		for c := 0; c < cycles; c++ {
			seq = append(seq, topics...)
		}
	}

	return seq
}
