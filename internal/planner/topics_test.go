package planner

import (
	"testing"

	"ddplanner_backend/internal/exam"
)

func TestChunkedDistributionCoversCatalog(t *testing.T) {
	profile, _ := exam.Lookup("tj-ce")
	src := newTopicSource(profile, 90, 88)

	subject := "DIREITO CONSTITUCIONAL"
	catalog := profile.Topics[subject]

	seen := make(map[string]bool)
	for i := 0; i < len(src.chunks[subject]); i++ {
		for _, topic := range src.Next(subject) {
			seen[topic] = true
		}
	}

	for _, topic := range catalog {
		if !seen[topic] {
			t.Errorf("topic %q never scheduled", topic)
		}
	}
}

func TestChunkedDistributionWrapsAround(t *testing.T) {
	profile, _ := exam.Lookup("tj-ce")
	src := newTopicSource(profile, 90, 88)

	subject := "LÍNGUA PORTUGUESA"
	n := len(src.chunks[subject])
	if n == 0 {
		t.Fatal("no chunks built")
	}

	first := src.Next(subject)
	for i := 1; i < n; i++ {
		src.Next(subject)
	}
	again := src.Next(subject)

	if len(first) != len(again) {
		t.Fatalf("wrap-around chunk size %d, want %d", len(again), len(first))
	}
	for i := range first {
		if first[i] != again[i] {
			t.Errorf("wrap-around topic %d = %q, want %q", i, again[i], first[i])
		}
	}
}

func TestCycledDistributionNeverEmpty(t *testing.T) {
	profile, _ := exam.Lookup("mp-se")
	src := newTopicSource(profile, 120, 118)

	for subject := range profile.Topics {
		chunks := src.chunks[subject]
		for i, chunk := range chunks {
			if len(chunk) == 0 {
				t.Errorf("%s: chunk %d is empty", subject, i)
			}
		}
	}
}

func TestWeightedSequenceRepeatsFlaggedTopics(t *testing.T) {
	topics := []string{"a", "b", "c", "d"}
	repeated := []string{"b"}

	seq := weightedSequence(topics, repeated, 90)

	// 90 days gives 12 slots, enough for triple repetition.
	countB := 0
	for _, v := range seq[:6] {
		if v == "b" {
			countB++
		}
	}
	if countB != 3 {
		t.Errorf("flagged topic repeated %d times, want 3", countB)
	}
	if seq[0] != "a" || seq[1] != "b" || seq[2] != "b" || seq[3] != "b" || seq[4] != "c" {
		t.Errorf("unexpected sequence head: %v", seq[:5])
	}
}

func TestWeightedSequenceServesOneTopicPerDay(t *testing.T) {
	profile, _ := exam.Lookup("tj-rj")
	src := newTopicSource(profile, 90, 88)

	subject := "LÍNGUA PORTUGUESA"
	for i := 0; i < 20; i++ {
		got := src.Next(subject)
		if len(got) != 1 {
			t.Fatalf("call %d: got %d topics, want 1", i, len(got))
		}
	}
}

func TestUnknownSubjectHasNoTopics(t *testing.T) {
	profile, _ := exam.Lookup("tj-ce")
	src := newTopicSource(profile, 90, 88)

	if got := src.Next("TREINO DE REDAÇÃO"); got != nil {
		t.Errorf("expected no topics, got %v", got)
	}
}
