package planner

import (
	"errors"
	"strings"
	"testing"
	"time"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/util"
)

func fixedPlanner() *Planner {
	return &Planner{Now: func() time.Time {
		return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	}}
}

func baseRequest() model.StudyPlanRequest {
	return model.StudyPlanRequest{
		Concurso:         "TJ-CE",
		Cargo:            "Técnico Judiciário",
		HorasLiquidas:    "3 horas",
		PlataformaEstudo: "Qconcursos",
		TempoEstudo:      "90 dias",
	}
}

func TestGeneratePlanLength(t *testing.T) {
	tests := []struct {
		tempo string
		want  int
	}{
		{"90 dias", 90},
		{"120 dias", 120},
	}

	for _, tt := range tests {
		req := baseRequest()
		req.TempoEstudo = tt.tempo
		plan, err := fixedPlanner().Generate(req)
		if err != nil {
			t.Fatalf("Generate(%q): %v", tt.tempo, err)
		}
		if len(plan) != tt.want {
			t.Errorf("Generate(%q) produced %d days, want %d", tt.tempo, len(plan), tt.want)
		}
		for i, d := range plan {
			if d.Day != i+1 {
				t.Fatalf("day %d has Day=%d", i+1, d.Day)
			}
		}
	}
}

func TestGenerateRestDays(t *testing.T) {
	plan, err := fixedPlanner().Generate(baseRequest())
	if err != nil {
		t.Fatal(err)
	}

	for _, d := range plan {
		wantRest := d.Day > 88
		if d.IsRestDay != wantRest {
			t.Errorf("day %d: IsRestDay=%v, want %v", d.Day, d.IsRestDay, wantRest)
		}
		if wantRest {
			if d.Subjects.Subject1 != "DESCANSO TOTAL" || d.Subjects.Time1 != 0 {
				t.Errorf("day %d: rest day has study scheduled", d.Day)
			}
			if got := TotalDailyTime(d); got != 0 {
				t.Errorf("day %d: rest day total time = %d", d.Day, got)
			}
		}
	}
}

func TestGenerateFinalWeekReviewRotation(t *testing.T) {
	plan, err := fixedPlanner().Generate(baseRequest())
	if err != nil {
		t.Fatal(err)
	}

	wantPairs := [][2]string{
		{"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
		{"NOÇÕES DE DIREITO PROCESSUAL CIVIL", "DIREITO ADMINISTRATIVO"},
		{"NOÇÕES DE DIREITO PROCESSUAL PENAL", "RACIOCÍNIO LÓGICO"},
		{"LÍNGUA PORTUGUESA", "DIREITO CONSTITUCIONAL"},
		{"DIREITO ADMINISTRATIVO", "NOÇÕES DE DIREITO PROCESSUAL CIVIL"},
	}

	for i, day := 0, 84; day <= 88; i, day = i+1, day+1 {
		d := plan[day-1]
		if !d.IsReviewDay {
			t.Fatalf("day %d: expected review day", day)
		}
		if d.Subjects.Subject1 != wantPairs[i][0] || d.Subjects.Subject2 != wantPairs[i][1] {
			t.Errorf("day %d: got pair (%s, %s), want (%s, %s)",
				day, d.Subjects.Subject1, d.Subjects.Subject2, wantPairs[i][0], wantPairs[i][1])
		}
		if len(d.Subjects.Topics1) == 0 || len(d.Subjects.Topics1) > 3 {
			t.Errorf("day %d: review day carries %d topics", day, len(d.Subjects.Topics1))
		}
	}
}

// Day 84 of a 90-day plan falls on weekday 7, but it sits inside the
// final review week, and the review classification must win.
func TestReviewOverridesWeeklyMock(t *testing.T) {
	plan, err := fixedPlanner().Generate(baseRequest())
	if err != nil {
		t.Fatal(err)
	}

	d := plan[83]
	if d.WeekDay != 7 {
		t.Fatalf("day 84 weekDay=%d, want 7", d.WeekDay)
	}
	if !d.IsReviewDay {
		t.Error("day 84 should be a review day")
	}
	if strings.Contains(d.SpecialInstructions, "mini simulado") {
		t.Errorf("day 84 kept the weekly mock instructions: %q", d.SpecialInstructions)
	}
}

func TestGenerateWeekdayClassification(t *testing.T) {
	plan, err := fixedPlanner().Generate(baseRequest())
	if err != nil {
		t.Fatal(err)
	}

	// Plain weeks only; the final week and rest days are tested above.
	for _, d := range plan[:77] {
		wantWeekDay := ((d.Day - 1) % 7) + 1
		if d.WeekDay != wantWeekDay {
			t.Fatalf("day %d: weekDay=%d, want %d", d.Day, d.WeekDay, wantWeekDay)
		}

		switch wantWeekDay {
		case 6:
			if !d.IsSpecialDay || d.Activities.Questions.Description != "COLOCAR EM DIA OS ATRASOS" {
				t.Errorf("day %d: expected catch-up day", d.Day)
			}
			if d.Activities.Review.Time != 0 || d.Activities.LegalStudy.Time != 0 {
				t.Errorf("day %d: catch-up day should pool activity time", d.Day)
			}
		case 7:
			if !d.IsSpecialDay || !strings.Contains(d.SpecialInstructions, "mini simulado") {
				t.Errorf("day %d: expected weekly mock day, got %q", d.Day, d.SpecialInstructions)
			}
			if d.Activities.Questions.QuestionsCount != 0 {
				t.Errorf("day %d: mock day has questionsCount=%d", d.Day, d.Activities.Questions.QuestionsCount)
			}
		default:
			if d.IsSpecialDay || d.IsReviewDay || d.IsRestDay {
				t.Errorf("day %d: expected a normal study day", d.Day)
			}
			if d.Activities.Questions.Link == "" {
				t.Errorf("day %d: missing platform link", d.Day)
			}
		}
	}
}

func TestGenerateTimeScaling(t *testing.T) {
	tests := []struct {
		horas       string
		wantSubject int
		wantCount   int
	}{
		{"3 horas", 60, 20},
		{"4 horas", 80, 27},
		{"6 horas", 120, 40},
	}

	for _, tt := range tests {
		req := baseRequest()
		req.HorasLiquidas = tt.horas
		plan, err := fixedPlanner().Generate(req)
		if err != nil {
			t.Fatalf("Generate(%q): %v", tt.horas, err)
		}

		d := plan[0]
		if d.Subjects.Time1 != tt.wantSubject || d.Subjects.Time2 != tt.wantSubject {
			t.Errorf("%q: subject time (%d, %d), want %d",
				tt.horas, d.Subjects.Time1, d.Subjects.Time2, tt.wantSubject)
		}
		if d.Activities.Questions.QuestionsCount != tt.wantCount {
			t.Errorf("%q: questionsCount=%d, want %d",
				tt.horas, d.Activities.Questions.QuestionsCount, tt.wantCount)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := fixedPlanner()
	first, err := p.Generate(baseRequest())
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Generate(baseRequest())
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		a, b := first[i], second[i]
		if a.Subjects.Subject1 != b.Subjects.Subject1 ||
			a.Subjects.Subject2 != b.Subjects.Subject2 ||
			len(a.Subjects.Topics1) != len(b.Subjects.Topics1) ||
			a.SpecialInstructions != b.SpecialInstructions {
			t.Fatalf("day %d differs between runs", i+1)
		}
		for j := range a.Subjects.Topics1 {
			if a.Subjects.Topics1[j] != b.Subjects.Topics1[j] {
				t.Fatalf("day %d topic %d differs between runs", i+1, j)
			}
		}
	}
}

func TestGenerateDates(t *testing.T) {
	plan, err := fixedPlanner().Generate(baseRequest())
	if err != nil {
		t.Fatal(err)
	}

	if plan[0].Date != "10/03/2025" {
		t.Errorf("day 1 date = %q, want 10/03/2025", plan[0].Date)
	}
	if plan[89].Date != "07/06/2025" {
		t.Errorf("day 90 date = %q, want 07/06/2025", plan[89].Date)
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.StudyPlanRequest)
		wantErr error
	}{
		{"unknown exam", func(r *model.StudyPlanRequest) { r.Concurso = "TRF-99" }, util.ErrUnknownExam},
		{"zero hours", func(r *model.StudyPlanRequest) { r.HorasLiquidas = "0 horas" }, util.ErrInvalidHours},
		{"garbage hours", func(r *model.StudyPlanRequest) { r.HorasLiquidas = "muitas" }, util.ErrInvalidHours},
		{"unsupported hours", func(r *model.StudyPlanRequest) { r.HorasLiquidas = "5 horas" }, util.ErrInvalidHours},
		{"odd period", func(r *model.StudyPlanRequest) { r.TempoEstudo = "45 dias" }, util.ErrInvalidPeriod},
		{"unknown platform", func(r *model.StudyPlanRequest) { r.PlataformaEstudo = "PlataformaInexistente" }, util.ErrInvalidPlatform},
		{"empty platform", func(r *model.StudyPlanRequest) { r.PlataformaEstudo = "" }, util.ErrInvalidPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			if _, err := fixedPlanner().Generate(req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateAllProfiles(t *testing.T) {
	for _, concurso := range []string{"tj-ce", "tj-rj", "mp-se", "cam-dep"} {
		req := baseRequest()
		req.Concurso = concurso
		plan, err := fixedPlanner().Generate(req)
		if err != nil {
			t.Fatalf("Generate(%s): %v", concurso, err)
		}
		if len(plan) != 90 {
			t.Errorf("%s: got %d days", concurso, len(plan))
		}
		if !plan[89].IsRestDay {
			t.Errorf("%s: last day is not a rest day", concurso)
		}
	}
}

func TestFormatTimeMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0min"},
		{45, "45min"},
		{60, "1h"},
		{90, "1h30min"},
		{150, "2h30min"},
	}

	for _, tt := range tests {
		if got := FormatTimeMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatTimeMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestWeekProgress(t *testing.T) {
	got := WeekProgress(90, 84)
	if got.WeekNumber != 12 || got.DayInWeek != 7 || got.WeekStart != 78 || got.WeekEnd != 84 {
		t.Errorf("WeekProgress(90, 84) = %+v", got)
	}

	got = WeekProgress(90, 90)
	if got.WeekNumber != 13 || got.WeekEnd != 90 {
		t.Errorf("WeekProgress(90, 90) = %+v", got)
	}
}
