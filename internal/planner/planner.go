// Package planner generates day-by-day study schedules from the
// intake form, driven by the exam profiles.
package planner

import (
	"fmt"
	"math"
	"time"

	"ddplanner_backend/internal/exam"
	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/util"
)

const (
	baseHours       = 3
	finalRestDays   = 2
	finalWeekLength = 7

	restSubject         = "DESCANSO TOTAL"
	restInstructions    = "Reserve este dia para descanso total. Você merece!"
	catchUpDescription  = "COLOCAR EM DIA OS ATRASOS"
	catchUpInstructions = "Dia para colocar em dia tudo que não foi marcado como feito durante a semana."
)

// PlatformLinks maps question platforms to their question banks.
var PlatformLinks = map[string]string{
	"Qconcursos":   "https://www.qconcursos.com/questoes-de-concursos",
	"TecConcursos": "https://www.tecconcursos.com.br/questoes",
}

// Planner builds study schedules. Now is injectable so generation is
// reproducible in tests.
type Planner struct {
	Now func() time.Time
}

func New() *Planner {
	return &Planner{Now: time.Now}
}

// Generate produces one DayPlan per day of the requested horizon.
func (p *Planner) Generate(req model.StudyPlanRequest) ([]model.DayPlan, error) {
	profile, ok := exam.Lookup(req.Concurso)
	if !ok {
		return nil, fmt.Errorf("%w: %s", util.ErrUnknownExam, req.Concurso)
	}

	dailyHours := util.ParseLeadingInt(req.HorasLiquidas)
	if dailyHours != 3 && dailyHours != 4 && dailyHours != 6 {
		return nil, fmt.Errorf("%w: %q", util.ErrInvalidHours, req.HorasLiquidas)
	}

	totalDays := util.ParseLeadingInt(req.TempoEstudo)
	if totalDays != 90 && totalDays != 120 {
		return nil, fmt.Errorf("%w: %q", util.ErrInvalidPeriod, req.TempoEstudo)
	}

	link, ok := PlatformLinks[req.PlataformaEstudo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", util.ErrInvalidPlatform, req.PlataformaEstudo)
	}

	multiplier := float64(dailyHours) / baseHours
	subjectTime := round(60 * multiplier)
	questionsTime := round(30 * multiplier)
	reviewTime := round(15 * multiplier)
	legalStudyTime := round(15 * multiplier)
	questionsCount := round(20 * multiplier)

	studyDays := totalDays - finalRestDays
	topics := newTopicSource(profile, totalDays, studyDays)

	startDate := p.Now()
	plan := make([]model.DayPlan, 0, totalDays)

	for day := 1; day <= totalDays; day++ {
		date := startDate.AddDate(0, 0, day-1).Format("02/01/2006")
		weekDay := ((day - 1) % 7) + 1
		weekNumber := (day + 6) / 7
		pattern := profile.WeekPattern(weekNumber)[weekDay]

		switch {
		case day > totalDays-finalRestDays:
			plan = append(plan, restDay(day, weekDay, date))

		case day > totalDays-finalWeekLength:
			dayInFinalWeek := day - (totalDays - finalWeekLength)
			pair := profile.FinalWeek[(dayInFinalWeek-1)%len(profile.FinalWeek)]
			plan = append(plan, reviewDay(day, weekDay, date, profile, pair, dayTimes{
				subject:        subjectTime,
				questions:      questionsTime,
				review:         reviewTime,
				legalStudy:     legalStudyTime,
				questionsCount: questionsCount,
				link:           link,
			}))

		case weekDay == 6:
			plan = append(plan, catchUpDay(day, weekDay, date, pattern, subjectTime, questionsTime+reviewTime+legalStudyTime))

		case weekDay == 7:
			plan = append(plan, mockDay(day, weekDay, date, profile, pattern, subjectTime, questionsTime+reviewTime+legalStudyTime))

		default:
			plan = append(plan, normalDay(day, weekDay, date, pattern, topics, dayTimes{
				subject:        subjectTime,
				questions:      questionsTime,
				review:         reviewTime,
				legalStudy:     legalStudyTime,
				questionsCount: questionsCount,
				link:           link,
			}))
		}
	}

	return plan, nil
}

type dayTimes struct {
	subject        int
	questions      int
	review         int
	legalStudy     int
	questionsCount int
	link           string
}

func restDay(day, weekDay int, date string) model.DayPlan {
	return model.DayPlan{
		Day:     day,
		WeekDay: weekDay,
		Date:    date,
		Subjects: model.DaySubjects{
			Subject1: restSubject,
			Subject2: restSubject,
		},
		Activities: model.DayActivities{
			Questions: model.QuestionsActivity{
				Description: "Dia de descanso - sem questões",
			},
			Review: model.TimedActivity{
				Description: "Dia de descanso - sem revisão",
			},
			LegalStudy: model.TimedActivity{
				Description: "Dia de descanso - sem lei seca",
			},
		},
		IsRestDay:           true,
		SpecialInstructions: restInstructions,
	}
}

func reviewDay(day, weekDay int, date string, profile *exam.Profile, pair exam.SubjectPair, t dayTimes) model.DayPlan {
	boostedCount := round(float64(t.questionsCount) * 1.5)

	return model.DayPlan{
		Day:     day,
		WeekDay: weekDay,
		Date:    date,
		Subjects: model.DaySubjects{
			Subject1: pair.Subject1,
			Subject2: pair.Subject2,
			Time1:    t.subject,
			Time2:    t.subject,
			Topics1:  leadTopics(profile, pair.Subject1),
			Topics2:  leadTopics(profile, pair.Subject2),
		},
		Activities: model.DayActivities{
			Questions: model.QuestionsActivity{
				Description:    fmt.Sprintf("REVISÃO INTENSIVA - Responder %d questões dos assuntos mais importantes", boostedCount),
				Time:           round(float64(t.questions) * 1.2),
				QuestionsCount: boostedCount,
				Link:           t.link,
			},
			Review: model.TimedActivity{
				Description: "Revisão focada nos pontos mais cobrados em prova",
				Time:        round(float64(t.review) * 1.3),
			},
			LegalStudy: model.TimedActivity{
				Description: "Lei seca dos artigos mais importantes e recorrentes",
				Time:        round(float64(t.legalStudy) * 1.2),
			},
		},
		IsReviewDay:  true,
		IsSpecialDay: true,
		SpecialInstructions: fmt.Sprintf(
			"SEMANA FINAL - REVISÃO INTENSIVA! Foque nos tópicos mais importantes de %s e %s. Priorize questões recentes e pontos mais cobrados.",
			pair.Subject1, pair.Subject2),
	}
}

func catchUpDay(day, weekDay int, date string, pair exam.SubjectPair, subjectTime, pooledTime int) model.DayPlan {
	return model.DayPlan{
		Day:     day,
		WeekDay: weekDay,
		Date:    date,
		Subjects: model.DaySubjects{
			Subject1: pair.Subject1,
			Subject2: pair.Subject2,
			Time1:    subjectTime,
			Time2:    subjectTime,
		},
		Activities: model.DayActivities{
			Questions: model.QuestionsActivity{
				Description: catchUpDescription,
				Time:        pooledTime,
			},
			Review: model.TimedActivity{
				Description: catchUpDescription,
			},
			LegalStudy: model.TimedActivity{
				Description: catchUpDescription,
			},
		},
		IsSpecialDay:        true,
		SpecialInstructions: catchUpInstructions,
	}
}

func mockDay(day, weekDay int, date string, profile *exam.Profile, pair exam.SubjectPair, subjectTime, pooledTime int) model.DayPlan {
	return model.DayPlan{
		Day:     day,
		WeekDay: weekDay,
		Date:    date,
		Subjects: model.DaySubjects{
			Subject1: pair.Subject1,
			Subject2: pair.Subject2,
			Time1:    subjectTime,
			Time2:    subjectTime,
		},
		Activities: model.DayActivities{
			Questions: model.QuestionsActivity{
				Description: profile.MockDayDescription,
				Time:        pooledTime,
			},
			Review: model.TimedActivity{
				Description: profile.MockDayDescription,
			},
			LegalStudy: model.TimedActivity{
				Description: profile.MockDayDescription,
			},
		},
		IsSpecialDay:        true,
		SpecialInstructions: profile.MockDayInstruction,
	}
}

func normalDay(day, weekDay int, date string, pair exam.SubjectPair, topics *topicSource, t dayTimes) model.DayPlan {
	return model.DayPlan{
		Day:     day,
		WeekDay: weekDay,
		Date:    date,
		Subjects: model.DaySubjects{
			Subject1: pair.Subject1,
			Subject2: pair.Subject2,
			Time1:    t.subject,
			Time2:    t.subject,
			Topics1:  topics.Next(pair.Subject1),
			Topics2:  topics.Next(pair.Subject2),
		},
		Activities: model.DayActivities{
			Questions: model.QuestionsActivity{
				Description:    fmt.Sprintf("Responder %d questões sobre os assuntos estudados", t.questionsCount),
				Time:           t.questions,
				QuestionsCount: t.questionsCount,
				Link:           t.link,
			},
			Review: model.TimedActivity{
				Description: "Revisão do assunto estudado no dia anterior",
				Time:        t.review,
			},
			LegalStudy: model.TimedActivity{
				Description: "Estudo de Lei seca referente aos assuntos estudados no dia",
				Time:        t.legalStudy,
			},
		},
	}
}

// leadTopics returns the opening entries of a subject catalog, used
// for the intensive review pass.
func leadTopics(profile *exam.Profile, subject string) []string {
	topics := profile.Topics[subject]
	if len(topics) > 3 {
		topics = topics[:3]
	}
	return topics
}

func round(v float64) int {
	return int(math.Round(v))
}

// FormatTimeMinutes renders a minute count as "1h30min" style text.
func FormatTimeMinutes(minutes int) string {
	if minutes == 0 {
		return "0min"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dmin", hours, rest)
}

// TotalDailyTime sums the scheduled minutes of a day.
func TotalDailyTime(d model.DayPlan) int {
	if d.IsRestDay {
		return 0
	}
	return d.Subjects.Time1 +
		d.Subjects.Time2 +
		d.Activities.Questions.Time +
		d.Activities.Review.Time +
		d.Activities.LegalStudy.Time
}

// WeekProgress locates a day within its week.
type WeekPosition struct {
	WeekNumber int `json:"weekNumber"`
	DayInWeek  int `json:"dayInWeek"`
	WeekStart  int `json:"weekStart"`
	WeekEnd    int `json:"weekEnd"`
}

func WeekProgress(totalDays, currentDay int) WeekPosition {
	weekNumber := (currentDay + 6) / 7
	weekEnd := weekNumber * 7
	if weekEnd > totalDays {
		weekEnd = totalDays
	}
	return WeekPosition{
		WeekNumber: weekNumber,
		DayInWeek:  ((currentDay - 1) % 7) + 1,
		WeekStart:  (weekNumber-1)*7 + 1,
		WeekEnd:    weekEnd,
	}
}
