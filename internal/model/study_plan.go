package model

import "time"

// StudyPlanRequest carries the intake form fields. Numeric values
// arrive embedded in display strings ("3 horas", "90 dias") and are
// parsed by the planner.
type StudyPlanRequest struct {
	Concurso               string   `json:"concurso" binding:"required"`
	Cargo                  string   `json:"cargo" binding:"required"`
	HorasLiquidas          string   `json:"horasLiquidas" binding:"required"`
	DisciplinasDificuldade []string `json:"disciplinasDificuldade"`
	PlataformaEstudo       string   `json:"plataformaEstudo"`
	TempoEstudo            string   `json:"tempoEstudo" binding:"required"`
}

// DaySubjects holds the two study blocks of a day.
type DaySubjects struct {
	Subject1 string   `json:"subject1"`
	Subject2 string   `json:"subject2"`
	Time1    int      `json:"time1"`
	Time2    int      `json:"time2"`
	Topics1  []string `json:"topics1"`
	Topics2  []string `json:"topics2"`
}

type QuestionsActivity struct {
	Description    string `json:"description"`
	Time           int    `json:"time"`
	QuestionsCount int    `json:"questionsCount"`
	Link           string `json:"link"`
}

type TimedActivity struct {
	Description string `json:"description"`
	Time        int    `json:"time"`
}

type DayActivities struct {
	Questions  QuestionsActivity `json:"questions"`
	Review     TimedActivity     `json:"review"`
	LegalStudy TimedActivity     `json:"legalStudy"`
}

// DayPlan is one generated day of the schedule.
type DayPlan struct {
	Day                 int           `json:"day"`
	WeekDay             int           `json:"weekDay"`
	Date                string        `json:"date"`
	Subjects            DaySubjects   `json:"subjects"`
	Activities          DayActivities `json:"activities"`
	IsRestDay           bool          `json:"isRestDay"`
	IsSpecialDay        bool          `json:"isSpecialDay"`
	IsReviewDay         bool          `json:"isReviewDay"`
	SpecialInstructions string        `json:"specialInstructions,omitempty"`
}

// StoredStudyPlan is the persisted plan with progress state.
// CompletedTasks entries are "<day>-<slot>" keys.
type StoredStudyPlan struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Concurso       string           `json:"concurso"`
	Cargo          string           `json:"cargo"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	TotalDays      int              `json:"totalDays"`
	CompletedTasks []string         `json:"completedTasks"`
	Plans          []DayPlan        `json:"plans"`
	FormData       StudyPlanRequest `json:"formData"`
}

// ActivityLogEntry records a user action over a plan.
type ActivityLogEntry struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	PlanID    string    `json:"planId"`
	PlanTitle string    `json:"planTitle"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlanStats aggregates dashboard numbers across a user's plans.
type PlanStats struct {
	TotalPlans        int     `json:"totalPlans"`
	ActivePlans       int     `json:"activePlans"`
	TotalHoursStudied float64 `json:"totalHoursStudied"`
	TotalSubjects     int     `json:"totalSubjects"`
	AverageProgress   int     `json:"averageProgress"`
}

// SyncStatus reports the reconciler state to the client.
type SyncStatus struct {
	RemoteAvailable   bool      `json:"remoteAvailable"`
	PendingOperations int64     `json:"pendingOperations"`
	LastSyncAt        time.Time `json:"lastSyncAt"`
	Syncing           bool      `json:"syncing"`
}

// StudyPlanRecord is the remote MySQL row mirroring a StoredStudyPlan.
// The full plan document is kept as a JSON payload since the remote
// store is a mirror, not a query surface.
type StudyPlanRecord struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Title     string    `gorm:"size:255" json:"title"`
	Concurso  string    `gorm:"size:50" json:"concurso"`
	Cargo     string    `gorm:"size:100" json:"cargo"`
	TotalDays int       `json:"totalDays"`
	Payload   string    `gorm:"type:longtext" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StudyPlanRecord) TableName() string {
	return "study_plans"
}
