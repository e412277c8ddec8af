package controller

import (
	"ddplanner_backend/internal/exam"
	"ddplanner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct{}

func NewExamController() *ExamController {
	return &ExamController{}
}

// List godoc
// @Summary Supported exams
// @Description Lists the exam profiles plans can be generated for
// @Tags exams
// @Produce  json
// @Success 200 {object} util.Response
// @Router /api/exams [get]
func (c *ExamController) List(ctx *gin.Context) {
	profiles := exam.All()
	out := make([]gin.H, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, gin.H{
			"code":             p.Code,
			"name":             p.Name,
			"subjects":         len(p.Topics),
			"prioritySubjects": p.PrioritySubjects,
		})
	}
	util.Success(ctx, out)
}
