package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hunyar/focusflow-api/internal/middleware"
	"github.com/hunyar/focusflow-api/internal/service"
)

// Services groups everything the router needs to register routes.
type Services struct {
	Todos     *service.TodoService
	Marks     *service.MarkService
	Subjects  *service.SubjectService
	Timetable *service.TimetableService
	Notes     *service.NoteService
	Insights  *service.InsightService
	Reports   *service.ReportService
	Dashboard *service.DashboardService
	Unlock    *service.UnlockService
	Metrics   *service.MetricsService

	UnlockEnabled bool
}

// Register mounts all API routes under the given group. Reads are always
// open; mutations sit behind the unlock gate when it is enabled.
func Register(api *gin.RouterGroup, svcs Services) {
	guard := middleware.RequireUnlock(svcs.Unlock, svcs.UnlockEnabled)

	todos := NewTodoHandler(svcs.Todos)
	api.GET("/todos", todos.List)
	api.POST("/todos", guard, todos.Create)
	api.PATCH("/todos/:id/toggle", guard, todos.Toggle)
	api.DELETE("/todos/:id", guard, todos.Delete)

	marks := NewMarkHandler(svcs.Marks)
	api.GET("/marks", marks.List)
	api.GET("/marks/summaries", marks.Summaries)
	api.POST("/marks", guard, marks.Create)
	api.DELETE("/marks/:id", guard, marks.Delete)

	reports := NewReportHandler(svcs.Reports)
	api.GET("/marks/report", reports.MarksReport)

	subjects := NewSubjectHandler(svcs.Subjects)
	api.GET("/subjects", subjects.List)
	api.GET("/subjects/:id", subjects.Get)
	api.POST("/subjects", guard, subjects.Create)
	api.DELETE("/subjects/:id", guard, subjects.Delete)

	timetable := NewTimetableHandler(svcs.Timetable)
	api.GET("/timetable", timetable.List)
	api.GET("/timetable/grid", timetable.Grid)
	api.POST("/timetable", guard, timetable.Create)
	api.DELETE("/timetable/:id", guard, timetable.Delete)

	notes := NewNoteHandler(svcs.Notes)
	api.GET("/notes", notes.List)
	api.GET("/notes/:id", notes.Get)
	api.POST("/notes", guard, notes.Create)
	api.PUT("/notes/:id", guard, notes.Update)
	api.DELETE("/notes/:id", guard, notes.Delete)

	insights := NewInsightHandler(svcs.Insights)
	api.POST("/insights/study-suggestions", insights.StudySuggestions)
	api.POST("/insights/mark-analysis", insights.MarkAnalysis)
	api.POST("/insights/conceptor", insights.Conceptor)

	dashboard := NewDashboardHandler(svcs.Dashboard)
	api.GET("/dashboard", dashboard.Overview)

	if svcs.Unlock != nil {
		unlock := NewUnlockHandler(svcs.Unlock)
		api.POST("/unlock", unlock.Unlock)
	}

	if svcs.Metrics != nil {
		metrics := NewMetricsHandler(svcs.Metrics)
		api.GET("/metrics", metrics.Prometheus)
	}
}
