package handlers

import (
	"html/template"
	"net/http"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/models"
	"github.com/bobmcallan/vibex/internal/quiz"
	"github.com/bobmcallan/vibex/internal/session"
)

// QuizHandler serves the quiz catalogue and leaderboard.
type QuizHandler struct {
	base
	page quiz.Page
}

// NewQuizHandler creates a new quiz handler. The page is arranged once; the
// catalogue and leaderboard do not change at runtime.
func NewQuizHandler(logger *common.Logger, templates *template.Template, devMode bool, sessions *session.Manager, quizzes []models.Quiz, leaderboard []models.LeaderboardEntry) *QuizHandler {
	return &QuizHandler{
		base: newBase(logger, templates, devMode, sessions),
		page: quiz.BuildPage(quizzes, leaderboard),
	}
}

// HandleQuiz serves GET /quiz.
func (h *QuizHandler) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	store, ok := h.openSession(w, r)
	if !ok {
		return
	}
	data := h.pageData(w, r, store, "quiz")
	data["Quiz"] = h.page
	h.render(w, http.StatusOK, "quiz.html", data)
}
