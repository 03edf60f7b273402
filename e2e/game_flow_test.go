package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ekaraca/phishdrill/internal/dependencies/clock"
	"github.com/ekaraca/phishdrill/internal/dependencies/random"
	"github.com/ekaraca/phishdrill/internal/gameclient"
	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/server"
	"github.com/ekaraca/phishdrill/internal/server/content"
	"github.com/ekaraca/phishdrill/internal/server/engine"
	"github.com/ekaraca/phishdrill/internal/session"
	"github.com/ekaraca/phishdrill/internal/storage/memory"
	"github.com/ekaraca/phishdrill/internal/testutil"
)

// GameFlowSuite plays full games through the real client stack (session
// controller + HTTP clients) against an in-process practice server.
type GameFlowSuite struct {
	suite.Suite
	ts         *httptest.Server
	users      *gameclient.UserClient
	controller *session.Controller
	ctx        context.Context
}

func TestGameFlowSuite(t *testing.T) {
	suite.Run(t, new(GameFlowSuite))
}

func (s *GameFlowSuite) SetupTest() {
	banks, err := content.Load()
	s.Require().NoError(err)

	logger := testutil.NopLogger()
	store := memory.New()
	clk := clock.New()
	eng := engine.NewEngine(store, banks, clk, random.New(), logger)

	s.ts = httptest.NewServer(server.NewRouter(server.RouterConfig{
		Logger:  logger,
		Engine:  eng,
		Storage: store,
		Clock:   clk,
	}))

	games := gameclient.NewGameClient(s.ts.URL + "/api/game")
	s.users = gameclient.NewUserClient(s.ts.URL + "/api/user")
	s.controller = session.NewController(games, s.users, clk, logger)
	s.ctx = context.Background()
}

func (s *GameFlowSuite) TearDownTest() {
	s.ts.Close()
}

// answerCurrent submits the first option of whatever question is showing and
// advances past the feedback
func (s *GameFlowSuite) answerCurrent() {
	sess := s.controller.Session()
	var options []string
	switch {
	case sess.CurrentQuestion != nil:
		options = sess.CurrentQuestion.Options
	case sess.CurrentPasswordQuestion != nil:
		options = sess.CurrentPasswordQuestion.Options
	}
	s.Require().NotEmpty(options, "expected an active question")

	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, options[0]))
	s.Require().NotNil(s.controller.Session().Feedback, "grading must set feedback")

	s.Require().NoError(s.controller.NextQuestion(s.ctx))
	s.Require().Nil(s.controller.Session().Feedback, "advancing must clear feedback")
}

func (s *GameFlowSuite) TestPasswordOnlyPlaythrough() {
	s.Require().NoError(s.controller.StartGame(s.ctx, "Ada"))
	sess := s.controller.Session()
	s.Equal(model.PhaseModeSelect, sess.Phase)
	s.Equal("Ada", sess.UserName)

	// Register so the finished game gets persisted
	id, err := s.controller.RegisterUser(s.ctx, model.Profile{
		FullName:       "Ada Lovelace",
		BirthDate:      "1990-01-01",
		EducationLevel: "Lisans",
		Profession:     "Mühendis",
	})
	s.Require().NoError(err)
	s.Equal(model.UserID(1), id)

	s.Require().NoError(s.controller.SelectGameMode(s.ctx, model.ModePasswordOnly))
	sess = s.controller.Session()
	s.Equal(model.PhasePasswordQuestion, sess.Phase)
	s.NotNil(sess.CurrentPasswordQuestion)
	s.Equal(model.Progress{Current: 0, Total: 11}, sess.Progress)
	s.False(sess.AwaitingPasswordEntry())

	for i := 0; i < 10; i++ {
		s.answerCurrent()
	}

	sess = s.controller.Session()
	s.True(sess.AwaitingPasswordEntry(), "after the last question comes the free-text entry")
	s.Nil(sess.CurrentPasswordQuestion)

	s.Require().NoError(s.controller.SubmitPassword(s.ctx, "Abcdef1!"))
	sess = s.controller.Session()
	s.Equal(model.PhaseResults, sess.Phase)
	s.Require().NotNil(sess.Report)
	s.Equal(10, sess.Report.TotalQuestions)
	s.NotEmpty(sess.Report.Grade)
	s.Require().NotNil(sess.Report.PasswordAnalysis)
	s.Equal("Güçlü", sess.Report.PasswordAnalysis.Strength)

	// The registered run must have landed on the leaderboard
	entries, err := s.users.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("Ada Lovelace", entries[0].FullName)

	// ...and on the user's own play history
	history, err := s.users.Results(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(sess.Report.Percentage, history[0].Percentage)

	// Restart gives a fresh identity and a clean slate
	oldID := sess.ID
	s.Require().NoError(s.controller.RestartGame(s.ctx))
	sess = s.controller.Session()
	s.Equal(model.PhaseWelcome, sess.Phase)
	s.NotEqual(oldID, sess.ID)
	s.Nil(sess.Report)
	s.Zero(sess.Score)
}

func (s *GameFlowSuite) TestMixedPlaythrough() {
	s.Require().NoError(s.controller.StartGame(s.ctx, "Grace"))
	s.Require().NoError(s.controller.SelectGameMode(s.ctx, model.ModeMixed))

	sess := s.controller.Session()
	s.Equal(model.PhasePhishingQuestion, sess.Phase)
	s.NotNil(sess.CurrentQuestion)
	s.Equal(11, sess.Progress.Total)

	// Five phishing questions, then the track switches
	for i := 0; i < 5; i++ {
		s.answerCurrent()
	}
	sess = s.controller.Session()
	s.Equal(model.PhasePasswordQuestion, sess.Phase)
	s.NotNil(sess.CurrentPasswordQuestion)
	s.Nil(sess.CurrentQuestion)

	for i := 0; i < 5; i++ {
		s.answerCurrent()
	}
	sess = s.controller.Session()
	s.True(sess.AwaitingPasswordEntry())

	s.Require().NoError(s.controller.SubmitPassword(s.ctx, "zayif"))
	sess = s.controller.Session()
	s.Equal(model.PhaseResults, sess.Phase)
	s.Require().NotNil(sess.Report)
	s.Equal(10, sess.Report.TotalQuestions)
	s.NotNil(sess.Report.PhishingStats, "mixed mode reports per-track stats")
	s.NotNil(sess.Report.PasswordStats)
	s.Require().NotNil(sess.Report.PasswordAnalysis)
	s.Equal("Çok Zayıf", sess.Report.PasswordAnalysis.Strength)
}

func (s *GameFlowSuite) TestPhishingOnlyResultsViaGet() {
	s.Require().NoError(s.controller.StartGame(s.ctx, "Alan"))
	s.Require().NoError(s.controller.SelectGameMode(s.ctx, model.ModePhishingOnly))

	sess := s.controller.Session()
	s.Equal(model.Progress{Current: 0, Total: 10}, sess.Progress)

	for i := 0; i < 10; i++ {
		s.answerCurrent()
	}

	sess = s.controller.Session()
	s.Equal(model.PhaseResults, sess.Phase, "phishing-only ends straight at results")
	s.Nil(sess.Report, "advancing alone does not adopt a report")

	s.Require().NoError(s.controller.GetResults(s.ctx))
	sess = s.controller.Session()
	s.Require().NotNil(sess.Report)
	s.Equal(10, sess.Report.TotalQuestions)
	s.Nil(sess.Report.PasswordAnalysis)

	// Re-fetching results replaces the report with the same data
	s.Require().NoError(s.controller.GetResults(s.ctx))
	s.Equal(sess.Report.Percentage, s.controller.Session().Report.Percentage)
}

func (s *GameFlowSuite) TestScoreReflectsCorrectAnswers() {
	s.Require().NoError(s.controller.StartGame(s.ctx, "Ada"))
	s.Require().NoError(s.controller.SelectGameMode(s.ctx, model.ModePhishingOnly))

	last := 0
	deadline := time.Now().Add(10 * time.Second)
	for i := 0; i < 10 && time.Now().Before(deadline); i++ {
		s.answerCurrent()
		current := s.controller.Session().Score
		s.GreaterOrEqual(current, last, "score never decreases during a run")
		last = current
	}
}
