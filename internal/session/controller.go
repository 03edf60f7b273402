package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ekaraca/phishdrill/internal/api/request"
	"github.com/ekaraca/phishdrill/internal/api/response"
	"github.com/ekaraca/phishdrill/internal/dependencies/clock"
	"github.com/ekaraca/phishdrill/internal/model"
)

// GameService is the remote game-state service the controller drives
type GameService interface {
	Start(ctx context.Context, sessionID model.SessionID, userName string) (*response.GameResponse, error)
	Submit(ctx context.Context, sessionID model.SessionID, action request.ActionType, payload request.SubmitPayload) (*response.GameResponse, error)
	Results(ctx context.Context, sessionID model.SessionID) (*response.GameResponse, error)
	Restart(ctx context.Context, sessionID model.SessionID) error
}

// UserService is the registration/persistence service
type UserService interface {
	Register(ctx context.Context, profile model.Profile) (model.UserID, error)
	SaveResult(ctx context.Context, result request.SaveResultRequest) error
}

// Controller owns the client-side game session and mediates every phase
// transition by issuing a request to the game service and applying the
// response to local state. One controller per run; the UI renders from
// Session() snapshots and never mutates state itself.
type Controller struct {
	game   GameService
	user   UserService
	clock  clock.Clock
	logger *slog.Logger

	mu      sync.Mutex
	session model.Session
}

// NewController creates a controller with a fresh session identity
func NewController(game GameService, user UserService, clk clock.Clock, logger *slog.Logger) *Controller {
	c := &Controller{
		game:   game,
		user:   user,
		clock:  clk,
		logger: logger,
	}
	c.session = *model.NewSession(c.newSessionID())
	return c
}

// newSessionID builds the opaque per-session token sent with every
// game-service call
func (c *Controller) newSessionID() model.SessionID {
	return model.SessionID(fmt.Sprintf("session_%d_%s", c.clock.Now().UnixMilli(), uuid.NewString()))
}

// Session returns a snapshot of the current session for rendering
func (c *Controller) Session() model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// acquire takes the loading gate. Operations are expected to be invoked
// sequentially by the UI, but the gate protects against double-invocation
// races (rapid double-click) regardless.
func (c *Controller) acquire() (model.SessionID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Loading {
		return "", model.ErrOperationInFlight
	}
	c.session.Loading = true
	c.session.Error = ""
	return c.session.ID, nil
}

// fail releases the gate, surfaces a human-readable message, and leaves all
// other session state untouched so the operation can be retried
func (c *Controller) fail(message string, err error) error {
	c.logger.Warn("game operation failed",
		slog.String("message", message),
		slog.String("error", err.Error()),
	)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Loading = false
	c.session.Error = message
	return fmt.Errorf("%s: %w", message, err)
}

// StartGame requests a new game for the given display name
func (c *Controller) StartGame(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ErrEmptyUserName
	}

	id, err := c.acquire()
	if err != nil {
		return err
	}

	resp, err := c.game.Start(ctx, id, name)
	if err != nil {
		return c.fail("Oyun başlatılamadı", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	s := &c.session
	s.UserName = name
	s.Score = 0
	if phase := resp.Phase(); phase != "" {
		s.Phase = phase
	}
	if q := resp.ActiveQuestion(); q != nil {
		s.CurrentQuestion = q
	}
	if resp.Progress != nil {
		s.Progress = *resp.Progress
	}
	if resp.GameMode != "" {
		s.GameMode = model.GameMode(resp.GameMode)
	}
	s.Loading = false
	return nil
}

// SelectGameMode picks the question track(s) for the session. The controller
// is mode-agnostic: it seeds whichever question payload the response carries.
func (c *Controller) SelectGameMode(ctx context.Context, mode model.GameMode) error {
	if !model.ValidGameMode(mode) {
		return model.ErrInvalidGameMode
	}

	id, err := c.acquire()
	if err != nil {
		return err
	}

	resp, err := c.game.Submit(ctx, id, request.ActionSelectGameMode, request.SubmitPayload{
		GameMode: string(mode),
	})
	if err != nil {
		return c.fail("Oyun modu seçilemedi", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	s := &c.session
	s.GameMode = mode
	if resp.GameMode != "" {
		s.GameMode = model.GameMode(resp.GameMode)
	}
	if phase := resp.Phase(); phase != "" {
		s.Phase = phase
	}
	if q := resp.ActiveQuestion(); q != nil {
		s.CurrentQuestion = q
		s.CurrentPasswordQuestion = nil
	}
	if resp.CurrentPasswordQuestion != nil {
		s.CurrentPasswordQuestion = resp.CurrentPasswordQuestion
		s.CurrentQuestion = nil
	}
	if resp.Progress != nil {
		s.Progress = *resp.Progress
	}
	if resp.Score != nil {
		s.Score = *resp.Score
	}
	s.Loading = false
	return nil
}

// SubmitAnswer grades the selected option against the active question. The
// question stays rendered with its feedback until NextQuestion is invoked.
func (c *Controller) SubmitAnswer(ctx context.Context, answer string) error {
	c.mu.Lock()
	switch {
	case c.session.Loading:
		c.mu.Unlock()
		return model.ErrOperationInFlight
	case c.session.Feedback != nil:
		c.mu.Unlock()
		return model.ErrFeedbackPending
	case c.session.CurrentQuestion == nil && c.session.CurrentPasswordQuestion == nil:
		c.mu.Unlock()
		return model.ErrNoActiveQuestion
	}
	c.session.Loading = true
	c.session.Error = ""
	id := c.session.ID
	c.mu.Unlock()

	resp, err := c.game.Submit(ctx, id, request.ActionSubmitAnswer, request.SubmitPayload{
		Answer: answer,
	})
	if err != nil {
		return c.fail("Cevap gönderilemedi", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	s := &c.session
	s.Feedback = &model.Feedback{
		IsCorrect:   resp.AnswerCorrect(),
		Explanation: resp.Explanation,
	}
	if resp.Score != nil {
		s.Score = *resp.Score
	}
	if resp.GameMode != "" {
		s.GameMode = model.GameMode(resp.GameMode)
	}
	// In MIXED mode the server may interleave a password question into an
	// answer response; adopt whatever the response contains.
	if resp.CurrentPasswordQuestion != nil {
		s.CurrentPasswordQuestion = resp.CurrentPasswordQuestion
	}
	s.Loading = false
	return nil
}

// SubmitPassword sends the free-text password for server-side scoring. When
// the resulting phase is results the response normally embeds the report; if
// it does not, the controller falls back to fetching the results resource.
func (c *Controller) SubmitPassword(ctx context.Context, password string) error {
	if password == "" {
		return model.ErrEmptyPassword
	}

	id, err := c.acquire()
	if err != nil {
		return err
	}

	resp, err := c.game.Submit(ctx, id, request.ActionSubmitPassword, request.SubmitPayload{
		Password: password,
	})
	if err != nil {
		return c.fail("Şifre gönderilemedi", err)
	}

	c.mu.Lock()
	s := &c.session
	if phase := resp.Phase(); phase != "" {
		s.Phase = phase
	}
	if resp.Score != nil {
		s.Score = *resp.Score
	}
	if resp.GameMode != "" {
		s.GameMode = model.GameMode(resp.GameMode)
	}

	if s.Phase != model.PhaseResults {
		s.Loading = false
		c.mu.Unlock()
		return nil
	}

	report := resp.Report()
	if report != nil {
		s.Report = report
		s.CurrentQuestion = nil
		s.CurrentPasswordQuestion = nil
		s.Loading = false
		c.mu.Unlock()
		c.persistResult(ctx)
		return nil
	}
	c.mu.Unlock()

	// Phase is results but the report is missing: fetch it explicitly
	if err := c.fetchResults(ctx, id); err != nil {
		return c.fail("Sonuçlar alınamadı", err)
	}

	c.mu.Lock()
	c.session.Loading = false
	c.mu.Unlock()
	c.persistResult(ctx)
	return nil
}

// NextQuestion advances past the graded question. Feedback is cleared
// unconditionally; what gets seeded next depends entirely on the phase the
// response reports.
func (c *Controller) NextQuestion(ctx context.Context) error {
	c.mu.Lock()
	atQuestion := c.session.Phase == model.PhasePhishingQuestion ||
		c.session.Phase == model.PhasePasswordQuestion
	if c.session.Loading {
		c.mu.Unlock()
		return model.ErrOperationInFlight
	}
	if c.session.Feedback == nil && !atQuestion {
		c.mu.Unlock()
		return model.ErrNoActiveQuestion
	}
	c.session.Loading = true
	c.session.Error = ""
	id := c.session.ID
	c.mu.Unlock()

	resp, err := c.game.Submit(ctx, id, request.ActionNextQuestion, request.SubmitPayload{})
	if err != nil {
		return c.fail("Sonraki soru alınamadı", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	s := &c.session
	s.Feedback = nil
	if resp.GameMode != "" {
		s.GameMode = model.GameMode(resp.GameMode)
	}

	switch resp.Phase() {
	case model.PhasePhishingQuestion:
		s.Phase = model.PhasePhishingQuestion
		if q := resp.ActiveQuestion(); q != nil {
			s.CurrentQuestion = q
		}
		s.CurrentPasswordQuestion = nil
		if resp.Progress != nil {
			s.Progress = *resp.Progress
		}
	case model.PhasePasswordQuestion:
		s.Phase = model.PhasePasswordQuestion
		s.CurrentQuestion = nil
		// A nil question here is legitimate: it signals the free-text
		// password-entry step rather than a multiple-choice prompt.
		s.CurrentPasswordQuestion = resp.CurrentPasswordQuestion
		if resp.Progress != nil {
			s.Progress = *resp.Progress
		}
	case model.PhaseResults:
		s.Phase = model.PhaseResults
		s.CurrentQuestion = nil
		s.CurrentPasswordQuestion = nil
		// The report is fetched separately by the results view
	}
	s.Loading = false
	return nil
}

// GetResults fetches and merges the final report
func (c *Controller) GetResults(ctx context.Context) error {
	id, err := c.acquire()
	if err != nil {
		return err
	}

	if err := c.fetchResults(ctx, id); err != nil {
		return c.fail("Sonuçlar alınamadı", err)
	}

	c.mu.Lock()
	c.session.Loading = false
	c.mu.Unlock()
	c.persistResult(ctx)
	return nil
}

// fetchResults retrieves the results resource and merges it into the session.
// Callers own the loading gate.
func (c *Controller) fetchResults(ctx context.Context, id model.SessionID) error {
	resp, err := c.game.Results(ctx, id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	s := &c.session
	if phase := resp.Phase(); phase != "" {
		s.Phase = phase
	}
	if resp.GameMode != "" {
		s.GameMode = model.GameMode(resp.GameMode)
	}
	if report := resp.Report(); report != nil {
		s.Report = report
		s.CurrentQuestion = nil
		s.CurrentPasswordQuestion = nil
	}
	return nil
}

// persistResult saves the established report for a registered user. The call
// is best-effort: failures are logged and swallowed, and never roll back the
// local phase or report.
func (c *Controller) persistResult(ctx context.Context) {
	c.mu.Lock()
	userID := c.session.UserID
	report := c.session.Report
	gameMode := c.session.GameMode
	c.mu.Unlock()

	if userID == nil || report == nil {
		return
	}
	if gameMode == "" {
		gameMode = model.ModePasswordOnly
	}
	grade := report.Grade
	if grade == "" {
		grade = "D"
	}

	err := c.user.SaveResult(ctx, request.SaveResultRequest{
		UserID:         *userID,
		GameMode:       string(gameMode),
		Score:          report.CorrectAnswers,
		TotalQuestions: report.TotalQuestions,
		CorrectAnswers: report.CorrectAnswers,
		Percentage:     report.Percentage,
		Grade:          grade,
	})
	if err != nil {
		c.logger.Warn("failed to persist game result",
			slog.Int64("user_id", *userID),
			slog.String("error", err.Error()),
		)
		return
	}
	c.logger.Info("game result persisted", slog.Int64("user_id", *userID))
}

// RestartGame notifies the server, then resets the session unconditionally.
// A failed restart notification must not block the local reset.
func (c *Controller) RestartGame(ctx context.Context) error {
	id, err := c.acquire()
	if err != nil {
		return err
	}

	if err := c.game.Restart(ctx, id); err != nil {
		c.logger.Warn("restart notification failed",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Reset(c.newSessionID())
	return nil
}

// RegisterUser stores the participant profile before the game proper starts.
// The returned id is kept for later result persistence; callers must not
// proceed to gameplay without one.
func (c *Controller) RegisterUser(ctx context.Context, profile model.Profile) (model.UserID, error) {
	if strings.TrimSpace(profile.FullName) == "" ||
		strings.TrimSpace(profile.BirthDate) == "" ||
		strings.TrimSpace(profile.EducationLevel) == "" ||
		strings.TrimSpace(profile.Profession) == "" {
		return 0, fmt.Errorf("incomplete profile: all fields except training are required")
	}

	if _, err := c.acquire(); err != nil {
		return 0, err
	}

	userID, err := c.user.Register(ctx, profile)
	if err != nil {
		return 0, c.fail("Kullanıcı kaydı başarısız", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	raw := int64(userID)
	c.session.UserID = &raw
	c.session.Loading = false
	return userID, nil
}
