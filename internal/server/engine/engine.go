// Package engine implements the server-side quiz state machine: one
// GameSession per player walking a fixed question plan slot by slot.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ekaraca/phishdrill/internal/dependencies/clock"
	"github.com/ekaraca/phishdrill/internal/dependencies/random"
	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/server/content"
	"github.com/ekaraca/phishdrill/internal/storage"
	"github.com/ekaraca/phishdrill/internal/strength"
)

// Track sizes per mode. Mixed mode splits evenly between the two tracks.
const (
	singleTrackSize = 10
	mixedTrackSize  = 5
)

// Engine drives game sessions through their question plans
type Engine struct {
	storage storage.Storage
	banks   *content.Banks
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewEngine creates a game engine drawing questions from the given banks
func NewEngine(
	storage storage.Storage,
	banks *content.Banks,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		storage: storage,
		banks:   banks,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Step describes what the player faces after a transition. Exactly one of
// Question, PasswordQuestion, AwaitingEntry, or Report is meaningful.
type Step struct {
	Session          *model.GameSession
	Question         *model.Question
	PasswordQuestion *model.PasswordQuestion
	AwaitingEntry    bool
	Report           *model.Report
}

// Graded is the outcome of submitting an answer
type Graded struct {
	Session     *model.GameSession
	Correct     bool
	Explanation string
}

// StartSession creates a fresh session at the mode-select phase
func (e *Engine) StartSession(ctx context.Context, id model.SessionID, userName string) (*model.GameSession, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, model.ErrEmptyUserName
	}

	session := &model.GameSession{
		ID:        id,
		UserName:  userName,
		Phase:     model.PhaseModeSelect,
		CreatedAt: e.clock.Now(),
	}

	if err := e.storage.SaveGameSession(ctx, session); err != nil {
		return nil, err
	}

	e.logger.Info("session started",
		slog.String("session_id", string(id)),
		slog.String("user_name", userName),
	)
	return session, nil
}

// SelectMode fixes the session's question plan and serves the first slot
func (e *Engine) SelectMode(ctx context.Context, id model.SessionID, mode model.GameMode) (*Step, error) {
	if !model.ValidGameMode(mode) {
		return nil, model.ErrInvalidGameMode
	}

	session, err := e.storage.GetGameSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.GameMode = mode
	session.Index = 0
	session.Score = 0
	session.Answers = nil
	session.PasswordAnalysis = nil

	switch mode {
	case model.ModePhishingOnly:
		session.Questions = e.pickPhishing(singleTrackSize)
		session.PasswordQuestions = nil
	case model.ModePasswordOnly:
		session.Questions = nil
		session.PasswordQuestions = e.pickPassword(singleTrackSize)
	case model.ModeMixed:
		session.Questions = e.pickPhishing(mixedTrackSize)
		session.PasswordQuestions = e.pickPassword(mixedTrackSize)
	}

	step := e.stepAt(session)
	session.Phase = phaseForStep(step)

	if err := e.storage.SaveGameSession(ctx, session); err != nil {
		return nil, err
	}

	e.logger.Info("game mode selected",
		slog.String("session_id", string(id)),
		slog.String("game_mode", string(mode)),
		slog.Int("plan_length", session.PlanLength()),
	)
	return step, nil
}

// SubmitAnswer grades the answer for the current slot. The slot is not
// advanced; the client calls NextQuestion after showing feedback.
func (e *Engine) SubmitAnswer(ctx context.Context, id model.SessionID, answer string) (*Graded, error) {
	session, err := e.storage.GetGameSession(ctx, id)
	if err != nil {
		return nil, err
	}

	step := e.stepAt(session)
	graded := &Graded{Session: session}

	switch {
	case step.Question != nil:
		q := session.Questions[session.Index]
		graded.Correct = answer == q.CorrectAnswer
		graded.Explanation = q.Explanation
		session.RecordAnswer(model.AnswerPhishing, q.ID, graded.Correct)
	case step.PasswordQuestion != nil:
		q := session.PasswordQuestions[session.Index-len(session.Questions)]
		graded.Correct = answer == q.CorrectAnswer
		graded.Explanation = q.Explanation
		session.RecordAnswer(model.AnswerPassword, q.ID, graded.Correct)
	default:
		return nil, model.ErrNoActiveQuestion
	}

	if err := e.storage.SaveGameSession(ctx, session); err != nil {
		return nil, err
	}
	return graded, nil
}

// NextQuestion advances to the next slot of the plan
func (e *Engine) NextQuestion(ctx context.Context, id model.SessionID) (*Step, error) {
	session, err := e.storage.GetGameSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.PlanLength() == 0 {
		return nil, model.ErrNoMoreQuestions
	}
	if session.Index < session.PlanLength() {
		session.Index++
	}

	step := e.stepAt(session)
	session.Phase = phaseForStep(step)

	if err := e.storage.SaveGameSession(ctx, session); err != nil {
		return nil, err
	}
	return step, nil
}

// SubmitPassword scores the free-text password and finishes the game
func (e *Engine) SubmitPassword(ctx context.Context, id model.SessionID, password string) (*Step, error) {
	if password == "" {
		return nil, model.ErrEmptyPassword
	}

	session, err := e.storage.GetGameSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if step := e.stepAt(session); !step.AwaitingEntry {
		return nil, model.ErrInvalidAction
	}

	assessment := strength.Evaluate(password)
	session.PasswordAnalysis = &model.PasswordAnalysis{
		Strength: assessment.Strength,
		Score:    assessment.Score,
		Length:   assessment.Length,
		Feedback: assessment.Feedback(),
	}

	session.Index = session.PlanLength()
	session.Phase = model.PhaseResults

	if err := e.storage.SaveGameSession(ctx, session); err != nil {
		return nil, err
	}

	e.logger.Info("password submitted",
		slog.String("session_id", string(id)),
		slog.String("strength", assessment.Strength),
	)

	return &Step{
		Session: session,
		Report:  e.buildReport(session),
	}, nil
}

// Results builds the final report for a session
func (e *Engine) Results(ctx context.Context, id model.SessionID) (*model.Report, error) {
	session, err := e.storage.GetGameSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.buildReport(session), nil
}

// Restart discards the session entirely
func (e *Engine) Restart(ctx context.Context, id model.SessionID) error {
	if err := e.storage.DeleteGameSession(ctx, id); err != nil {
		return err
	}
	e.logger.Info("session restarted", slog.String("session_id", string(id)))
	return nil
}

// stepAt resolves the session's current slot. The plan is phishing questions,
// then password questions, then (when the password track is in play) one
// free-text entry slot, then results.
func (e *Engine) stepAt(session *model.GameSession) *Step {
	step := &Step{Session: session}

	switch {
	case session.Index < len(session.Questions):
		step.Question = sanitizeQuestion(session.Questions[session.Index])
	case session.Index < len(session.Questions)+len(session.PasswordQuestions):
		q := session.PasswordQuestions[session.Index-len(session.Questions)]
		step.PasswordQuestion = sanitizePasswordQuestion(q)
	case session.Index < session.PlanLength():
		step.AwaitingEntry = true
	default:
		step.Report = e.buildReport(session)
	}
	return step
}

func phaseForStep(step *Step) model.Phase {
	switch {
	case step.Question != nil:
		return model.PhasePhishingQuestion
	case step.PasswordQuestion != nil, step.AwaitingEntry:
		return model.PhasePasswordQuestion
	default:
		return model.PhaseResults
	}
}

// buildReport aggregates graded answers into the final report
func (e *Engine) buildReport(session *model.GameSession) *model.Report {
	total := session.AnswerCount("")
	correct := session.CorrectCount("")

	report := &model.Report{
		TotalQuestions:   total,
		CorrectAnswers:   correct,
		Percentage:       percentage(correct, total),
		PasswordAnalysis: session.PasswordAnalysis,
	}
	report.Grade = gradeFor(report.Percentage)
	report.Feedback = feedbackFor(report.Grade)

	if session.GameMode == model.ModeMixed {
		report.PhishingStats = trackStats(session, model.AnswerPhishing)
		report.PasswordStats = trackStats(session, model.AnswerPassword)
	}

	report.Recommendations = e.recommendations(session, report)
	return report
}

func trackStats(session *model.GameSession, kind model.AnswerKind) *model.TrackStats {
	total := session.AnswerCount(kind)
	correct := session.CorrectCount(kind)
	return &model.TrackStats{
		Correct:    correct,
		Incorrect:  total - correct,
		Total:      total,
		Percentage: percentage(correct, total),
	}
}

func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(correct)/float64(total)*100 + 0.5)
}

func gradeFor(pct int) string {
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	default:
		return "D"
	}
}

func feedbackFor(grade string) string {
	switch grade {
	case "A+":
		return "Mükemmel! Siber güvenlik farkındalığınız çok yüksek."
	case "A":
		return "Harika! Güçlü bir siber güvenlik bilginiz var."
	case "B":
		return "İyi! Temel kavramlara hakimsiniz, birkaç konuyu tekrar etmenizde fayda var."
	case "C":
		return "Orta seviye. Siber güvenlik konularını düzenli olarak tekrar etmenizi öneririz."
	default:
		return "Geliştirilmeli. Temel siber güvenlik eğitimi almanızı önemle öneririz."
	}
}

func (e *Engine) recommendations(session *model.GameSession, report *model.Report) []string {
	var recs []string

	if report.PhishingStats != nil && report.PhishingStats.Percentage < 70 ||
		session.GameMode == model.ModePhishingOnly && report.Percentage < 70 {
		recs = append(recs, "Şüpheli e-postalarda gönderen adresini ve bağlantıların gerçek hedefini her zaman kontrol edin.")
	}
	if report.PasswordStats != nil && report.PasswordStats.Percentage < 70 ||
		session.GameMode == model.ModePasswordOnly && report.Percentage < 70 {
		recs = append(recs, "Her hesap için güçlü ve benzersiz şifreler kullanın; bir şifre yöneticisi bu işi kolaylaştırır.")
	}
	if session.PasswordAnalysis != nil && session.PasswordAnalysis.Score < 4 {
		recs = append(recs, "Şifrenizi büyük-küçük harf, rakam ve özel karakter içerecek şekilde güçlendirin.")
	}
	if report.Percentage < 90 {
		recs = append(recs, "İki faktörlü doğrulamayı destekleyen tüm hesaplarınızda etkinleştirin.")
	}
	return recs
}

// pickPhishing returns up to n randomly chosen phishing questions with
// shuffled options
func (e *Engine) pickPhishing(n int) []model.Question {
	idx := e.samples(len(e.banks.Phishing), n)
	out := make([]model.Question, 0, len(idx))
	for _, i := range idx {
		q := e.banks.Phishing[i]
		q.Options = e.shuffledOptions(q.Options)
		out = append(out, q)
	}
	return out
}

// pickPassword returns up to n randomly chosen password questions with
// shuffled options
func (e *Engine) pickPassword(n int) []model.PasswordQuestion {
	idx := e.samples(len(e.banks.Password), n)
	out := make([]model.PasswordQuestion, 0, len(idx))
	for _, i := range idx {
		q := e.banks.Password[i]
		q.Options = e.shuffledOptions(q.Options)
		out = append(out, q)
	}
	return out
}

// samples returns n distinct indices drawn from [0, total)
func (e *Engine) samples(total, n int) []int {
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := total - 1; i > 0; i-- {
		j := e.random.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	if n < total {
		idx = idx[:n]
	}
	return idx
}

func (e *Engine) shuffledOptions(options []string) []string {
	out := make([]string, len(options))
	copy(out, options)
	for i := len(out) - 1; i > 0; i-- {
		j := e.random.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// sanitizeQuestion strips the correct answer before a question leaves the
// server
func sanitizeQuestion(q model.Question) *model.Question {
	q.CorrectAnswer = ""
	return &q
}

func sanitizePasswordQuestion(q model.PasswordQuestion) *model.PasswordQuestion {
	q.CorrectAnswer = ""
	return &q
}
