package tui

import (
	"fmt"
	"strings"

	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/phishing"
	"github.com/ekaraca/phishdrill/internal/strength"
)

// View implements tea.Model
func (a App) View() string {
	var b strings.Builder

	switch a.screen {
	case screenRegister:
		a.viewRegister(&b)
	case screenLeaderboard:
		a.viewLeaderboard(&b)
	default:
		a.viewGame(&b)
	}

	if a.busy {
		b.WriteString("\n" + a.spinner.View() + subtleStyle.Render(" bekleniyor..."))
	}
	if a.status != "" {
		b.WriteString("\n" + a.status)
	}
	return b.String() + "\n"
}

func (a App) viewGame(b *strings.Builder) {
	s := a.controller.Session()

	switch {
	case s.Phase == model.PhaseWelcome:
		a.viewWelcome(b)
	case s.Phase == model.PhaseModeSelect:
		a.viewMenu(b, &s)
	case s.Phase == model.PhasePhishingQuestion:
		a.viewPhishing(b, &s)
	case s.Phase == model.PhasePasswordQuestion && s.AwaitingPasswordEntry():
		a.viewEntry(b, &s)
	case s.Phase == model.PhasePasswordQuestion:
		a.viewPasswordQuestion(b, &s)
	case s.Phase == model.PhaseResults:
		a.viewResults(b, &s)
	}

	if s.Error != "" {
		b.WriteString("\n" + errorStyle.Render(s.Error))
	}
}

func (a App) viewWelcome(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Siber Güvenlik Farkındalık Oyunu"))
	b.WriteString("\n\nOyuna başlamak için adınızı girin:\n\n")
	b.WriteString(a.nameInput.View())
	b.WriteString("\n\n" + subtleStyle.Render("enter: başla • tab: kayıt formu • ctrl+c: çıkış"))
}

func (a App) viewRegister(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Katılımcı Kaydı"))
	b.WriteString("\n" + subtleStyle.Render("Kayıt isteğe bağlıdır; sonuçlarınızın skor tablosunda yer almasını sağlar.") + "\n\n")

	for i, input := range a.regInputs {
		cursor := "  "
		if a.regFocus == i {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + input.View() + "\n")
	}

	check := "[ ]"
	if a.regTraining {
		check = "[x]"
	}
	cursor := "  "
	if a.regFocus == regFieldTraining {
		cursor = cursorStyle.Render("> ")
	}
	b.WriteString(fmt.Sprintf("%s%s Daha önce siber güvenlik eğitimi aldım\n", cursor, check))

	b.WriteString("\n" + subtleStyle.Render("tab/↑↓: alanlar • boşluk: işaretle • enter: kaydet • esc: geri"))
}

func (a App) viewMenu(b *strings.Builder, s *model.Session) {
	b.WriteString(titleStyle.Render("Merhaba " + s.UserName + "!"))
	b.WriteString("\nBir oyun modu seç:\n\n")

	for i, m := range gameModes {
		cursor := "  "
		label := m.label
		if a.choice == i {
			cursor = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s\n    %s\n", cursor, label, subtleStyle.Render(m.desc)))
	}

	b.WriteString("\n" + subtleStyle.Render("↑↓: seç • enter: başla • l: skor tablosu • q: çıkış"))
}

func (a App) viewPhishing(b *strings.Builder, s *model.Session) {
	b.WriteString(titleStyle.Render("Oltalama Testi"))
	b.WriteString(a.progressLine(s) + "\n\n")

	q := s.CurrentQuestion
	if q == nil {
		return
	}

	rendered, err := phishing.Render(q.Email)
	if err != nil {
		rendered = phishing.RenderedEmail{From: q.Email.From, Subject: q.Email.Subject, Text: q.Email.Body}
	}

	var email strings.Builder
	email.WriteString(emailHeaderStyle.Render("Kimden: "+rendered.From) + "\n")
	email.WriteString(emailHeaderStyle.Render("Konu:   "+rendered.Subject) + "\n\n")
	email.WriteString(rendered.Text)
	if len(rendered.Links) > 0 {
		email.WriteString("\n\nBağlantılar:")
		for _, l := range rendered.Links {
			email.WriteString("\n  " + l.Text + " → " + linkStyle.Render(l.URL))
		}
	}
	b.WriteString(emailBoxStyle.Render(email.String()) + "\n")

	b.WriteString(q.Prompt + "\n\n")
	a.viewOptionsOrFeedback(b, s, q.Options)
}

func (a App) viewPasswordQuestion(b *strings.Builder, s *model.Session) {
	b.WriteString(titleStyle.Render("Şifre Güvenliği"))
	b.WriteString(a.progressLine(s) + "\n\n")

	q := s.CurrentPasswordQuestion
	if q == nil {
		return
	}

	b.WriteString(q.Prompt + "\n\n")
	a.viewOptionsOrFeedback(b, s, q.Options)
}

func (a App) viewOptionsOrFeedback(b *strings.Builder, s *model.Session, options []string) {
	if s.Feedback != nil {
		if s.Feedback.IsCorrect {
			b.WriteString(correctStyle.Render("✓ Doğru!") + "\n")
		} else {
			b.WriteString(incorrectStyle.Render("✗ Yanlış.") + "\n")
		}
		if s.Feedback.Explanation != "" {
			b.WriteString(s.Feedback.Explanation + "\n")
		}
		b.WriteString("\n" + subtleStyle.Render("enter: devam et"))
		return
	}

	for i, opt := range options {
		cursor := "  "
		if a.choice == i {
			cursor = cursorStyle.Render("> ")
			opt = cursorStyle.Render(opt)
		}
		b.WriteString(cursor + opt + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render("↑↓: seç • enter: cevapla • q: çıkış"))
}

func (a App) viewEntry(b *strings.Builder, s *model.Session) {
	b.WriteString(titleStyle.Render("Şifre Denemesi"))
	b.WriteString(a.progressLine(s) + "\n\n")
	b.WriteString("Son adım: güçlü olduğunu düşündüğün bir şifre yaz.\n")
	b.WriteString(subtleStyle.Render("Şifre sunucuya yalnızca analiz için gönderilir, saklanmaz.") + "\n\n")
	b.WriteString(a.passwordInput.View() + "\n\n")

	// Live meter; the server's analysis at submit time is authoritative
	assessment := strength.Evaluate(a.passwordInput.Value())
	b.WriteString(strengthMeter(assessment))

	b.WriteString("\n\n" + subtleStyle.Render("enter: gönder • esc: çıkış"))
}

// strengthMeter draws the live strength bar for the password being typed
func strengthMeter(a strength.Assessment) string {
	const maxScore = 7
	filled := a.Score
	if filled > maxScore {
		filled = maxScore
	}

	bar := meterFilled.Render(strings.Repeat("█", filled)) +
		meterEmpty.Render(strings.Repeat("░", maxScore-filled))

	return fmt.Sprintf("%s %s", bar, strengthColor(a.Strength).Render(a.Strength))
}

func (a App) viewResults(b *strings.Builder, s *model.Session) {
	b.WriteString(titleStyle.Render("Sonuçlar"))

	r := s.Report
	if r == nil {
		b.WriteString("\nSonuçlar henüz hazır değil.\n")
		b.WriteString("\n" + subtleStyle.Render("r: yeniden başla • q: çıkış"))
		return
	}

	b.WriteString("\n" + gradeStyle.Render("Not: "+r.Grade) + "\n\n")
	b.WriteString(fmt.Sprintf("%d sorudan %d doğru (%%%d)\n", r.TotalQuestions, r.CorrectAnswers, r.Percentage))
	if r.Feedback != "" {
		b.WriteString("\n" + r.Feedback + "\n")
	}

	if r.PhishingStats != nil {
		b.WriteString(fmt.Sprintf("\nOltalama: %d/%d doğru (%%%d)", r.PhishingStats.Correct, r.PhishingStats.Total, r.PhishingStats.Percentage))
	}
	if r.PasswordStats != nil {
		b.WriteString(fmt.Sprintf("\nŞifre:    %d/%d doğru (%%%d)", r.PasswordStats.Correct, r.PasswordStats.Total, r.PasswordStats.Percentage))
	}
	if r.PhishingStats != nil || r.PasswordStats != nil {
		b.WriteString("\n")
	}

	if pa := r.PasswordAnalysis; pa != nil {
		b.WriteString("\nŞifre analizi: " + strengthColor(pa.Strength).Render(pa.Strength) +
			fmt.Sprintf(" (puan %d)\n", pa.Score))
		if pa.Feedback != "" {
			b.WriteString(pa.Feedback)
		}
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\nÖneriler:\n")
		for _, rec := range r.Recommendations {
			b.WriteString("  • " + rec + "\n")
		}
	}

	b.WriteString("\n" + subtleStyle.Render("r: yeniden başla • l: skor tablosu • q: çıkış"))
}

func (a App) viewLeaderboard(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Skor Tablosu"))
	b.WriteString("\n")

	if len(a.leaderboard) == 0 {
		b.WriteString("Henüz kayıtlı sonuç yok.\n")
	}
	for _, e := range a.leaderboard {
		training := " "
		if e.HasCybersecurityTraining {
			training = "*"
		}
		b.WriteString(fmt.Sprintf("%2d. %-25s %%%-3d %-2s %s%s\n",
			e.Rank, e.FullName, e.Percentage, e.Grade, e.GameMode, training))
	}
	b.WriteString("\n" + subtleStyle.Render("* siber güvenlik eğitimi almış") + "\n")
	b.WriteString("\n" + subtleStyle.Render("esc: geri"))
}

func (a App) progressLine(s *model.Session) string {
	if s.Progress.Total == 0 {
		return ""
	}
	return subtleStyle.Render(fmt.Sprintf("Soru %d/%d • Puan: %d",
		s.Progress.Current+1, s.Progress.Total, s.Score))
}
