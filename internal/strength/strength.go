// Package strength scores candidate passwords for display purposes. The
// server-side analysis stays authoritative; this exists so the password-entry
// screen can show a live meter while the user types.
package strength

import (
	"strings"
	"unicode"
)

// Strength labels, weakest to strongest
const (
	VeryWeak = "Çok Zayıf"
	Weak     = "Zayıf"
	Medium   = "Orta"
	Strong   = "Güçlü"
)

// Check is one pass/fail criterion of the assessment
type Check struct {
	Passed  bool
	Message string
}

// Assessment is the outcome of scoring one password
type Assessment struct {
	Score    int
	Strength string
	Length   int
	Checks   []Check
}

// Feedback renders the checklist the way the game service formats it
func (a Assessment) Feedback() string {
	var b strings.Builder
	for _, c := range a.Checks {
		if c.Passed {
			b.WriteString("✓ ")
		} else {
			b.WriteString("✗ ")
		}
		b.WriteString(c.Message)
		b.WriteString("\n")
	}
	return b.String()
}

var commonPasswords = []string{
	"123456", "password", "123456789", "12345678", "12345",
	"1234567", "1234567890", "qwerty", "abc123", "password123",
}

const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Evaluate scores a candidate password. Length ≥8 and a special character
// weigh double; containing a well-known password costs two points. The score
// floor is 0.
func Evaluate(password string) Assessment {
	if password == "" {
		return Assessment{
			Score:    0,
			Strength: VeryWeak,
			Checks:   []Check{{Passed: false, Message: "Şifre boş olamaz"}},
		}
	}

	var (
		hasUpper, hasLower, hasDigit, hasSpecial bool
	)
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	score := 0
	checks := make([]Check, 0, 6)

	longEnough := len([]rune(password)) >= 8
	if longEnough {
		score += 2
	}
	checks = append(checks, check(longEnough, "En az 8 karakter uzunluğunda", "En az 8 karakter olmalı"))

	if hasUpper {
		score++
	}
	checks = append(checks, check(hasUpper, "Büyük harf içeriyor", "Büyük harf ekleyin"))

	if hasLower {
		score++
	}
	checks = append(checks, check(hasLower, "Küçük harf içeriyor", "Küçük harf ekleyin"))

	if hasDigit {
		score++
	}
	checks = append(checks, check(hasDigit, "Rakam içeriyor", "Rakam ekleyin"))

	if hasSpecial {
		score += 2
	}
	checks = append(checks, check(hasSpecial, "Özel karakter içeriyor", "Özel karakter ekleyin"))

	common := isCommon(password)
	if common {
		score -= 2
	}
	checks = append(checks, check(!common, "Yaygın şifre değil", "Yaygın şifre kullanılmış"))

	if score < 0 {
		score = 0
	}

	return Assessment{
		Score:    score,
		Strength: label(score),
		Length:   len([]rune(password)),
		Checks:   checks,
	}
}

func check(passed bool, passMsg, failMsg string) Check {
	if passed {
		return Check{Passed: true, Message: passMsg}
	}
	return Check{Passed: false, Message: failMsg}
}

func isCommon(password string) bool {
	lower := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lower, common) {
			return true
		}
	}
	return false
}

func label(score int) string {
	switch {
	case score >= 6:
		return Strong
	case score >= 4:
		return Medium
	case score >= 2:
		return Weak
	default:
		return VeryWeak
	}
}
