package phishing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaraca/phishdrill/internal/model"
)

func TestRenderExtractsLinksAndText(t *testing.T) {
	email := model.Email{
		From:    "guvenlik@paypa1.com",
		Subject: "Hesabınız askıya alındı!",
		Body: `<p>Sayın müşterimiz,</p>
<p>Hesabınızda şüpheli hareket tespit edildi. Hemen
<a href="http://paypa1-secure.com/verify">paypal.com</a>
adresinden giriş yapın.</p>`,
		Urgency: model.UrgencyHigh,
	}

	rendered, err := Render(email)
	require.NoError(t, err)

	assert.Equal(t, "guvenlik@paypa1.com", rendered.From)
	assert.Equal(t, model.UrgencyHigh, rendered.Urgency)
	assert.Contains(t, rendered.Text, "Sayın müşterimiz,")
	assert.Contains(t, rendered.Text, "Hesabınızda şüpheli hareket tespit edildi.")
	assert.NotContains(t, rendered.Text, "<p>")

	require.Len(t, rendered.Links, 1)
	assert.Equal(t, "paypal.com", rendered.Links[0].Text)
	assert.Equal(t, "http://paypa1-secure.com/verify", rendered.Links[0].URL)
}

func TestRenderPlainFragment(t *testing.T) {
	rendered, err := Render(model.Email{Body: "Merhaba,   bu bir test   mesajıdır."})
	require.NoError(t, err)
	assert.Equal(t, "Merhaba, bu bir test mesajıdır.", rendered.Text)
	assert.Empty(t, rendered.Links)
}

func TestSuspiciousLinks(t *testing.T) {
	rendered := RenderedEmail{
		Links: []Link{
			{Text: "paypal.com", URL: "http://paypa1-secure.com/verify"},
			{Text: "https://intranet.example.com", URL: "https://intranet.example.com/login"},
			{Text: "buraya tıklayın", URL: "http://evil.example"},
		},
	}

	sus := rendered.SuspiciousLinks()
	require.Len(t, sus, 1)
	assert.Equal(t, "http://paypa1-secure.com/verify", sus[0].URL)
}
