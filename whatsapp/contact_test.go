package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InaamJr/Axceria/models"
)

func TestContactLink(t *testing.T) {
	form := models.ContactRequest{
		Name:    "Amal",
		Email:   "amal@example.com",
		Phone:   "0771234567",
		Subject: "Custom engraving",
		Message: "Can you engrave initials on the signet ring?",
	}

	link, ok := ContactLink("+94771425684", form)
	require.True(t, ok)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)

	lines := strings.Split(u.Query().Get("text"), "\n")
	assert.Equal(t, []string{
		"Hi Axceria! I'd like to get in touch ✨",
		"",
		"Name: Amal",
		"Email: amal@example.com",
		"Phone: 0771234567",
		"Subject: Custom engraving",
		"",
		"Message:",
		"Can you engrave initials on the signet ring?",
	}, lines)
}

func TestContactLinkOmitsEmptyFields(t *testing.T) {
	link, ok := ContactLink("+94771425684", models.ContactRequest{
		Name:    "Amal",
		Message: "Hello",
	})
	require.True(t, ok)

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.NotContains(t, text, "Email:")
	assert.NotContains(t, text, "Phone:")
	assert.NotContains(t, text, "Subject:")
}

func TestContactLinkUnusableOwner(t *testing.T) {
	_, ok := ContactLink("12345", models.ContactRequest{Name: "Amal", Message: "Hello"})
	assert.False(t, ok)
}

func TestMailtoURL(t *testing.T) {
	form := models.ContactRequest{
		Name:    "Amal",
		Email:   "amal@example.com",
		Subject: "Custom engraving",
		Message: "Hello",
	}

	link := MailtoURL("hello@axceria.store", form)
	require.True(t, strings.HasPrefix(link, "mailto:hello@axceria.store?"), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "[Axceria] Custom engraving — Amal", q.Get("subject"))
	assert.Contains(t, q.Get("body"), "Hello")
	assert.Contains(t, q.Get("body"), "Email: amal@example.com")
}

func TestMailtoURLDefaults(t *testing.T) {
	link := MailtoURL("hello@axceria.store", models.ContactRequest{Message: "Hi"})
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "[Axceria] Enquiry — Customer", u.Query().Get("subject"))
}
