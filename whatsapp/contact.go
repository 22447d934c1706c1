package whatsapp

import (
	"net/url"

	"github.com/InaamJr/Axceria/models"
)

// ContactLink renders a contact enquiry as a wa.me deep link.
// Returns ok=false when the owner number is unusable.
func ContactLink(owner string, form models.ContactRequest) (string, bool) {
	lines := []string{
		"Hi Axceria! I'd like to get in touch ✨",
		"",
	}

	name := form.Name
	if name == "" {
		name = "—"
	}
	lines = append(lines, "Name: "+name)
	if form.Email != "" {
		lines = append(lines, "Email: "+form.Email)
	}
	if form.Phone != "" {
		lines = append(lines, "Phone: "+form.Phone)
	}
	if form.Subject != "" {
		lines = append(lines, "Subject: "+form.Subject)
	}

	lines = append(lines, "", "Message:")
	message := form.Message
	if message == "" {
		message = "—"
	}
	lines = append(lines, message)

	return DeepLink(owner, Lines(lines))
}

// MailtoURL renders a contact enquiry as a mailto: URL against the
// configured mailbox. Always available, unlike the WhatsApp route.
func MailtoURL(mailbox string, form models.ContactRequest) string {
	subject := form.Subject
	if subject == "" {
		subject = "Enquiry"
	}
	name := form.Name
	if name == "" {
		name = "Customer"
	}

	email := form.Email
	if email == "" {
		email = "—"
	}
	phone := form.Phone
	if phone == "" {
		phone = "—"
	}

	body := "Hi Axceria,\n\n" + form.Message + "\n\n—\nName: " + form.Name +
		"\nEmail: " + email + "\nPhone: " + phone

	q := url.Values{}
	q.Set("subject", "[Axceria] "+subject+" — "+name)
	q.Set("body", body)
	return "mailto:" + mailbox + "?" + q.Encode()
}
