package models

// ContactRequest represents the request body for the contact form
// Example: {"name": "Juan", "email": "juan@example.com", "subject": "Custom order", "message": "Hi!"}
// Validation: name and message are required; at least one of email/phone is required.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ContactResponse represents the response for a contact submission
// Example response:
// {
//   "whatsappUrl": "https://wa.me/94771425684?text=Hi%20Axceria...",
//   "mailtoUrl": "mailto:hello@axceria.store?subject=..."
// }
// whatsappUrl is null when no usable seller number is configured.
type ContactResponse struct {
	WhatsAppURL *string `json:"whatsappUrl"`
	MailtoURL   string  `json:"mailtoUrl"`
}
