package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/InaamJr/Axceria/models"
	"github.com/InaamJr/Axceria/whatsapp"
)

// ContactController handles HTTP requests for the contact form
type ContactController struct {
	owner   string // seller WhatsApp contact
	mailbox string
}

// NewContactController creates a new ContactController
func NewContactController(owner, mailbox string) *ContactController {
	return &ContactController{
		owner:   owner,
		mailbox: mailbox,
	}
}

// Submit handles POST /api/contact
// Example request:
// {
//   "name": "Juan",
//   "email": "juan@example.com",
//   "subject": "Custom order",
//   "message": "Hi! Can you engrave a ring?"
// }
// Name and message are required; at least one of email/phone is required.
// whatsappUrl in the response is null when no usable seller number is
// configured; mailtoUrl is always present.
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Contact Submit: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Contact Submit: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.Phone) == "" {
		http.Error(w, "an email or a phone number is required", http.StatusBadRequest)
		return
	}

	resp := models.ContactResponse{
		MailtoURL: whatsapp.MailtoURL(c.mailbox, req),
	}
	if link, ok := whatsapp.ContactLink(c.owner, req); ok {
		resp.WhatsAppURL = &link
	}

	log.Printf("✅ Contact Submit: Enquiry from %s", req.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("❌ Contact Submit: Error encoding response: %v", err)
	}
}
