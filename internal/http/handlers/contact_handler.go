package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
)

// ContactSentMessage показывается после успешной отправки формы.
const ContactSentMessage = "Your message has been sent successfully! We'll get back to you soon."

type ContactHandler struct {
	val *validation.Validator
}

func NewContactHandler(val *validation.Validator) *ContactHandler {
	return &ContactHandler{val: val}
}

// Page GET /contact
func (h *ContactHandler) Page(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", gin.H{"Title": "Contact Us", "Form": validation.ContactForm{}})
}

// Submit POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}

	var form validation.ContactForm
	_ = c.ShouldBind(&form)

	if errs := h.val.Contact(form); !errs.OK() {
		render(c, http.StatusUnprocessableEntity, "contact.html", gin.H{"Title": "Contact Us", "Form": form, "Errors": errs})
		return
	}

	_, err := v.Client.CreateContact(c.Request.Context(), models.ContactInput{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Subject: strings.TrimSpace(form.Subject),
		Message: strings.TrimSpace(form.Message),
	})
	if err != nil {
		render(c, apperror.StatusOf(err), "contact.html", gin.H{
			"Title": "Contact Us",
			"Form":  form,
			"Error": apperror.MessageOf(err, "Failed to send message"),
		})
		return
	}

	// Форма очищается после успешной отправки
	render(c, http.StatusOK, "contact.html", gin.H{
		"Title":   "Contact Us",
		"Form":    validation.ContactForm{},
		"Success": ContactSentMessage,
	})
}
