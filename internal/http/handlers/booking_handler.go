package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
	"github.com/ignatzorin/homeservices-portal/internal/validation"
)

// BookingHandler — форма бронирования на сайте.
type BookingHandler struct {
	val *validation.Validator
}

func NewBookingHandler(val *validation.Validator) *BookingHandler {
	return &BookingHandler{val: val}
}

// Form GET /book?service=
func (h *BookingHandler) Form(c *gin.Context) {
	form := validation.BookingForm{ServiceName: strings.TrimSpace(c.Query("service"))}
	h.renderForm(c, http.StatusOK, form, nil, "")
}

// Create POST /bookings
// При ошибках валидации форма возвращается с сообщениями, запрос к API не выполняется.
func (h *BookingHandler) Create(c *gin.Context) {
	v, ok := mustVisitor(c)
	if !ok {
		return
	}

	var form validation.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, form, nil, "Invalid form submission")
		return
	}

	if errs := h.val.Booking(form); !errs.OK() {
		h.renderForm(c, http.StatusUnprocessableEntity, form, errs, "")
		return
	}

	booking, err := v.Client.CreateBooking(c.Request.Context(), form.Input())
	if err != nil {
		logger.With("booking").WithError(err).Warn("бронирование не создано")
		h.renderForm(c, apperror.StatusOf(err), form, nil, apperror.MessageOf(err, "Failed to submit booking. Please try again."))
		return
	}

	render(c, http.StatusCreated, "booking_success.html", gin.H{
		"Title":       "Booking Submitted",
		"ServiceName": form.ServiceName,
		"Booking":     booking,
	})
}

func (h *BookingHandler) renderForm(c *gin.Context, status int, form validation.BookingForm, errs validation.Errors, apiError string) {
	render(c, status, "booking.html", gin.H{
		"Title":    "Book " + form.ServiceName,
		"Form":     form,
		"Errors":   errs,
		"APIError": apiError,
		"Today":    h.val.Today(),
	})
}
