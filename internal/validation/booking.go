package validation

import (
	"strings"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// BookingForm — форма бронирования на сайте.
type BookingForm struct {
	ServiceName string `form:"serviceName"`
	Name        string `form:"name" validate:"notblank,trimmin=2"`
	Mobile      string `form:"mobile" validate:"notblank,uae_mobile"`
	Address     string `form:"address" validate:"notblank,trimmin=10"`
	Date        string `form:"date" validate:"required,not_past"`
	Message     string `form:"message"`
}

var bookingMessages = messages{
	"name": {
		"notblank": "Name is required",
		"trimmin":  "Name must be at least 2 characters",
	},
	"mobile": {
		"notblank":   "Mobile number is required",
		"uae_mobile": "Please enter a valid UAE mobile number",
	},
	"address": {
		"notblank": "Address is required",
		"trimmin":  "Please enter a complete address",
	},
	"date": {
		"required": "Date is required",
		"not_past": "Please select a future date",
	},
}

// Booking проверяет форму бронирования. Пустой результат — форму можно отправлять.
func (val *Validator) Booking(form BookingForm) Errors {
	return val.check(form, bookingMessages)
}

// Input собирает тело POST /bookings. Пустое сообщение не отправляется.
func (f BookingForm) Input() models.BookingInput {
	in := models.BookingInput{
		ServiceName: f.ServiceName,
		Name:        f.Name,
		Mobile:      f.Mobile,
		Address:     f.Address,
		Date:        f.Date,
	}
	if msg := strings.TrimSpace(f.Message); msg != "" {
		in.Message = &f.Message
	}
	return in
}

// AdminBookingForm — создание бронирования из админки.
type AdminBookingForm struct {
	// ID — запись, открытая в модальном окне; пусто при создании.
	ID          string `form:"id"`
	ServiceName string `form:"serviceName" validate:"notblank"`
	Name        string `form:"name" validate:"trimmin=2"`
	Mobile      string `form:"mobile" validate:"uae_mobile"`
	Address     string `form:"address" validate:"trimmin=10"`
	Date        string `form:"date" validate:"required"`
	Message     string `form:"message"`
}

var adminBookingMessages = messages{
	"serviceName": {"*": "Service name is required"},
	"name":        {"*": "Name must be at least 2 characters"},
	"mobile":      {"*": "Please enter a valid UAE mobile number"},
	"address":     {"*": "Please enter a complete address"},
	"date":        {"*": "Date is required"},
}

var adminBookingOrder = []string{"serviceName", "name", "mobile", "address", "date"}

// AdminBooking возвращает первую ошибку формы или пустую строку.
func (val *Validator) AdminBooking(form AdminBookingForm) string {
	return first(val.check(form, adminBookingMessages), adminBookingOrder)
}

func (f AdminBookingForm) Input() models.BookingInput {
	return BookingForm{
		ServiceName: f.ServiceName,
		Name:        f.Name,
		Mobile:      f.Mobile,
		Address:     f.Address,
		Date:        f.Date,
		Message:     f.Message,
	}.Input()
}
