package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dubai = time.FixedZone("GST", 4*60*60)

func fixedValidator(now time.Time) *Validator {
	return New(WithNow(func() time.Time { return now }), WithLocation(dubai))
}

func validBooking(date string) BookingForm {
	return BookingForm{
		ServiceName: "AC Repair",
		Name:        "Al",
		Mobile:      "0501234567",
		Address:     "Business Bay, Dubai, UAE",
		Date:        date,
	}
}

func TestBooking_ValidToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, dubai)
	v := fixedValidator(now)

	errs := v.Booking(validBooking("2026-03-10"))
	assert.True(t, errs.OK(), "errors: %v", errs)
}

func TestBooking_InvalidMobile(t *testing.T) {
	v := fixedValidator(time.Date(2026, 3, 10, 9, 0, 0, 0, dubai))

	form := validBooking("2026-03-11")
	form.Mobile = "12345"

	errs := v.Booking(form)
	require.Len(t, errs, 1)
	assert.Equal(t, "Please enter a valid UAE mobile number", errs["mobile"])
}

func TestBooking_RequiredMessages(t *testing.T) {
	v := fixedValidator(time.Date(2026, 3, 10, 9, 0, 0, 0, dubai))

	errs := v.Booking(BookingForm{Name: "  ", Mobile: "", Address: " ", Date: ""})
	assert.Equal(t, Errors{
		"name":    "Name is required",
		"mobile":  "Mobile number is required",
		"address": "Address is required",
		"date":    "Date is required",
	}, errs)
}

func TestBooking_LengthMessages(t *testing.T) {
	v := fixedValidator(time.Date(2026, 3, 10, 9, 0, 0, 0, dubai))

	form := validBooking("2026-03-09")
	form.Name = " A "
	form.Address = "Dubai    "

	errs := v.Booking(form)
	assert.Equal(t, "Name must be at least 2 characters", errs["name"])
	assert.Equal(t, "Please enter a complete address", errs["address"])
	assert.Equal(t, "Please select a future date", errs["date"])
	assert.NotContains(t, errs, "mobile")
}

func TestBooking_UnparseableDate(t *testing.T) {
	v := fixedValidator(time.Date(2026, 3, 10, 9, 0, 0, 0, dubai))
	errs := v.Booking(validBooking("next tuesday"))
	assert.Equal(t, "Please select a future date", errs["date"])
}

func TestBooking_MobileProperty(t *testing.T) {
	v := fixedValidator(time.Date(2026, 3, 10, 9, 0, 0, 0, dubai))

	valid := []string{}
	for _, prefix := range []string{"", "+971", "00971", "0"} {
		for _, group := range []string{"50", "51", "52", "55", "56", "58", "2", "3", "4", "6", "7", "9"} {
			valid = append(valid, prefix+group+"1234567")
		}
	}
	valid = append(valid, "  0559876543  ")

	for _, mobile := range valid {
		form := validBooking("2026-03-10")
		form.Mobile = mobile
		assert.NotContains(t, v.Booking(form), "mobile", mobile)
	}

	invalid := []string{"12345", "0531234567", "+9715012345678", "050123456", "+971 50 123 4567", "abc", "0081234567", "+1501234567"}
	for _, mobile := range invalid {
		form := validBooking("2026-03-10")
		form.Mobile = mobile
		assert.Equal(t, "Please enter a valid UAE mobile number", v.Booking(form)["mobile"], mobile)
	}
}

func TestBooking_DateProperty(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, dubai)
	for _, hour := range []int{0, 12, 23} {
		v := fixedValidator(today.Add(time.Duration(hour) * time.Hour))

		for offset := -40; offset <= 40; offset++ {
			date := today.AddDate(0, 0, offset).Format("2006-01-02")
			_, hasErr := v.Booking(validBooking(date))["date"]
			assert.Equal(t, offset < 0, hasErr, fmt.Sprintf("offset=%d hour=%d", offset, hour))
		}
	}
}

func TestBookingForm_Input(t *testing.T) {
	form := validBooking("2026-03-10")
	assert.Nil(t, form.Input().Message)

	form.Message = "Please call before"
	in := form.Input()
	require.NotNil(t, in.Message)
	assert.Equal(t, "Please call before", *in.Message)
	assert.Equal(t, "AC Repair", in.ServiceName)
}

func TestAdminBooking_FirstError(t *testing.T) {
	v := fixedValidator(time.Date(2026, 3, 10, 9, 0, 0, 0, dubai))

	assert.Equal(t, "Service name is required", v.AdminBooking(AdminBookingForm{}))
	assert.Equal(t, "Name must be at least 2 characters", v.AdminBooking(AdminBookingForm{ServiceName: "Cleaning"}))
	assert.Equal(t, "Please enter a valid UAE mobile number",
		v.AdminBooking(AdminBookingForm{ServiceName: "Cleaning", Name: "Omar"}))

	ok := AdminBookingForm{
		ServiceName: "Cleaning",
		Name:        "Omar",
		Mobile:      "+971501234567",
		Address:     "Marina Walk, Dubai",
		Date:        "2020-01-01",
	}
	assert.Empty(t, v.AdminBooking(ok))
}

func TestToday(t *testing.T) {
	v := fixedValidator(time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-11", v.Today())
}
