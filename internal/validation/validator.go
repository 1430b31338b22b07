package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// UAEMobileRegex — мобильный или городской номер ОАЭ с необязательным
// префиксом +971, 00971 или 0.
var UAEMobileRegex = regexp.MustCompile(`^(?:\+971|00971|0)?(?:50|51|52|55|56|58|2|3|4|6|7|9)\d{7}$`)

const dateLayout = "2006-01-02"

// Errors — ошибки формы: имя поля -> сообщение для пользователя.
type Errors map[string]string

// OK сообщает, что ошибок нет.
func (e Errors) OK() bool {
	return len(e) == 0
}

// Validator проверяет формы портала. Чистая логика: сеть не используется.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
	loc *time.Location
}

// Option настраивает Validator.
type Option func(*Validator)

// WithNow подменяет часы (для тестов и проверки "не в прошлом").
func WithNow(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// WithLocation задаёт часовой пояс, в котором считается "сегодня".
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

func New(opts ...Option) *Validator {
	val := &Validator{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(val)
	}

	v := validator.New()

	// Ключи ошибок — имена полей формы.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return ValidateNonEmpty(fl.FieldName(), fl.Field().String()) == nil
	})

	v.RegisterValidation("trimmin", func(fl validator.FieldLevel) bool {
		min, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return ValidateLength(fl.FieldName(), fl.Field().String(), min, 0) == nil
	})

	v.RegisterValidation("uae_mobile", func(fl validator.FieldLevel) bool {
		return UAEMobileRegex.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	v.RegisterValidation("email_addr", func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String()) == nil
	})

	v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return ValidatePassword(fl.Field().String()) == nil
	})

	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return ValidateSlug(fl.Field().String()) == nil
	})

	v.RegisterValidation("not_past", func(fl validator.FieldLevel) bool {
		return val.notPast(fl.Field().String())
	})

	val.v = v
	return val
}

// notPast сравнивает дату с сегодняшним днём (время обнулено). Сегодня допустимо.
func (val *Validator) notPast(value string) bool {
	date, ok := parseDate(strings.TrimSpace(value), val.loc)
	if !ok {
		return false
	}
	now := val.now().In(val.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, val.loc)
	return !date.Before(today)
}

// parseDate принимает YYYY-MM-DD или RFC 3339 и возвращает полночь этого дня.
func parseDate(value string, loc *time.Location) (time.Time, bool) {
	if d, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		ts = ts.In(loc)
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

// Today возвращает сегодняшнюю дату (YYYY-MM-DD) — минимум для поля даты.
func (val *Validator) Today() string {
	return val.now().In(val.loc).Format(dateLayout)
}

// messages сопоставляет поле и тег сообщению. Ключ "*" — любое нарушение поля.
type messages map[string]map[string]string

// check проверяет структуру и собирает ошибки. Для каждого поля validator
// сообщает только первое нарушенное правило, поэтому "обязательно" идёт первым.
func (val *Validator) check(form any, table messages) Errors {
	errs := Errors{}

	err := val.v.Struct(form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_form"] = "Invalid form"
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		byTag := table[field]
		msg, ok := byTag[fe.Tag()]
		if !ok {
			msg, ok = byTag["*"]
		}
		if !ok {
			msg = "Invalid value"
		}
		if _, exists := errs[field]; !exists {
			errs[field] = msg
		}
	}
	return errs
}

// first возвращает первую ошибку в порядке полей (как в модальных окнах админки).
func first(errs Errors, order []string) string {
	for _, field := range order {
		if msg, ok := errs[field]; ok {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return ""
}
