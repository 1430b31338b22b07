package validation

// ContactForm — форма обратной связи.
type ContactForm struct {
	Name    string `form:"name" validate:"notblank"`
	Email   string `form:"email" validate:"notblank,email_addr"`
	Phone   string `form:"phone" validate:"notblank"`
	Subject string `form:"subject" validate:"notblank"`
	Message string `form:"message" validate:"notblank,max=5000"`
}

var contactMessages = messages{
	"name": {"notblank": "Name is required"},
	"email": {
		"notblank":   "Email is required",
		"email_addr": "Please enter a valid email address",
	},
	"phone":   {"notblank": "Phone is required"},
	"subject": {"notblank": "Subject is required"},
	"message": {
		"notblank": "Message is required",
		"max":      "Message is too long",
	},
}

func (val *Validator) Contact(form ContactForm) Errors {
	return val.check(form, contactMessages)
}

// RegisterForm — регистрация на сайте.
type RegisterForm struct {
	Name            string `form:"name" validate:"notblank"`
	Email           string `form:"email" validate:"notblank,email_addr"`
	Phone           string `form:"phone"`
	Password        string `form:"password" validate:"password"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
}

var registerMessages = messages{
	"name": {"notblank": "Name is required"},
	"email": {
		"notblank":   "Email is required",
		"email_addr": "Please enter a valid email address",
	},
	"password":        {"password": "Password must be at least 6 characters"},
	"confirmPassword": {"eqfield": "Passwords do not match"},
}

var registerOrder = []string{"confirmPassword", "name", "email", "password"}

// Register возвращает первую ошибку формы регистрации или пустую строку.
// Несовпадение паролей проверяется первым.
func (val *Validator) Register(form RegisterForm) string {
	return first(val.check(form, registerMessages), registerOrder)
}

// LoginForm — вход на сайт и в админку.
type LoginForm struct {
	Email    string `form:"email" validate:"notblank"`
	Password string `form:"password" validate:"required"`
}

var loginMessages = messages{
	"email":    {"*": "Email is required"},
	"password": {"*": "Password is required"},
}

func (val *Validator) Login(form LoginForm) string {
	return first(val.check(form, loginMessages), []string{"email", "password"})
}

// CategoryForm — создание и редактирование категории.
type CategoryForm struct {
	ID          string `form:"id"`
	Name        string `form:"name" validate:"notblank"`
	Slug        string `form:"slug" validate:"notblank,slug"`
	Description string `form:"description"`
	Icon        string `form:"icon"`
	Image       string `form:"image"`
	ParentID    string `form:"parentId"`
	IsActive    bool   `form:"isActive"`
}

var categoryMessages = messages{
	"name": {"*": "Name is required"},
	"slug": {
		"notblank": "Slug is required",
		"slug":     "Slug may contain only lowercase letters, digits and dashes",
	},
}

func (val *Validator) Category(form CategoryForm) string {
	return first(val.check(form, categoryMessages), []string{"name", "slug"})
}

// ServiceForm — создание и редактирование услуги.
type ServiceForm struct {
	ID          string   `form:"id"`
	Title       string   `form:"title" validate:"notblank"`
	CategoryID  string   `form:"categoryId" validate:"notblank"`
	Description string   `form:"description" validate:"notblank"`
	Image       string   `form:"image"`
	Price       string   `form:"price" validate:"notblank"`
	Duration    string   `form:"duration" validate:"notblank"`
	Features    []string `form:"features"`
	IsActive    bool     `form:"isActive"`
}

var serviceMessages = messages{
	"title":       {"*": "Title is required"},
	"categoryId":  {"*": "Category is required"},
	"description": {"*": "Description is required"},
	"price":       {"*": "Price is required"},
	"duration":    {"*": "Duration is required"},
}

func (val *Validator) Service(form ServiceForm) string {
	return first(val.check(form, serviceMessages), []string{"title", "categoryId", "description", "price", "duration"})
}

// UserForm — пользователь в админке. Пароль обязателен только при создании.
type UserForm struct {
	ID       string `form:"id"`
	Name     string `form:"name" validate:"notblank"`
	Email    string `form:"email" validate:"notblank,email_addr"`
	Phone    string `form:"phone" validate:"notblank"`
	Role     string `form:"role" validate:"oneof=user admin"`
	Password string `form:"password" validate:"omitempty,password"`
	IsActive bool   `form:"isActive"`
}

var userMessages = messages{
	"name":     {"*": "Name is required"},
	"email":    {"notblank": "Email is required", "email_addr": "Please enter a valid email address"},
	"phone":    {"*": "Phone is required"},
	"role":     {"*": "Please select a role"},
	"password": {"*": "Password must be at least 6 characters"},
}

var userOrder = []string{"name", "email", "phone", "role", "password"}

// User проверяет форму пользователя; creating требует пароль.
func (val *Validator) User(form UserForm, creating bool) string {
	if msg := first(val.check(form, userMessages), userOrder); msg != "" {
		return msg
	}
	if creating && form.Password == "" {
		return "Password is required"
	}
	return ""
}
