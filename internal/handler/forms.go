package handler

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate holds the shared validator instance. Field limits mirror the
// registration and post forms: names 3-100 characters, emails and passwords
// capped at 100, post fields at 250.
var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterForm is the sign-up form.
type RegisterForm struct {
	Name            string `validate:"required,min=3,max=100"`
	Email           string `validate:"required,email,max=100"`
	Password        string `validate:"required,min=8,max=100"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// LoginForm is the log-in form.
type LoginForm struct {
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required,min=8,max=100"`
}

// PostForm is the create/edit post form.
type PostForm struct {
	Title    string `validate:"required,max=250"`
	Subtitle string `validate:"required,max=250"`
	ImageURL string `validate:"required,url,max=250"`
	Body     string `validate:"required"`
}

// CommentForm is the comment form on a post page.
type CommentForm struct {
	Text string `validate:"required"`
}

func parseRegisterForm(r *http.Request) RegisterForm {
	return RegisterForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
}

func parseLoginForm(r *http.Request) LoginForm {
	return LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
}

func parsePostForm(r *http.Request) PostForm {
	return PostForm{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		ImageURL: r.PostFormValue("image_url"),
		Body:     r.PostFormValue("body"),
	}
}

func parseCommentForm(r *http.Request) CommentForm {
	return CommentForm{Text: r.PostFormValue("text")}
}

// checkForm validates a form struct and returns per-field messages keyed by
// struct field name. An empty map means the form is valid.
func checkForm(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": "Invalid input."}
	}

	messages := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages[fe.Field()] = fieldMessage(fe)
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "min":
		if fe.Field() == "Password" {
			return "Password requires min. 8 characters."
		}
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "eqfield":
		return "Passwords must match."
	default:
		return "Invalid value."
	}
}
