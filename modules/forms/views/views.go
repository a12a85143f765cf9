package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("forms").ParseFS(templateFS, "templates/*.html"))

// render exposes a named template as a templ.Component so it can go through
// handler.Templ and DataStar patches.
func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

// IndexPage compares the two form approaches.
func IndexPage() templ.Component {
	return render("index", nil)
}

// PrimitivePage is the full page of the plain HTML form.
func PrimitivePage(state FormState) templ.Component {
	return render("primitive", state)
}

// ModernPage is the full page of the DataStar form.
func ModernPage(state FormState) templ.Component {
	return render("modern", state)
}

// ModernForm is the #modern-form fragment patched after each submit.
func ModernForm(state FormState) templ.Component {
	return render("modern_form", state)
}

// UserCard is the #result fragment. A nil user renders an empty section,
// which clears a card left over from an earlier submit.
func UserCard(user *userform.User) templ.Component {
	return render("user_card", user)
}

func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return render("error_page", p)
}

func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return render("error_toast", p)
}
