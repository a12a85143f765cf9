package forms

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/modules/forms/views"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

// Views are the components the module renders. Replace individual entries
// with WithViews to restyle a page without touching the handlers.
type Views struct {
	Index         func() templ.Component
	PrimitivePage func(views.FormState) templ.Component
	ModernPage    func(views.FormState) templ.Component
	ModernForm    func(views.FormState) templ.Component
	UserCard      func(*userform.User) templ.Component

	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// DefaultViews returns the embedded html/template views.
func DefaultViews() Views {
	return Views{
		Index:         views.IndexPage,
		PrimitivePage: views.PrimitivePage,
		ModernPage:    views.ModernPage,
		ModernForm:    views.ModernForm,
		UserCard:      views.UserCard,
		ErrorPage:     views.ErrorPage,
		ErrorToast:    views.ErrorToast,
	}
}

func (v Views) withDefaults() Views {
	d := DefaultViews()
	if v.Index == nil {
		v.Index = d.Index
	}
	if v.PrimitivePage == nil {
		v.PrimitivePage = d.PrimitivePage
	}
	if v.ModernPage == nil {
		v.ModernPage = d.ModernPage
	}
	if v.ModernForm == nil {
		v.ModernForm = d.ModernForm
	}
	if v.UserCard == nil {
		v.UserCard = d.UserCard
	}
	if v.ErrorPage == nil {
		v.ErrorPage = d.ErrorPage
	}
	if v.ErrorToast == nil {
		v.ErrorToast = d.ErrorToast
	}
	return v
}
