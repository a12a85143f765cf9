package forms

import (
	"net/http"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/modules/forms/views"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

func (s *Service) index(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Index())
}

func (s *Service) primitivePage(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.PrimitivePage(views.NewFormState()))
}

// primitiveSubmit re-renders the whole page: inline errors with 422, or the
// user card with 200.
func (s *Service) primitiveSubmit(ctx handler.Context, p userform.Payload) handler.Response {
	rec, err := p.Record()
	if err != nil {
		return handler.Error(malformedSubmission(err))
	}
	state, err := s.formState(ctx, surfacePrimitive, rec)
	if err != nil {
		return handler.Error(err)
	}
	return handler.TemplWithStatus(pageStatus(state), s.views.PrimitivePage(state))
}

func (s *Service) modernPage(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.ModernPage(views.NewFormState()))
}

// modernSubmit answers DataStar with patches of the form and the result card.
// Without DataStar (scripts disabled) it degrades to a full page like the
// primitive form.
func (s *Service) modernSubmit(ctx handler.Context, p userform.Payload) handler.Response {
	rec, err := p.Record()
	if err != nil {
		return handler.Error(malformedSubmission(err))
	}
	state, err := s.formState(ctx, surfaceModern, rec)
	if err != nil {
		return handler.Error(err)
	}

	if !handler.IsDataStar(ctx.Request()) {
		return handler.TemplWithStatus(pageStatus(state), s.views.ModernPage(state))
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendMultiple(
			handler.Patch(s.views.ModernForm(state)),
			handler.Patch(s.views.UserCard(state.User)),
		); err != nil {
			return err
		}
		return stream.SendSignals(map[string]any{"submitting": false})
	})
}

func pageStatus(state views.FormState) int {
	if state.Rejected() {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}
