package server

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/form"
	"github.com/goliatone/go-notegen/pkg/render"
	"github.com/goliatone/go-notegen/pkg/validation"
)

// NoteResponse is the body of POST /api/notes.
type NoteResponse struct {
	Valid     bool                     `json:"valid"`
	Fields    []validation.FieldResult `json:"fields"`
	Narrative string                   `json:"narrative,omitempty"`
}

func (s *Server) newState() *form.State {
	return form.NewState(s.gen.Schema(), form.WithSanitizer(s.sanitize))
}

func (s *Server) handleForm(c echo.Context) error {
	state := s.newState()
	return s.renderPage(c, render.NewPage(state, "", false))
}

func (s *Server) handleSubmit(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	state := s.newState()
	state.SetAll(catalog.ValuesFromForm(params, s.gen.Fields()))
	state.TouchAll()

	outcome := s.gen.FromResult(state.Result())
	return s.renderPage(c, render.NewPage(state, outcome.Narrative, true))
}

func (s *Server) renderPage(c echo.Context, page render.Page) error {
	out, err := s.pages.Render(c.Request().Context(), page, render.RenderOptions{Title: s.title})
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, s.pages.ContentType(), out)
}

func (s *Server) handleNotes(c echo.Context) error {
	var payload map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil || payload == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "body must be a JSON object of field values")
	}
	if err := s.checker.Check(payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	values, err := catalog.ValuesFromPayload(payload)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	state := s.newState()
	state.SetAll(values)

	outcome := s.gen.FromResult(state.Result())
	s.logger.Debug().
		Bool("valid", outcome.Result.Valid).
		Int("errors", len(outcome.Result.Errors())).
		Msg("note evaluated")

	return c.JSON(http.StatusOK, NoteResponse{
		Valid:     outcome.Result.Valid,
		Fields:    outcome.Result.Fields,
		Narrative: outcome.Narrative,
	})
}

func (s *Server) handleFields(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"fields": s.gen.Fields()})
}

func (s *Server) handleOpenAPI(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.OpenAPIDocument(s.gen.Fields(), s.title, APIVersion))
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
