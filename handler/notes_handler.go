package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notable/dto"
	"notable/middleware"
	"notable/usecase"
	"notable/utils"
)

const noteNotFoundMessage = "No note with that identifier has been found"

type NoteHandler struct {
	Notes *usecase.NoteService
}

func NewNoteHandler(notes *usecase.NoteService) *NoteHandler {
	return &NoteHandler{Notes: notes}
}

// ListNotes returns every note, or one user's notes when the userId
// query parameter is present. Tags come back populated.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.Notes.ListNotes(c.Request.Context(), c.Query("userId"))
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	utils.Success(c, notes)
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	note, err := h.Notes.GetNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	if note == nil {
		utils.NotFound(c, noteNotFoundMessage)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) GetNoteTags(c *gin.Context) {
	tags, err := h.Notes.NoteTags(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	if tags == nil {
		utils.NotFound(c, noteNotFoundMessage)
		return
	}
	utils.Success(c, tags)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableError(c, "invalid request body")
		return
	}

	note, err := h.Notes.CreateNote(c.Request.Context(), user.ID, req.Text, req.Tags)
	if err != nil {
		h.writeError(c, err)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableError(c, "invalid request body")
		return
	}

	note, err := h.Notes.UpdateNote(c.Request.Context(), user.ID, c.Param("id"), usecase.NoteUpdate{
		Text: req.Text,
		Tags: req.Tags,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	if note == nil {
		utils.NotFound(c, noteNotFoundMessage)
		return
	}
	utils.Success(c, note)
}

// DeleteNote removes the note and returns it as it was.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	note, err := h.Notes.DeleteNote(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if note == nil {
		utils.NotFound(c, noteNotFoundMessage)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) writeError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.Is(err, usecase.ErrNotOwner):
		utils.Forbidden(c, "You are not the owner of this note")
	case errors.As(err, &validationErr):
		utils.UnprocessableError(c, validationErr.Message)
	default:
		utils.BadRequest(c, utils.GetErrorMessage(err))
	}
}
