package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notable/dto"
	"notable/usecase"
	"notable/utils"
)

const tagNotFoundMessage = "No tag with that identifier has been found"

type TagHandler struct {
	Tags *usecase.TagService
}

func NewTagHandler(tags *usecase.TagService) *TagHandler {
	return &TagHandler{Tags: tags}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.Tags.ListTags(c.Request.Context())
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	utils.Success(c, tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	tag, err := h.Tags.GetTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	if tag == nil {
		utils.NotFound(c, tagNotFoundMessage)
		return
	}
	utils.Success(c, tag)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableError(c, "invalid request body")
		return
	}

	tag, err := h.Tags.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	utils.Success(c, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableError(c, "invalid request body")
		return
	}

	tag, err := h.Tags.UpdateTag(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if tag == nil {
		utils.NotFound(c, tagNotFoundMessage)
		return
	}
	utils.Success(c, tag)
}

// DeleteTag removes a tag. Notes referencing it keep the dangling id,
// which populate drops on read; nothing cascades.
func (h *TagHandler) DeleteTag(c *gin.Context) {
	tag, err := h.Tags.DeleteTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	if tag == nil {
		utils.NotFound(c, tagNotFoundMessage)
		return
	}
	utils.Success(c, tag)
}

func (h *TagHandler) writeError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		utils.UnprocessableError(c, validationErr.Message)
		return
	}
	utils.BadRequest(c, utils.GetErrorMessage(err))
}
