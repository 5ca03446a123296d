package v1

import (
	"net/http"

	"kamenpro-backend/internal/delivery/http/response"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	MsgContactSent   = "Vaša poruka je uspešno poslata."
	MsgContactFailed = "Greška pri slanju poruke. Pokušajte ponovo ili nas kontaktirajte direktno."
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Sends a message from the contact page. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		_ = c.Error(apperror.BadRequest(MsgUnreadableBody))
		return
	}

	req, err := h.contactUC.ParseContact(body)
	if err != nil {
		_ = c.Error(toAppError(err, MsgContactFailed))
		return
	}

	res, err := h.contactUC.SendContactMessage(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(toAppError(err, MsgContactFailed))
		return
	}

	response.Success(c, http.StatusOK, MsgContactSent, res.MessageID)
}
