package v1

import (
	"io"
	"net/http"

	"kamenpro-backend/internal/delivery/http/response"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	MsgInquirySent    = "Vaš upit je uspešno poslat."
	MsgInquiryFailed  = "Dogodila se greška prilikom slanja e-maila. Molimo kontaktirajte nas telefonom."
	MsgUnreadableBody = "Invalid JSON in request body"

	maxFormBodyBytes = 64 << 10
)

type InquiryHandler struct {
	inquiryUC domain.InquiryUsecase
}

// NewInquiryHandler registers the product inquiry route (public, no auth)
func NewInquiryHandler(api *gin.RouterGroup, inquiryUC domain.InquiryUsecase) {
	handler := &InquiryHandler{
		inquiryUC: inquiryUC,
	}

	// OPTIONS is answered by CORSMiddleware
	api.POST("/send-inquiry", handler.SendInquiry)
}

// SendInquiry godoc
// @Summary      Send Product Inquiry
// @Description  Relays one product inquiry to the business mailbox. Public endpoint, never retried.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        inquiry  body      domain.InquiryRequest  true  "Inquiry Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.ErrorResponse
// @Failure      405      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /send-inquiry [post]
func (h *InquiryHandler) SendInquiry(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		_ = c.Error(apperror.BadRequest(MsgUnreadableBody))
		return
	}

	req, err := h.inquiryUC.ParseInquiry(body)
	if err != nil {
		_ = c.Error(toAppError(err, MsgInquiryFailed))
		return
	}

	res, err := h.inquiryUC.SendInquiry(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(toAppError(err, MsgInquiryFailed))
		return
	}

	response.Success(c, http.StatusOK, MsgInquirySent, res.MessageID)
}

func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	return io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxFormBodyBytes))
}
