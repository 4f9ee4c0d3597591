package receipt

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/receipt/model/dto"
	"frontdesk/internal/domains/receipt/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Receipt
	otel    otel.Otel
}

func New(service service.Receipt, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/receipts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BuildReceipt)
		routerGroup.Post("/export", handler.ExportReceipt)
	})
}

// BuildReceipt assembles a receipt for one or more bookings.
// @Summary Build a receipt
// @Description The first booking names the customer and the receipt number.
// @Tags Receipt
// @Accept json
// @Produce json
// @Param request body dto.ReceiptRequest true "Receipt Request"
// @Success 200 {object} response.Data[dto.ReceiptResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/receipts [post]
// @Security BearerAuth
func (handler *Handler) BuildReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BuildReceipt")
	defer scope.End()

	req := dto.ReceiptRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithTracedError(w, scope, err, "invalid request body")

		return
	}

	res, err := handler.service.Build(ctx, req)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to build receipt")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ExportReceipt renders the receipt as an XLSX workbook.
// @Summary Export a receipt
// @Description Streams the workbook back, or archives it and returns its URL when archive is set.
// @Tags Receipt
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body dto.ReceiptRequest true "Receipt Request"
// @Success 200 {file} file
// @Success 201 {object} response.Data[dto.ExportResult]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/receipts/export [post]
// @Security BearerAuth
func (handler *Handler) ExportReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReceipt")
	defer scope.End()

	req := dto.ReceiptRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithTracedError(w, scope, err, "invalid request body")

		return
	}

	res, err := handler.service.Export(ctx, req)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to export receipt")

		return
	}

	if req.Archive {
		response.WithJSON(w, http.StatusCreated, res)

		return
	}

	response.WithFile(w, constant.ContentTypeXLSX, res.FileName, res.Content)
}
