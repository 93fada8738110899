package main

import (
	"bytes"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"sumSheet/contracts"
)

const ExportFileName = "sheet.xlsx"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApiController struct {
	Sheet             contracts.Sheet
	WebhookDispatcher contracts.WebhookDispatcher
	SheetExporter     contracts.SheetExporter
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

// SetCellRequest.Value is a pointer so that an empty value, which clears the
// cell, still passes the required check.
type SetCellRequest struct {
	Value *string `json:"value" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl *string `json:"webhook_url" binding:"required"`
}

func NewApiController(
	sheet contracts.Sheet, webhookDispatcher contracts.WebhookDispatcher, sheetExporter contracts.SheetExporter,
) *ApiController {
	return &ApiController{
		Sheet:             sheet,
		WebhookDispatcher: webhookDispatcher,
		SheetExporter:     sheetExporter,
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		api.respondError(c, err, http.StatusUnprocessableEntity)
		return
	}

	cell, err := api.Sheet.GetCell(params.CellId)
	if err != nil {
		api.respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, cell)
}

// SetCellAction commits one edit; the response carries the edited cell as
// resolved by that commit.
func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	if err := api.bindCellRequest(c, &params, &request); err != nil {
		api.respondError(c, err, http.StatusUnprocessableEntity)
		return
	}

	cell, err := api.Sheet.SetCell(params.CellId, *request.Value)
	if err != nil {
		api.respondError(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusCreated, cell)
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	c.JSON(http.StatusOK, api.Sheet.GetCellList())
}

// SubscribeAction sets the webhook of a cell, an empty url removes it.
func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	if err := api.bindCellRequest(c, &params, &request); err != nil {
		api.respondError(c, err, http.StatusUnprocessableEntity)
		return
	}

	cell, err := api.Sheet.GetCell(params.CellId)
	if err != nil {
		api.respondError(c, err, http.StatusUnprocessableEntity)
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(cell.Id, *request.WebhookUrl)
	c.JSON(http.StatusCreated, cell)
}

func (api *ApiController) ExportAction(c *gin.Context) {
	buffer := &bytes.Buffer{}

	if err := api.SheetExporter.Export(api.Sheet.GetCellList(), buffer); err != nil {
		api.respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ExportFileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

func (api *ApiController) bindCellRequest(c *gin.Context, params *CellEndpointParams, request any) error {
	if err := c.ShouldBindUri(params); err != nil {
		return err
	}

	return c.ShouldBindJSON(request)
}

// respondError maps unknown cells to 404, anything else to status.
func (api *ApiController) respondError(c *gin.Context, err error, status int) {
	if errors.Is(err, contracts.CellNotFoundError) {
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
