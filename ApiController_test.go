package main

import (
	"bytes"
	"errors"
	"fmt"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"io"
	"net/http"
	"net/http/httptest"
	"sumSheet/contracts"
	"sumSheet/mocks"
	"testing"
)

func _request(apiController contracts.ApiController, method string, path string, body string) *httptest.ResponseRecorder {
	router := SetupRouter(apiController)

	var bodyReader io.Reader
	if body != "" {
		bodyReader = bytes.NewBufferString(body)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, "/api/"+ApiVersion+path, bodyReader)
	router.ServeHTTP(w, req)
	return w
}

func TestApiController_GetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should return cell", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("GetCell", "c").
			Return(&contracts.Cell{Id: "C", Value: "AB", Result: "8", Formula: true}, nil)

		w := _request(NewApiController(sheet, nil, nil), http.MethodGet, "/cells/c", "")
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "C", response["id"])
		assert.Equal(t, "AB", response["value"])
		assert.Equal(t, "8", response["result"])
		assert.Equal(t, true, response["formula"])
	})

	t.Run("cell not found", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("GetCell", "Z").Return(nil, fmt.Errorf("cell_id `Z`: %w", contracts.CellNotFoundError))

		w := _request(NewApiController(sheet, nil, nil), http.MethodGet, "/cells/Z", "")
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, response["error"], contracts.CellNotFoundError.Error())
	})

	t.Run("custom error", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("GetCell", "A").Return(nil, errors.New("custom error"))

		w := _request(NewApiController(sheet, nil, nil), http.MethodGet, "/cells/A", "")
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "custom error", response["error"])
	})
}

func TestApiController_SetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should commit cell", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("SetCell", "a", "5").Return(&contracts.Cell{Id: "A", Value: "5", Result: "5"}, nil)

		w := _request(NewApiController(sheet, nil, nil), http.MethodPost, "/cells/a", `{"value":"5"}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "5", response["result"])
		assert.Equal(t, false, response["formula"])
	})

	t.Run("empty value clears cell", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("SetCell", "A", "").Return(&contracts.Cell{Id: "A"}, nil)

		w := _request(NewApiController(sheet, nil, nil), http.MethodPost, "/cells/A", `{"value":""}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		for _, body := range []string{"", "{}", `{"value":5}`, "not json"} {
			sheet := mocks.NewSheet(t)

			w := _request(NewApiController(sheet, nil, nil), http.MethodPost, "/cells/A", body)
			response, err := _parseJsonBody(w)

			assert.NoError(t, err, body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
			assert.Contains(t, response, "error", body)
			sheet.AssertNotCalled(t, "SetCell", mock.Anything, mock.Anything)
		}
	})

	t.Run("cell not found", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("SetCell", "Z", "1").Return(nil, contracts.CellNotFoundError)

		w := _request(NewApiController(sheet, nil, nil), http.MethodPost, "/cells/Z", `{"value":"1"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("sheet error", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("SetCell", "A", "1").Return(nil, errors.New("custom error"))

		w := _request(NewApiController(sheet, nil, nil), http.MethodPost, "/cells/A", `{"value":"1"}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "custom error", response["error"])
	})
}

func TestApiController_GetSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sheet := mocks.NewSheet(t)
	sheet.On("GetCellList").Return(contracts.CellList{
		{Id: "A", Value: "B", Result: contracts.CircularReferenceLabel, Formula: true},
		{Id: "B", Value: "A", Result: contracts.CircularReferenceLabel, Formula: true},
	})

	w := _request(NewApiController(sheet, nil, nil), http.MethodGet, "/cells", "")

	var response []contracts.Cell
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, response, 2)
	assert.Equal(t, "A", response[0].Id)
	assert.Equal(t, contracts.CircularReferenceLabel, response[1].Result)
}

func TestApiController_SubscribeAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should subscribe", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("GetCell", "c").Return(&contracts.Cell{Id: "C"}, nil)
		webhookDispatcher := mocks.NewWebhookDispatcher(t)
		webhookDispatcher.On("SetWebhookUrl", "C", "http://localhost/hook").Return()

		w := _request(NewApiController(sheet, webhookDispatcher, nil), http.MethodPost, "/cells/c/subscribe", `{"webhook_url":"http://localhost/hook"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("should unsubscribe", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("GetCell", "C").Return(&contracts.Cell{Id: "C"}, nil)
		webhookDispatcher := mocks.NewWebhookDispatcher(t)
		webhookDispatcher.On("SetWebhookUrl", "C", "").Return()

		w := _request(NewApiController(sheet, webhookDispatcher, nil), http.MethodPost, "/cells/C/subscribe", `{"webhook_url":""}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("cell not found", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("GetCell", "Z").Return(nil, contracts.CellNotFoundError)
		webhookDispatcher := mocks.NewWebhookDispatcher(t)

		w := _request(NewApiController(sheet, webhookDispatcher, nil), http.MethodPost, "/cells/Z/subscribe", `{"webhook_url":"http://localhost/hook"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		webhookDispatcher.AssertNotCalled(t, "SetWebhookUrl", mock.Anything, mock.Anything)
	})

	t.Run("invalid body", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		webhookDispatcher := mocks.NewWebhookDispatcher(t)

		w := _request(NewApiController(sheet, webhookDispatcher, nil), http.MethodPost, "/cells/A/subscribe", `{}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApiController_ExportAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cells := contracts.CellList{{Id: "A", Value: "1", Result: "1"}}

	t.Run("should export", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("GetCellList").Return(cells)
		exporter := mocks.NewSheetExporter(t)
		exporter.On("Export", cells, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			_, _ = args.Get(1).(io.Writer).Write([]byte("xlsx"))
		})

		w := _request(NewApiController(sheet, nil, exporter), http.MethodGet, "/export", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), ExportFileName)
		assert.Equal(t, "xlsx", w.Body.String())
	})

	t.Run("export error", func(t *testing.T) {
		sheet := mocks.NewSheet(t)
		sheet.On("GetCellList").Return(cells)
		exporter := mocks.NewSheetExporter(t)
		exporter.On("Export", cells, mock.Anything).Return(errors.New("disk full"))

		w := _request(NewApiController(sheet, nil, exporter), http.MethodGet, "/export", "")
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "disk full", response["error"])
	})
}

func TestApiController_RealSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	apiController := NewApiController(_newSheet(t, nil), nil, NewSheetExporter())

	for cellId, value := range map[string]string{"a": "5", "b": "3"} {
		w := _request(apiController, http.MethodPost, "/cells/"+cellId, `{"value":"`+value+`"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := _request(apiController, http.MethodPost, "/cells/c", `{"value":"ab"}`)
	response, err := _parseJsonBody(w)
	assert.NoError(t, err)
	assert.Equal(t, "8", response["result"])
	assert.Equal(t, "AB", response["value"])

	w = _request(apiController, http.MethodPost, "/cells/d", `{"value":"d"}`)
	response, err = _parseJsonBody(w)
	assert.NoError(t, err)
	assert.Equal(t, contracts.CircularReferenceLabel, response["result"])

	w = _request(apiController, http.MethodGet, "/export", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())
}

func _parseJsonBody(w *httptest.ResponseRecorder) (response map[string]any, err error) {
	err = json.Unmarshal(w.Body.Bytes(), &response)
	return
}
