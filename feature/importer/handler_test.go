package importer

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"seed-manager/core/ingest/builtin"
	"seed-manager/core/storage/mocks"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	feature := NewFeature(builtin.NewLoader(builtin.Config{}, zap.NewNop()), mockClient, "seeds", nil, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, mockClient
}

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func TestHandleFormats(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/import/formats", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []FormatInfo
	decode(t, resp.Body, &body)
	assert.Len(t, body, 3)
}

func TestHandleUpload_Multipart(t *testing.T) {
	app, _ := setupTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "people.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("name,age\nAna,30\nLuis,25\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/import/CSV", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"format": "csv",
		"count": 2,
		"keys": ["name", "age"],
		"records": [{"name": "Ana", "age": "30"}, {"name": "Luis", "age": "25"}]
	}`, string(raw))
	// records keep header order on the wire
	assert.Contains(t, string(raw), `{"name":"Ana","age":"30"}`)
}

func TestHandleUpload_MultipartWithoutFile(t *testing.T) {
	app, _ := setupTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "name,age\nAna,30"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/import/csv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body ErrorResponse
	decode(t, resp.Body, &body)
	assert.Equal(t, "missing_input", body.Kind)
}

func TestHandleUpload_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
		wantKind string
	}{
		{"Raw JSON Body", "/import/json", `[{"id":1}]`, 200, ""},
		{"Empty Body", "/import/json", "", 400, "missing_input"},
		{"Unknown Format", "/import/yaml", "a: 1", 415, "unsupported_format"},
		{"Malformed JSON", "/import/json", `{"a": `, 422, "malformed_json"},
		{"Malformed CSV", "/import/csv", "a\n\"x\n", 422, "malformed_csv"},
		{"Not A Workbook", "/import/xlsx", "plain text", 422, "spreadsheet_unreadable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := setupTestApp(t)
			req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/octet-stream")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			if tt.wantKind != "" {
				var body ErrorResponse
				decode(t, resp.Body, &body)
				assert.Equal(t, tt.wantKind, body.Kind)
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

func TestHandleObject(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("GetObject", mock.Anything, "seeds", "people.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"name":"Ana"}`)), nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/import/json/object?key=people.json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"format":"json","count":1,"keys":["name"],"records":[{"name":"Ana"}]}`, string(raw))

	resp, err = app.Test(httptest.NewRequest("POST", "/import/json/object", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
