package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"project-registration-server/internal/repository"
	"project-registration-server/internal/service"
	"project-registration-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	testService *service.Service
	testHandler *Handler
)

func setupTestHandler(t *testing.T) *repository.Repositories {
	t.Helper()
	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(gdb)
	testService = service.NewService(repos)
	testHandler = NewHandler(testService)
	return repos
}

// asUser 模拟 JWTAuth 写入上下文的当前用户
func asUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("id", id)
		c.Next()
	}
}

func jsonRequest(method, path string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type filePart struct {
	name        string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, file *filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="profile_picture"; filename="`+file.name+`"`)
		h.Set("Content-Type", file.contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(file.data)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func personFields(suffix string) map[string]string {
	return map[string]string{
		"first_name":    "Jonas",
		"last_name":     "Jonaitis",
		"personal_code": "3900101" + suffix,
		"phone_number":  "+3706000" + suffix,
		"email":         "jonas" + suffix + "@example.com",
		"city":          "Vilnius",
		"street":        "Gedimino pr.",
		"house_number":  "1",
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (%s)", err, w.Body.String())
	}
	return body
}
