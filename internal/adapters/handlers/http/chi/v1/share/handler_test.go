package share_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"testing"

	sharehandler "linkdrop/internal/adapters/handlers/http/chi/v1/share"
	sharemock "linkdrop/internal/core/service/share"

	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8080"

func newTestHandler() (*sharemock.MockShareService, http.Handler) {
	mockService := sharemock.NewMockShareService()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := sharehandler.NewShareHandlerV1(mockService, logger, testBaseURL, 10<<20)
	return mockService, handler.Routes()
}

type uploadPart struct {
	name string
	data []byte
}

func multipartBody(t *testing.T, parts []uploadPart) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for _, p := range parts {
		part, err := writer.CreateFormFile("files", p.name)
		require.NoError(t, err)
		_, err = part.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}
