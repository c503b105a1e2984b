package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lukaism/tibber-technical-case/services/robotpath/datatypes"
	"github.com/lukaism/tibber-technical-case/services/robotpath/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeInserter struct {
	insertErr error
	lastRec   store.Record
}

func (f *fakeInserter) Insert(_ context.Context, rec store.Record) (store.Record, error) {
	if f.insertErr != nil {
		return store.Record{}, f.insertErr
	}
	rec.ID = 1
	f.lastRec = rec
	return rec, nil
}

func postEnterPath(t *testing.T, handler PathHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/tibber-developer-test/enter-path", handler.HandleEnterPath)

	req := httptest.NewRequest(http.MethodPost, "/tibber-developer-test/enter-path", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleEnterPath_Success(t *testing.T) {
	fi := &fakeInserter{}
	handler := NewPathHandler(fi, nil)

	body := `{"start":{"x":10,"y":22},"commands":[{"direction":"east","steps":2},{"direction":"north","steps":1}]}`
	rec := postEnterPath(t, handler, body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body=%s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp datatypes.EnterPathResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Result != 4 {
		t.Errorf("Result = %d, want 4", resp.Result)
	}
	if fi.lastRec.Result != 4 {
		t.Errorf("persisted Result = %d, want 4", fi.lastRec.Result)
	}
}

func TestHandleEnterPath_MalformedBody(t *testing.T) {
	fi := &fakeInserter{}
	handler := NewPathHandler(fi, nil)

	rec := postEnterPath(t, handler, `not json`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestHandleEnterPath_ValidationFailure(t *testing.T) {
	fi := &fakeInserter{}
	handler := NewPathHandler(fi, nil)

	// Unknown direction fails the "direction" custom validator.
	body := `{"start":{"x":0,"y":0},"commands":[{"direction":"up","steps":1}]}`
	rec := postEnterPath(t, handler, body)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestHandleEnterPath_PersistenceFailure(t *testing.T) {
	fi := &fakeInserter{insertErr: errors.New("connection refused")}
	handler := NewPathHandler(fi, nil)

	body := `{"start":{"x":0,"y":0},"commands":[{"direction":"east","steps":1}]}`
	rec := postEnterPath(t, handler, body)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var resp datatypes.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	const want = "There was a problem inserting the record into the database: connection refused"
	if resp.Error != want {
		t.Errorf("Error = %q, want %q", resp.Error, want)
	}
}
