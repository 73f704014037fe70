package http

import (
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRespondRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", func(c *gin.Context) {
		respond(c, http.StatusOK, M{"message": "pong", "count": 2})
	})
	return r
}

func TestRespondDefaultsToJSON(t *testing.T) {
	r := newRespondRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("expected json content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"message":"pong"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRespondXMLViaQueryParam(t *testing.T) {
	r := newRespondRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping?format=xml", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Fatalf("expected xml content type, got %q", ct)
	}

	var parsed struct {
		XMLName xml.Name `xml:"response"`
		Message string   `xml:"message"`
		Count   int      `xml:"count"`
	}
	if err := xml.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("parse xml: %v (%s)", err, w.Body.String())
	}
	if parsed.Message != "pong" || parsed.Count != 2 {
		t.Fatalf("unexpected xml payload: %+v", parsed)
	}
}

func TestRespondXMLViaAcceptHeader(t *testing.T) {
	r := newRespondRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Accept", "application/xml")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "<message>pong</message>") {
		t.Fatalf("expected xml body, got: %s", w.Body.String())
	}
}

func TestMMarshalXMLSkipsNilValues(t *testing.T) {
	payload := M{"message": "ok", "missing": nil}

	out, err := xml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(out)
	if strings.Contains(s, "missing") {
		t.Fatalf("nil value should be omitted: %s", s)
	}
	if !strings.Contains(s, "<message>ok</message>") {
		t.Fatalf("unexpected xml: %s", s)
	}
}
