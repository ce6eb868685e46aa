package monitoring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPProfRoutes(t *testing.T) {
	r := require.New(t)

	p := NewPProf("127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, req)

	r.Equal(http.StatusOK, rec.Code)
	r.Contains(rec.Body.String(), "goroutine")
}

func TestPProfStopWithoutStart(t *testing.T) {
	r := require.New(t)

	p := NewPProf("127.0.0.1:0")
	r.NoError(p.Stop(context.Background()))
}
