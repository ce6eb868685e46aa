package api

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/livedirtree/treerelay/config"
	"github.com/rs/zerolog/log"
)

//go:embed page.html
var pageSrc string

var (
	pageTmpl *template.Template
	pageOnce sync.Once
)

// PageData fills the debug page.
type PageData struct {
	Port    int64
	Version string
}

func compilePage() {
	pageTmpl = template.Must(template.New("debugPage").Parse(pageSrc))
}

func RenderPage(data PageData) ([]byte, error) {
	pageOnce.Do(compilePage)

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PageHandler serves a small page that polls /status and /tree/text.
func PageHandler(port int64) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		page, err := RenderPage(PageData{Port: port, Version: config.Version()})
		if err != nil {
			log.Error().Err(err).Msg("failed to render debug page")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, err = w.Write(page)
		if err != nil {
			log.Error().Err(err).Msg("failed to write debug page")
		}
	}
}
