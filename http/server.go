package http

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/fwojciec/webcite"
)

// Server is the interactive presentation shell. It serves a URL form,
// runs the citation pipeline on submission, and offers the RIS record as
// a downloadable file. Each request is independent; the server holds no
// session state.
type Server struct {
	Generator webcite.Generator

	// Citations is optional. When set, every generated citation is saved
	// and the result page links to a stored download.
	Citations webcite.CitationService

	mux *http.ServeMux
}

// NewServer creates a Server with its routes registered.
func NewServer(generator webcite.Generator, citations webcite.CitationService) *Server {
	s := &Server{
		Generator: generator,
		Citations: citations,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /cite", s.handleCite)
	s.mux.HandleFunc("GET /citations/{id}/download", s.handleDownload)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		http.Error(w, "Internal error.", http.StatusInternalServerError)
	}
}

func (s *Server) handleCite(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.FormValue("url"))

	citation, err := s.Generator.Generate(r.Context(), url)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	if s.Citations != nil {
		if err := s.Citations.CreateCitation(r.Context(), citation); err != nil {
			s.renderError(w, r, err)
			return
		}
	}

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(citation)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := resultTemplate.Execute(w, citation); err != nil {
		http.Error(w, "Internal error.", http.StatusInternalServerError)
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if s.Citations == nil {
		http.Error(w, "citation storage not configured", http.StatusNotFound)
		return
	}

	citation, err := s.Citations.FindCitationByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", webcite.RISMediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", webcite.RISFilename))
	_, _ = w.Write([]byte(citation.RIS))
}

// renderError maps application error codes to HTTP statuses and shows the
// human readable message. Fetch failures are user errors to retry, not
// crashes; the process keeps serving.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch webcite.ErrorCode(err) {
	case webcite.EINVALID:
		status = http.StatusBadRequest
	case webcite.ENOTFOUND:
		status = http.StatusNotFound
	case webcite.EUNAVAILABLE:
		status = http.StatusBadGateway
	}

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": webcite.ErrorMessage(err)})
		return
	}

	http.Error(w, webcite.ErrorMessage(err), status)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>webcite: URL to RIS</title></head>
<body>
<h1>URL to RIS</h1>
<p>Enter a web address. The page is fetched and its metadata is used to
infer author, year, title, and site name, producing an APA-style web
reference and a RIS record.</p>
<form method="post" action="/cite">
<input type="url" name="url" size="80" placeholder="https://..." required>
<button type="submit">Fetch and generate RIS</button>
</form>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><title>webcite: result</title></head>
<body>
<h1>Detected metadata</h1>
<ul>
<li>Title: {{if .Title}}{{.Title}}{{else}}Not found{{end}}</li>
<li>Authors: {{if .Authors}}{{range $i, $a := .Authors}}{{if $i}}, {{end}}{{$a}}{{end}}{{else}}Not found{{end}}</li>
<li>Year: {{if .Year}}{{.Year}}{{else}}Not found{{end}}</li>
<li>Site name: {{.SiteName}}</li>
</ul>
<h2>APA-style reference (approximate)</h2>
<pre>{{.APA}}</pre>
<h2>RIS record</h2>
<pre>{{.RIS}}</pre>
{{if .ID}}<p><a href="/citations/{{.ID}}/download">Download RIS file</a></p>{{end}}
<p><a href="/">Cite another page</a></p>
</body>
</html>
`))
