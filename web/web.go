// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package web serves the assembler over HTTP.
package web

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang/glog"

	"github.com/ezrec/minisrc/asm"
	"github.com/ezrec/minisrc/listing"
)

//go:embed index.html
var indexHTML []byte

// Word is an assembled word in a response.
type Word struct {
	Address uint32 `json:"address"`
	Word    uint32 `json:"word"`
}

// Result is the response of a successful assembly.
type Result struct {
	Output   string   `json:"output"`
	Words    []Word   `json:"words"`
	Warnings []string `json:"warnings"`
}

// Failure is the response of a failed request.
type Failure struct {
	Error string `json:"error"`
}

// Server is an http.Handler for the assembler page and its API.
type Server struct {
	Verbose bool // Log each assembler pass.

	mux *http.ServeMux
}

// NewServer returns a server with its routes installed.
func NewServer() (srv *Server) {
	srv = &Server{
		mux: http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /{$}", srv.index)
	srv.mux.HandleFunc("POST /assemble", srv.assemble)

	return
}

// status records the status code sent to a client.
type status struct {
	http.ResponseWriter
	code int
}

func (st *status) WriteHeader(code int) {
	st.code = code
	st.ResponseWriter.WriteHeader(code)
}

func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	st := &status{ResponseWriter: w, code: http.StatusOK}
	srv.mux.ServeHTTP(st, r)
	glog.Infof("%v %v %v %d", r.RemoteAddr, r.Method, r.URL.Path, st.code)
}

func (srv *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func reply(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		glog.Errorf("web: %v", err)
	}
}

func (srv *Server) assemble(w http.ResponseWriter, r *http.Request) {
	format := r.PostFormValue("format")
	if len(format) == 0 {
		format = listing.DIALECT_MEM.String()
	}

	dialect, err := listing.ParseDialect(format)
	if err != nil {
		reply(w, http.StatusBadRequest, &Failure{Error: listing.ErrDialectUnknown.Error()})
		return
	}

	assembler := &asm.Assembler{Verbose: srv.Verbose}
	prog, err := assembler.Parse(strings.NewReader(r.PostFormValue("code")))
	if err != nil {
		glog.Infof("web: rejected source: %v", err)
		reply(w, http.StatusUnprocessableEntity, &Failure{Error: err.Error()})
		return
	}

	output, err := listing.Render(dialect, prog)
	if err != nil {
		reply(w, http.StatusInternalServerError, &Failure{Error: err.Error()})
		return
	}

	result := &Result{
		Output:   output,
		Words:    make([]Word, 0, len(prog.Entries)),
		Warnings: make([]string, 0, len(prog.Warnings)),
	}
	for _, entry := range prog.Entries {
		result.Words = append(result.Words, Word{Address: entry.Address, Word: uint32(entry.Word)})
	}
	for _, warning := range prog.Warnings {
		glog.Warningf("web: %v", warning)
		result.Warnings = append(result.Warnings, warning.String())
	}

	reply(w, http.StatusOK, result)
}
