package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// PprofMux returns a ServeMux exposing the profiling endpoints under prefix,
// e.g. "/debug/pprof/". The mux must be mounted at the same prefix since
// pprof.Index resolves named profiles relative to "/debug/pprof/".
func PprofMux(prefix string) *http.ServeMux {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+prefix, pprof.Index)
	mux.HandleFunc("GET "+prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc("GET "+prefix+"trace", pprof.Trace)

	return mux
}
