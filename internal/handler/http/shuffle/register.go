// Package shuffle serves GET /shuffle.
package shuffle

import (
	"net/http"

	"anagram-shuffle/internal/common/pagination"
	shuffleUC "anagram-shuffle/internal/usecase/shuffle"
)

// Register adds the shuffle route to mux.
func Register(mux *http.ServeMux, svc *shuffleUC.Service, page pagination.Config) {
	mux.Handle("GET /shuffle", Handler{Svc: svc, Page: page})
}
