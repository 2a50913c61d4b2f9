package pkgrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sappiah085/flight/internal/pkg/pkgerror"
	"github.com/sappiah085/flight/internal/pkg/pkglog"
	"github.com/sappiah085/flight/internal/pkg/pkguid"
)

const HeaderRequestID = "X-Request-ID"

// Handler returns the value to encode as the response data, or an error that
// is translated through pkgerror into a status code and message.
type Handler func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux  *chi.Mux
	uuid pkguid.StringID
}

type successBody struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
}

func NewRouter(uuid pkguid.StringID) *Router {
	r := &Router{mux: chi.NewRouter(), uuid: uuid}
	r.mux.Use(r.requestContext, recoverer)
	r.mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: errorDetail{Message: "endpoint not found"}})
	})
	r.mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: errorDetail{Message: "method not allowed"}})
	})
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) GET(path string, h Handler) { r.mux.Get(path, r.wrap(h)) }

func (r *Router) POST(path string, h Handler) { r.mux.Post(path, r.wrap(h)) }

func (r *Router) PUT(path string, h Handler) { r.mux.Put(path, r.wrap(h)) }

func (r *Router) PATCH(path string, h Handler) { r.mux.Patch(path, r.wrap(h)) }

func (r *Router) DELETE(path string, h Handler) { r.mux.Delete(path, r.wrap(h)) }

func (r *Router) wrap(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		data, err := h(ctx, req)
		if err != nil {
			e := pkgerror.As(err)
			logger := pkglog.FromContext(ctx)
			if e.Type() == pkgerror.TypeServer {
				logger.Error().Err(err).Str("path", req.URL.Path).Msg("request failed")
			} else {
				logger.Debug().Err(err).Str("path", req.URL.Path).Msg("request rejected")
			}
			writeJSON(w, e.Code().HTTPStatus(), errorBody{Error: errorDetail{Message: e.Msg()}})
			return
		}
		writeJSON(w, http.StatusOK, successBody{Data: data})
	}
}

func (r *Router) requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		id := req.Header.Get(HeaderRequestID)
		if id == "" {
			id = r.uuid.Generate()
		}
		w.Header().Set(HeaderRequestID, id)

		ctx := pkglog.WithRequestID(req.Context(), id)
		next.ServeHTTP(w, req.WithContext(ctx))

		pkglog.FromContext(ctx).Debug().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				pkglog.FromContext(req.Context()).Error().Interface("panic", rec).Msg("recovered from panic")
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{Message: "internal server error"}})
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // client went away
	json.NewEncoder(w).Encode(body)
}
