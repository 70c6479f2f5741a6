package handler

import (
	"io"
	"net/http"
	"time"

	httputils "github.com/foomo/keel/utils/net/http"
	"github.com/foomo/showcase/pkg/metrics"
	"github.com/foomo/showcase/pkg/store"
	"github.com/foomo/showcase/responses"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodySize = 1 << 16

// handlerFunc returns the reply or an error reply for a request
type handlerFunc func(r *http.Request) (interface{}, *responses.Error)

// serve wraps fn with metrics and the reply envelope
func serve(l *zap.Logger, route Route, fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		status := http.StatusOK
		result := "success"
		reply, errReply := fn(r)
		if errReply != nil {
			status = errReply.Status
			result = "error"
			reply = errReply
			if status >= http.StatusInternalServerError {
				l.Error("request failed", zap.String("route", string(route)), zap.Error(errReply))
			} else {
				l.Debug("request rejected", zap.String("route", string(route)), zap.Error(errReply))
			}
		}

		metrics.ServiceRequestCounter.WithLabelValues(string(route), result).Inc()
		metrics.ServiceRequestDuration.WithLabelValues(string(route), result).Observe(time.Since(start).Seconds())

		encodeReply(l, w, r, status, reply)
	}
}

// encodeReply writes reply wrapped as {"reply": ...}
func encodeReply(l *zap.Logger, w http.ResponseWriter, r *http.Request, status int, reply interface{}) {
	bytes, err := json.Marshal(map[string]interface{}{
		"reply": reply,
	})
	if err != nil {
		httputils.ServerError(l, w, r, http.StatusInternalServerError, errors.Wrap(err, "could not encode reply"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bytes)
}

// decodeBody reads a JSON request body into v
func decodeBody(r *http.Request, v interface{}) *responses.Error {
	if r.Body == nil {
		return responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput, "empty request body")
	}
	bytes, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput, "failed to read incoming request: %s", err)
	}
	if len(bytes) > maxBodySize {
		return responses.NewErrorf(http.StatusRequestEntityTooLarge, responses.ErrorCodeInvalidInput, "request body exceeds %d bytes", maxBodySize)
	}
	if err := json.Unmarshal(bytes, v); err != nil {
		return responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput, "could not read incoming json: %s", err)
	}
	return nil
}

// storeError maps store failures to error replies
func storeError(err error) *responses.Error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return responses.NewErrorf(http.StatusNotFound, responses.ErrorCodeNotFound, "row not found")
	case errors.Is(err, store.ErrUnknownCollection):
		return responses.NewErrorf(http.StatusNotFound, responses.ErrorCodeUnknownCollection, "%s", err)
	case errors.Is(err, store.ErrInvalidValue):
		return responses.NewErrorf(http.StatusBadRequest, responses.ErrorCodeInvalidInput, "%s", err)
	default:
		return responses.NewErrorf(http.StatusInternalServerError, responses.ErrorCodeStore, "store failure: %s", err)
	}
}
