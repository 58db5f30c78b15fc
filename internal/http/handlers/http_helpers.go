package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// requestCacheKey canonicalizes a request into a cache key. url.Values.Encode
// sorts parameters, so equivalent queries share an entry.
func requestCacheKey(r *http.Request) string {
	return "orderanalytics:" + r.URL.Path + "?" + r.URL.Query().Encode()
}

// fromCache loads a cached result into dest when the cache is wired.
func fromCache(r *http.Request, dest any) bool {
	if resultCache == nil {
		return false
	}
	return resultCache.GetResult(requestCacheKey(r), dest)
}

func toCache(r *http.Request, value any) {
	if resultCache != nil {
		resultCache.SetResult(requestCacheKey(r), value)
	}
}
