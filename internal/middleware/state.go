package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vaultpass/passgen-go/internal/model"
)

// StateHeader carries the signed screen state between calls.
const StateHeader = "X-Screen-State"

type contextKey string

const stateKey contextKey = "screenState"

// StateVerifier validates a state token.
type StateVerifier interface {
	Verify(token string) (model.ScreenState, error)
}

// ScreenState returns middleware that restores the screen state from the
// X-Screen-State header. A missing header opens a fresh screen with defaults.
func ScreenState(verifier StateVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := model.ScreenState{Classes: model.DefaultClasses()}

			if token := strings.TrimSpace(r.Header.Get(StateHeader)); token != "" {
				restored, err := verifier.Verify(token)
				if err != nil {
					writeJSONError(w, http.StatusUnauthorized, "invalid or expired screen state")
					return
				}
				state = restored
			}

			ctx := context.WithValue(r.Context(), stateKey, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StateFromContext extracts the restored screen state from the request context.
func StateFromContext(ctx context.Context) (model.ScreenState, bool) {
	state, ok := ctx.Value(stateKey).(model.ScreenState)
	return state, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}
