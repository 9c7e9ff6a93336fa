package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetListenAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord names over HTTP",
	Long: `Serves chord names over HTTP.

  POST /name  {"notes": [60, 64, 67]} or {"pitches": ["C4", "E4", "G4"]}
  GET /health`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("serving", "addr", serveAddr)
		return http.ListenAndServe(serveAddr, NewRouter())
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/name", HandleName).Methods("POST")
	router.HandleFunc("/health", handleHealth).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("could not write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

var errEmptyBody = errors.New("request body is empty")

func requestPitches(body model.NameRequestBody) ([]note.Pitch, error) {
	var pitches []note.Pitch
	for _, key := range body.Notes {
		p, err := pitchFromKey(int(key))
		if err != nil {
			return nil, err
		}
		pitches = append(pitches, p)
	}
	named, err := parsePitches(body.Pitches)
	if err != nil {
		return nil, err
	}
	pitches = append(pitches, named...)
	note.SortByIndex(pitches)
	return pitches, nil
}

func HandleName(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.New().String()
	w.Header().Set("X-Request-Id", requestId)

	reqBody, err := io.ReadAll(io.LimitReader(r.Body, constants.MaxRequestBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(reqBody) == 0 {
		writeError(w, http.StatusBadRequest, errEmptyBody)
		return
	}

	var input model.NameRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	pitches, err := requestPitches(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	chords := chord.ResolveAll(pitches)
	slog.Debug("named chord", "request_id", requestId, "pitches", len(pitches), "chords", len(chords))
	writeJSON(w, http.StatusOK, model.NameResponse{
		RequestId: requestId,
		Pitches:   pitchNames(pitches),
		Chords:    chords,
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
