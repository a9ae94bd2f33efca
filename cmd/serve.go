package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Akira98000/mp3midi/constants"
	"github.com/Akira98000/mp3midi/model"
	"github.com/Akira98000/mp3midi/timeline"
	"github.com/Akira98000/mp3midi/util"
)

// Sequences are immutable once normalized; the lock only guards the map.
var (
	sequencesMu sync.RWMutex
	sequences   = make(map[string]timeline.Sequence)
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the timeline query API",
	Long:  `Serves the timeline query API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func lookupSequence(id string) (timeline.Sequence, bool) {
	sequencesMu.RLock()
	defer sequencesMu.RUnlock()
	seq, ok := sequences[id]
	return seq, ok
}

func HandleCreateSequence(w http.ResponseWriter, r *http.Request) {
	var input model.CreateSequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}

	seq, err := timeline.Normalize(input.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := uuid.New().String()
	sequencesMu.Lock()
	sequences[id] = seq
	sequencesMu.Unlock()

	writeJSON(w, http.StatusOK, model.SequenceResponse{Id: id, Notes: seq})
}

func HandleListSequences(w http.ResponseWriter, r *http.Request) {
	sequencesMu.RLock()
	ids := util.GetKeysSorted(sequences)
	sequencesMu.RUnlock()

	writeJSON(w, http.StatusOK, model.SequenceListResponse{Ids: ids})
}

func HandleGetSequence(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	seq, ok := lookupSequence(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no sequence with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, model.SequenceResponse{Id: id, Notes: seq})
}

func HandleActive(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	seq, ok := lookupSequence(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no sequence with id "+id)
		return
	}

	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "query parameter t must be a number")
		return
	}

	writeJSON(w, http.StatusOK, model.ActiveResponse{Time: t, Notes: seq.ActiveAt(t)})
}

func HandleRoll(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	seq, ok := lookupSequence(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no sequence with id "+id)
		return
	}

	step := constants.DefaultRollStep
	if raw := r.URL.Query().Get("step"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "query parameter step must be a number")
			return
		}
		step = parsed
	}

	sampler, err := timeline.NewSampler(seq, step)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	frames := make([]model.RollFrame, 0)
	for {
		frame, ok := sampler.Next()
		if !ok {
			break
		}
		frames = append(frames, model.RollFrame{Time: frame.Time, Notes: frame.Active})
	}
	writeJSON(w, http.StatusOK, model.RollResponse{Step: step, Frames: frames})
}

// NewRouter builds the HTTP routes for the query API.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/sequences", HandleCreateSequence).Methods("POST")
	router.HandleFunc("/sequences", HandleListSequences).Methods("GET")
	router.HandleFunc("/sequences/{id}", HandleGetSequence).Methods("GET")
	router.HandleFunc("/sequences/{id}/active", HandleActive).Methods("GET")
	router.HandleFunc("/sequences/{id}/roll", HandleRoll).Methods("GET")
	return router
}

func serve() {
	port := constants.GetServePort()
	handler := cors.Default().Handler(NewRouter())
	logrus.Infof("Listening on :%v", port)
	logrus.Fatal(http.ListenAndServe(":"+port, handler))
}
