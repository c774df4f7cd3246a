package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mkalish/quaver/engrave"
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/quantize"
	"github.com/mkalish/quaver/theory"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engraving endpoint",
	Long:  `Serves the engraving endpoint`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleEngrave(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.EngraveRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}

	if input.MeasureDuration <= 0 {
		input.MeasureDuration = 4
	}
	if input.Tempo <= 0 {
		input.Tempo = 120
	}
	if input.MeasureWidth <= 0 {
		input.MeasureWidth = 300
	}
	for i := range input.Notes {
		if input.Notes[i].ID == "" {
			input.Notes[i].ID = uuid.New().String()
		}
	}

	clef := theory.ClefFromString(input.Clef)
	q := quantize.New(
		quantize.WithClef(clef),
		quantize.WithRestFill(input.FillRests),
	)
	measures := q.Quantize(
		input.Notes,
		model.TimeSignature{MeasureDuration: input.MeasureDuration},
		input.Tempo,
		theory.FromSharps(input.KeySharps),
	)

	e := engrave.New()
	res := model.EngraveResponse{Measures: make([]model.MeasureLayout, 0, len(measures))}
	for _, m := range measures {
		res.Measures = append(res.Measures, e.LayoutMeasure(m, clef, input.MeasureWidth))
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/engrave", HandleEngrave).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
