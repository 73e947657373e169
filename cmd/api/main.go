package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"call-insights-go/internal/dataset"
	"call-insights-go/internal/extractor"
	"call-insights-go/internal/logger"
	"call-insights-go/internal/pipeline"
	"call-insights-go/internal/transcription"
	"call-insights-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "call-insights-go").Info("starting service")

	orch := pipeline.New(extractor.New())

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// analyze a supplied transcript
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "analyze")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req types.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			reqLog.WithError(err).Warn("bad request body")
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		res, err := orch.Analyze(req)
		if err != nil {
			reqLog.WithError(err).Warn("analysis failed")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		reqLog.WithField("duration_ms", res.DurationMs).Info("analysis finished")
		writeJSON(w, res, reqLog)
	})

	// fetch transcript from the provider, then analyze
	mux.HandleFunc("/process", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "process")

		audioURL := r.URL.Query().Get("audio_url")
		if audioURL == "" {
			reqLog.Warn("missing audio_url")
			http.Error(w, "missing audio_url", http.StatusBadRequest)
			return
		}
		reqLog = reqLog.WithField("audio_url", audioURL)

		transcript, err := transcription.GetTranscript(audioURL)
		if err != nil {
			reqLog.WithError(err).Error("transcription failed")
			http.Error(w, "transcription failed", http.StatusBadGateway)
			return
		}

		res, err := orch.Analyze(types.AnalysisRequest{Transcript: transcript})
		if err != nil {
			reqLog.WithError(err).Warn("analysis failed")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, res, reqLog)
	})

	// demo endpoint: analyze the first N calls from the dataset and write a report
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "demo")

		dataPath := envOr("DATASET_PATH", "calls.xlsx")
		rows, err := dataset.Load(dataPath)
		if err != nil {
			reqLog.WithError(err).Error("dataset load error")
			http.Error(w, "dataset load error", http.StatusInternalServerError)
			return
		}

		limit := 5
		if len(rows) < limit {
			limit = len(rows)
		}
		analyzed := make([]dataset.AnalyzedCall, 0, limit)
		for _, row := range rows[:limit] {
			reqLog.WithField("call_id", row.CallID).Info("processing demo call")
			res, err := orch.Analyze(types.AnalysisRequest{Transcript: row.Transcript})
			if err != nil {
				reqLog.WithField("call_id", row.CallID).WithError(err).Warn("demo call failed")
				continue
			}
			analyzed = append(analyzed, dataset.AnalyzedCall{CallID: row.CallID, Result: res})
		}

		reportPath := envOr("REPORT_PATH", "call_insights_report.xlsx")
		if err := dataset.WriteReport(reportPath, analyzed); err != nil {
			reqLog.WithError(err).Error("report write failed")
		} else {
			reqLog.WithField("report_path", reportPath).Info("report written")
		}
		writeJSON(w, analyzed, reqLog)
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func writeJSON(w http.ResponseWriter, v interface{}, log *logrus.Entry) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
