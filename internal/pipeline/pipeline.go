// Package pipeline orchestrates the analysis stages. Pluggable analyzers run
// through a resilient executor that replaces failures and invalid results
// with typed defaults, so every field of the final result is always
// populated. Only extraction-level hard failures surface to the caller.
package pipeline

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"call-insights-go/internal/analyzers"
	"call-insights-go/internal/attribution"
	"call-insights-go/internal/extractor"
	"call-insights-go/internal/logger"
	"call-insights-go/internal/scorer"
	"call-insights-go/internal/summary"
	"call-insights-go/internal/transcription"
	"call-insights-go/internal/types"
)

// AnalysisFailedError is the single top-level failure: the whole analysis
// could not run. Partial stage failures never produce it.
type AnalysisFailedError struct {
	Cause error
}

func (e *AnalysisFailedError) Error() string {
	return fmt.Sprintf("analysis failed: %v", e.Cause)
}

func (e *AnalysisFailedError) Unwrap() error { return e.Cause }

// Stages holds the pluggable analyzer functions. Tests swap individual
// entries to exercise the executor's failure isolation.
type Stages struct {
	Sentiment          func(string, []types.TranscriptSegment) (types.SentimentResult, error)
	Intent             func(string) (types.IntentResult, error)
	BusinessConversion func(string, types.IntentResult, types.SentimentResult) (types.BusinessConversionResult, error)
	CallMetrics        func(string, []types.TranscriptSegment, types.ProviderMeta) (types.CallMetricsResult, error)
	VocalAnalytics     func(string) (types.VocalAnalyticsResult, error)
	PreciseScoring     func(types.CategoryScores, float64, types.BusinessConversionResult) (types.PreciseScoringResult, error)
	Disposition        func(string, types.IntentResult, types.BusinessConversionResult) (types.DispositionResult, error)
}

func defaultStages() Stages {
	return Stages{
		Sentiment:          analyzers.Sentiment,
		Intent:             analyzers.Intent,
		BusinessConversion: analyzers.BusinessConversion,
		CallMetrics:        analyzers.CallMetrics,
		VocalAnalytics:     analyzers.VocalAnalytics,
		PreciseScoring:     analyzers.PreciseScoring,
		Disposition:        analyzers.Disposition,
	}
}

type Orchestrator struct {
	extractor *extractor.Service
	stages    Stages
	log       *logrus.Entry
}

func New(ext *extractor.Service) *Orchestrator {
	return &Orchestrator{
		extractor: ext,
		stages:    defaultStages(),
		log:       logger.New().WithField("component", "pipeline"),
	}
}

// NewWithStages builds an orchestrator with custom analyzer stages.
func NewWithStages(ext *extractor.Service, st Stages) *Orchestrator {
	o := New(ext)
	def := defaultStages()
	if st.Sentiment == nil {
		st.Sentiment = def.Sentiment
	}
	if st.Intent == nil {
		st.Intent = def.Intent
	}
	if st.BusinessConversion == nil {
		st.BusinessConversion = def.BusinessConversion
	}
	if st.CallMetrics == nil {
		st.CallMetrics = def.CallMetrics
	}
	if st.VocalAnalytics == nil {
		st.VocalAnalytics = def.VocalAnalytics
	}
	if st.PreciseScoring == nil {
		st.PreciseScoring = def.PreciseScoring
	}
	if st.Disposition == nil {
		st.Disposition = def.Disposition
	}
	o.stages = st
	return o
}

// Analyze runs the full pipeline on one transcript. Dependency order is
// fixed: the heuristic score first; sentiment, intent, metrics and vocal
// analytics next; business conversion after sentiment and intent; precise
// scoring after the score and conversion; disposition after intent and
// conversion; facts and attribution are independent; the narrative summary
// consumes everything last.
func (o *Orchestrator) Analyze(req types.AnalysisRequest) (types.AnalysisResult, error) {
	start := time.Now()

	transcript := req.Transcript
	if strings.TrimSpace(transcript) == "" {
		return types.AnalysisResult{}, &AnalysisFailedError{Cause: fmt.Errorf("empty transcript")}
	}

	meta := transcription.ParseProviderMeta(req.ProviderResult)

	score := scorer.Score(transcript)
	segments := attribution.Attribute(transcript)

	sentiment := runStage(o.log, "sentiment", types.DefaultSentiment(),
		func(r types.SentimentResult) bool { return r.Overall != "" },
		func() (types.SentimentResult, error) { return o.stages.Sentiment(transcript, segments) })

	intent := runStage(o.log, "intent", types.DefaultIntent(),
		func(r types.IntentResult) bool { return r.Primary != "" },
		func() (types.IntentResult, error) { return o.stages.Intent(transcript) })

	metrics := runStage(o.log, "call_metrics", types.DefaultCallMetrics(),
		func(r types.CallMetricsResult) bool { return r.TotalWords >= 0 },
		func() (types.CallMetricsResult, error) { return o.stages.CallMetrics(transcript, segments, meta) })

	vocal := runStage(o.log, "vocal_analytics", types.DefaultVocalAnalytics(),
		func(r types.VocalAnalyticsResult) bool { return r.EnergyLevel != "" },
		func() (types.VocalAnalyticsResult, error) { return o.stages.VocalAnalytics(transcript) })

	conversion := runStage(o.log, "business_conversion", types.DefaultBusinessConversion(),
		func(r types.BusinessConversionResult) bool { return r.Outcome != "" },
		func() (types.BusinessConversionResult, error) {
			return o.stages.BusinessConversion(transcript, intent, sentiment)
		})

	precise := runStage(o.log, "precise_scoring", types.DefaultPreciseScoring(),
		func(r types.PreciseScoringResult) bool { return r.Dimensions != nil },
		func() (types.PreciseScoringResult, error) {
			return o.stages.PreciseScoring(score.Categories, score.OverallScore, conversion)
		})

	disposition := runStage(o.log, "disposition", types.DefaultDisposition(),
		func(r types.DispositionResult) bool { return r.Disposition != "" },
		func() (types.DispositionResult, error) {
			return o.stages.Disposition(transcript, intent, conversion)
		})

	extraction := o.extractor.ExtractFacts(transcript)

	narrative := summary.Summarize(transcript, segments, sentiment, intent, disposition)

	res := types.AnalysisResult{
		OverallRating:      score.Rating,
		OverallScore:       score.OverallScore,
		CategoryScores:     score.Categories,
		Sentiment:          sentiment,
		Intent:             intent,
		BusinessConversion: conversion,
		CallMetrics:        metrics,
		VocalAnalytics:     vocal,
		PreciseScoring:     precise,
		Disposition:        disposition,
		Extraction:         extraction,
		Segments:           segments,
		Summary:            narrative,
		QualityMetrics:     rollupQuality(score, sentiment, precise, disposition),
		DurationMs:         time.Since(start).Milliseconds(),
	}
	return res, nil
}

// runStage is the resilient stage executor: a stage that returns an error,
// panics, or yields an invalid result is replaced by its typed default and
// never aborts the rest of the pipeline.
func runStage[T any](log *logrus.Entry, name string, fallback T, valid func(T) bool, fn func() (T, error)) (out T) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{"stage": name, "panic": fmt.Sprintf("%v", r)}).
				Warn("stage panicked, substituting default")
			out = fallback
		}
	}()

	res, err := fn()
	if err != nil {
		log.WithField("stage", name).WithError(err).Warn("stage failed, substituting default")
		return fallback
	}
	if valid != nil && !valid(res) {
		log.WithField("stage", name).Warn("stage returned invalid result, substituting default")
		return fallback
	}
	return res
}

var dispositionResolution = map[string]float64{
	"sale":             95,
	"service_resolved": 90,
	"callback":         60,
	"no_decision":      50,
	"not_interested":   35,
	"escalated":        25,
}

func rollupQuality(score scorer.Result, sentiment types.SentimentResult, precise types.PreciseScoringResult, disp types.DispositionResult) types.QualityMetrics {
	satisfaction := (sentiment.Score + 1) / 2 * 100
	resolution, ok := dispositionResolution[disp.Disposition]
	if !ok {
		resolution = 50
	}
	return types.QualityMetrics{
		CustomerSatisfactionPct: round1(satisfaction),
		AgentEffectivenessPct:   round1((score.OverallScore*10 + precise.Overall) / 2),
		ResolutionSuccessScore:  resolution,
	}
}

func round1(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return math.Round(v*10) / 10
}
