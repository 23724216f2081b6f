package main

import (
	"time"
)

// TemporalAnalyzer drives the single-pass pipeline: ingest history entries,
// build the temporal index, filter by non-adjacent-day recurrence, plan
// proposals, name them, and estimate savings.
type TemporalAnalyzer struct {
	config    AnalyzerConfig
	rules     *RulesConfig
	cache     *CommandCache
	extractor *PatternExtractor
	index     *TemporalIndex
	namer     *NameGenerator

	totalEntries int
}

// AnalysisResult carries the ranked proposals plus the run statistics the
// report renderer displays
type AnalysisResult struct {
	Report *SavingsReport
	Index  *TemporalIndex

	TotalEntries     int
	AcceptedCommands int
	SkippedCommands  int
	SkipBreakdown    []SkipCount
	OracleLookups    int

	PatternsBeforeFilter int
	PatternsRemoved      int
	PatternsKept         int

	FirstDate time.Time
	LastDate  time.Time
}

// NewTemporalAnalyzer wires the pipeline components. oracle lookups are
// cached for the lifetime of the analyzer; rules may be nil for defaults.
func NewTemporalAnalyzer(config AnalyzerConfig, rules *RulesConfig, oracle CommandOracle) *TemporalAnalyzer {
	if rules == nil {
		rules = DefaultRulesConfig()
	}

	cache := NewCommandCache(oracle)

	var pasteFilter PasteFilter
	if config.PasteFilterEnabled {
		pasteFilter = NewPastePatternFilter(rules.PastePatterns)
	}

	return &TemporalAnalyzer{
		config:    config,
		rules:     rules,
		cache:     cache,
		extractor: NewPatternExtractor(cache, pasteFilter),
		index:     NewTemporalIndex(),
		namer:     NewNameGenerator(rules),
	}
}

// Ingest feeds history entries through the extractor into the temporal index
func (ta *TemporalAnalyzer) Ingest(entries []HistoryEntry) {
	for _, entry := range entries {
		ta.totalEntries++

		patterns, _, ok := ta.extractor.Extract(entry.Command)
		if !ok {
			continue
		}

		for _, pattern := range patterns {
			ta.index.Add(pattern, entry.Date)
		}
	}
}

// Analyze applies the temporal filter and runs the planners over the
// survivors. It must be called once, after all ingestion is complete.
func (ta *TemporalAnalyzer) Analyze() *AnalysisResult {
	result := &AnalysisResult{
		Index:            ta.index,
		TotalEntries:     ta.totalEntries,
		AcceptedCommands: ta.extractor.Accepted(),
		SkippedCommands:  ta.extractor.Skipped(),
		SkipBreakdown:    ta.extractor.SkipBreakdown(),
	}

	result.PatternsBeforeFilter = ta.index.Size()
	result.PatternsRemoved = ta.index.Filter(ta.config.MinNonAdjacentDays)
	result.PatternsKept = ta.index.Size()

	for date := range ta.index.AllDates() {
		if result.FirstDate.IsZero() || date.Before(result.FirstDate) {
			result.FirstDate = date
		}
		if result.LastDate.IsZero() || date.After(result.LastDate) {
			result.LastDate = date
		}
	}

	aliases := PlanAliases(ta.index, ta.config.MinPatternCount)
	functions := PlanFunctions(ta.index, ta.namer)
	envVars := PlanEnvVars(ta.index, ta.namer)

	allocator := NewNameAllocator(ta.cache, ta.rules.ReservedWords)
	result.Report = EstimateSavings(aliases, functions, envVars, ta.namer, allocator, ta.config)
	result.OracleLookups = ta.cache.Lookups()

	return result
}
