package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// HistoryEntry represents a parsed command from shell history. Date is the
// calendar date the command was executed on, or nil when the history format
// carries no timestamp for it.
type HistoryEntry struct {
	Command string
	Date    *time.Time
}

// HistoryParser handles parsing of different shell history formats
type HistoryParser struct {
	bashTimestampRegex *regexp.Regexp
	zshExtendedRegex   *regexp.Regexp
}

// NewHistoryParser creates a new parser instance
func NewHistoryParser() *HistoryParser {
	return &HistoryParser{
		// Bash HISTTIMEFORMAT writes timestamp lines as #<epoch>
		bashTimestampRegex: regexp.MustCompile(`^#(\d+)$`),
		// Zsh extended history format: : <timestamp>:<duration>;<command>
		zshExtendedRegex: regexp.MustCompile(`^:\s*(\d+):(\d+);(.*)$`),
	}
}

// ParseFile parses a shell history file based on its format
func (p *HistoryParser) ParseFile(filePath, format string, maxEntries int) ([]HistoryEntry, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	switch format {
	case "zsh":
		return p.parseZshHistory(file, maxEntries)
	case "bash":
		return p.parseBashHistory(file, maxEntries)
	default:
		return p.parseSimpleHistory(file, maxEntries)
	}
}

// parseBashHistory parses bash history where a line matching #<epoch> sets the
// date context for the command lines following it. A malformed timestamp line
// (non-numeric after #) does not change the date context and is passed through
// as a plain command line.
func (p *HistoryParser) parseBashHistory(file *os.File, maxEntries int) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	scanner := bufio.NewScanner(file)
	var currentDate *time.Time

	for scanner.Scan() && (maxEntries == 0 || len(entries) < maxEntries) {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if matches := p.bashTimestampRegex.FindStringSubmatch(line); matches != nil {
			if timestamp, err := strconv.ParseInt(matches[1], 10, 64); err == nil {
				date := dateOnly(time.Unix(timestamp, 0))
				currentDate = &date
				continue
			}
		}

		entries = append(entries, HistoryEntry{
			Command: line,
			Date:    currentDate,
		})
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("error reading bash history: %w", err)
	}

	return entries, nil
}

// parseZshHistory parses zsh history with extended format support
func (p *HistoryParser) parseZshHistory(file *os.File, maxEntries int) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	scanner := bufio.NewScanner(file)

	for scanner.Scan() && (maxEntries == 0 || len(entries) < maxEntries) {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if entry, ok := p.parseZshLine(line); ok {
			entries = append(entries, entry)
		}
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("error reading zsh history: %w", err)
	}

	return entries, nil
}

// parseZshLine parses a single line from zsh history
func (p *HistoryParser) parseZshLine(line string) (HistoryEntry, bool) {
	matches := p.zshExtendedRegex.FindStringSubmatch(line)
	if len(matches) == 4 {
		timestamp, err := strconv.ParseInt(matches[1], 10, 64)
		command := strings.TrimSpace(matches[3])

		if err == nil && command != "" {
			date := dateOnly(time.Unix(timestamp, 0))
			return HistoryEntry{Command: command, Date: &date}, true
		}
	}

	// Fall back to treating the line as a dateless command
	command := strings.TrimSpace(line)
	if command != "" {
		return HistoryEntry{Command: command}, true
	}

	return HistoryEntry{}, false
}

// parseSimpleHistory parses history files with one command per line and no
// timestamps
func (p *HistoryParser) parseSimpleHistory(file *os.File, maxEntries int) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	scanner := bufio.NewScanner(file)

	for scanner.Scan() && (maxEntries == 0 || len(entries) < maxEntries) {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entries = append(entries, HistoryEntry{Command: line})
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("error reading history: %w", err)
	}

	return entries, nil
}
