package main

import (
	"os"
	"path/filepath"
	"strings"
)

// HistoryFile represents a detected shell history file
type HistoryFile struct {
	Path     string
	Shell    string
	Format   string
	Size     int64
	Readable bool
}

// HistoryDetector locates shell history files in the user's home directory
type HistoryDetector struct {
	homeDir string
}

// NewHistoryDetector creates a new detector instance
func NewHistoryDetector() (*HistoryDetector, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &HistoryDetector{homeDir: homeDir}, nil
}

// DetectHistoryFiles scans for shell history files in the user's home directory
func (d *HistoryDetector) DetectHistoryFiles() ([]HistoryFile, error) {
	var historyFiles []HistoryFile

	candidates := []struct {
		filename string
		shell    string
		format   string
	}{
		{".bash_history", "bash", "bash"},
		{".zsh_history", "zsh", "zsh"},
		{".history", "unknown", "simple"},
		{".sh_history", "sh", "simple"},
	}

	for _, candidate := range candidates {
		filePath := filepath.Join(d.homeDir, candidate.filename)
		if info, err := os.Stat(filePath); err == nil {
			historyFiles = append(historyFiles, HistoryFile{
				Path:     filePath,
				Shell:    candidate.shell,
				Format:   candidate.format,
				Size:     info.Size(),
				Readable: d.isFileReadable(filePath),
			})
		}
	}

	// Shell rc files may point HISTFILE somewhere else entirely
	historyFiles = append(historyFiles, d.detectCustomHistFiles()...)

	return historyFiles, nil
}

// DescribeFile builds a HistoryFile for an explicitly given path
func (d *HistoryDetector) DescribeFile(path string) (HistoryFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return HistoryFile{}, err
	}

	shell := "unknown"
	if strings.Contains(path, "bash") {
		shell = "bash"
	} else if strings.Contains(path, "zsh") {
		shell = "zsh"
	}

	return HistoryFile{
		Path:     path,
		Shell:    shell,
		Format:   d.DetectFormat(path),
		Size:     info.Size(),
		Readable: d.isFileReadable(path),
	}, nil
}

// isFileReadable checks if a file can be read by the current user
func (d *HistoryDetector) isFileReadable(filePath string) bool {
	file, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer file.Close()

	buffer := make([]byte, 64)
	_, err = file.Read(buffer)
	return err == nil
}

// detectCustomHistFiles looks for custom HISTFILE settings in shell configs
func (d *HistoryDetector) detectCustomHistFiles() []HistoryFile {
	var customFiles []HistoryFile

	configFiles := []string{
		".bashrc",
		".bash_profile",
		".zshrc",
		".profile",
	}

	for _, configFile := range configFiles {
		configPath := filepath.Join(d.homeDir, configFile)
		histFile := d.extractHistFileFromConfig(configPath)
		if histFile == "" {
			continue
		}

		if !filepath.IsAbs(histFile) {
			histFile = filepath.Join(d.homeDir, histFile)
		}

		if info, err := os.Stat(histFile); err == nil {
			customFiles = append(customFiles, HistoryFile{
				Path:     histFile,
				Shell:    d.detectShellFromConfig(configFile),
				Format:   d.DetectFormat(histFile),
				Size:     info.Size(),
				Readable: d.isFileReadable(histFile),
			})
		}
	}

	return customFiles
}

// extractHistFileFromConfig parses a shell config for HISTFILE settings
func (d *HistoryDetector) extractHistFileFromConfig(configPath string) string {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return ""
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "export ")

		if !strings.HasPrefix(line, "HISTFILE=") {
			continue
		}

		histFile := strings.TrimPrefix(line, "HISTFILE=")
		histFile = strings.Trim(histFile, "\"'")
		histFile = strings.Replace(histFile, "$HOME", d.homeDir, -1)
		histFile = strings.Replace(histFile, "~", d.homeDir, -1)
		return histFile
	}

	return ""
}

// DetectFormat determines the format of a history file from its name or content
func (d *HistoryDetector) DetectFormat(filePath string) string {
	if strings.Contains(filePath, "zsh") {
		return "zsh"
	}
	if strings.Contains(filePath, "bash") {
		return "bash"
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "simple"
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil {
		return "simple"
	}

	// Zsh extended history lines start with ": <timestamp>:<duration>;"
	for _, line := range strings.Split(string(buffer[:n]), "\n") {
		if strings.HasPrefix(line, ":") && strings.Contains(line, ";") {
			parts := strings.SplitN(line, ";", 2)
			if len(parts) == 2 && strings.Contains(parts[0], ":") {
				return "zsh"
			}
		}
	}

	return "bash"
}

// detectShellFromConfig determines shell type from a config filename
func (d *HistoryDetector) detectShellFromConfig(configFile string) string {
	if strings.Contains(configFile, "bash") {
		return "bash"
	}
	if strings.Contains(configFile, "zsh") {
		return "zsh"
	}
	return "unknown"
}
