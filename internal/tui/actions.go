package tui

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plucky/plucky/internal/types"
)

func (m Model) openEditor() tea.Cmd {
	mt := m.getSelectedMatch()
	if mt == nil {
		return nil
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	// Extract just the editor name (handle paths like /usr/bin/vim)
	editorBase := editor
	if idx := strings.LastIndex(editor, "/"); idx != -1 {
		editorBase = editor[idx+1:]
	}

	var args []string
	switch editorBase {
	case "code", "code-insiders":
		args = []string{"-g", fmt.Sprintf("%s:%d", mt.Path, mt.Line)}
	case "subl", "sublime", "sublime_text":
		args = []string{fmt.Sprintf("%s:%d", mt.Path, mt.Line)}
	case "emacs", "emacsclient":
		args = []string{fmt.Sprintf("+%d", mt.Line), mt.Path}
	case "nano":
		args = []string{fmt.Sprintf("+%d", mt.Line), mt.Path}
	default:
		args = []string{fmt.Sprintf("+%d", mt.Line), mt.Path}
	}

	c := exec.Command(editor, args...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		if err != nil {
			return statusMsg(fmt.Sprintf("Error opening editor: %v", err))
		}
		return statusMsg("Editor closed")
	})
}

// copyTextToClipboard copies the current match's text to the clipboard.
func (m Model) copyTextToClipboard() tea.Cmd {
	mt := m.getSelectedMatch()
	if mt == nil {
		return func() tea.Msg { return statusMsg("No match selected") }
	}

	if err := clipboard.WriteAll(mt.Text); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}

	return func() tea.Msg { return statusMsg(fmt.Sprintf("Copied: %s", firstLine(mt.Text))) }
}

// copyMatchToClipboard copies full match details to the clipboard.
func (m Model) copyMatchToClipboard() tea.Cmd {
	mt := m.getSelectedMatch()
	if mt == nil {
		return func() tea.Msg { return statusMsg("No match selected") }
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Path: %s\n", mt.Path))
	sb.WriteString(fmt.Sprintf("Line: %d\n", mt.Line))
	sb.WriteString(fmt.Sprintf("Category: %s\n", mt.Category))
	sb.WriteString(fmt.Sprintf("Offset: %d-%d\n", mt.Start, mt.End))
	sb.WriteString(fmt.Sprintf("Text: %s\n", mt.Text))

	if err := clipboard.WriteAll(sb.String()); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}

	return func() tea.Msg { return statusMsg("Copied match details to clipboard") }
}

// exportMatches writes the current view to a timestamped file.
func (m *Model) exportMatches(format string) tea.Cmd {
	display := m.getDisplayMatches()
	if len(display) == 0 {
		return func() tea.Msg { return statusMsg("No matches to export") }
	}

	timestamp := time.Now().Format("20060102-150405")
	var filename string
	var data []byte
	var err error

	switch format {
	case "json":
		filename = fmt.Sprintf("plucky-export-%s.json", timestamp)
		data, err = json.MarshalIndent(display, "", "  ")
	case "csv":
		filename = fmt.Sprintf("plucky-export-%s.csv", timestamp)
		data, err = matchesToCSV(display)
	default:
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Unknown format: %s", format)) }
	}

	if err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Export error: %v", err)) }
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Write error: %v", err)) }
	}

	absPath, _ := filepath.Abs(filename)
	return func() tea.Msg {
		return statusMsg(fmt.Sprintf("Exported %d matches to %s", len(display), absPath))
	}
}

func matchesToCSV(matches []types.Match) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write([]string{"Category", "Path", "Line", "Start", "End", "Text"}); err != nil {
		return nil, err
	}

	for _, mt := range matches {
		row := []string{
			mt.Category,
			mt.Path,
			fmt.Sprintf("%d", mt.Line),
			fmt.Sprintf("%d", mt.Start),
			fmt.Sprintf("%d", mt.End),
			mt.Text,
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return []byte(sb.String()), writer.Error()
}
