package tui

import (
	"os"
	"os/exec"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	editorDocTerms   = "terms"
	editorDocPrivacy = "privacy"
)

func editorName() string {
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return v
	}
	return "vi"
}

// splitCommand splits a shell-like command string into argv, honoring single
// quotes, double quotes, and backslash escapes outside single quotes.
func splitCommand(s string) []string {
	var out []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
	}

	for _, r := range s {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == '\\' && !inSingle:
			escaped = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case !inSingle && !inDouble && unicode.IsSpace(r):
			flush()
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}

// openEditor hands the active content document to $VISUAL/$EDITOR through a
// temp file. The video tab has no editable text.
func (m appModel) openEditor() (tea.Model, tea.Cmd) {
	if m.content.loading || m.content.err != nil {
		return m, nil
	}

	var doc, body string
	switch m.content.tab {
	case 0:
		doc, body = editorDocTerms, m.content.content.Terms
	case 1:
		doc, body = editorDocPrivacy, m.content.content.Privacy
	default:
		return m, nil
	}

	f, err := os.CreateTemp("", "jyadmin-"+doc+"-*.md")
	if err != nil {
		return m, m.showToast("Éditeur indisponible: "+err.Error(), true)
	}
	path := f.Name()
	if _, err := f.WriteString(body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return m, m.showToast("Éditeur indisponible: "+err.Error(), true)
	}
	_ = f.Close()

	m.editorDoc = doc
	m.editorPath = path

	args := splitCommand(editorName())
	if len(args) == 0 {
		args = []string{"vi"}
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorDoneMsg{doc: doc, err: err}
	})
}

// finishEditor reads the edited temp file back and saves it to the API.
func (m appModel) finishEditor(msg editorDoneMsg) (tea.Model, tea.Cmd) {
	path := m.editorPath
	m.editorPath = ""
	m.editorDoc = ""
	defer func() { _ = os.Remove(path) }()

	if path == "" {
		return m, nil
	}
	if msg.err != nil {
		return m, m.showToast("Éditeur: "+msg.err.Error(), true)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return m, m.showToast("Lecture impossible: "+err.Error(), true)
	}
	text := string(b)

	client := m.client
	switch msg.doc {
	case editorDocTerms:
		if strings.TrimSpace(text) == strings.TrimSpace(m.content.content.Terms) {
			return m, m.showToast("Aucune modification", false)
		}
		return m, func() tea.Msg {
			ctx, cancel := fetchCtx()
			defer cancel()
			err := client.SaveTerms(ctx, text)
			return actionDoneMsg{note: "Conditions enregistrées", refresh: viewContent, err: err}
		}
	case editorDocPrivacy:
		if strings.TrimSpace(text) == strings.TrimSpace(m.content.content.Privacy) {
			return m, m.showToast("Aucune modification", false)
		}
		return m, func() tea.Msg {
			ctx, cancel := fetchCtx()
			defer cancel()
			err := client.SavePrivacy(ctx, text)
			return actionDoneMsg{note: "Politique enregistrée", refresh: viewContent, err: err}
		}
	}
	return m, nil
}
