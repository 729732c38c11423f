package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"suiterun/internal/domain"
	"suiterun/internal/storage"
)

// Viewer displays run failures interactively
type Viewer interface {
	View(summary *domain.RunSummary) error
}

// ErrorViewer displays test failures in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
	logger  logrus.FieldLogger
	out     io.Writer
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage, logger logrus.FieldLogger, out io.Writer) *ErrorViewer {
	return &ErrorViewer{
		storage: st,
		logger:  logger,
		out:     out,
	}
}

// View displays test failures in an interactive TUI. Toggling a failure
// resolved is persisted immediately.
func (ev *ErrorViewer) View(summary *domain.RunSummary) error {
	if len(summary.Details) == 0 {
		color.New(color.FgGreen).Fprintln(ev.out, "✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	// Create list for failed tests (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range summary.Details {
		list.AddItem(listItemText(summary.Details[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Details ")

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] toggle resolved, → details, ← back, q quit ",
			len(summary.Details), countUnresolved(summary.Details)))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(summary.Details) {
			detailsView.SetText(formatFailureDetails(summary.Details[index])).ScrollToBeginning()
		}
	}

	toggleResolved := func(index int) {
		if index < 0 || index >= len(summary.Details) {
			return
		}
		summary.Details[index].Resolved = !summary.Details[index].Resolved
		list.SetItemText(index, listItemText(summary.Details[index], index), "")
		updateHeader()
		updateDetails()
		if err := ev.storage.Save(summary); err != nil && ev.logger != nil {
			ev.logger.WithError(err).Warn("failed to persist resolved status")
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'r', 'R':
				toggleResolved(list.GetCurrentItem())
				return nil
			case 'q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	// list on left (1/3), details on right (2/3)
	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func countUnresolved(failures []domain.TestFailure) int {
	count := 0
	for _, f := range failures {
		if !f.Resolved {
			count++
		}
	}
	return count
}

// listItemText formats a list entry using tview color tags
func listItemText(failure domain.TestFailure, index int) string {
	name := tview.Escape(failure.Path().String())
	if failure.Iteration > 0 {
		name = fmt.Sprintf("%s #%d", name, failure.Iteration)
	}
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
}

// formatFailureDetails formats a test failure for display using tview color tags
func formatFailureDetails(failure domain.TestFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", tview.Escape(failure.Path().String()))
	fmt.Fprintf(&b, "[cyan]Suite:[white] %s\n", tview.Escape(failure.Suite))
	fmt.Fprintf(&b, "[cyan]Case:[white]  %s\n", tview.Escape(failure.Case))
	if failure.Iteration > 0 {
		fmt.Fprintf(&b, "[cyan]Iteration:[white] %d\n", failure.Iteration)
	}
	if failure.File != "" && failure.Line > 0 {
		fmt.Fprintf(&b, "[yellow]Location: %s:%d[white]\n", tview.Escape(failure.File), failure.Line)
	}
	fmt.Fprintf(&b, "[cyan]Failed assertions:[white] %d\n\n", failure.Failures)

	if failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
	}
	if failure.Resolved {
		b.WriteString("\n[gray](marked resolved)[white]\n")
	}

	return b.String()
}
