package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"adacase/internal/driver"
	"adacase/internal/source"
	"adacase/internal/ui"
)

type normalizeOutcome struct {
	fileSet *source.FileSet
	results []driver.NormalizeResult
	err     error
}

func runNormalizeWithUI(ctx context.Context, title, dir string, opts driver.DirOptions) (*source.FileSet, []driver.NormalizeResult, error) {
	files, err := driver.ListSourceFiles(dir, opts.Recursive, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan normalizeOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.NormalizeDir(ctx, dir, optsCopy)
		outcomeCh <- normalizeOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
