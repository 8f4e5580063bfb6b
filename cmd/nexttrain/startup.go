package main

import (
	"os"

	"github.com/travigo/nexttrain/pkg/controller"
	"github.com/travigo/nexttrain/pkg/selection"
	"github.com/travigo/nexttrain/pkg/selftest"
	"github.com/urfave/cli/v2"
)

const (
	startupPrompt = "Please enter 'test' to run tests, or any key to run the program: "
	testKeyword   = "test"
)

func startupAction(c *cli.Context) error {
	return dispatchStartup(
		selection.NewPrompter(os.Stdin, os.Stdout),
		func() error { return selftest.RunCLI(c) },
		func(prompter *selection.Prompter) error { return controller.RunCLI(c, prompter) },
	)
}

// dispatchStartup asks whether to run the checks or the trip flow. The answer
// is trimmed by ReadLine, so " test " and "test\r" both select the checks.
// Matching is case sensitive.
func dispatchStartup(prompter *selection.Prompter, runTests func() error, runFlow func(*selection.Prompter) error) error {
	answer, err := prompter.ReadLine(startupPrompt)
	if err != nil {
		return err
	}

	if answer == testKeyword {
		return runTests()
	}

	return runFlow(prompter)
}
