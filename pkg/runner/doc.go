/*
Package runner plays conversations in a terminal.

TextPresenter implements ports.Presenter by writing the speaker, the line
and numbered options to an io.Writer. Runner implements ports.InputSource
by reading lines: an empty line is the advance event, a number selects the
matching option and "quit" stops the loop.

	presenter := runner.NewTextPresenter(os.Stdout, runner.WithSlots(4))
	eng := parley.New(parley.WithSource(src), parley.WithPresenter(presenter))
	r := runner.New(os.Stdin, os.Stdout, presenter)
	eng.Bind(r)

	if err := eng.Start("guard"); err != nil {
		log.Fatal(err)
	}
	if err := r.Run(ctx, eng); err != nil && !errors.Is(err, runner.ErrQuit) {
		log.Fatal(err)
	}
*/
package runner
