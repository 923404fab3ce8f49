/*
Package parley is an engine for branching conversations: linear lines of
dialog and multiple-choice prompts, authored as declarative documents and
walked one step at a time.

# Documents

Two kinds of documents are read from a ports.DocumentSource:

  - a pairs document maps text keys to displayed strings (localization);
  - a tree document lists dialog elements. Each element has a type
    (showdialog or choicedialog), an optional speaker (who), a body text
    key, and either a next reference or choice_i/choiceNode_i pairs.

Both may be written in XML or YAML:

	<dialogs>
	  <greet type="showdialog" who="Guard" next="ask">greet_text</greet>
	  <ask type="choicedialog" who="Guard"
	       choice_0="Yes" choiceNode_0="pass"
	       choice_1="No" choiceNode_1="leave">ask_text</ask>
	  <pass type="showdialog">pass_text</pass>
	  <leave type="showdialog">leave_text</leave>
	</dialogs>

Trees are built in two passes (allocate, then link), so forward references
are allowed and every unresolved reference is a load-time error.

# Traversal

The engine holds at most one active conversation. Start sets the cursor on
a tree root and pushes it to the Presenter; Advance moves along line nodes;
SelectOption answers a choice. Leaving a terminal line clears the
presenter and releases the Host.

	eng := parley.New(
		parley.WithSource(file.New("./dialogs")),
		parley.WithPresenter(presenter),
		parley.WithHost(host),
	)
	if err := eng.LoadAll(ctx, nil, nil); err != nil {
		log.Println(err) // other documents are still loaded
	}
	eng.Bind(input)
	_ = eng.Start("guard")
*/
package parley
