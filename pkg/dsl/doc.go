/*
Package dsl provides a Go DSL for programmatically constructing parley tree documents.

It produces the same format-neutral domain.Document that the XML and YAML
parsers produce, so a tree written in Go goes through the exact same
two-pass build (and the same validation) as a tree loaded from a file.
This is particularly useful for unit tests and generated conversations.

Example usage:

	doc := dsl.New("guard").
		Line("greet", "greet_text").Who("Guard").Next("ask").
		Choice("ask", "ask_text").Who("Guard").
		Option("Yes", "pass").
		Option("No", "leave").
		Line("pass", "pass_text").
		Line("leave", "leave_text").
		Build()

	if _, err := engine.Compile(doc); err != nil {
		log.Fatal(err)
	}
*/
package dsl
