package parley_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/pkg/adapters/memory"
	"github.com/aretw0/parley/pkg/dsl"
)

// ExampleNew_memory loads XML documents from an in-memory source and walks
// the conversation headless, reading the active node after each step.
func ExampleNew_memory() {
	source := memory.NewSource(
		map[string]string{
			"en": `<pairs><greet>Halt! Who goes there?</greet><ask>State your business.</ask><bye>Move along.</bye></pairs>`,
		},
		map[string]string{
			"guard": `<dialogs>
				<greet type="showdialog" who="Guard" next="ask">greet</greet>
				<ask type="choicedialog" who="Guard" choice_0="Trade" choiceNode_0="bye">ask</ask>
				<bye type="showdialog" who="Guard">bye</bye>
			</dialogs>`,
		},
	)

	eng := parley.New(parley.WithSource(source))
	if err := eng.LoadAll(context.Background(), nil, nil); err != nil {
		log.Fatal(err)
	}

	if err := eng.Start("guard"); err != nil {
		log.Fatal(err)
	}
	fmt.Println(eng.Current().Text)

	_ = eng.Advance()
	fmt.Println(eng.Current().Text)

	_ = eng.SelectOption(0)
	fmt.Println(eng.Current().Text)

	_ = eng.Advance()
	fmt.Println(eng.Active())

	// Output:
	// Halt! Who goes there?
	// State your business.
	// Move along.
	// false
}

// ExampleEngine_Compile builds a tree in Go and prints its diagnostic rendering.
func ExampleEngine_Compile() {
	doc := dsl.New("shop").
		Line("hello", "Welcome!").Who("Clerk").Next("more").
		Line("more", "We have potions.").Who("Clerk").Next("buy").
		Choice("buy", "Buy one?").
		Option("Yes", "thanks").
		Option("No", "thanks").
		Line("thanks", "Come again.").
		Build()

	eng := parley.New()
	if _, err := eng.Compile(doc); err != nil {
		log.Fatal(err)
	}

	out, _ := eng.RenderTree("shop")
	fmt.Print(out)

	// Output:
	// [hello] Clerk: Welcome!
	// [more] Clerk: We have potions.
	// [buy] Buy one? {Yes | No}
}
