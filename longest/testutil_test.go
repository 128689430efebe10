package longest_test

import "github.com/katalvlaran/longpath/core"

// longestTestSquare builds the 4-cycle a-b-c-d-a with unit weights.
func longestTestSquare() (*core.Graph, error) {
	return core.Build(nil, []core.Edge{
		{U: "a", V: "b", W: 1},
		{U: "b", V: "c", W: 1},
		{U: "c", V: "d", W: 1},
		{U: "d", V: "a", W: 1},
	})
}
