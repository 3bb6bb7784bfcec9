package navigator_test

import (
	"fmt"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/navigator"
)

// Example demonstrates event order for a short navigation session.
func Example() {
	nav := navigator.New("example")

	nav.OnTo(func(current, target string, info navigator.Info) {
		fmt.Printf("to: %s -> %s\n", current, target)
	})
	nav.OnBack(func(current, target string) {
		fmt.Printf("back: %s -> %s\n", current, target)
	})
	nav.OnView(func(target string, args []any, info navigator.Info) {
		fmt.Printf("view: %s %v cache=%t\n", target, args, info.Cache)
	})

	_ = nav.Start("GameList")
	_ = nav.To("GameDetail", "Portal")
	nav.Back(true)

	// Output:
	// view: GameList [] cache=false
	// to: GameList -> GameDetail
	// view: GameDetail [Portal] cache=false
	// back: GameDetail -> GameList
	// view: GameList [] cache=true
}

// Example_restore demonstrates the immediate event after a restart.
func Example_restore() {
	store := navigator.NewMemoryStore()

	first := navigator.New("app", navigator.WithStore(store))
	_ = first.Start("Home")
	_ = first.To("Settings")

	second := navigator.New("app", navigator.WithStore(store))
	second.OnImmediate(func(hash string, records map[string]navigator.ViewInfo) {
		fmt.Printf("immediate: current=%s records=%d\n", hash, len(records))
	})
	second.OnView(func(target string, args []any, info navigator.Info) {
		fmt.Printf("view: %s cache=%t\n", target, info.Cache)
	})
	_ = second.Start("Home")

	// Output:
	// immediate: current=Settings records=2
	// view: Settings cache=true
}
