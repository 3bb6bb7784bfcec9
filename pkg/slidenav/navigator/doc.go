// Package navigator provides hash-based navigation history with lifecycle events.
//
// A Navigator tracks the views a user has visited under a namespace id. Every
// visited view is stored as a ViewInfo record (view reference, render
// arguments and a timestamp) keyed by its hash, and the browsing history is a
// list of hashes with a cursor, the way a browser keeps its back/forward list.
//
// State lives in a Store, so several navigators can coexist in one process
// and a navigator can pick up where a previous run left off.
//
// # Events
//
// Handlers are registered per event and run on the goroutine that caused the
// navigation, in registration order:
//
//   - view: any navigation landed on a target (To, Back, Forward, Start)
//   - immediate: Start restored persisted records (fires before view)
//   - to: To moved from a current view to a new target (fires before view)
//   - forward / back: Forward(true) / Back(true) moved through history
//
// # Basic Usage
//
//	nav := navigator.New("main", navigator.WithStore(navigator.NewFileStore(dir)))
//
//	nav.OnView(func(target string, args []any, info navigator.Info) {
//	    fmt.Println("showing", target, args, info.Cache)
//	})
//
//	if err := nav.Start("Home"); err != nil {
//	    return err
//	}
//
//	_ = nav.To("Detail", 42)
//	nav.Back(true)
//
// # Silent Back
//
// Back(false) and Forward(false) move the history cursor and persist it
// without emitting events. This is what a swipe-back gesture uses: the visual
// transition already happened, only the history has to follow.
package navigator
