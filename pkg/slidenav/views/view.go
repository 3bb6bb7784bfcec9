// Package views resolves view references to live, render-capable views.
//
// A Module is the registry: views are defined up front with a factory and,
// optionally, a bundle that has to be fetched before the factory can run.
// A Loader makes sure a set of views is ready and hands them to a
// continuation once every one of them can be required.
package views

// View is a renderable unit of the application.
//
// Implementations are used as map keys by sliders, so they should be
// comparable (pointer receivers are the usual choice).
type View interface {
	Render(args ...any)
	Show()
	Hide()
	Rendered() bool
}

// Mountable is implemented by views that attach themselves to a container
// when first loaded.
type Mountable interface {
	Mount(container string)
}

// Registry resolves a view reference to a resident view.
// Require returns nil when the view is unknown or not loaded yet.
type Registry interface {
	Require(ref string) View
}
