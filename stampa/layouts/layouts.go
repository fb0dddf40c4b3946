// Package layouts provides access to the page layouts of the currently
// open project. The tools never create or change a layout; they read its
// name and hand it to an exporter.
package layouts

// Layout is a handle to one page layout in the project.
type Layout struct {
	// Name of the layout as shown in the host application
	Name string
}

// Provider enumerates the layouts of a project. If the layout requested
// does not exist the LayoutFor method should return a zero layout and
// ErrNotFound.
type Provider interface {
	// Layouts returns all layouts of the project in document order.
	Layouts() ([]Layout, error)
	// LayoutFor returns the layout with the given name.
	LayoutFor(name string) (Layout, error)
}

// Names is a helper that returns just the layout names, in order.
func Names(p Provider) ([]string, error) {
	if p == nil {
		return nil, ErrNoProvidersRegistered
	}
	lyts, err := p.Layouts()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(lyts))
	for i, l := range lyts {
		names[i] = l.Name
	}
	return names, nil
}
