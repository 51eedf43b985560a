package assets

// AssetLoader loads stylesheets and HTML templates by name.
type AssetLoader interface {
	// LoadStyle returns ErrStyleNotFound when no style has that name.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns ErrTemplateNotFound when no template has that name.
	LoadTemplate(name string) (string, error)
}
