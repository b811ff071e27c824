package config

const (
	defaultRoot             = "./csswg-drafts"
	defaultRedirectOutput   = "./output"
	defaultRedirectBase     = "https://w3c.github.io/csswg-drafts"
	defaultIndexTitle       = "CSS Working Group Draft Specifications"
	defaultStructuredMarker = "Overview.bs"
	defaultHTMLMarker       = "Overview.html"
	defaultSnapshotRoot     = "css"
	defaultSnapshotFamily   = "css-snapshot"
	defaultSnapshotTitle    = "CSS Snapshot"
	defaultAliasStrategy    = AliasStrategyRedirect
	defaultMetadataReader   = MetadataReaderNative
	defaultMetadataTimeout  = 60
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Alias strategies.
const (
	AliasStrategyRedirect = "redirect"
	AliasStrategySymlink  = "symlink"
)

// Metadata readers.
const (
	MetadataReaderNative  = "native"
	MetadataReaderCommand = "command"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Root:           defaultRoot,
			RedirectOutput: defaultRedirectOutput,
		},
		Index: Index{
			Title:            defaultIndexTitle,
			StructuredMarker: defaultStructuredMarker,
			HTMLMarker:       defaultHTMLMarker,
			HTMLMarkers:      map[string]string{},
			// Example modules, not actual specs.
			Exclude: []string{"css-module"},
		},
		Shortnames: Shortnames{
			Renames: map[string]string{
				"css-animations-2":  "css-animations",
				"css-gcpm-4":        "css-gcpm",
				"css-transitions-2": "css-transitions",
			},
			SnapshotRoot:   defaultSnapshotRoot,
			SnapshotFamily: defaultSnapshotFamily,
			SnapshotTitle:  defaultSnapshotTitle,
		},
		CurrentWork: CurrentWork{
			Levels: map[string]int{
				"css-conditional":   5,
				"css-easing":        2,
				"css-grid":          2,
				"css-values":        4,
				"css-writing-modes": 4,
				"web-animations":    2,
			},
			AlwaysLast: []string{defaultSnapshotFamily},
		},
		Aliases: Aliases{
			Strategy:     defaultAliasStrategy,
			RedirectBase: defaultRedirectBase,
		},
		Metadata: Metadata{
			Reader:         defaultMetadataReader,
			Args:           []string{"{path}"},
			TimeoutSeconds: defaultMetadataTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
