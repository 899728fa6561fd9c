// Package assets provides the specimen page assets and custom font payloads.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default specimen)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
//	PayloadLoader (interface)
//	    │
//	    └── FilesystemLoader  - loads font payloads from {basePath}/fonts
//
// EmbeddedLoader provides the built-in specimen style, template and sample
// text embedded at compile time. Built-in font payloads are compiled into the
// root package and never go through this package.
//
// # Directory Structure
//
// Custom assets are organized by type:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # specimen styles
//	├── templates/
//	│   └── {name}.html          # specimen page templates (html/template)
//	├── samples/
//	│   └── {name}.md            # specimen sample text (Markdown)
//	└── fonts/
//	    ├── {name}.b64           # base64 payload, may be line-wrapped
//	    └── {name}.ttf|.otf      # raw font, encoded on load
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
