package pack

// Default filter sets. These are starting points for FilterConfig, not
// ambient state: callers receive copies and the engine only reads what the
// config it was handed contains.

// DefaultMaxBytes is the size ceiling applied to candidate files; larger
// files are skipped without being opened. Zero disables the limit.
const DefaultMaxBytes int64 = 2_000_000

var defaultExcludeDirs = []string{
	"archive",
	".git", "target", ".idea", ".vscode", "node_modules", ".venv", ".tox",
	"dist", "build", ".mypy_cache", ".pytest_cache", "__pycache__", ".cargo",
}

// Source, config and docs extensions worth packing by default.
var defaultIncludeExts = []string{
	"go", "mod", "sum",
	"rs", "toml", "wgsl",
	"md", "txt",
	"json", "yml", "yaml", "cfg", "ini", "env",
}

// Extensions skipped by default: binaries, media, archives, office files,
// and text formats that are usually noise in a packed codebase.
var defaultExcludeExts = []string{
	"lock",
	"gitignore",
	"sh", "bash", "zsh", "ps1", "bat", "cmd", "makefile", "mk", "dockerfile",
	"html", "css", "scss", "js", "jsx", "ts", "tsx",
	"sql", "proto", "patch", "diff", "csv", "tsv", "xml", "svg", "gradle",
	"py",
	"exe", "dll", "so", "dylib", "a", "lib", "o", "obj", "pdb", "wasm",
	"zip", "tar", "gz", "tgz", "bz2", "tbz2", "xz", "7z", "rar",
	"png", "jpg", "jpeg", "gif", "webp", "bmp", "tiff", "tif", "ico", "icns", "psd",
	"ttf", "otf", "woff", "woff2",
	"mp3", "mp4", "m4a", "wav", "flac", "mov", "avi", "mkv", "webm", "ogg",
	"sqlite", "db", "rdb", "mdb", "accdb", "realm",
	"gcda", "gcno", "profraw", "profdata",
	"pdf", "doc", "docx", "ppt", "pptx", "xls", "xlsx",
	"map",
}

// Best-effort extension to fence language tag mapping.
var langByExt = map[string]string{
	"go":         "go",
	"mod":        "go.mod",
	"rs":         "rust",
	"toml":       "toml",
	"md":         "markdown",
	"markdown":   "markdown",
	"txt":        "text",
	"json":       "json",
	"yml":        "yaml",
	"yaml":       "yaml",
	"sh":         "bash",
	"bash":       "bash",
	"zsh":        "bash",
	"ps1":        "powershell",
	"bat":        "batch",
	"cmd":        "batch",
	"mk":         "makefile",
	"makefile":   "makefile",
	"dockerfile": "dockerfile",
	"html":       "html",
	"css":        "css",
	"scss":       "scss",
	"js":         "javascript",
	"jsx":        "jsx",
	"ts":         "typescript",
	"tsx":        "tsx",
	"sql":        "sql",
	"proto":      "protobuf",
	"csv":        "csv",
	"tsv":        "tsv",
	"xml":        "xml",
	"svg":        "xml",
	"py":         "python",
	"cfg":        "ini",
	"ini":        "ini",
	"env":        "dotenv",
	"lock":       "text",
	"gradle":     "groovy",
}

// Extensionless but canonically named files that are always captured, with
// their fence language hints. Keys are lowercase base names.
var defaultNameOverrides = map[string]string{
	"dockerfile":     "dockerfile",
	"makefile":       "makefile",
	"license":        "text",
	"cargo.toml":     "toml",
	"cargo.lock":     "text", // large, but still text
	"build.rs":       "rust",
	"rust-toolchain": "text",
	"rustfmt.toml":   "toml",
	".gitignore":     "gitignore",
	".gitattributes": "text",
	".editorconfig":  "ini",
	"readme":         "markdown",
	"readme.md":      "markdown",
}

// DefaultExcludeDirs returns a copy of the default pruned directory names.
func DefaultExcludeDirs() []string {
	return append([]string(nil), defaultExcludeDirs...)
}

// DefaultIncludeExts returns a copy of the default included extensions.
func DefaultIncludeExts() []string {
	return append([]string(nil), defaultIncludeExts...)
}

// DefaultExcludeExts returns a copy of the default excluded extensions.
func DefaultExcludeExts() []string {
	return append([]string(nil), defaultExcludeExts...)
}

// DefaultNameOverrides returns a copy of the default name override map.
func DefaultNameOverrides() map[string]string {
	overrides := make(map[string]string, len(defaultNameOverrides))
	for name, lang := range defaultNameOverrides {
		overrides[name] = lang
	}
	return overrides
}
