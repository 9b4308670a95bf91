// types.go lists the file type names understood by rg --type.
//
// The list tracks rg's built-in type table (rg --type-list). It exists so
// host programs can build filters from typed constants instead of raw
// strings, and so sensible exclusion sets can be shared. It is advisory:
// the Type methods on the builders accept any name, and an unknown type is
// rg's error to report, not ours.

package ripgrep

import "slices"

// Type names a ripgrep file type (the argument to --type / --type-not).
type Type = string

// Exclusion sets for common "search source code only" setups.
var (
	// ExcludedBinaryTypes are compiled/compressed formats that are rarely
	// useful to search as text.
	ExcludedBinaryTypes = []Type{
		"avro", "brotli", "bzip2", "cbor", "flatbuffers", "gzip", "lz4",
		"lzma", "pdf", "protobuf", "thrift", "xz", "zstd",
	}

	// ExcludedExtraTypes are generated or noisy text formats.
	ExcludedExtraTypes = []Type{
		"lock", "minified", "jupyter", "log", "postscript", "svg", "usd",
	}

	// ExcludedDataTypes are structured data formats, excluded when only
	// source code is of interest.
	ExcludedDataTypes = []Type{
		"csv", "jsonl", "json", "xml", "yaml", "toml",
	}
)

// DefaultExcludedTypes is the union of the exclusion sets above, sorted.
// Pass to ExcludeTypes for a "source code only" search.
var DefaultExcludedTypes = defaultExcludedTypes()

func defaultExcludedTypes() []Type {
	all := make([]Type, 0, len(ExcludedBinaryTypes)+len(ExcludedExtraTypes)+len(ExcludedDataTypes))
	all = append(all, ExcludedBinaryTypes...)
	all = append(all, ExcludedExtraTypes...)
	all = append(all, ExcludedDataTypes...)
	slices.Sort(all)
	return all
}

// KnownTypes is rg's built-in type table, for hosts that want to validate
// or enumerate type names.
var KnownTypes = []Type{
	"ada", "agda", "aidl", "alire", "amake", "asciidoc", "asm", "asp",
	"ats", "avro", "awk", "bat", "batch", "bazel", "bitbake", "brotli",
	"buildstream", "bzip2", "c", "cabal", "candid", "carp", "cbor",
	"ceylon", "clojure", "cmake", "cmd", "cml", "coffeescript", "config",
	"coq", "cpp", "creole", "crystal", "cs", "csharp", "cshtml", "csproj",
	"css", "csv", "cuda", "cython", "d", "dart", "devicetree", "dhall",
	"diff", "dita", "docker", "dockercompose", "dts", "dvc", "ebuild",
	"edn", "elisp", "elixir", "elm", "erb", "erlang", "fennel", "fidl",
	"fish", "flatbuffers", "fortran", "fsharp", "fut", "gap", "gn", "go",
	"gprbuild", "gradle", "graphql", "groovy", "gzip", "h", "haml", "hare",
	"haskell", "hbs", "hs", "html", "hy", "idris", "janet", "java",
	"jinja", "jl", "js", "json", "jsonl", "julia", "jupyter", "k",
	"kotlin", "lean", "less", "license", "lilypond", "lisp", "lock", "log",
	"lua", "lz4", "lzma", "m4", "make", "mako", "man", "markdown",
	"matlab", "md", "meson", "minified", "mint", "mk", "ml", "motoko",
	"msbuild", "nim", "nix", "objc", "objcpp", "ocaml", "org", "pants",
	"pascal", "pdf", "perl", "php", "po", "pod", "postscript", "prolog",
	"protobuf", "ps", "puppet", "purs", "py", "python", "qmake", "qml",
	"r", "racket", "raku", "rdoc", "readme", "reasonml", "red", "rescript",
	"robot", "rst", "ruby", "rust", "sass", "scala", "sh", "slim",
	"smarty", "sml", "solidity", "soy", "spark", "spec", "sql", "stylus",
	"sv", "svelte", "svg", "swift", "swig", "systemd", "taskpaper", "tcl",
	"tex", "texinfo", "textile", "tf", "thrift", "toml", "ts", "twig",
	"txt", "typescript", "typoscript", "usd", "v", "vala", "vb", "vcl",
	"verilog", "vhdl", "vim", "vimscript", "vue", "webidl", "wgsl", "wiki",
	"xml", "xz", "yacc", "yaml", "yang", "z", "zig", "zsh", "zstd",
}
