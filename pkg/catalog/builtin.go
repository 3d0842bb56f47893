package catalog

import _ "embed"

// builtinCatalog ships a usable demo catalog so the server runs without any
// local files.
//
//go:embed builtin_catalog.json
var builtinCatalog []byte
