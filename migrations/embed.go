package migrations

import "embed"

// Files stores the index migrations embedded into the binary. Each file is a
// JSON array of database commands run by the golang-migrate mongodb driver.
//
//go:embed *.json
var Files embed.FS
