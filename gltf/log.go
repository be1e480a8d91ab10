package gltf

import (
	"io"

	"github.com/rs/zerolog"
)

// disabledLogger is the default logger for a Parser that was not given one
// via WithLogger: it discards everything, so embedding this library never
// forces output onto a consumer's stdout. A package-level value (not a
// Parser-scoped one) is safe to share because zerolog.Logger is immutable
// value type wrapping a writer; nothing here is process-global mutable
// state the way the fastgltf original's tokenizer selector is (see
// WithoutSIMD in options.go, which is plumbed explicitly instead).
var disabledLogger = zerolog.New(io.Discard)
