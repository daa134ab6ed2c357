package anchor

import (
	"github.com/rs/zerolog"

	"github.com/tortugaresearch/anchor/internal/logging"
)

// SetLogger installs the logger used for debug output by every package of
// the module. The default logger discards everything.
func SetLogger(l zerolog.Logger) {
	logging.Set(l)
}
