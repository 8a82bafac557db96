// SPDX-License-Identifier: MIT

package chinese

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/hanzi/internal/log"
)

// SetLogger installs the logger used by the hanzi builders to report
// rejected input (at verbosity 1). Call it once at program start. The zero
// logr.Logger restores the silent default.
func SetLogger(logger logr.Logger) {
	log.SetLogger(logger)
}
