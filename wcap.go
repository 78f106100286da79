// Package wcap builds capability tables: structs of typed function pointers
// resolved by name through a caller supplied Resolver. Entry points the
// resolver cannot provide are replaced by stubs that panic with the entry
// point's name when called, so unsupported but unused operations never fail
// a load.
package wcap

import (
	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap/pkg/logging"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
)

var log = logging.DefaultLogger.WithFields(logrus.Fields{logfields.LogSubsys: "wcap"})
