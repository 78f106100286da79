// Package syms resolves entry point names to addresses by reading the ELF
// symbol tables of the objects mapped into a process.
package syms

import (
	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap/pkg/logging"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
)

var log = logging.DefaultLogger.WithFields(logrus.Fields{logfields.LogSubsys: "syms"})
