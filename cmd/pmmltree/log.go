package main

import (
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "pmmltree")

func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&prefixed.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
