package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func newLogger(out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return log
}
