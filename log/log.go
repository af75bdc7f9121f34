package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLog routes diagnostics to stderr, keeping stdout free for the decision
// line. A non-empty logPath tees them into a file as well.
func InitLog(logPath string) {
	out := io.Writer(os.Stderr)
	if logPath != "" {
		file, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err != nil {
			logrus.Fatal(err)
		}
		out = io.MultiWriter(os.Stderr, file)
	}
	logrus.SetOutput(out)
}
