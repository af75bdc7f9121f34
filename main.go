package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/evmwatch/blockfilter/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("got a panic err: %v", r)
			os.Exit(1)
		}
	}()
	cmd.Execute()
}
