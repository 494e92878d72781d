// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func version() string {
	if buildVersion == "" {
		return "dev"
	}
	return buildVersion
}
