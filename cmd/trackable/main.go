// Command trackable uploads files to S3 with a terminal progress bar.
package main

import (
	"os"

	"github.com/sapessi/trackable/cmd/trackable/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
